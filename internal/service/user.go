package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/pizza-service/internal/entities"

	"github.com/google/uuid"
)

type UserRepo interface {
	SaveUser(ctx context.Context, u entities.User) error
	UsersByRole(ctx context.Context, role entities.Role, cursor entities.Cursor, limit int) ([]entities.User, entities.Cursor, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
}

type userService struct {
	logger *slog.Logger
	repo   UserRepo
	hasher PasswordHasher
	query  QueryOptions
	now    func() time.Time
}

func NewUserService(logger *slog.Logger, repo UserRepo, hasher PasswordHasher, query QueryOptions) *userService {
	if query.DrainTimeout <= 0 {
		query.DrainTimeout = 10 * time.Second
	}
	if query.DrainPageSize <= 0 {
		query.DrainPageSize = 100
	}
	return &userService{
		logger: logger.With(slog.String("service", "user")),
		repo:   repo,
		hasher: hasher,
		query:  query,
		now:    time.Now,
	}
}

// Register creates a customer account. An empty role defaults to customer.
func (s *userService) Register(ctx context.Context, in entities.CreateUser) (entities.User, error) {
	if in.Role == entities.RoleAnonymous {
		in.Role = entities.RoleCustomer
	}
	if in.Role != entities.RoleCustomer {
		return entities.User{}, entities.ErrInvalidRole
	}
	return s.create(ctx, in)
}

// RegisterInternal creates a store personnel account.
func (s *userService) RegisterInternal(ctx context.Context, in entities.CreateUser) (entities.User, error) {
	if !in.Role.Internal() {
		return entities.User{}, entities.ErrInvalidRole
	}
	return s.create(ctx, in)
}

func (s *userService) create(ctx context.Context, in entities.CreateUser) (entities.User, error) {
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return entities.User{}, err
	}

	now := s.now().UTC()
	user := entities.User{
		ID:           uuid.NewString(),
		FullName:     in.FullName,
		Email:        in.Email,
		Role:         in.Role,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.SaveUser(ctx, user); err != nil {
		return entities.User{}, err
	}

	s.logger.InfoContext(ctx, "user created", slog.String("user_id", user.ID), slog.String("role", user.Role.String()))
	return user, nil
}

// UsersByRole returns every user of the role, newest first.
func (s *userService) UsersByRole(ctx context.Context, role entities.Role) ([]entities.User, error) {
	if !role.Valid() {
		return nil, entities.ErrInvalidRole
	}

	ctx, cancel := context.WithTimeout(ctx, s.query.DrainTimeout)
	defer cancel()

	users := []entities.User{}
	var cursor entities.Cursor
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page, next, err := s.repo.UsersByRole(ctx, role, cursor, s.query.DrainPageSize)
		if err != nil {
			return nil, err
		}
		users = append(users, page...)
		if next == "" {
			return users, nil
		}
		cursor = next
	}
}
