package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SergeyBogomolovv/pizza-service/internal/auth"
	"github.com/SergeyBogomolovv/pizza-service/internal/entities"
)

type UserFinder interface {
	GetUserByEmail(ctx context.Context, email string) (entities.User, error)
	GetUserByID(ctx context.Context, id string) (entities.User, error)
}

type PasswordComparer interface {
	Compare(hashed, password string) error
}

type TokenManager interface {
	Issue(user entities.User) (string, error)
	Parse(token string) (*auth.Claims, error)
}

type authService struct {
	logger   *slog.Logger
	users    UserFinder
	password PasswordComparer
	tokens   TokenManager
	cache    Cache
}

func NewAuthService(logger *slog.Logger, users UserFinder, password PasswordComparer, tokens TokenManager, cache Cache) *authService {
	return &authService{
		logger:   logger.With(slog.String("service", "auth")),
		users:    users,
		password: password,
		tokens:   tokens,
		cache:    cache,
	}
}

// Login exchanges credentials for an access token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, entities.ErrUserNotFound) {
		return "", entities.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if err := s.password.Compare(user.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return "", entities.ErrInvalidCredentials
		}
		return "", err
	}

	return s.tokens.Issue(user)
}

// Authenticate verifies the token and resolves the principal it names.
// Principals are cached by subject for the cache TTL.
func (s *authService) Authenticate(ctx context.Context, token string) (entities.Principal, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return entities.Principal{}, entities.ErrUnauthenticated
	}

	if data, ok := s.cache.Get(claims.Subject); ok {
		var p entities.Principal
		if err := p.Unmarshal(data); err == nil {
			return p, nil
		}
	}

	user, err := s.users.GetUserByID(ctx, claims.Subject)
	if errors.Is(err, entities.ErrUserNotFound) {
		return entities.Principal{}, entities.ErrUnauthenticated
	}
	if err != nil {
		return entities.Principal{}, err
	}

	p := entities.Principal{ID: user.ID, Email: user.Email, Role: user.Role}
	if data, err := p.Marshal(); err == nil {
		s.cache.Set(claims.Subject, data)
	} else {
		s.logger.ErrorContext(ctx, "failed to marshal principal", slog.String("user_id", user.ID), slog.Any("error", err))
	}
	return p, nil
}
