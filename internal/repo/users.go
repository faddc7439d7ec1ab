package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/pizza-service/internal/entities"
	"github.com/SergeyBogomolovv/pizza-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type userRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewUserRepo(db *sqlx.DB) *userRepo {
	return &userRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *userRepo) SaveUser(ctx context.Context, u entities.User) error {
	query, args := r.qb.Insert("users").
		Columns(userColumns...).
		Values(u.ID, u.FullName, u.Email, string(u.Role), u.PasswordHash, u.CreatedAt, u.UpdatedAt).
		MustSql()

	if _, err := trm.QuerierFrom(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return entities.ErrUserExists
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *userRepo) GetUserByEmail(ctx context.Context, email string) (entities.User, error) {
	return r.getUser(ctx, sq.Eq{"email": email})
}

func (r *userRepo) GetUserByID(ctx context.Context, id string) (entities.User, error) {
	return r.getUser(ctx, sq.Eq{"id": id})
}

func (r *userRepo) getUser(ctx context.Context, where sq.Eq) (entities.User, error) {
	query, args := r.qb.Select(userColumns...).
		From("users").
		Where(where).
		MustSql()

	var row User
	err := trm.QuerierFrom(ctx, r.db).GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return UserToEntity(row), nil
}

type roleKey struct {
	CreatedAt time.Time `json:"createdAt"`
	ID        string    `json:"id"`
}

// UsersByRole pages over users of a role, newest first.
func (r *userRepo) UsersByRole(ctx context.Context, role entities.Role, cursor entities.Cursor, limit int) ([]entities.User, entities.Cursor, error) {
	sb := r.qb.Select(userColumns...).
		From("users").
		Where(sq.Eq{"role": string(role)}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit + 1))

	if cursor != "" {
		var key roleKey
		if err := decodeCursor(cursor, &key); err != nil {
			return nil, "", err
		}
		sb = sb.Where(sq.Expr("(created_at, id) < (?, ?)", key.CreatedAt, key.ID))
	}

	query, args := sb.MustSql()
	var rows []User
	if err := trm.QuerierFrom(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, "", fmt.Errorf("failed to select users: %w", err)
	}

	var next entities.Cursor
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		c, err := encodeCursor(roleKey{CreatedAt: last.CreatedAt, ID: last.ID})
		if err != nil {
			return nil, "", err
		}
		next = c
	}

	users := make([]entities.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, UserToEntity(row))
	}
	return users, next, nil
}
