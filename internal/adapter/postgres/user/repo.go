// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/avashisht/deardiary-backend/internal/adapter/postgres"
	"github.com/avashisht/deardiary-backend/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const usersTable = "users"

var userColumns = []string{"id", "email", "password_hash", "email_verified", "created_at", "updated_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := qb.Select(userColumns...).
		From(usersTable).
		Where(squirrel.Eq{"id": id})

	u, err := r.queryOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}
	return u, nil
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := qb.Select(userColumns...).
		From(usersTable).
		Where(squirrel.Eq{"email": email})

	u, err := r.queryOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return u, nil
}

// Create inserts a new user and returns the persisted domain.User.
// Email uniqueness is enforced by a DB constraint → domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	query := qb.Insert(usersTable).
		Columns(userColumns...).
		Values(u.ID, u.Email, u.PasswordHash, u.EmailVerified, u.CreatedAt, u.UpdatedAt).
		Suffix("RETURNING " + strings.Join(userColumns, ", "))

	created, err := r.queryOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID.String())
	}
	return created, nil
}

// SetEmailVerified flips the verified flag for the given user.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) SetEmailVerified(ctx context.Context, id uuid.UUID) error {
	query := qb.Update(usersTable).
		Set("email_verified", true).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// queryOne runs a single-row query and scans it into a domain.User.
func (r *Repo) queryOne(ctx context.Context, query squirrel.Sqlizer) (*domain.User, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...)

	var u domain.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.EmailVerified, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
