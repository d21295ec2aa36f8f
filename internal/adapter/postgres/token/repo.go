// Package token implements refresh and email verification token storage
// using PostgreSQL. Only SHA-256 hashes of tokens are persisted.
package token

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/avashisht/deardiary-backend/internal/adapter/postgres"
	"github.com/avashisht/deardiary-backend/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const (
	refreshTable      = "refresh_tokens"
	verificationTable = "verification_tokens"
)

var refreshColumns = []string{"id", "user_id", "token_hash", "expires_at", "created_at", "revoked_at"}

var verificationColumns = []string{"id", "user_id", "token_hash", "expires_at", "created_at"}

// Repo provides token persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new token repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Refresh tokens
// ---------------------------------------------------------------------------

// Create inserts a new refresh token.
func (r *Repo) Create(ctx context.Context, t *domain.RefreshToken) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}

	query := qb.Insert(refreshTable).
		Columns(refreshColumns...).
		Values(t.ID, t.UserID, t.TokenHash, t.ExpiresAt, t.CreatedAt, t.RevokedAt)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "refresh_token", t.ID.String())
	}
	return nil
}

// GetByHash returns a live (non-revoked) refresh token by its hash.
// Returns domain.ErrNotFound for unknown or revoked hashes, which the auth
// service treats as reuse.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	query := qb.Select(refreshColumns...).
		From(refreshTable).
		Where(squirrel.Eq{"token_hash": tokenHash, "revoked_at": nil})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var t domain.RefreshToken
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...)
	if err := row.Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt, &t.RevokedAt); err != nil {
		return nil, postgres.MapError(err, "refresh_token", "by-hash")
	}
	return &t, nil
}

// RevokeByID marks one refresh token revoked.
func (r *Repo) RevokeByID(ctx context.Context, id uuid.UUID) error {
	return r.revoke(ctx, squirrel.Eq{"id": id}, id.String())
}

// RevokeAllByUser marks every live refresh token for the user revoked.
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	return r.revoke(ctx, squirrel.Eq{"user_id": userID, "revoked_at": nil}, userID.String())
}

func (r *Repo) revoke(ctx context.Context, where squirrel.Eq, key string) error {
	query := qb.Update(refreshTable).
		Set("revoked_at", time.Now().UTC()).
		Where(where)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "refresh_token", key)
	}
	return nil
}

// DeleteExpired removes refresh tokens past their expiry, revoked or not.
// Returns the number of rows deleted. Maintenance operation.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	query := qb.Delete(refreshTable).
		Where(squirrel.Lt{"expires_at": time.Now().UTC()})

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("delete expired refresh tokens: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Verification tokens
// ---------------------------------------------------------------------------

// CreateVerification inserts a new email verification token.
func (r *Repo) CreateVerification(ctx context.Context, t *domain.VerificationToken) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}

	query := qb.Insert(verificationTable).
		Columns(verificationColumns...).
		Values(t.ID, t.UserID, t.TokenHash, t.ExpiresAt, t.CreatedAt)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "verification_token", t.ID.String())
	}
	return nil
}

// GetVerificationByHash returns a verification token by its hash.
func (r *Repo) GetVerificationByHash(ctx context.Context, tokenHash string) (*domain.VerificationToken, error) {
	query := qb.Select(verificationColumns...).
		From(verificationTable).
		Where(squirrel.Eq{"token_hash": tokenHash})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var t domain.VerificationToken
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...)
	if err := row.Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "verification_token", "by-hash")
	}
	return &t, nil
}

// DeleteVerificationsByUser removes all verification tokens for a user.
// Called once a token is consumed so stale tokens cannot be replayed.
func (r *Repo) DeleteVerificationsByUser(ctx context.Context, userID uuid.UUID) error {
	query := qb.Delete(verificationTable).
		Where(squirrel.Eq{"user_id": userID})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "verification_token", userID.String())
	}
	return nil
}
