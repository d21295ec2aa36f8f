package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a diary account. Accounts are created unverified and
// cannot sign in until the verification token from registration is consumed.
type User struct {
	ID            uuid.UUID
	Email         string
	PasswordHash  string
	EmailVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RefreshToken represents a hashed refresh token stored in the database.
// Only the SHA-256 hash of the raw token is ever persisted.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}

// VerificationToken is a one-shot email verification token. The raw token is
// delivered out of band at registration; consuming it flips User.EmailVerified.
type VerificationToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired returns true if the token has expired relative to now.
func (t *VerificationToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
