package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avashisht/deardiary-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates an unverified user with a unique email.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "$2a$10$" + suffix + "fakehashfakehashfakehash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, email_verified, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.PasswordHash, user.EmailVerified, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedVerifiedUser creates a user with email_verified already set.
func SeedVerifiedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	user := SeedUser(t, pool)

	_, err := pool.Exec(ctx,
		`UPDATE users SET email_verified = TRUE WHERE id = $1`,
		user.ID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedVerifiedUser update user: %v", err)
	}

	user.EmailVerified = true
	return user
}

// SeedNote creates a note for the user with the given text and creation time.
// Returns a filled domain.Note.
func SeedNote(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, text string, createdAt time.Time) domain.Note {
	t.Helper()
	ctx := context.Background()

	createdAt = createdAt.UTC().Truncate(time.Microsecond)
	note := domain.Note{
		ID:        uuid.New(),
		UserID:    userID,
		Text:      text,
		EntryDate: domain.Day(createdAt),
		CreatedAt: createdAt,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO notes (id, user_id, text, entry_date, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		note.ID, note.UserID, note.Text, note.EntryDate, note.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedNote insert note: %v", err)
	}

	return note
}

// SeedMood records a mood for the user on the given day.
func SeedMood(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, day string, mood domain.Mood) {
	t.Helper()
	ctx := context.Background()

	_, err := pool.Exec(ctx,
		`INSERT INTO moods (user_id, entry_date, mood, updated_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, entry_date) DO UPDATE SET mood = EXCLUDED.mood, updated_at = EXCLUDED.updated_at`,
		userID, day, mood.String(), time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMood insert mood: %v", err)
	}
}
