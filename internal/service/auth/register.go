package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/avashisht/deardiary-backend/internal/domain"
)

// Register creates a new unverified user with email + password credentials
// and a single-use email verification token. No session is issued: the user
// must confirm their email before the first login.
// Returns ErrAlreadyExists if the email is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	// Normalize input before validation.
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	rawVerify, hashVerify, err := s.jwt.GenerateOpaqueToken()
	if err != nil {
		return nil, fmt.Errorf("auth.Register generate verification token: %w", err)
	}

	// Create user + verification token in a transaction.
	// Email uniqueness is enforced by a DB constraint.
	var createdUser *domain.User

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := time.Now()
		newUser := &domain.User{
			ID:           uuid.New(),
			Email:        input.Email,
			PasswordHash: string(hash),
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		user, err := s.users.Create(txCtx, newUser)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		vt := &domain.VerificationToken{
			UserID:    user.ID,
			TokenHash: hashVerify,
			ExpiresAt: now.Add(s.cfg.VerificationTokenTTL),
		}
		if err := s.tokens.CreateVerification(txCtx, vt); err != nil {
			return fmt.Errorf("create verification token: %w", err)
		}

		createdUser = user
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", createdUser.ID.String()))

	return &RegisterResult{
		User:              createdUser,
		VerificationToken: rawVerify,
	}, nil
}
