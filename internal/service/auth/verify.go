package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/avashisht/deardiary-backend/internal/auth"
	"github.com/avashisht/deardiary-backend/internal/domain"
)

// VerifyEmail marks the token's owner as verified and consumes every
// outstanding verification token for that user.
// Returns ErrUnauthorized for unknown or expired tokens.
func (s *Service) VerifyEmail(ctx context.Context, input VerifyInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	hash := auth.HashToken(input.Token)

	vt, err := s.tokens.GetVerificationByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUnauthorized
		}
		return fmt.Errorf("auth.VerifyEmail get token: %w", err)
	}

	if vt.IsExpired(time.Now()) {
		return domain.ErrUnauthorized
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.SetEmailVerified(txCtx, vt.UserID); err != nil {
			return fmt.Errorf("set email verified: %w", err)
		}
		if err := s.tokens.DeleteVerificationsByUser(txCtx, vt.UserID); err != nil {
			return fmt.Errorf("consume verification tokens: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// User deleted between token issue and verification.
			return domain.ErrUnauthorized
		}
		return fmt.Errorf("auth.VerifyEmail: %w", err)
	}

	s.log.InfoContext(ctx, "email verified",
		slog.String("user_id", vt.UserID.String()))

	return nil
}
