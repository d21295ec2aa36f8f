package mood

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/avashisht/deardiary-backend/internal/domain"
	"github.com/avashisht/deardiary-backend/pkg/ctxutil"
)

// SetMood records the mood for one calendar day. Setting a mood for a day
// that already has one overwrites the previous value.
func (s *Service) SetMood(ctx context.Context, input SetMoodInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	entry := &domain.MoodEntry{
		UserID:    userID,
		EntryDate: input.Date,
		Mood:      domain.Mood(input.Mood),
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.moods.Set(ctx, entry); err != nil {
		return fmt.Errorf("mood.SetMood: %w", err)
	}

	s.log.InfoContext(ctx, "mood set",
		slog.String("user_id", userID.String()),
		slog.String("date", input.Date))

	return nil
}
