package journal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/avashisht/deardiary-backend/internal/domain"
	"github.com/avashisht/deardiary-backend/pkg/ctxutil"
)

// CreateNote adds a new note for the authenticated user. The entry date is
// computed server-side from the creation instant; clients cannot backdate.
// Whitespace-only text is rejected without touching storage.
func (s *Service) CreateNote(ctx context.Context, input CreateNoteInput) (*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxNoteLength); err != nil {
		return nil, err
	}

	count, err := s.notes.Count(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("journal.CreateNote count: %w", err)
	}
	if count >= s.cfg.MaxNotesPerUser {
		return nil, domain.NewValidationError("text", "note limit reached")
	}

	now := time.Now().UTC()
	note := &domain.Note{
		ID:        uuid.New(),
		UserID:    userID,
		Text:      input.Text,
		EntryDate: domain.Day(now),
		CreatedAt: now,
	}

	created, err := s.notes.Create(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("journal.CreateNote: %w", err)
	}

	s.log.InfoContext(ctx, "note created",
		slog.String("user_id", userID.String()),
		slog.String("note_id", created.ID.String()))

	return created, nil
}
