package journal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/avashisht/deardiary-backend/internal/domain"
	"github.com/avashisht/deardiary-backend/pkg/ctxutil"
)

// UpdateNote overwrites the text of an existing note. The entry date and
// creation time are immutable. Last write wins on concurrent edits.
func (s *Service) UpdateNote(ctx context.Context, input UpdateNoteInput) (*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxNoteLength); err != nil {
		return nil, err
	}

	if err := s.notes.UpdateText(ctx, userID, input.NoteID, input.Text); err != nil {
		return nil, fmt.Errorf("journal.UpdateNote: %w", err)
	}

	note, err := s.notes.GetByID(ctx, userID, input.NoteID)
	if err != nil {
		return nil, fmt.Errorf("journal.UpdateNote reload: %w", err)
	}

	s.log.InfoContext(ctx, "note updated",
		slog.String("user_id", userID.String()),
		slog.String("note_id", input.NoteID.String()))

	return note, nil
}
