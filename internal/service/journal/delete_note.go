package journal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/avashisht/deardiary-backend/internal/domain"
	"github.com/avashisht/deardiary-backend/pkg/ctxutil"
)

// DeleteNote permanently removes a note owned by the authenticated user.
func (s *Service) DeleteNote(ctx context.Context, input DeleteNoteInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.notes.Delete(ctx, userID, input.NoteID); err != nil {
		return fmt.Errorf("journal.DeleteNote: %w", err)
	}

	s.log.InfoContext(ctx, "note deleted",
		slog.String("user_id", userID.String()),
		slog.String("note_id", input.NoteID.String()))

	return nil
}
