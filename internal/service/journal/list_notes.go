package journal

import (
	"context"
	"fmt"
	"sort"

	"github.com/avashisht/deardiary-backend/internal/domain"
	"github.com/avashisht/deardiary-backend/pkg/ctxutil"
)

// ListNotes returns all notes for the authenticated user, newest first.
// A note with a zero creation time sorts as the oldest entry. Ties are
// broken by ID so the order is stable across fetches.
func (s *Service) ListNotes(ctx context.Context) ([]*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	notes, err := s.notes.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("journal.ListNotes: %w", err)
	}

	sort.Slice(notes, func(i, j int) bool {
		a, b := notes[i], notes[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	})

	return notes, nil
}

// GetNote returns a single note owned by the authenticated user.
func (s *Service) GetNote(ctx context.Context, input GetNoteInput) (*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	note, err := s.notes.GetByID(ctx, userID, input.NoteID)
	if err != nil {
		return nil, fmt.Errorf("journal.GetNote: %w", err)
	}
	return note, nil
}
