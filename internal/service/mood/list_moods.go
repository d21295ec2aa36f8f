package mood

import (
	"context"
	"fmt"

	"github.com/avashisht/deardiary-backend/internal/domain"
	"github.com/avashisht/deardiary-backend/pkg/ctxutil"
)

// ListMoods returns the full mood history for the authenticated user,
// keyed by day. Days without a recorded mood are absent from the map.
func (s *Service) ListMoods(ctx context.Context) (map[string]domain.Mood, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	moods, err := s.moods.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("mood.ListMoods: %w", err)
	}
	return moods, nil
}
