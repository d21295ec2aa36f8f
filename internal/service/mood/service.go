// Package mood implements the per-day mood tracking operations.
package mood

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/avashisht/deardiary-backend/internal/domain"
)

// moodRepo defines the mood repository interface needed by mood service.
type moodRepo interface {
	Set(ctx context.Context, entry *domain.MoodEntry) error
	ListByUser(ctx context.Context, userID uuid.UUID) (map[string]domain.Mood, error)
}

// Service implements mood operations.
type Service struct {
	log   *slog.Logger
	moods moodRepo
}

// NewService creates a new mood service instance.
func NewService(logger *slog.Logger, moods moodRepo) *Service {
	return &Service{
		log:   logger.With("service", "mood"),
		moods: moods,
	}
}
