// Package journal implements the diary note operations.
package journal

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/avashisht/deardiary-backend/internal/config"
	"github.com/avashisht/deardiary-backend/internal/domain"
)

// noteRepo defines the note repository interface needed by journal service.
type noteRepo interface {
	Create(ctx context.Context, note *domain.Note) (*domain.Note, error)
	GetByID(ctx context.Context, userID, noteID uuid.UUID) (*domain.Note, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Note, error)
	Count(ctx context.Context, userID uuid.UUID) (int, error)
	UpdateText(ctx context.Context, userID, noteID uuid.UUID, text string) error
	Delete(ctx context.Context, userID, noteID uuid.UUID) error
}

// Service implements journal operations.
type Service struct {
	log   *slog.Logger
	notes noteRepo
	cfg   config.JournalConfig
}

// NewService creates a new journal service instance.
func NewService(logger *slog.Logger, notes noteRepo, cfg config.JournalConfig) *Service {
	return &Service{
		log:   logger.With("service", "journal"),
		notes: notes,
		cfg:   cfg,
	}
}
