package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/avashisht/deardiary-backend/internal/domain"
	"github.com/avashisht/deardiary-backend/internal/service/mood"
)

// moodService defines the minimal interface needed by MoodHandler.
type moodService interface {
	SetMood(ctx context.Context, input mood.SetMoodInput) error
	ListMoods(ctx context.Context) (map[string]domain.Mood, error)
}

// MoodHandler serves mood REST endpoints.
type MoodHandler struct {
	svc moodService
	log *slog.Logger
}

// NewMoodHandler creates a MoodHandler.
func NewMoodHandler(svc moodService, logger *slog.Logger) *MoodHandler {
	return &MoodHandler{svc: svc, log: logger.With("handler", "mood")}
}

type setMoodRequest struct {
	Mood string `json:"mood"`
}

type moodsResponse struct {
	Moods map[string]domain.Mood `json:"moods"`
}

// Set handles PUT /api/moods/{date}. The date is part of the path so a
// repeat write for the same day is a natural overwrite.
func (h *MoodHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req setMoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.svc.SetMood(r.Context(), mood.SetMoodInput{
		Date: r.PathValue("date"),
		Mood: req.Mood,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// List handles GET /api/moods.
func (h *MoodHandler) List(w http.ResponseWriter, r *http.Request) {
	moods, err := h.svc.ListMoods(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if moods == nil {
		moods = map[string]domain.Mood{}
	}
	writeJSON(w, http.StatusOK, moodsResponse{Moods: moods})
}

func (h *MoodHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
