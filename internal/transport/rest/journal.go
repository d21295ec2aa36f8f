package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/avashisht/deardiary-backend/internal/domain"
	"github.com/avashisht/deardiary-backend/internal/service/journal"
)

// journalService defines the minimal interface needed by NoteHandler.
type journalService interface {
	CreateNote(ctx context.Context, input journal.CreateNoteInput) (*domain.Note, error)
	ListNotes(ctx context.Context) ([]*domain.Note, error)
	GetNote(ctx context.Context, input journal.GetNoteInput) (*domain.Note, error)
	UpdateNote(ctx context.Context, input journal.UpdateNoteInput) (*domain.Note, error)
	DeleteNote(ctx context.Context, input journal.DeleteNoteInput) error
}

// NoteHandler serves journal note REST endpoints.
type NoteHandler struct {
	svc journalService
	log *slog.Logger
}

// NewNoteHandler creates a NoteHandler.
func NewNoteHandler(svc journalService, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{svc: svc, log: logger.With("handler", "journal")}
}

type noteRequest struct {
	Text string `json:"text"`
}

type noteResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

type notesResponse struct {
	Notes []noteResponse `json:"notes"`
}

// Create handles POST /api/notes.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	note, err := h.svc.CreateNote(r.Context(), journal.CreateNoteInput{Text: req.Text})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toNoteResponse(note))
}

// List handles GET /api/notes. Notes come back newest first.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	notes, err := h.svc.ListNotes(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := notesResponse{Notes: make([]noteResponse, 0, len(notes))}
	for _, n := range notes {
		resp.Notes = append(resp.Notes, toNoteResponse(n))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/notes/{id}.
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	noteID, ok := parseNoteID(w, r)
	if !ok {
		return
	}

	note, err := h.svc.GetNote(r.Context(), journal.GetNoteInput{NoteID: noteID})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toNoteResponse(note))
}

// Update handles PUT /api/notes/{id}.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	noteID, ok := parseNoteID(w, r)
	if !ok {
		return
	}

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	note, err := h.svc.UpdateNote(r.Context(), journal.UpdateNoteInput{NoteID: noteID, Text: req.Text})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toNoteResponse(note))
}

// Delete handles DELETE /api/notes/{id}.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	noteID, ok := parseNoteID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteNote(r.Context(), journal.DeleteNoteInput{NoteID: noteID}); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *NoteHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func parseNoteID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid note id")
		return uuid.Nil, false
	}
	return id, true
}

func toNoteResponse(n *domain.Note) noteResponse {
	return noteResponse{
		ID:        n.ID.String(),
		Text:      n.Text,
		Date:      n.EntryDate,
		CreatedAt: n.CreatedAt,
	}
}
