package journal

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/avashisht/deardiary-backend/internal/domain"
)

// CreateNoteInput holds parameters for the create note operation.
type CreateNoteInput struct {
	Text string
}

// Validate validates the create note input. Whitespace-only text counts
// as empty and is rejected before any write happens.
func (i CreateNoteInput) Validate(maxLength int) error {
	return validateText(i.Text, maxLength)
}

// GetNoteInput holds parameters for the get note operation.
type GetNoteInput struct {
	NoteID uuid.UUID
}

// Validate validates the get note input.
func (i GetNoteInput) Validate() error {
	if i.NoteID == uuid.Nil {
		return domain.NewValidationError("note_id", "required")
	}
	return nil
}

// DeleteNoteInput holds parameters for the delete note operation.
type DeleteNoteInput struct {
	NoteID uuid.UUID
}

// Validate validates the delete note input.
func (i DeleteNoteInput) Validate() error {
	if i.NoteID == uuid.Nil {
		return domain.NewValidationError("note_id", "required")
	}
	return nil
}

// UpdateNoteInput holds parameters for the update note operation.
type UpdateNoteInput struct {
	NoteID uuid.UUID
	Text   string
}

// Validate validates the update note input.
func (i UpdateNoteInput) Validate(maxLength int) error {
	var errs []domain.FieldError

	if i.NoteID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "note_id", Message: "required"})
	}

	if err := validateText(i.Text, maxLength); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			errs = append(errs, ve.Errors...)
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateText(text string, maxLength int) error {
	var errs []domain.FieldError

	if strings.TrimSpace(text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	} else if len(text) > maxLength {
		errs = append(errs, domain.FieldError{Field: "text", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
