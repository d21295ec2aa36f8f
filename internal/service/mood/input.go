package mood

import (
	"github.com/avashisht/deardiary-backend/internal/domain"
)

// SetMoodInput holds parameters for the set mood operation.
type SetMoodInput struct {
	Date string
	Mood string
}

// Validate validates the set mood input. The date must be a real calendar
// day in canonical form and the mood one of the three known values.
func (i SetMoodInput) Validate() error {
	var errs []domain.FieldError

	if i.Date == "" {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	} else if _, err := domain.ParseDay(i.Date); err != nil {
		errs = append(errs, domain.FieldError{Field: "date", Message: "must be YYYY-MM-DD"})
	}

	if i.Mood == "" {
		errs = append(errs, domain.FieldError{Field: "mood", Message: "required"})
	} else if !domain.Mood(i.Mood).IsValid() {
		errs = append(errs, domain.FieldError{Field: "mood", Message: "must be good, average or bad"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
