package review

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/avolkovx/coursehub/internal/domain"
)

// SubmitInput holds parameters for the review submission operation.
type SubmitInput struct {
	CourseID uuid.UUID
	Rating   int
	Text     string
}

// Validate validates the submit input. Rating bounds and the non-empty
// text rule are enforced here before any database work happens.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	if i.CourseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "course_id", Message: "required"})
	}

	if i.Rating < domain.MinRating || i.Rating > domain.MaxRating {
		errs = append(errs, domain.FieldError{
			Field:   "rating",
			Message: fmt.Sprintf("must be between %d and %d", domain.MinRating, domain.MaxRating),
		})
	}

	if strings.TrimSpace(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
