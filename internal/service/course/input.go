package course

import (
	"strings"

	"github.com/avolkovx/coursehub/internal/domain"
)

// CreateInput holds parameters for course creation.
type CreateInput struct {
	Name       string
	CategoryID int
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if i.CategoryID <= 0 {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
