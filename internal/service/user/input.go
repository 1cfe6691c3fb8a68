package user

import (
	"regexp"
	"strings"

	"github.com/avolkovx/coursehub/internal/domain"
)

const passwordMinLen = 8

var loginRe = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,64}$`)

// CreateInput holds parameters for account creation.
type CreateInput struct {
	Login      string
	Password   string
	FirstName  string
	LastName   string
	MiddleName *string
	Role       domain.RoleName
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Login == "" {
		errs = append(errs, domain.FieldError{Field: "login", Message: "required"})
	} else if !loginRe.MatchString(i.Login) {
		errs = append(errs, domain.FieldError{Field: "login", Message: "must be 3-64 latin letters, digits, '_', '.' or '-'"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) < passwordMinLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
	}

	errs = append(errs, validateNames(i.FirstName, i.LastName)...)

	if !i.Role.Valid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "unknown role"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AdminEditInput holds parameters for the admin profile edit. Admins
// may edit any account and reassign its role.
type AdminEditInput struct {
	FirstName  string
	LastName   string
	MiddleName *string
	Role       domain.RoleName
}

// Validate validates the admin edit input.
func (i AdminEditInput) Validate() error {
	errs := validateNames(i.FirstName, i.LastName)

	if !i.Role.Valid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "unknown role"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SelfEditInput holds parameters for the self profile edit. It carries
// no role on purpose: users cannot change their own role.
type SelfEditInput struct {
	FirstName  string
	LastName   string
	MiddleName *string
}

// Validate validates the self edit input.
func (i SelfEditInput) Validate() error {
	if errs := validateNames(i.FirstName, i.LastName); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateNames(firstName, lastName string) []domain.FieldError {
	var errs []domain.FieldError

	if strings.TrimSpace(firstName) == "" {
		errs = append(errs, domain.FieldError{Field: "first_name", Message: "required"})
	}
	if strings.TrimSpace(lastName) == "" {
		errs = append(errs, domain.FieldError{Field: "last_name", Message: "required"})
	}

	return errs
}
