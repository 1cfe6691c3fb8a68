package auth

import "github.com/avolkovx/coursehub/internal/domain"

// passwordMinLen matches the account-creation policy: shorter
// passwords are rejected on both login and change.
const passwordMinLen = 8

// LoginInput holds parameters for the login operation.
type LoginInput struct {
	Login    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Login == "" {
		errs = append(errs, domain.FieldError{Field: "login", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ChangePasswordInput holds parameters for the password change operation.
type ChangePasswordInput struct {
	OldPassword string
	NewPassword string
}

// Validate validates the password change input.
func (i ChangePasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.OldPassword == "" {
		errs = append(errs, domain.FieldError{Field: "old_password", Message: "required"})
	}
	if i.NewPassword == "" {
		errs = append(errs, domain.FieldError{Field: "new_password", Message: "required"})
	} else if len(i.NewPassword) < passwordMinLen {
		errs = append(errs, domain.FieldError{Field: "new_password", Message: "too short"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
