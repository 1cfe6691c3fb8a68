package auth

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/avolkovx/coursehub/internal/domain"
)

// ChangePassword replaces the caller's password after verifying the
// current one.
func (s *Service) ChangePassword(ctx context.Context, identity domain.Identity, input ChangePasswordInput) error {
	if identity.Anonymous() {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, identity.UserID)
	if err != nil {
		return fmt.Errorf("auth.ChangePassword get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.OldPassword)); err != nil {
		return domain.NewValidationError("old_password", "does not match")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("auth.ChangePassword hash: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, identity.UserID, string(hash)); err != nil {
		return fmt.Errorf("auth.ChangePassword update: %w", err)
	}

	s.log.InfoContext(ctx, "password changed", slog.String("user_id", identity.UserID.String()))
	return nil
}
