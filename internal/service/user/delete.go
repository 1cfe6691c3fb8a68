package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/avolkovx/coursehub/internal/domain"
)

// Delete removes an account. Only admins may delete, and not themselves:
// the last admin locking itself out is not a recoverable state.
func (s *Service) Delete(ctx context.Context, identity domain.Identity, id uuid.UUID) error {
	if !identity.IsAdmin() {
		return domain.ErrForbidden
	}
	if identity.UserID == id {
		return domain.NewValidationError("id", "cannot delete own account")
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("user.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "user deleted", slog.String("user_id", id.String()))
	return nil
}
