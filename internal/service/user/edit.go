package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/avolkovx/coursehub/internal/domain"
)

// AdminEdit updates any account's profile and role. Only admins may
// call it.
func (s *Service) AdminEdit(ctx context.Context, identity domain.Identity, id uuid.UUID, input AdminEditInput) (domain.User, error) {
	if !identity.IsAdmin() {
		return domain.User{}, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return domain.User{}, err
	}

	role, err := s.roles.GetByName(ctx, input.Role)
	if err != nil {
		return domain.User{}, fmt.Errorf("user.AdminEdit get role: %w", err)
	}

	updated, err := s.users.UpdateProfile(ctx, id, input.FirstName, input.LastName, input.MiddleName, &role.ID)
	if err != nil {
		return domain.User{}, fmt.Errorf("user.AdminEdit: %w", err)
	}

	s.log.InfoContext(ctx, "user edited by admin",
		slog.String("user_id", id.String()),
		slog.String("role", string(role.Name)))

	return updated, nil
}

// SelfEdit updates the caller's own profile. The role stays untouched:
// SelfEditInput cannot carry one and the repository keeps the current
// value when no role id is passed.
func (s *Service) SelfEdit(ctx context.Context, identity domain.Identity, input SelfEditInput) (domain.User, error) {
	if identity.Anonymous() {
		return domain.User{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.User{}, err
	}

	updated, err := s.users.UpdateProfile(ctx, identity.UserID, input.FirstName, input.LastName, input.MiddleName, nil)
	if err != nil {
		return domain.User{}, fmt.Errorf("user.SelfEdit: %w", err)
	}

	s.log.InfoContext(ctx, "user edited own profile", slog.String("user_id", identity.UserID.String()))
	return updated, nil
}
