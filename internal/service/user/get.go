package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/avolkovx/coursehub/internal/domain"
)

// Get returns one user by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("user.Get: %w", err)
	}
	return u, nil
}

// List returns one page of all users in registration order.
func (s *Service) List(ctx context.Context, page int) (domain.Page[domain.User], error) {
	page = domain.ClampPage(page)
	perPage := s.cfg.VisitsPerPage

	users, total, err := s.users.List(ctx, perPage, domain.PageOffset(page, perPage))
	if err != nil {
		return domain.Page[domain.User]{}, fmt.Errorf("user.List: %w", err)
	}

	return domain.NewPage(users, page, perPage, total), nil
}

// Roles returns the available roles for account forms.
func (s *Service) Roles(ctx context.Context) ([]domain.Role, error) {
	roles, err := s.roles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.Roles: %w", err)
	}
	return roles, nil
}
