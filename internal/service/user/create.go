package user

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/avolkovx/coursehub/internal/domain"
)

// Create registers a new account. Only admins may create accounts.
func (s *Service) Create(ctx context.Context, identity domain.Identity, input CreateInput) (domain.User, error) {
	if !identity.IsAdmin() {
		return domain.User{}, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return domain.User{}, err
	}

	role, err := s.roles.GetByName(ctx, input.Role)
	if err != nil {
		return domain.User{}, fmt.Errorf("user.Create get role: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("user.Create hash password: %w", err)
	}

	created, err := s.users.Create(ctx, domain.User{
		ID:           uuid.New(),
		Login:        input.Login,
		PasswordHash: string(hash),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		MiddleName:   input.MiddleName,
		RoleID:       role.ID,
		Role:         role.Name,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("user.Create: %w", err)
	}

	s.log.InfoContext(ctx, "user created",
		slog.String("user_id", created.ID.String()),
		slog.String("role", string(created.Role)))

	return created, nil
}
