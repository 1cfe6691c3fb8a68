// Package user implements account management: listing, creation,
// profile editing and deletion, with admin/self permission split.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/avolkovx/coursehub/internal/config"
	"github.com/avolkovx/coursehub/internal/domain"
)

// userRepo defines the user repository interface needed by the user service.
type userRepo interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
	List(ctx context.Context, limit, offset int) ([]domain.User, int64, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, firstName, lastName string, middleName *string, roleID *int) (domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// roleRepo defines the role repository interface needed by the user service.
type roleRepo interface {
	GetByName(ctx context.Context, name domain.RoleName) (domain.Role, error)
	List(ctx context.Context) ([]domain.Role, error)
}

// Service implements user management operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	roles roleRepo
	cfg   config.ReportsConfig
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, roles roleRepo, cfg config.ReportsConfig) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		roles: roles,
		cfg:   cfg,
	}
}
