// Package auth implements login and password management on top of the
// session token manager.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/avolkovx/coursehub/internal/domain"
)

// userRepo defines the user repository interface needed by the auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
	GetByLogin(ctx context.Context, login string) (domain.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// jwtManager defines the session token interface needed by the auth service.
type jwtManager interface {
	Issue(identity domain.Identity) (string, error)
}

// Service implements auth operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	jwt   jwtManager
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, jwt jwtManager) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		jwt:   jwt,
	}
}

// LoginResult is the outcome of a successful login.
type LoginResult struct {
	Token string
	User  domain.User
}
