// Package course implements the course catalog.
package course

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/avolkovx/coursehub/internal/config"
	"github.com/avolkovx/coursehub/internal/domain"
)

// courseRepo defines the course repository interface needed by the course service.
type courseRepo interface {
	Create(ctx context.Context, c domain.Course) (domain.Course, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Course, error)
	List(ctx context.Context, limit, offset int) ([]domain.Course, int64, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// Service implements course catalog operations.
type Service struct {
	log     *slog.Logger
	courses courseRepo
	cfg     config.ReportsConfig
}

// NewService creates a new course service instance.
func NewService(logger *slog.Logger, courses courseRepo, cfg config.ReportsConfig) *Service {
	return &Service{
		log:     logger.With("service", "course"),
		courses: courses,
		cfg:     cfg,
	}
}
