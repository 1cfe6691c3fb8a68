// Package review implements the course review ledger: append-only
// review submission with an atomic rating rollup, plus review listings.
package review

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/avolkovx/coursehub/internal/config"
	"github.com/avolkovx/coursehub/internal/domain"
)

// reviewRepo defines the review repository interface needed by the review service.
type reviewRepo interface {
	Create(ctx context.Context, rv domain.Review) (domain.Review, error)
	GetByCourseAndUser(ctx context.Context, courseID, userID uuid.UUID) (domain.Review, error)
	ListByCourse(ctx context.Context, courseID uuid.UUID, sort domain.ReviewSort, limit, offset int) ([]domain.Review, int64, error)
}

// courseRepo defines the course repository interface needed by the review service.
type courseRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Course, error)
	ApplyReview(ctx context.Context, courseID uuid.UUID, rating int) error
}

// txManager defines the transaction manager interface needed by the review service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements review operations.
type Service struct {
	log     *slog.Logger
	reviews reviewRepo
	courses courseRepo
	tx      txManager
	cfg     config.ReportsConfig
}

// NewService creates a new review service instance.
func NewService(logger *slog.Logger, reviews reviewRepo, courses courseRepo, tx txManager, cfg config.ReportsConfig) *Service {
	return &Service{
		log:     logger.With("service", "review"),
		reviews: reviews,
		courses: courses,
		tx:      tx,
		cfg:     cfg,
	}
}
