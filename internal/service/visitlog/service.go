// Package visitlog implements the visit audit log: append-only request
// recording plus the aggregation reports built on top of it.
package visitlog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/avolkovx/coursehub/internal/config"
	"github.com/avolkovx/coursehub/internal/domain"
)

// visitRepo defines the visit repository interface needed by the visit log service.
type visitRepo interface {
	Create(ctx context.Context, rec domain.VisitRecord) (domain.VisitRecord, error)
	ListAll(ctx context.Context, limit, offset int) ([]domain.VisitRecord, int64, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.VisitRecord, int64, error)
	CountByPath(ctx context.Context, limit, offset int) ([]domain.PathVisits, error)
	CountDistinctPaths(ctx context.Context) (int64, error)
	CountByUser(ctx context.Context, limit, offset int) ([]domain.UserVisits, error)
	CountUsers(ctx context.Context) (int64, error)
}

// Service implements visit recording and reporting operations.
type Service struct {
	log    *slog.Logger
	visits visitRepo
	cfg    config.ReportsConfig
}

// NewService creates a new visit log service instance.
func NewService(logger *slog.Logger, visits visitRepo, cfg config.ReportsConfig) *Service {
	return &Service{
		log:    logger.With("service", "visitlog"),
		visits: visits,
		cfg:    cfg,
	}
}
