package visitlog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/avolkovx/coursehub/internal/domain"
)

// Record appends one visit to the audit log. userID is nil for
// anonymous callers. A failed append is an error the caller must not
// swallow: requests that cannot be audited are refused upstream.
func (s *Service) Record(ctx context.Context, path string, userID *uuid.UUID) error {
	if path == "" {
		return domain.NewValidationError("path", "required")
	}

	rec := domain.VisitRecord{
		Path:      path,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := s.visits.Create(ctx, rec); err != nil {
		return fmt.Errorf("visitlog.Record: %w", err)
	}

	s.log.DebugContext(ctx, "visit recorded", slog.String("path", path))
	return nil
}
