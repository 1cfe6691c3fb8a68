package review

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/avolkovx/coursehub/internal/domain"
)

// List returns one page of a course's reviews in the requested order.
// Unknown sort values fall back to newest-first.
func (s *Service) List(ctx context.Context, courseID uuid.UUID, sort domain.ReviewSort, page int) (domain.Page[domain.Review], error) {
	if courseID == uuid.Nil {
		return domain.Page[domain.Review]{}, domain.NewValidationError("course_id", "required")
	}

	page = domain.ClampPage(page)
	perPage := s.cfg.ReviewsPerPage

	reviews, total, err := s.reviews.ListByCourse(ctx, courseID, sort, perPage, domain.PageOffset(page, perPage))
	if err != nil {
		return domain.Page[domain.Review]{}, fmt.Errorf("review.List: %w", err)
	}

	return domain.NewPage(reviews, page, perPage, total), nil
}

// MyReview returns the caller's review of the course, or ErrNotFound.
func (s *Service) MyReview(ctx context.Context, identity domain.Identity, courseID uuid.UUID) (domain.Review, error) {
	if identity.Anonymous() {
		return domain.Review{}, domain.ErrUnauthorized
	}

	rv, err := s.reviews.GetByCourseAndUser(ctx, courseID, identity.UserID)
	if err != nil {
		return domain.Review{}, fmt.Errorf("review.MyReview: %w", err)
	}
	return rv, nil
}
