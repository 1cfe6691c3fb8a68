package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/avolkovx/coursehub/internal/domain"
)

// Submit records a user's review of a course and advances the course
// rating rollup, both inside one transaction: either the review row and
// the rollup land together or neither does.
//
// Returns ErrAlreadyExists when the user has already reviewed the
// course, ErrValidation for out-of-range ratings or empty text, and
// ErrNotFound when the course does not exist. The pre-check on the
// existing review is advisory; the unique index on (course_id, user_id)
// decides races.
func (s *Service) Submit(ctx context.Context, identity domain.Identity, input SubmitInput) (domain.Review, error) {
	if identity.Anonymous() {
		return domain.Review{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Review{}, err
	}

	if _, err := s.courses.GetByID(ctx, input.CourseID); err != nil {
		return domain.Review{}, fmt.Errorf("review.Submit get course: %w", err)
	}

	_, err := s.reviews.GetByCourseAndUser(ctx, input.CourseID, identity.UserID)
	if err == nil {
		return domain.Review{}, fmt.Errorf("review for course %s: %w", input.CourseID, domain.ErrAlreadyExists)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Review{}, fmt.Errorf("review.Submit check existing: %w", err)
	}

	rv := domain.Review{
		ID:        uuid.New(),
		CourseID:  input.CourseID,
		UserID:    identity.UserID,
		Rating:    input.Rating,
		Text:      input.Text,
		CreatedAt: time.Now().UTC(),
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.reviews.Create(ctx, rv); err != nil {
			return fmt.Errorf("create review: %w", err)
		}
		if err := s.courses.ApplyReview(ctx, input.CourseID, input.Rating); err != nil {
			return fmt.Errorf("apply rating: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Review{}, fmt.Errorf("review.Submit: %w", err)
	}

	s.log.InfoContext(ctx, "review submitted",
		slog.String("course_id", input.CourseID.String()),
		slog.String("user_id", identity.UserID.String()),
		slog.Int("rating", input.Rating))

	return rv, nil
}
