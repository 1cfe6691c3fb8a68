package review

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/avolkovx/coursehub/internal/config"
	"github.com/avolkovx/coursehub/internal/domain"
)

func newTestService(reviews *reviewRepoMock, courses *courseRepoMock, tx *txManagerMock) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.ReportsConfig{VisitsPerPage: 10, ReviewsPerPage: 5}
	return NewService(logger, reviews, courses, tx, cfg)
}

func existingCourse(id uuid.UUID) *courseRepoMock {
	return &courseRepoMock{
		GetByIDFunc: func(_ context.Context, gotID uuid.UUID) (domain.Course, error) {
			if gotID != id {
				return domain.Course{}, domain.ErrNotFound
			}
			return domain.Course{ID: id, Name: "Go from scratch"}, nil
		},
		ApplyReviewFunc: func(_ context.Context, _ uuid.UUID, _ int) error {
			return nil
		},
	}
}

func noExistingReview() *reviewRepoMock {
	return &reviewRepoMock{
		GetByCourseAndUserFunc: func(_ context.Context, _, _ uuid.UUID) (domain.Review, error) {
			return domain.Review{}, domain.ErrNotFound
		},
		CreateFunc: func(_ context.Context, rv domain.Review) (domain.Review, error) {
			return rv, nil
		},
	}
}

func TestSubmit(t *testing.T) {
	t.Parallel()

	courseID := uuid.New()
	me := domain.Identity{UserID: uuid.New(), Role: domain.RoleUser}

	t.Run("creates review and applies rating atomically", func(t *testing.T) {
		t.Parallel()

		reviews := noExistingReview()
		courses := existingCourse(courseID)
		tx := &txManagerMock{}
		svc := newTestService(reviews, courses, tx)

		rv, err := svc.Submit(context.Background(), me, SubmitInput{
			CourseID: courseID,
			Rating:   4,
			Text:     "great course",
		})
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
		if rv.ID == uuid.Nil || rv.UserID != me.UserID || rv.Rating != 4 {
			t.Errorf("unexpected review: %+v", rv)
		}

		applied := courses.ApplyReviewCalls()
		if len(applied) != 1 {
			t.Fatalf("ApplyReview called %d times, want 1", len(applied))
		}
		if applied[0].CourseID != courseID || applied[0].Rating != 4 {
			t.Errorf("ApplyReview args = %+v", applied[0])
		}
	})

	t.Run("rollup failure rolls back the review", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("update failed")
		reviews := noExistingReview()
		courses := existingCourse(courseID)
		courses.ApplyReviewFunc = func(_ context.Context, _ uuid.UUID, _ int) error {
			return dbErr
		}
		tx := &txManagerMock{}
		svc := newTestService(reviews, courses, tx)

		_, err := svc.Submit(context.Background(), me, SubmitInput{
			CourseID: courseID,
			Rating:   5,
			Text:     "great",
		})
		if !errors.Is(err, dbErr) {
			t.Fatalf("err = %v, want wrapped rollup error", err)
		}
	})

	t.Run("duplicate rejected before any write", func(t *testing.T) {
		t.Parallel()

		reviews := noExistingReview()
		reviews.GetByCourseAndUserFunc = func(_ context.Context, _, _ uuid.UUID) (domain.Review, error) {
			return domain.Review{ID: uuid.New()}, nil
		}
		courses := existingCourse(courseID)
		svc := newTestService(reviews, courses, &txManagerMock{})

		_, err := svc.Submit(context.Background(), me, SubmitInput{
			CourseID: courseID,
			Rating:   2,
			Text:     "again",
		})
		if !errors.Is(err, domain.ErrAlreadyExists) {
			t.Fatalf("err = %v, want ErrAlreadyExists", err)
		}
		if len(reviews.CreateCalls()) != 0 {
			t.Error("Create must not run for a duplicate")
		}
		if len(courses.ApplyReviewCalls()) != 0 {
			t.Error("rollup must stay untouched for a duplicate")
		}
	})

	t.Run("concurrent duplicate surfaces from the unique index", func(t *testing.T) {
		t.Parallel()

		reviews := noExistingReview()
		reviews.CreateFunc = func(_ context.Context, _ domain.Review) (domain.Review, error) {
			return domain.Review{}, domain.ErrAlreadyExists
		}
		svc := newTestService(reviews, existingCourse(courseID), &txManagerMock{})

		_, err := svc.Submit(context.Background(), me, SubmitInput{
			CourseID: courseID,
			Rating:   3,
			Text:     "race",
		})
		if !errors.Is(err, domain.ErrAlreadyExists) {
			t.Fatalf("err = %v, want ErrAlreadyExists", err)
		}
	})

	t.Run("rating out of range rejected", func(t *testing.T) {
		t.Parallel()

		for _, rating := range []int{-1, 6, 100} {
			reviews := noExistingReview()
			courses := existingCourse(courseID)
			svc := newTestService(reviews, courses, &txManagerMock{})

			_, err := svc.Submit(context.Background(), me, SubmitInput{
				CourseID: courseID,
				Rating:   rating,
				Text:     "fine",
			})
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("rating %d: err = %v, want ErrValidation", rating, err)
			}
			if len(courses.ApplyReviewCalls()) != 0 {
				t.Errorf("rating %d: rollup must stay untouched", rating)
			}
		}
	})

	t.Run("boundary ratings accepted", func(t *testing.T) {
		t.Parallel()

		for _, rating := range []int{0, 5} {
			svc := newTestService(noExistingReview(), existingCourse(courseID), &txManagerMock{})
			_, err := svc.Submit(context.Background(), me, SubmitInput{
				CourseID: courseID,
				Rating:   rating,
				Text:     "boundary",
			})
			if err != nil {
				t.Errorf("rating %d: Submit: %v", rating, err)
			}
		}
	})

	t.Run("blank text rejected", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(noExistingReview(), existingCourse(courseID), &txManagerMock{})
		_, err := svc.Submit(context.Background(), me, SubmitInput{
			CourseID: courseID,
			Rating:   4,
			Text:     "   ",
		})
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("err = %v, want ErrValidation", err)
		}
	})

	t.Run("unknown course rejected", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(noExistingReview(), existingCourse(courseID), &txManagerMock{})
		_, err := svc.Submit(context.Background(), me, SubmitInput{
			CourseID: uuid.New(),
			Rating:   4,
			Text:     "where",
		})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("anonymous rejected", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(&reviewRepoMock{}, &courseRepoMock{}, &txManagerMock{})
		_, err := svc.Submit(context.Background(), domain.Identity{}, SubmitInput{
			CourseID: courseID,
			Rating:   4,
			Text:     "hi",
		})
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Fatalf("err = %v, want ErrUnauthorized", err)
		}
	})
}

func TestList(t *testing.T) {
	t.Parallel()

	courseID := uuid.New()

	t.Run("passes sort and window through", func(t *testing.T) {
		t.Parallel()

		reviews := &reviewRepoMock{
			ListByCourseFunc: func(_ context.Context, _ uuid.UUID, _ domain.ReviewSort, _, _ int) ([]domain.Review, int64, error) {
				return []domain.Review{{ID: uuid.New()}}, 13, nil
			},
		}
		svc := newTestService(reviews, &courseRepoMock{}, &txManagerMock{})

		page, err := svc.List(context.Background(), courseID, domain.ReviewSortPositive, 2)
		if err != nil {
			t.Fatalf("List: %v", err)
		}

		calls := reviews.ListByCourseCalls()
		if len(calls) != 1 {
			t.Fatalf("ListByCourse called %d times, want 1", len(calls))
		}
		call := calls[0]
		if call.Sort != domain.ReviewSortPositive {
			t.Errorf("sort = %s, want positive", call.Sort)
		}
		if call.Limit != 5 || call.Offset != 5 {
			t.Errorf("window = (%d, %d), want (5, 5)", call.Limit, call.Offset)
		}
		if page.TotalCount != 13 || page.TotalPages() != 3 {
			t.Errorf("TotalCount = %d TotalPages = %d, want 13 and 3", page.TotalCount, page.TotalPages())
		}
	})

	t.Run("missing course id rejected", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(&reviewRepoMock{}, &courseRepoMock{}, &txManagerMock{})
		_, err := svc.List(context.Background(), uuid.Nil, domain.ReviewSortNewest, 1)
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("err = %v, want ErrValidation", err)
		}
	})
}
