package review

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/avolkovx/coursehub/internal/domain"
)

var (
	_ reviewRepo = &reviewRepoMock{}
	_ courseRepo = &courseRepoMock{}
	_ txManager  = &txManagerMock{}
)

type reviewRepoMock struct {
	CreateFunc             func(ctx context.Context, rv domain.Review) (domain.Review, error)
	GetByCourseAndUserFunc func(ctx context.Context, courseID, userID uuid.UUID) (domain.Review, error)
	ListByCourseFunc       func(ctx context.Context, courseID uuid.UUID, sort domain.ReviewSort, limit, offset int) ([]domain.Review, int64, error)

	calls struct {
		Create []struct {
			Rv domain.Review
		}
		ListByCourse []struct {
			CourseID uuid.UUID
			Sort     domain.ReviewSort
			Limit    int
			Offset   int
		}
	}
	lock sync.RWMutex
}

func (mock *reviewRepoMock) Create(ctx context.Context, rv domain.Review) (domain.Review, error) {
	if mock.CreateFunc == nil {
		panic("reviewRepoMock.CreateFunc: method is nil but reviewRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Rv domain.Review }{Rv: rv})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, rv)
}

func (mock *reviewRepoMock) CreateCalls() []struct{ Rv domain.Review } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *reviewRepoMock) GetByCourseAndUser(ctx context.Context, courseID, userID uuid.UUID) (domain.Review, error) {
	if mock.GetByCourseAndUserFunc == nil {
		panic("reviewRepoMock.GetByCourseAndUserFunc: method is nil but reviewRepo.GetByCourseAndUser was just called")
	}
	return mock.GetByCourseAndUserFunc(ctx, courseID, userID)
}

func (mock *reviewRepoMock) ListByCourse(ctx context.Context, courseID uuid.UUID, sort domain.ReviewSort, limit, offset int) ([]domain.Review, int64, error) {
	if mock.ListByCourseFunc == nil {
		panic("reviewRepoMock.ListByCourseFunc: method is nil but reviewRepo.ListByCourse was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByCourse = append(mock.calls.ListByCourse, struct {
		CourseID uuid.UUID
		Sort     domain.ReviewSort
		Limit    int
		Offset   int
	}{CourseID: courseID, Sort: sort, Limit: limit, Offset: offset})
	mock.lock.Unlock()
	return mock.ListByCourseFunc(ctx, courseID, sort, limit, offset)
}

func (mock *reviewRepoMock) ListByCourseCalls() []struct {
	CourseID uuid.UUID
	Sort     domain.ReviewSort
	Limit    int
	Offset   int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListByCourse
}

type courseRepoMock struct {
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (domain.Course, error)
	ApplyReviewFunc func(ctx context.Context, courseID uuid.UUID, rating int) error

	calls struct {
		ApplyReview []struct {
			CourseID uuid.UUID
			Rating   int
		}
	}
	lock sync.RWMutex
}

func (mock *courseRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Course, error) {
	if mock.GetByIDFunc == nil {
		panic("courseRepoMock.GetByIDFunc: method is nil but courseRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *courseRepoMock) ApplyReview(ctx context.Context, courseID uuid.UUID, rating int) error {
	if mock.ApplyReviewFunc == nil {
		panic("courseRepoMock.ApplyReviewFunc: method is nil but courseRepo.ApplyReview was just called")
	}
	mock.lock.Lock()
	mock.calls.ApplyReview = append(mock.calls.ApplyReview, struct {
		CourseID uuid.UUID
		Rating   int
	}{CourseID: courseID, Rating: rating})
	mock.lock.Unlock()
	return mock.ApplyReviewFunc(ctx, courseID, rating)
}

func (mock *courseRepoMock) ApplyReviewCalls() []struct {
	CourseID uuid.UUID
	Rating   int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ApplyReview
}

// txManagerMock runs the callback directly, without a real transaction.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc != nil {
		return mock.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}
