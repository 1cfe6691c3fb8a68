package visitlog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/avolkovx/coursehub/internal/domain"
)

var _ visitRepo = &visitRepoMock{}

type visitRepoMock struct {
	CreateFunc             func(ctx context.Context, rec domain.VisitRecord) (domain.VisitRecord, error)
	ListAllFunc            func(ctx context.Context, limit, offset int) ([]domain.VisitRecord, int64, error)
	ListByUserFunc         func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.VisitRecord, int64, error)
	CountByPathFunc        func(ctx context.Context, limit, offset int) ([]domain.PathVisits, error)
	CountDistinctPathsFunc func(ctx context.Context) (int64, error)
	CountByUserFunc        func(ctx context.Context, limit, offset int) ([]domain.UserVisits, error)
	CountUsersFunc         func(ctx context.Context) (int64, error)

	calls struct {
		Create []struct {
			Rec domain.VisitRecord
		}
		ListAll []struct {
			Limit  int
			Offset int
		}
		ListByUser []struct {
			UserID uuid.UUID
			Limit  int
			Offset int
		}
		CountByPath []struct {
			Limit  int
			Offset int
		}
		CountByUser []struct {
			Limit  int
			Offset int
		}
	}
	lock sync.RWMutex
}

func (mock *visitRepoMock) Create(ctx context.Context, rec domain.VisitRecord) (domain.VisitRecord, error) {
	if mock.CreateFunc == nil {
		panic("visitRepoMock.CreateFunc: method is nil but visitRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Rec domain.VisitRecord }{Rec: rec})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *visitRepoMock) CreateCalls() []struct{ Rec domain.VisitRecord } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *visitRepoMock) ListAll(ctx context.Context, limit, offset int) ([]domain.VisitRecord, int64, error) {
	if mock.ListAllFunc == nil {
		panic("visitRepoMock.ListAllFunc: method is nil but visitRepo.ListAll was just called")
	}
	mock.lock.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, struct {
		Limit  int
		Offset int
	}{Limit: limit, Offset: offset})
	mock.lock.Unlock()
	return mock.ListAllFunc(ctx, limit, offset)
}

func (mock *visitRepoMock) ListAllCalls() []struct {
	Limit  int
	Offset int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListAll
}

func (mock *visitRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.VisitRecord, int64, error) {
	if mock.ListByUserFunc == nil {
		panic("visitRepoMock.ListByUserFunc: method is nil but visitRepo.ListByUser was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, struct {
		UserID uuid.UUID
		Limit  int
		Offset int
	}{UserID: userID, Limit: limit, Offset: offset})
	mock.lock.Unlock()
	return mock.ListByUserFunc(ctx, userID, limit, offset)
}

func (mock *visitRepoMock) ListByUserCalls() []struct {
	UserID uuid.UUID
	Limit  int
	Offset int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListByUser
}

func (mock *visitRepoMock) CountByPath(ctx context.Context, limit, offset int) ([]domain.PathVisits, error) {
	if mock.CountByPathFunc == nil {
		panic("visitRepoMock.CountByPathFunc: method is nil but visitRepo.CountByPath was just called")
	}
	mock.lock.Lock()
	mock.calls.CountByPath = append(mock.calls.CountByPath, struct {
		Limit  int
		Offset int
	}{Limit: limit, Offset: offset})
	mock.lock.Unlock()
	return mock.CountByPathFunc(ctx, limit, offset)
}

func (mock *visitRepoMock) CountByPathCalls() []struct {
	Limit  int
	Offset int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CountByPath
}

func (mock *visitRepoMock) CountDistinctPaths(ctx context.Context) (int64, error) {
	if mock.CountDistinctPathsFunc == nil {
		panic("visitRepoMock.CountDistinctPathsFunc: method is nil but visitRepo.CountDistinctPaths was just called")
	}
	return mock.CountDistinctPathsFunc(ctx)
}

func (mock *visitRepoMock) CountByUser(ctx context.Context, limit, offset int) ([]domain.UserVisits, error) {
	if mock.CountByUserFunc == nil {
		panic("visitRepoMock.CountByUserFunc: method is nil but visitRepo.CountByUser was just called")
	}
	mock.lock.Lock()
	mock.calls.CountByUser = append(mock.calls.CountByUser, struct {
		Limit  int
		Offset int
	}{Limit: limit, Offset: offset})
	mock.lock.Unlock()
	return mock.CountByUserFunc(ctx, limit, offset)
}

func (mock *visitRepoMock) CountByUserCalls() []struct {
	Limit  int
	Offset int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CountByUser
}

func (mock *visitRepoMock) CountUsers(ctx context.Context) (int64, error) {
	if mock.CountUsersFunc == nil {
		panic("visitRepoMock.CountUsersFunc: method is nil but visitRepo.CountUsers was just called")
	}
	return mock.CountUsersFunc(ctx)
}
