package user

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/avolkovx/coursehub/internal/domain"
)

var (
	_ userRepo = &userRepoMock{}
	_ roleRepo = &roleRepoMock{}
)

type userRepoMock struct {
	CreateFunc        func(ctx context.Context, u domain.User) (domain.User, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (domain.User, error)
	ListFunc          func(ctx context.Context, limit, offset int) ([]domain.User, int64, error)
	UpdateProfileFunc func(ctx context.Context, id uuid.UUID, firstName, lastName string, middleName *string, roleID *int) (domain.User, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			U domain.User
		}
		UpdateProfile []struct {
			ID         uuid.UUID
			FirstName  string
			LastName   string
			MiddleName *string
			RoleID     *int
		}
		Delete []struct {
			ID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *userRepoMock) Create(ctx context.Context, u domain.User) (domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ U domain.User }{U: u})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, u)
}

func (mock *userRepoMock) CreateCalls() []struct{ U domain.User } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) List(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	if mock.ListFunc == nil {
		panic("userRepoMock.ListFunc: method is nil but userRepo.List was just called")
	}
	return mock.ListFunc(ctx, limit, offset)
}

func (mock *userRepoMock) UpdateProfile(ctx context.Context, id uuid.UUID, firstName, lastName string, middleName *string, roleID *int) (domain.User, error) {
	if mock.UpdateProfileFunc == nil {
		panic("userRepoMock.UpdateProfileFunc: method is nil but userRepo.UpdateProfile was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, struct {
		ID         uuid.UUID
		FirstName  string
		LastName   string
		MiddleName *string
		RoleID     *int
	}{ID: id, FirstName: firstName, LastName: lastName, MiddleName: middleName, RoleID: roleID})
	mock.lock.Unlock()
	return mock.UpdateProfileFunc(ctx, id, firstName, lastName, middleName, roleID)
}

func (mock *userRepoMock) UpdateProfileCalls() []struct {
	ID         uuid.UUID
	FirstName  string
	LastName   string
	MiddleName *string
	RoleID     *int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateProfile
}

func (mock *userRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("userRepoMock.DeleteFunc: method is nil but userRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *userRepoMock) DeleteCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

type roleRepoMock struct {
	GetByNameFunc func(ctx context.Context, name domain.RoleName) (domain.Role, error)
	ListFunc      func(ctx context.Context) ([]domain.Role, error)
}

func (mock *roleRepoMock) GetByName(ctx context.Context, name domain.RoleName) (domain.Role, error) {
	if mock.GetByNameFunc == nil {
		panic("roleRepoMock.GetByNameFunc: method is nil but roleRepo.GetByName was just called")
	}
	return mock.GetByNameFunc(ctx, name)
}

func (mock *roleRepoMock) List(ctx context.Context) ([]domain.Role, error) {
	if mock.ListFunc == nil {
		panic("roleRepoMock.ListFunc: method is nil but roleRepo.List was just called")
	}
	return mock.ListFunc(ctx)
}
