package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/avolkovx/coursehub/internal/domain"
)

var (
	_ userRepo   = &userRepoMock{}
	_ jwtManager = &jwtManagerMock{}
)

type userRepoMock struct {
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (domain.User, error)
	GetByLoginFunc     func(ctx context.Context, login string) (domain.User, error)
	UpdatePasswordFunc func(ctx context.Context, id uuid.UUID, passwordHash string) error

	calls struct {
		UpdatePassword []struct {
			ID           uuid.UUID
			PasswordHash string
		}
	}
	lock sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByLogin(ctx context.Context, login string) (domain.User, error) {
	if mock.GetByLoginFunc == nil {
		panic("userRepoMock.GetByLoginFunc: method is nil but userRepo.GetByLogin was just called")
	}
	return mock.GetByLoginFunc(ctx, login)
}

func (mock *userRepoMock) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	if mock.UpdatePasswordFunc == nil {
		panic("userRepoMock.UpdatePasswordFunc: method is nil but userRepo.UpdatePassword was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdatePassword = append(mock.calls.UpdatePassword, struct {
		ID           uuid.UUID
		PasswordHash string
	}{ID: id, PasswordHash: passwordHash})
	mock.lock.Unlock()
	return mock.UpdatePasswordFunc(ctx, id, passwordHash)
}

func (mock *userRepoMock) UpdatePasswordCalls() []struct {
	ID           uuid.UUID
	PasswordHash string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdatePassword
}

type jwtManagerMock struct {
	IssueFunc func(identity domain.Identity) (string, error)
}

func (mock *jwtManagerMock) Issue(identity domain.Identity) (string, error) {
	if mock.IssueFunc == nil {
		panic("jwtManagerMock.IssueFunc: method is nil but jwtManager.Issue was just called")
	}
	return mock.IssueFunc(identity)
}
