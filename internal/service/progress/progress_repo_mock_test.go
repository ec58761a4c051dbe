package progress

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rbradwell/language-learning/internal/domain"
)

var _ progressRepo = &progressRepoMock{}

type progressRepoMock struct {
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.UserProgress, error)
	UpsertFunc     func(ctx context.Context, p domain.UserProgress) (*domain.UserProgress, error)

	calls struct {
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Upsert []struct {
			Ctx context.Context
			P   domain.UserProgress
		}
	}
	lockListByUser sync.RWMutex
	lockUpsert     sync.RWMutex
}

func (mock *progressRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.UserProgress, error) {
	if mock.ListByUserFunc == nil {
		panic("progressRepoMock.ListByUserFunc: method is nil but progressRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

// ListByUserCalls gets all the calls that were made to ListByUser.
func (mock *progressRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *progressRepoMock) Upsert(ctx context.Context, p domain.UserProgress) (*domain.UserProgress, error) {
	if mock.UpsertFunc == nil {
		panic("progressRepoMock.UpsertFunc: method is nil but progressRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.UserProgress
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, p)
}

// UpsertCalls gets all the calls that were made to Upsert.
func (mock *progressRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	P   domain.UserProgress
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
