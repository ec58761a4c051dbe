package exercise

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rbradwell/language-learning/internal/domain"
)

var _ vocabularyStore = &vocabularyStoreMock{}

type vocabularyStoreMock struct {
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Vocabulary, error)
	GetByIDsFunc     func(ctx context.Context, ids []uuid.UUID) ([]domain.Vocabulary, error)
	ListBackfillFunc func(ctx context.Context, categoryID uuid.UUID, exclude []uuid.UUID, limit int) ([]domain.Vocabulary, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByIDs []struct {
			Ctx context.Context
			Ids []uuid.UUID
		}
		ListBackfill []struct {
			Ctx        context.Context
			CategoryID uuid.UUID
			Exclude    []uuid.UUID
			Limit      int
		}
	}
	lockGetByID      sync.RWMutex
	lockGetByIDs     sync.RWMutex
	lockListBackfill sync.RWMutex
}

func (mock *vocabularyStoreMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vocabulary, error) {
	if mock.GetByIDFunc == nil {
		panic("vocabularyStoreMock.GetByIDFunc: method is nil but vocabularyStore.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

// GetByIDCalls gets all the calls that were made to GetByID.
func (mock *vocabularyStoreMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *vocabularyStoreMock) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Vocabulary, error) {
	if mock.GetByIDsFunc == nil {
		panic("vocabularyStoreMock.GetByIDsFunc: method is nil but vocabularyStore.GetByIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []uuid.UUID
	}{
		Ctx: ctx,
		Ids: ids,
	}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, callInfo)
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, ids)
}

// GetByIDsCalls gets all the calls that were made to GetByIDs.
func (mock *vocabularyStoreMock) GetByIDsCalls() []struct {
	Ctx context.Context
	Ids []uuid.UUID
} {
	mock.lockGetByIDs.RLock()
	calls := mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}

func (mock *vocabularyStoreMock) ListBackfill(ctx context.Context, categoryID uuid.UUID, exclude []uuid.UUID, limit int) ([]domain.Vocabulary, error) {
	if mock.ListBackfillFunc == nil {
		panic("vocabularyStoreMock.ListBackfillFunc: method is nil but vocabularyStore.ListBackfill was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		CategoryID uuid.UUID
		Exclude    []uuid.UUID
		Limit      int
	}{
		Ctx:        ctx,
		CategoryID: categoryID,
		Exclude:    exclude,
		Limit:      limit,
	}
	mock.lockListBackfill.Lock()
	mock.calls.ListBackfill = append(mock.calls.ListBackfill, callInfo)
	mock.lockListBackfill.Unlock()
	return mock.ListBackfillFunc(ctx, categoryID, exclude, limit)
}

// ListBackfillCalls gets all the calls that were made to ListBackfill.
func (mock *vocabularyStoreMock) ListBackfillCalls() []struct {
	Ctx        context.Context
	CategoryID uuid.UUID
	Exclude    []uuid.UUID
	Limit      int
} {
	mock.lockListBackfill.RLock()
	calls := mock.calls.ListBackfill
	mock.lockListBackfill.RUnlock()
	return calls
}
