package exercise

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rbradwell/language-learning/internal/domain"
)

var _ sentenceStore = &sentenceStoreMock{}

type sentenceStoreMock struct {
	GetByIDFunc  func(ctx context.Context, id uuid.UUID) (*domain.Sentence, error)
	GetByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]domain.Sentence, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByIDs []struct {
			Ctx context.Context
			Ids []uuid.UUID
		}
	}
	lockGetByID  sync.RWMutex
	lockGetByIDs sync.RWMutex
}

func (mock *sentenceStoreMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Sentence, error) {
	if mock.GetByIDFunc == nil {
		panic("sentenceStoreMock.GetByIDFunc: method is nil but sentenceStore.GetByID was just called")
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
func (mock *sentenceStoreMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *sentenceStoreMock) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Sentence, error) {
	if mock.GetByIDsFunc == nil {
		panic("sentenceStoreMock.GetByIDsFunc: method is nil but sentenceStore.GetByIDs was just called")
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
func (mock *sentenceStoreMock) GetByIDsCalls() []struct {
	Ctx context.Context
	Ids []uuid.UUID
} {
	mock.lockGetByIDs.RLock()
	calls := mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}
