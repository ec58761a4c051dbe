package exercise

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rbradwell/language-learning/internal/domain"
)

var _ exerciseCatalog = &exerciseCatalogMock{}

type exerciseCatalogMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.ExerciseDefinition, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *exerciseCatalogMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.ExerciseDefinition, error) {
	if mock.GetByIDFunc == nil {
		panic("exerciseCatalogMock.GetByIDFunc: method is nil but exerciseCatalog.GetByID was just called")
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
func (mock *exerciseCatalogMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
