package progress

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rbradwell/language-learning/internal/domain"
)

var _ exerciseCatalog = &exerciseCatalogMock{}

type exerciseCatalogMock struct {
	ListAllFunc         func(ctx context.Context) ([]domain.ExerciseDefinition, error)
	ListByTrailStepFunc func(ctx context.Context, trailStepID uuid.UUID) ([]domain.ExerciseDefinition, error)

	calls struct {
		ListAll []struct {
			Ctx context.Context
		}
		ListByTrailStep []struct {
			Ctx         context.Context
			TrailStepID uuid.UUID
		}
	}
	lockListAll         sync.RWMutex
	lockListByTrailStep sync.RWMutex
}

func (mock *exerciseCatalogMock) ListAll(ctx context.Context) ([]domain.ExerciseDefinition, error) {
	if mock.ListAllFunc == nil {
		panic("exerciseCatalogMock.ListAllFunc: method is nil but exerciseCatalog.ListAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx)
}

// ListAllCalls gets all the calls that were made to ListAll.
func (mock *exerciseCatalogMock) ListAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockListAll.RLock()
	calls := mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}

func (mock *exerciseCatalogMock) ListByTrailStep(ctx context.Context, trailStepID uuid.UUID) ([]domain.ExerciseDefinition, error) {
	if mock.ListByTrailStepFunc == nil {
		panic("exerciseCatalogMock.ListByTrailStepFunc: method is nil but exerciseCatalog.ListByTrailStep was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		TrailStepID uuid.UUID
	}{
		Ctx:         ctx,
		TrailStepID: trailStepID,
	}
	mock.lockListByTrailStep.Lock()
	mock.calls.ListByTrailStep = append(mock.calls.ListByTrailStep, callInfo)
	mock.lockListByTrailStep.Unlock()
	return mock.ListByTrailStepFunc(ctx, trailStepID)
}

// ListByTrailStepCalls gets all the calls that were made to ListByTrailStep.
func (mock *exerciseCatalogMock) ListByTrailStepCalls() []struct {
	Ctx         context.Context
	TrailStepID uuid.UUID
} {
	mock.lockListByTrailStep.RLock()
	calls := mock.calls.ListByTrailStep
	mock.lockListByTrailStep.RUnlock()
	return calls
}
