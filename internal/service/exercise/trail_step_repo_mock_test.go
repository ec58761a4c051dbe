package exercise

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rbradwell/language-learning/internal/domain"
)

var _ trailStepRepo = &trailStepRepoMock{}

type trailStepRepoMock struct {
	GetStepFunc func(ctx context.Context, id uuid.UUID) (*domain.TrailStep, error)

	calls struct {
		GetStep []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockGetStep sync.RWMutex
}

func (mock *trailStepRepoMock) GetStep(ctx context.Context, id uuid.UUID) (*domain.TrailStep, error) {
	if mock.GetStepFunc == nil {
		panic("trailStepRepoMock.GetStepFunc: method is nil but trailStepRepo.GetStep was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetStep.Lock()
	mock.calls.GetStep = append(mock.calls.GetStep, callInfo)
	mock.lockGetStep.Unlock()
	return mock.GetStepFunc(ctx, id)
}

// GetStepCalls gets all the calls that were made to GetStep.
func (mock *trailStepRepoMock) GetStepCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetStep.RLock()
	calls := mock.calls.GetStep
	mock.lockGetStep.RUnlock()
	return calls
}
