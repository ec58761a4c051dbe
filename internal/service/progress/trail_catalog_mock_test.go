package progress

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rbradwell/language-learning/internal/domain"
)

var _ trailCatalog = &trailCatalogMock{}

type trailCatalogMock struct {
	GetStepFunc        func(ctx context.Context, id uuid.UUID) (*domain.TrailStep, error)
	ListCategoriesFunc func(ctx context.Context) ([]domain.Category, error)
	ListStepsFunc      func(ctx context.Context) ([]domain.TrailStep, error)
	ListTrailsFunc     func(ctx context.Context) ([]domain.Trail, error)

	calls struct {
		GetStep []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListCategories []struct {
			Ctx context.Context
		}
		ListSteps []struct {
			Ctx context.Context
		}
		ListTrails []struct {
			Ctx context.Context
		}
	}
	lockGetStep        sync.RWMutex
	lockListCategories sync.RWMutex
	lockListSteps      sync.RWMutex
	lockListTrails     sync.RWMutex
}

func (mock *trailCatalogMock) GetStep(ctx context.Context, id uuid.UUID) (*domain.TrailStep, error) {
	if mock.GetStepFunc == nil {
		panic("trailCatalogMock.GetStepFunc: method is nil but trailCatalog.GetStep was just called")
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
func (mock *trailCatalogMock) GetStepCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetStep.RLock()
	calls := mock.calls.GetStep
	mock.lockGetStep.RUnlock()
	return calls
}

func (mock *trailCatalogMock) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if mock.ListCategoriesFunc == nil {
		panic("trailCatalogMock.ListCategoriesFunc: method is nil but trailCatalog.ListCategories was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListCategories.Lock()
	mock.calls.ListCategories = append(mock.calls.ListCategories, callInfo)
	mock.lockListCategories.Unlock()
	return mock.ListCategoriesFunc(ctx)
}

// ListCategoriesCalls gets all the calls that were made to ListCategories.
func (mock *trailCatalogMock) ListCategoriesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListCategories.RLock()
	calls := mock.calls.ListCategories
	mock.lockListCategories.RUnlock()
	return calls
}

func (mock *trailCatalogMock) ListSteps(ctx context.Context) ([]domain.TrailStep, error) {
	if mock.ListStepsFunc == nil {
		panic("trailCatalogMock.ListStepsFunc: method is nil but trailCatalog.ListSteps was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListSteps.Lock()
	mock.calls.ListSteps = append(mock.calls.ListSteps, callInfo)
	mock.lockListSteps.Unlock()
	return mock.ListStepsFunc(ctx)
}

// ListStepsCalls gets all the calls that were made to ListSteps.
func (mock *trailCatalogMock) ListStepsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListSteps.RLock()
	calls := mock.calls.ListSteps
	mock.lockListSteps.RUnlock()
	return calls
}

func (mock *trailCatalogMock) ListTrails(ctx context.Context) ([]domain.Trail, error) {
	if mock.ListTrailsFunc == nil {
		panic("trailCatalogMock.ListTrailsFunc: method is nil but trailCatalog.ListTrails was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListTrails.Lock()
	mock.calls.ListTrails = append(mock.calls.ListTrails, callInfo)
	mock.lockListTrails.Unlock()
	return mock.ListTrailsFunc(ctx)
}

// ListTrailsCalls gets all the calls that were made to ListTrails.
func (mock *trailCatalogMock) ListTrailsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListTrails.RLock()
	calls := mock.calls.ListTrails
	mock.lockListTrails.RUnlock()
	return calls
}
