package progress

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rbradwell/language-learning/internal/domain"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	ListCompletedByTrailStepFunc func(ctx context.Context, userID uuid.UUID, trailStepID uuid.UUID) ([]domain.ExerciseSession, error)
	ListLatestByUserFunc         func(ctx context.Context, userID uuid.UUID) ([]domain.ExerciseSession, error)

	calls struct {
		ListCompletedByTrailStep []struct {
			Ctx         context.Context
			UserID      uuid.UUID
			TrailStepID uuid.UUID
		}
		ListLatestByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockListCompletedByTrailStep sync.RWMutex
	lockListLatestByUser         sync.RWMutex
}

func (mock *sessionRepoMock) ListCompletedByTrailStep(ctx context.Context, userID uuid.UUID, trailStepID uuid.UUID) ([]domain.ExerciseSession, error) {
	if mock.ListCompletedByTrailStepFunc == nil {
		panic("sessionRepoMock.ListCompletedByTrailStepFunc: method is nil but sessionRepo.ListCompletedByTrailStep was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		UserID      uuid.UUID
		TrailStepID uuid.UUID
	}{
		Ctx:         ctx,
		UserID:      userID,
		TrailStepID: trailStepID,
	}
	mock.lockListCompletedByTrailStep.Lock()
	mock.calls.ListCompletedByTrailStep = append(mock.calls.ListCompletedByTrailStep, callInfo)
	mock.lockListCompletedByTrailStep.Unlock()
	return mock.ListCompletedByTrailStepFunc(ctx, userID, trailStepID)
}

// ListCompletedByTrailStepCalls gets all the calls that were made to ListCompletedByTrailStep.
func (mock *sessionRepoMock) ListCompletedByTrailStepCalls() []struct {
	Ctx         context.Context
	UserID      uuid.UUID
	TrailStepID uuid.UUID
} {
	mock.lockListCompletedByTrailStep.RLock()
	calls := mock.calls.ListCompletedByTrailStep
	mock.lockListCompletedByTrailStep.RUnlock()
	return calls
}

func (mock *sessionRepoMock) ListLatestByUser(ctx context.Context, userID uuid.UUID) ([]domain.ExerciseSession, error) {
	if mock.ListLatestByUserFunc == nil {
		panic("sessionRepoMock.ListLatestByUserFunc: method is nil but sessionRepo.ListLatestByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockListLatestByUser.Lock()
	mock.calls.ListLatestByUser = append(mock.calls.ListLatestByUser, callInfo)
	mock.lockListLatestByUser.Unlock()
	return mock.ListLatestByUserFunc(ctx, userID)
}

// ListLatestByUserCalls gets all the calls that were made to ListLatestByUser.
func (mock *sessionRepoMock) ListLatestByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListLatestByUser.RLock()
	calls := mock.calls.ListLatestByUser
	mock.lockListLatestByUser.RUnlock()
	return calls
}
