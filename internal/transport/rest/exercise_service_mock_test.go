package rest

import (
	"context"
	"sync"

	"github.com/rbradwell/language-learning/internal/service/exercise"
)

var _ exerciseService = &exerciseServiceMock{}

type exerciseServiceMock struct {
	StartExerciseFunc func(ctx context.Context, input exercise.StartExerciseInput) (*exercise.StartResult, error)
	SubmitAnswerFunc  func(ctx context.Context, input exercise.SubmitAnswerInput) (*exercise.AnswerResult, error)

	calls struct {
		StartExercise []struct {
			Ctx   context.Context
			Input exercise.StartExerciseInput
		}
		SubmitAnswer []struct {
			Ctx   context.Context
			Input exercise.SubmitAnswerInput
		}
	}
	lockStartExercise sync.RWMutex
	lockSubmitAnswer  sync.RWMutex
}

func (mock *exerciseServiceMock) StartExercise(ctx context.Context, input exercise.StartExerciseInput) (*exercise.StartResult, error) {
	if mock.StartExerciseFunc == nil {
		panic("exerciseServiceMock.StartExerciseFunc: method is nil but exerciseService.StartExercise was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input exercise.StartExerciseInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockStartExercise.Lock()
	mock.calls.StartExercise = append(mock.calls.StartExercise, callInfo)
	mock.lockStartExercise.Unlock()
	return mock.StartExerciseFunc(ctx, input)
}

// StartExerciseCalls gets all the calls that were made to StartExercise.
func (mock *exerciseServiceMock) StartExerciseCalls() []struct {
	Ctx   context.Context
	Input exercise.StartExerciseInput
} {
	mock.lockStartExercise.RLock()
	calls := mock.calls.StartExercise
	mock.lockStartExercise.RUnlock()
	return calls
}

func (mock *exerciseServiceMock) SubmitAnswer(ctx context.Context, input exercise.SubmitAnswerInput) (*exercise.AnswerResult, error) {
	if mock.SubmitAnswerFunc == nil {
		panic("exerciseServiceMock.SubmitAnswerFunc: method is nil but exerciseService.SubmitAnswer was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input exercise.SubmitAnswerInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSubmitAnswer.Lock()
	mock.calls.SubmitAnswer = append(mock.calls.SubmitAnswer, callInfo)
	mock.lockSubmitAnswer.Unlock()
	return mock.SubmitAnswerFunc(ctx, input)
}

// SubmitAnswerCalls gets all the calls that were made to SubmitAnswer.
func (mock *exerciseServiceMock) SubmitAnswerCalls() []struct {
	Ctx   context.Context
	Input exercise.SubmitAnswerInput
} {
	mock.lockSubmitAnswer.RLock()
	calls := mock.calls.SubmitAnswer
	mock.lockSubmitAnswer.RUnlock()
	return calls
}
