package sweeper

import (
	"context"
	"sync"
	"time"
)

var _ sessionExpirer = &sessionExpirerMock{}

type sessionExpirerMock struct {
	AbandonExpiredFunc func(ctx context.Context, now time.Time) (int64, error)

	calls struct {
		AbandonExpired []struct {
			Ctx context.Context
			Now time.Time
		}
	}
	lockAbandonExpired sync.RWMutex
}

func (mock *sessionExpirerMock) AbandonExpired(ctx context.Context, now time.Time) (int64, error) {
	if mock.AbandonExpiredFunc == nil {
		panic("sessionExpirerMock.AbandonExpiredFunc: method is nil but sessionExpirer.AbandonExpired was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Now time.Time
	}{
		Ctx: ctx,
		Now: now,
	}
	mock.lockAbandonExpired.Lock()
	mock.calls.AbandonExpired = append(mock.calls.AbandonExpired, callInfo)
	mock.lockAbandonExpired.Unlock()
	return mock.AbandonExpiredFunc(ctx, now)
}

// AbandonExpiredCalls gets all the calls that were made to AbandonExpired.
func (mock *sessionExpirerMock) AbandonExpiredCalls() []struct {
	Ctx context.Context
	Now time.Time
} {
	mock.lockAbandonExpired.RLock()
	calls := mock.calls.AbandonExpired
	mock.lockAbandonExpired.RUnlock()
	return calls
}
