package sweeper

import (
	"context"
	"time"
)

type sessionExpirer interface {
	AbandonExpired(ctx context.Context, now time.Time) (int64, error)
}

// ExpireSessions marks in-progress sessions past their deadline as abandoned.
func ExpireSessions(sessions sessionExpirer, interval time.Duration, now func() time.Time) Task {
	return Task{
		Name:     "expire_sessions",
		Interval: interval,
		Run: func(ctx context.Context) (int64, error) {
			return sessions.AbandonExpired(ctx, now().UTC())
		},
	}
}
