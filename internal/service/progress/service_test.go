package progress

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rbradwell/language-learning/internal/domain"
)

//go:generate moq -out exercise_catalog_mock_test.go -pkg progress . exerciseCatalog
//go:generate moq -out trail_catalog_mock_test.go -pkg progress . trailCatalog
//go:generate moq -out session_repo_mock_test.go -pkg progress . sessionRepo
//go:generate moq -out progress_repo_mock_test.go -pkg progress . progressRepo

var testNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newTestService(ex *exerciseCatalogMock, tr *trailCatalogMock, ss *sessionRepoMock, pr *progressRepoMock) *Service {
	log := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
	svc := NewService(log, ex, tr, ss, pr)
	svc.clock = fixedClock{now: testNow}
	return svc
}

// upsertEcho stores nothing and returns the row with attempts = calls so far.
func upsertEcho() *progressRepoMock {
	m := &progressRepoMock{}
	m.UpsertFunc = func(ctx context.Context, p domain.UserProgress) (*domain.UserProgress, error) {
		p.Attempts = len(m.UpsertCalls())
		return &p, nil
	}
	return m
}

func completedSession(userID uuid.UUID, e domain.ExerciseDefinition, score, total int, at time.Time) domain.ExerciseSession {
	return domain.ExerciseSession{
		ID:             uuid.New(),
		UserID:         userID,
		ExerciseID:     e.ID,
		TrailStepID:    e.TrailStepID,
		TotalQuestions: total,
		Score:          score,
		Status:         domain.SessionStatusCompleted,
		CompletedAt:    &at,
		CreatedAt:      at.Add(-5 * time.Minute),
	}
}
