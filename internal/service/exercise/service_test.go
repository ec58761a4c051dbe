package exercise

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rbradwell/language-learning/internal/config"
	"github.com/rbradwell/language-learning/internal/domain"
	"github.com/rbradwell/language-learning/pkg/ctxutil"
)

//go:generate moq -out exercise_catalog_mock_test.go -pkg exercise . exerciseCatalog
//go:generate moq -out trail_step_repo_mock_test.go -pkg exercise . trailStepRepo
//go:generate moq -out vocabulary_store_mock_test.go -pkg exercise . vocabularyStore
//go:generate moq -out sentence_store_mock_test.go -pkg exercise . sentenceStore
//go:generate moq -out session_repo_mock_test.go -pkg exercise . sessionRepo
//go:generate moq -out progress_recomputer_mock_test.go -pkg exercise . progressRecomputer
//go:generate moq -out tx_manager_mock_test.go -pkg exercise . txManager

var testNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type mocks struct {
	exercises  *exerciseCatalogMock
	steps      *trailStepRepoMock
	vocabulary *vocabularyStoreMock
	sentences  *sentenceStoreMock
	sessions   *sessionRepoMock
	progress   *progressRecomputerMock
	tx         *txManagerMock
}

// newMocks returns mocks with a pass-through transaction manager. Every other
// method panics unless the test sets it.
func newMocks() *mocks {
	return &mocks{
		exercises:  &exerciseCatalogMock{},
		steps:      &trailStepRepoMock{},
		vocabulary: &vocabularyStoreMock{},
		sentences:  &sentenceStoreMock{},
		sessions:   &sessionRepoMock{},
		progress:   &progressRecomputerMock{},
		tx: &txManagerMock{
			RunInTxFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
				return fn(ctx)
			},
		},
	}
}

func newTestService(m *mocks) *Service {
	log := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
	svc := NewService(log, m.exercises, m.steps, m.vocabulary, m.sentences, m.sessions, m.progress, m.tx,
		config.ExerciseConfig{SessionTTL: 30 * time.Minute, DistractorCount: 3})
	svc.clock = fixedClock{now: testNow}
	return svc
}

func userCtx(userID uuid.UUID) context.Context {
	return ctxutil.WithUserID(context.Background(), userID)
}

func ptr[T any](v T) *T { return &v }

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

func makeWords(categoryID uuid.UUID, pairs ...[2]string) []domain.Vocabulary {
	words := make([]domain.Vocabulary, 0, len(pairs))
	for _, p := range pairs {
		words = append(words, domain.Vocabulary{
			ID:         uuid.New(),
			CategoryID: categoryID,
			NativeWord: p[0],
			TargetWord: p[1],
			Difficulty: 1,
		})
	}
	sortVocabulary(words)
	return words
}

func vocabIDs(words []domain.Vocabulary) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(words))
	for _, w := range words {
		ids = append(ids, w.ID)
	}
	return ids
}

func stubCatalog(m *mocks, def domain.ExerciseDefinition, step domain.TrailStep) {
	m.exercises.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.ExerciseDefinition, error) {
		if id != def.ID {
			return nil, domain.ErrNotFound
		}
		d := def
		return &d, nil
	}
	m.steps.GetStepFunc = func(ctx context.Context, id uuid.UUID) (*domain.TrailStep, error) {
		s := step
		return &s, nil
	}
}

func liveSession(userID uuid.UUID, def domain.ExerciseDefinition, score int) *domain.ExerciseSession {
	return &domain.ExerciseSession{
		ID:             uuid.New(),
		UserID:         userID,
		ExerciseID:     def.ID,
		TrailStepID:    def.TrailStepID,
		TotalQuestions: def.QuestionCount(),
		Score:          score,
		Status:         domain.SessionStatusInProgress,
		ExpiresAt:      testNow.Add(10 * time.Minute),
		CreatedAt:      testNow.Add(-20 * time.Minute),
	}
}
