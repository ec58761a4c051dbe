package exercise

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rbradwell/language-learning/internal/config"
	"github.com/rbradwell/language-learning/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type exerciseCatalog interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ExerciseDefinition, error)
}

type trailStepRepo interface {
	GetStep(ctx context.Context, id uuid.UUID) (*domain.TrailStep, error)
}

type vocabularyStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Vocabulary, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Vocabulary, error)
	ListBackfill(ctx context.Context, categoryID uuid.UUID, exclude []uuid.UUID, limit int) ([]domain.Vocabulary, error)
}

type sentenceStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Sentence, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Sentence, error)
}

type sessionRepo interface {
	GetLatest(ctx context.Context, userID, exerciseID uuid.UUID) (*domain.ExerciseSession, error)
	GetInProgress(ctx context.Context, userID, sessionID uuid.UUID) (*domain.ExerciseSession, error)
	ListVocabularyIDs(ctx context.Context, sessionID uuid.UUID) ([]uuid.UUID, error)
	Create(ctx context.Context, s *domain.ExerciseSession, vocabularyIDs []uuid.UUID) (*domain.ExerciseSession, error)
	Delete(ctx context.Context, userID, sessionID uuid.UUID) error
	Abandon(ctx context.Context, userID, sessionID uuid.UUID) error
	IncrementScore(ctx context.Context, userID, sessionID uuid.UUID) (*domain.ExerciseSession, error)
	Complete(ctx context.Context, userID, sessionID uuid.UUID, at time.Time) (*domain.ExerciseSession, error)
}

type progressRecomputer interface {
	Recompute(ctx context.Context, userID, trailStepID uuid.UUID) (*domain.UserProgress, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service runs exercise sessions: it creates, resumes, retries and expires
// sessions and scores the answers submitted against them.
type Service struct {
	exercises  exerciseCatalog
	steps      trailStepRepo
	vocabulary vocabularyStore
	sentences  sentenceStore
	sessions   sessionRepo
	progress   progressRecomputer
	tx         txManager
	clock      clock
	log        *slog.Logger

	sessionTTL      time.Duration
	distractorCount int
}

// NewService creates a new exercise service.
func NewService(
	log *slog.Logger,
	exercises exerciseCatalog,
	steps trailStepRepo,
	vocabulary vocabularyStore,
	sentences sentenceStore,
	sessions sessionRepo,
	progress progressRecomputer,
	tx txManager,
	cfg config.ExerciseConfig,
) *Service {
	return &Service{
		exercises:       exercises,
		steps:           steps,
		vocabulary:      vocabulary,
		sentences:       sentences,
		sessions:        sessions,
		progress:        progress,
		tx:              tx,
		clock:           systemClock{},
		log:             log.With("service", "exercise"),
		sessionTTL:      cfg.SessionTTL,
		distractorCount: cfg.DistractorCount,
	}
}
