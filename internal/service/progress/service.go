package progress

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rbradwell/language-learning/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type exerciseCatalog interface {
	ListByTrailStep(ctx context.Context, trailStepID uuid.UUID) ([]domain.ExerciseDefinition, error)
	ListAll(ctx context.Context) ([]domain.ExerciseDefinition, error)
}

type trailCatalog interface {
	GetStep(ctx context.Context, id uuid.UUID) (*domain.TrailStep, error)
	ListSteps(ctx context.Context) ([]domain.TrailStep, error)
	ListTrails(ctx context.Context) ([]domain.Trail, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

type sessionRepo interface {
	ListCompletedByTrailStep(ctx context.Context, userID, trailStepID uuid.UUID) ([]domain.ExerciseSession, error)
	ListLatestByUser(ctx context.Context, userID uuid.UUID) ([]domain.ExerciseSession, error)
}

type progressRepo interface {
	Upsert(ctx context.Context, p domain.UserProgress) (*domain.UserProgress, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.UserProgress, error)
}

type clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service aggregates completed sessions into per trail step progress and
// serves the trail progress tree.
type Service struct {
	exercises exerciseCatalog
	trails    trailCatalog
	sessions  sessionRepo
	progress  progressRepo
	clock     clock
	log       *slog.Logger
}

// NewService creates a new progress service.
func NewService(
	log *slog.Logger,
	exercises exerciseCatalog,
	trails trailCatalog,
	sessions sessionRepo,
	progress progressRepo,
) *Service {
	return &Service{
		exercises: exercises,
		trails:    trails,
		sessions:  sessions,
		progress:  progress,
		clock:     systemClock{},
		log:       log.With("service", "progress"),
	}
}
