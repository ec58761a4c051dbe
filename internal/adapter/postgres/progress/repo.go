// Package progress implements UserProgress persistence using PostgreSQL.
package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/samber/lo"

	postgres "github.com/rbradwell/language-learning/internal/adapter/postgres"
	"github.com/rbradwell/language-learning/internal/domain"
)

// Repo provides user progress persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new progress repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var columns = []string{"user_id", "trail_step_id", "score", "completed", "attempts", "updated_at"}

// Existing rows keep their identity; attempts always grows by one.
const upsertSuffix = `ON CONFLICT (user_id, trail_step_id) DO UPDATE
SET score = EXCLUDED.score,
    completed = EXCLUDED.completed,
    attempts = user_progresses.attempts + 1,
    updated_at = EXCLUDED.updated_at
RETURNING user_id, trail_step_id, score, completed, attempts, updated_at`

type row struct {
	UserID      uuid.UUID `db:"user_id"`
	TrailStepID uuid.UUID `db:"trail_step_id"`
	Score       int       `db:"score"`
	Completed   bool      `db:"completed"`
	Attempts    int       `db:"attempts"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.UserProgress {
	return domain.UserProgress{
		UserID:      r.UserID,
		TrailStepID: r.TrailStepID,
		Score:       r.Score,
		Completed:   r.Completed,
		Attempts:    r.Attempts,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Get returns the progress row for (userID, trailStepID).
// Returns domain.ErrNotFound if the user has never completed a session of the step.
func (r *Repo) Get(ctx context.Context, userID, trailStepID uuid.UUID) (*domain.UserProgress, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("user_progresses").
		Where(squirrel.Eq{"user_id": userID, "trail_step_id": trailStepID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build progress query: %w", err)
	}

	var p row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &p, query, args...); err != nil {
		return nil, postgres.MapError(err, "progress for trail step", trailStepID)
	}

	out := p.toDomain()
	return &out, nil
}

// ListByUser returns every progress row of a user.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.UserProgress, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("user_progresses").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("trail_step_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build progress query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select progress: %w", err)
	}
	return lo.Map(rows, func(p row, _ int) domain.UserProgress { return p.toDomain() }), nil
}

// Upsert inserts the progress row with attempts = 1, or updates score and
// completed on an existing row while incrementing attempts. It returns the
// stored row.
func (r *Repo) Upsert(ctx context.Context, p domain.UserProgress) (*domain.UserProgress, error) {
	updatedAt := p.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	query, args, err := postgres.Builder().
		Insert("user_progresses").
		Columns("user_id", "trail_step_id", "score", "completed", "attempts", "created_at", "updated_at").
		Values(p.UserID, p.TrailStepID, p.Score, p.Completed, 1,
			updatedAt.UTC().Truncate(time.Microsecond), updatedAt.UTC().Truncate(time.Microsecond)).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build progress upsert: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "progress for trail step", p.TrailStepID)
	}

	result := out.toDomain()
	return &result, nil
}
