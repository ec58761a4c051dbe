// Package exercise implements the exercise catalog using PostgreSQL.
// All three exercise kinds live in one table with a kind discriminant; rows
// are converted to the tagged domain.ExerciseDefinition on the way out.
package exercise

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/rbradwell/language-learning/internal/adapter/postgres"
	"github.com/rbradwell/language-learning/internal/domain"
)

// Repo provides exercise catalog reads backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new exercise repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var columns = []string{
	"id", "kind", "trail_step_id", "instructions",
	"vocabulary_ids", "sentence_ids", "missing_word_count",
}

type row struct {
	ID               uuid.UUID   `db:"id"`
	Kind             string      `db:"kind"`
	TrailStepID      uuid.UUID   `db:"trail_step_id"`
	Instructions     string      `db:"instructions"`
	VocabularyIDs    []uuid.UUID `db:"vocabulary_ids"`
	SentenceIDs      []uuid.UUID `db:"sentence_ids"`
	MissingWordCount int         `db:"missing_word_count"`
}

func (r row) toDomain() (domain.ExerciseDefinition, error) {
	kind := domain.ExerciseKind(r.Kind)
	switch {
	case kind == domain.ExerciseKindVocabularyMatching:
		return domain.NewVocabularyExercise(r.ID, r.TrailStepID, r.Instructions, r.VocabularyIDs), nil
	case kind.UsesSentences():
		return domain.NewSentenceExercise(r.ID, r.TrailStepID, kind, r.Instructions, r.SentenceIDs, r.MissingWordCount), nil
	default:
		return domain.ExerciseDefinition{}, fmt.Errorf("exercise %s: unknown kind %q", r.ID, r.Kind)
	}
}

func selectBuilder() squirrel.SelectBuilder {
	return postgres.Builder().Select(columns...).From("exercises")
}

// GetByID returns the tagged exercise definition.
// Returns domain.ErrNotFound if no exercise has this id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ExerciseDefinition, error) {
	query, args, err := selectBuilder().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build exercise query: %w", err)
	}

	var e row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &e, query, args...); err != nil {
		return nil, postgres.MapError(err, "exercise", id)
	}

	def, err := e.toDomain()
	if err != nil {
		return nil, err
	}
	return &def, nil
}

// ListByTrailStep returns every exercise belonging to a trail step.
func (r *Repo) ListByTrailStep(ctx context.Context, trailStepID uuid.UUID) ([]domain.ExerciseDefinition, error) {
	return r.list(ctx, selectBuilder().Where(squirrel.Eq{"trail_step_id": trailStepID}))
}

// ListAll returns the whole exercise catalog ordered by step and position.
func (r *Repo) ListAll(ctx context.Context) ([]domain.ExerciseDefinition, error) {
	return r.list(ctx, selectBuilder())
}

func (r *Repo) list(ctx context.Context, b squirrel.SelectBuilder) ([]domain.ExerciseDefinition, error) {
	query, args, err := b.OrderBy("trail_step_id", "position", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build exercise query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select exercises: %w", err)
	}

	defs := make([]domain.ExerciseDefinition, 0, len(rows))
	for _, e := range rows {
		def, err := e.toDomain()
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}
