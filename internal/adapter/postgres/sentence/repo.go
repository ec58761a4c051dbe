// Package sentence implements read-only sentence lookups using PostgreSQL.
package sentence

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/samber/lo"

	postgres "github.com/rbradwell/language-learning/internal/adapter/postgres"
	"github.com/rbradwell/language-learning/internal/domain"
)

// Repo provides sentence reads backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new sentence repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var columns = []string{
	"id", "category_id", "native_text", "target_text",
	"vocabulary_ids", "difficulty", "sentence_length",
}

type row struct {
	ID             uuid.UUID   `db:"id"`
	CategoryID     uuid.UUID   `db:"category_id"`
	NativeText     string      `db:"native_text"`
	TargetText     string      `db:"target_text"`
	VocabularyIDs  []uuid.UUID `db:"vocabulary_ids"`
	Difficulty     int         `db:"difficulty"`
	SentenceLength int         `db:"sentence_length"`
}

func (r row) toDomain() domain.Sentence {
	ids := r.VocabularyIDs
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return domain.Sentence{
		ID:             r.ID,
		CategoryID:     r.CategoryID,
		NativeText:     r.NativeText,
		TargetText:     r.TargetText,
		VocabularyIDs:  ids,
		Difficulty:     r.Difficulty,
		SentenceLength: r.SentenceLength,
	}
}

// GetByID returns a single sentence.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Sentence, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("sentences").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sentence query: %w", err)
	}

	var s row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &s, query, args...); err != nil {
		return nil, postgres.MapError(err, "sentence", id)
	}

	out := s.toDomain()
	return &out, nil
}

// GetByIDs returns the sentences with the given ids ordered by
// (difficulty ASC, sentence_length ASC, id ASC).
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Sentence, error) {
	if len(ids) == 0 {
		return []domain.Sentence{}, nil
	}

	query, args, err := postgres.Builder().
		Select(columns...).
		From("sentences").
		Where(squirrel.Eq{"id": lo.Uniq(ids)}).
		OrderBy("difficulty ASC", "sentence_length ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sentence query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select sentences: %w", err)
	}

	return lo.Map(rows, func(s row, _ int) domain.Sentence { return s.toDomain() }), nil
}
