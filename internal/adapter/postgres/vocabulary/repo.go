// Package vocabulary implements read-only vocabulary lookups using PostgreSQL.
package vocabulary

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

// Repo provides vocabulary reads backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new vocabulary repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var columns = []string{"id", "category_id", "native_word", "target_word", "pronunciation", "difficulty"}

type row struct {
	ID            uuid.UUID `db:"id"`
	CategoryID    uuid.UUID `db:"category_id"`
	NativeWord    string    `db:"native_word"`
	TargetWord    string    `db:"target_word"`
	Pronunciation string    `db:"pronunciation"`
	Difficulty    int       `db:"difficulty"`
}

func (r row) toDomain() domain.Vocabulary {
	return domain.Vocabulary{
		ID:            r.ID,
		CategoryID:    r.CategoryID,
		NativeWord:    r.NativeWord,
		TargetWord:    r.TargetWord,
		Pronunciation: r.Pronunciation,
		Difficulty:    r.Difficulty,
	}
}

func selectBuilder() squirrel.SelectBuilder {
	return postgres.Builder().Select(columns...).From("vocabularies")
}

// GetByID returns a single vocabulary item.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vocabulary, error) {
	query, args, err := selectBuilder().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build vocabulary query: %w", err)
	}

	var v row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &v, query, args...); err != nil {
		return nil, postgres.MapError(err, "vocabulary", id)
	}

	out := v.toDomain()
	return &out, nil
}

// GetByIDs returns the vocabulary items with the given ids ordered by
// (difficulty ASC, id ASC). Unknown ids are silently skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Vocabulary, error) {
	if len(ids) == 0 {
		return []domain.Vocabulary{}, nil
	}

	query, args, err := selectBuilder().
		Where(squirrel.Eq{"id": lo.Uniq(ids)}).
		OrderBy("difficulty ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build vocabulary query: %w", err)
	}

	return r.list(ctx, query, args)
}

// ListBackfill returns up to limit vocabulary items from a category that are
// not in exclude, ordered by (difficulty ASC, id ASC). Used to top up
// vocabulary_matching sessions that have too few options.
func (r *Repo) ListBackfill(ctx context.Context, categoryID uuid.UUID, exclude []uuid.UUID, limit int) ([]domain.Vocabulary, error) {
	if limit <= 0 {
		return []domain.Vocabulary{}, nil
	}

	b := selectBuilder().
		Where(squirrel.Eq{"category_id": categoryID}).
		OrderBy("difficulty ASC", "id ASC").
		Limit(uint64(limit))
	if len(exclude) > 0 {
		b = b.Where(squirrel.NotEq{"id": exclude})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build backfill query: %w", err)
	}

	return r.list(ctx, query, args)
}

func (r *Repo) list(ctx context.Context, query string, args []any) ([]domain.Vocabulary, error) {
	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select vocabularies: %w", err)
	}

	return lo.Map(rows, func(v row, _ int) domain.Vocabulary { return v.toDomain() }), nil
}
