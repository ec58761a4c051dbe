// Package trail implements reads of the category/trail/trail-step catalog.
package trail

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

// Repo provides catalog reads backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new trail repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type stepRow struct {
	ID           uuid.UUID `db:"id"`
	TrailID      uuid.UUID `db:"trail_id"`
	Name         string    `db:"name"`
	Type         string    `db:"type"`
	StepNumber   int       `db:"step_number"`
	PassingScore int       `db:"passing_score"`
	TimeLimit    int       `db:"time_limit"`
}

func (r stepRow) toDomain() domain.TrailStep {
	return domain.TrailStep{
		ID:           r.ID,
		TrailID:      r.TrailID,
		Name:         r.Name,
		Type:         r.Type,
		StepNumber:   r.StepNumber,
		PassingScore: r.PassingScore,
		TimeLimit:    r.TimeLimit,
	}
}

type trailRow struct {
	ID         uuid.UUID `db:"id"`
	CategoryID uuid.UUID `db:"category_id"`
	Name       string    `db:"name"`
	Position   int       `db:"position"`
}

type categoryRow struct {
	ID       uuid.UUID `db:"id"`
	Name     string    `db:"name"`
	Position int       `db:"position"`
}

var stepColumns = []string{"id", "trail_id", "name", "type", "step_number", "passing_score", "time_limit"}

// GetStep returns a trail step by id.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetStep(ctx context.Context, id uuid.UUID) (*domain.TrailStep, error) {
	query, args, err := postgres.Builder().
		Select(stepColumns...).
		From("trail_steps").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build trail step query: %w", err)
	}

	var s stepRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &s, query, args...); err != nil {
		return nil, postgres.MapError(err, "trail step", id)
	}

	out := s.toDomain()
	return &out, nil
}

// ListSteps returns every trail step ordered by trail and step number.
func (r *Repo) ListSteps(ctx context.Context) ([]domain.TrailStep, error) {
	query, args, err := postgres.Builder().
		Select(stepColumns...).
		From("trail_steps").
		OrderBy("trail_id", "step_number").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build trail step query: %w", err)
	}

	var rows []stepRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select trail steps: %w", err)
	}
	return lo.Map(rows, func(s stepRow, _ int) domain.TrailStep { return s.toDomain() }), nil
}

// ListTrails returns every trail ordered by category and position.
func (r *Repo) ListTrails(ctx context.Context) ([]domain.Trail, error) {
	query, args, err := postgres.Builder().
		Select("id", "category_id", "name", "position").
		From("trails").
		OrderBy("category_id", "position", "name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build trail query: %w", err)
	}

	var rows []trailRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select trails: %w", err)
	}
	return lo.Map(rows, func(t trailRow, _ int) domain.Trail {
		return domain.Trail{ID: t.ID, CategoryID: t.CategoryID, Name: t.Name, Position: t.Position}
	}), nil
}

// ListCategories returns every category ordered by position.
func (r *Repo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query, args, err := postgres.Builder().
		Select("id", "name", "position").
		From("categories").
		OrderBy("position", "name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build category query: %w", err)
	}

	var rows []categoryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	return lo.Map(rows, func(c categoryRow, _ int) domain.Category {
		return domain.Category{ID: c.ID, Name: c.Name, Position: c.Position}
	}), nil
}
