package progress

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/rbradwell/language-learning/internal/domain"
	"github.com/rbradwell/language-learning/pkg/ctxutil"
)

// CategoryProgress is one node of the progress tree.
type CategoryProgress struct {
	Category domain.Category
	Trails   []TrailProgress
}

// TrailProgress lists a trail's steps in step order.
type TrailProgress struct {
	Trail domain.Trail
	Steps []StepProgress
}

// StepProgress is a trail step with the user's progress on it. Unlocked is
// true for the first step and for every step whose predecessor is completed.
type StepProgress struct {
	Step      domain.TrailStep
	Score     int
	Completed bool
	Attempts  int
	Unlocked  bool
	Exercises []ExerciseProgress
}

// ExerciseProgress reports the user's most recent session on an exercise.
// Status is empty when the user never started it.
type ExerciseProgress struct {
	ExerciseID     uuid.UUID
	Kind           domain.ExerciseKind
	Status         domain.SessionStatus
	Score          int
	TotalQuestions int
}

type progressSnapshot struct {
	categories []domain.Category
	trails     []domain.Trail
	steps      []domain.TrailStep
	exercises  []domain.ExerciseDefinition
	progress   []domain.UserProgress
	latest     []domain.ExerciseSession
}

// TrailStepsProgress returns the whole catalog tree annotated with the
// current user's progress.
func (s *Service) TrailStepsProgress(ctx context.Context) ([]CategoryProgress, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	snap, err := s.loadSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	return buildTree(snap, s.clock.Now().After), nil
}

func (s *Service) loadSnapshot(ctx context.Context, userID uuid.UUID) (*progressSnapshot, error) {
	var snap progressSnapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		if snap.categories, err = s.trails.ListCategories(gctx); err != nil {
			return fmt.Errorf("list categories: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if snap.trails, err = s.trails.ListTrails(gctx); err != nil {
			return fmt.Errorf("list trails: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if snap.steps, err = s.trails.ListSteps(gctx); err != nil {
			return fmt.Errorf("list trail steps: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if snap.exercises, err = s.exercises.ListAll(gctx); err != nil {
			return fmt.Errorf("list exercises: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if snap.progress, err = s.progress.ListByUser(gctx, userID); err != nil {
			return fmt.Errorf("list progress: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if snap.latest, err = s.sessions.ListLatestByUser(gctx, userID); err != nil {
			return fmt.Errorf("list latest sessions: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}

// buildTree assembles the progress tree. expired reports whether a deadline
// has passed; an in_progress session past its deadline is shown as abandoned.
func buildTree(snap *progressSnapshot, expired func(deadline time.Time) bool) []CategoryProgress {
	trailsByCategory := lo.GroupBy(snap.trails, func(t domain.Trail) uuid.UUID { return t.CategoryID })
	stepsByTrail := lo.GroupBy(snap.steps, func(st domain.TrailStep) uuid.UUID { return st.TrailID })
	exercisesByStep := lo.GroupBy(snap.exercises, func(e domain.ExerciseDefinition) uuid.UUID { return e.TrailStepID })
	progressByStep := lo.KeyBy(snap.progress, func(p domain.UserProgress) uuid.UUID { return p.TrailStepID })
	latestByExercise := lo.KeyBy(snap.latest, func(sess domain.ExerciseSession) uuid.UUID { return sess.ExerciseID })

	tree := make([]CategoryProgress, 0, len(snap.categories))
	for _, c := range snap.categories {
		cp := CategoryProgress{Category: c, Trails: []TrailProgress{}}

		for _, t := range trailsByCategory[c.ID] {
			tp := TrailProgress{Trail: t, Steps: []StepProgress{}}

			steps := stepsByTrail[t.ID]
			slices.SortFunc(steps, func(a, b domain.TrailStep) int { return cmp.Compare(a.StepNumber, b.StepNumber) })

			prevCompleted := true
			for _, st := range steps {
				p := progressByStep[st.ID]
				sp := StepProgress{
					Step:      st,
					Score:     p.Score,
					Completed: p.Completed,
					Attempts:  p.Attempts,
					Unlocked:  st.StepNumber <= 1 || prevCompleted,
					Exercises: []ExerciseProgress{},
				}
				prevCompleted = p.Completed

				for _, e := range exercisesByStep[st.ID] {
					ep := ExerciseProgress{ExerciseID: e.ID, Kind: e.Kind}
					if sess, ok := latestByExercise[e.ID]; ok {
						ep.Status = sess.Status
						ep.Score = sess.Score
						ep.TotalQuestions = sess.TotalQuestions
						if sess.Status == domain.SessionStatusInProgress && expired(sess.ExpiresAt) {
							ep.Status = domain.SessionStatusAbandoned
						}
					}
					sp.Exercises = append(sp.Exercises, ep)
				}

				tp.Steps = append(tp.Steps, sp)
			}
			cp.Trails = append(cp.Trails, tp)
		}
		tree = append(tree, cp)
	}
	return tree
}
