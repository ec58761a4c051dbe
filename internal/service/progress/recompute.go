package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/rbradwell/language-learning/internal/domain"
)

// Recompute rebuilds the user's progress row for a trail step from their
// completed sessions and stores it. It runs on the querier carried by ctx, so
// a caller completing a session passes its transaction context.
//
// A vocabulary_matching session passes by being completed. A sentence session
// passes when its percentage reaches the step's passing score. The step is
// completed once the number of distinct passed exercises reaches the number
// of exercises in the step.
func (s *Service) Recompute(ctx context.Context, userID, trailStepID uuid.UUID) (*domain.UserProgress, error) {
	step, err := s.trails.GetStep(ctx, trailStepID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrTrailStepNotFound
		}
		return nil, fmt.Errorf("get trail step: %w", err)
	}

	exercises, err := s.exercises.ListByTrailStep(ctx, trailStepID)
	if err != nil {
		return nil, fmt.Errorf("list step exercises: %w", err)
	}

	completed, err := s.sessions.ListCompletedByTrailStep(ctx, userID, trailStepID)
	if err != nil {
		return nil, fmt.Errorf("list completed sessions: %w", err)
	}

	score, passedExercises := aggregate(*step, exercises, completed)

	saved, err := s.progress.Upsert(ctx, domain.UserProgress{
		UserID:      userID,
		TrailStepID: trailStepID,
		Score:       score,
		Completed:   passedExercises >= len(exercises),
		UpdatedAt:   s.clock.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("upsert progress: %w", err)
	}

	s.log.InfoContext(ctx, "progress recomputed",
		slog.String("user_id", userID.String()),
		slog.String("trail_step_id", trailStepID.String()),
		slog.Int("score", saved.Score),
		slog.Bool("completed", saved.Completed),
		slog.Int("attempts", saved.Attempts),
	)

	return saved, nil
}

// aggregate returns the step score and the number of distinct exercises with
// at least one passed session. completed is ordered most recent first.
func aggregate(step domain.TrailStep, exercises []domain.ExerciseDefinition, completed []domain.ExerciseSession) (int, int) {
	kinds := lo.SliceToMap(exercises, func(e domain.ExerciseDefinition) (uuid.UUID, domain.ExerciseKind) {
		return e.ID, e.Kind
	})

	var percentages []int
	var passedIDs []uuid.UUID
	for _, sess := range completed {
		pct := sess.Percentage()
		if kinds[sess.ExerciseID] == domain.ExerciseKindVocabularyMatching {
			pct = 100
		} else if pct < step.PassingScore {
			continue
		}
		percentages = append(percentages, pct)
		passedIDs = append(passedIDs, sess.ExerciseID)
	}

	if len(percentages) == 0 {
		if len(completed) == 0 {
			return 0, 0
		}
		return completed[0].Percentage(), 0
	}

	mean := float64(lo.Sum(percentages)) / float64(len(percentages))
	return int(math.Round(mean)), len(lo.Uniq(passedIDs))
}
