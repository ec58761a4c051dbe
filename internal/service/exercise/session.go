package exercise

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rbradwell/language-learning/internal/domain"
	"github.com/rbradwell/language-learning/pkg/ctxutil"
)

// StartExercise resumes the user's live session for an exercise or creates a
// new one. With IsRetry any previous session is deleted first. A completed
// session is never silently resumed: without IsRetry it yields
// domain.ErrAlreadyCompleted.
func (s *Service) StartExercise(ctx context.Context, input StartExerciseInput) (*StartResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	def, err := s.exercises.GetByID(ctx, input.ExerciseID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrExerciseNotFound
		}
		return nil, fmt.Errorf("get exercise: %w", err)
	}

	step, err := s.steps.GetStep(ctx, def.TrailStepID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrTrailStepNotFound
		}
		return nil, fmt.Errorf("get trail step: %w", err)
	}

	latest, err := s.latestSession(ctx, userID, def.ID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	switch {
	case latest != nil && input.IsRetry:
		err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			return s.sessions.Delete(txCtx, userID, latest.ID)
		})
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("delete session for retry: %w", err)
		}
		s.log.InfoContext(ctx, "session deleted for retry",
			slog.String("user_id", userID.String()),
			slog.String("session_id", latest.ID.String()),
		)
		latest = nil

	case latest != nil && latest.IsResumable(now):
		return s.resume(ctx, latest, def, step)

	case latest != nil && latest.Status == domain.SessionStatusCompleted:
		return nil, domain.ErrAlreadyCompleted
	}

	return s.create(ctx, userID, latest, def, step)
}

func (s *Service) latestSession(ctx context.Context, userID, exerciseID uuid.UUID) (*domain.ExerciseSession, error) {
	latest, err := s.sessions.GetLatest(ctx, userID, exerciseID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest session: %w", err)
	}
	return latest, nil
}

func (s *Service) resume(ctx context.Context, session *domain.ExerciseSession, def *domain.ExerciseDefinition, step *domain.TrailStep) (*StartResult, error) {
	content, err := s.sessionContent(ctx, session.ID, *def)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "session resumed",
		slog.String("user_id", session.UserID.String()),
		slog.String("session_id", session.ID.String()),
		slog.Int("score", session.Score),
	)

	return &StartResult{
		Session:   session,
		Exercise:  def,
		TrailStep: step,
		Content:   content,
		Resumed:   true,
	}, nil
}

// create inserts a fresh session. previous is the latest session when it was
// neither resumable nor completed; an expired in_progress one is abandoned in
// the same transaction so it no longer counts as live.
func (s *Service) create(ctx context.Context, userID uuid.UUID, previous *domain.ExerciseSession, def *domain.ExerciseDefinition, step *domain.TrailStep) (*StartResult, error) {
	now := s.clock.Now()

	session := &domain.ExerciseSession{
		ID:             uuid.New(),
		UserID:         userID,
		ExerciseID:     def.ID,
		TrailStepID:    def.TrailStepID,
		TotalQuestions: def.QuestionCount(),
		Status:         domain.SessionStatusInProgress,
		ExpiresAt:      now.Add(s.sessionTTL),
		CreatedAt:      now,
	}

	var (
		created *domain.ExerciseSession
		content Content
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if previous != nil && previous.Status == domain.SessionStatusInProgress {
			if err := s.sessions.Abandon(txCtx, userID, previous.ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("abandon expired session: %w", err)
			}
		}

		var (
			poolIDs []uuid.UUID
			err     error
		)
		content, poolIDs, err = s.buildContent(txCtx, *def)
		if err != nil {
			return err
		}

		created, err = s.sessions.Create(txCtx, session, poolIDs)
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return s.resumeAfterRace(ctx, userID, def, step)
		}
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.InfoContext(ctx, "session created",
		slog.String("user_id", userID.String()),
		slog.String("session_id", created.ID.String()),
		slog.String("exercise_id", def.ID.String()),
		slog.Int("total_questions", created.TotalQuestions),
	)

	return &StartResult{
		Session:   created,
		Exercise:  def,
		TrailStep: step,
		Content:   content,
	}, nil
}

// resumeAfterRace handles a concurrent start that created the live session
// between our read and our insert.
func (s *Service) resumeAfterRace(ctx context.Context, userID uuid.UUID, def *domain.ExerciseDefinition, step *domain.TrailStep) (*StartResult, error) {
	latest, err := s.latestSession(ctx, userID, def.ID)
	if err != nil {
		return nil, fmt.Errorf("get session after race: %w", err)
	}
	if latest == nil || !latest.IsResumable(s.clock.Now()) {
		return nil, fmt.Errorf("create session: %w", domain.ErrConflict)
	}

	s.log.InfoContext(ctx, "concurrent start detected, resuming existing session",
		slog.String("user_id", userID.String()),
		slog.String("session_id", latest.ID.String()),
	)
	return s.resume(ctx, latest, def, step)
}
