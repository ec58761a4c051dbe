package exercise

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/rbradwell/language-learning/internal/domain"
	"github.com/rbradwell/language-learning/pkg/ctxutil"
)

// SubmitAnswer checks one answer against an in_progress session. A correct
// answer adds a point, capped at the session's question count; the answer
// that reaches the cap completes the session and recomputes the user's
// progress for the trail step in the same transaction.
func (s *Service) SubmitAnswer(ctx context.Context, input SubmitAnswerInput) (*AnswerResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	session, err := s.sessions.GetInProgress(ctx, userID, input.SessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	if session.IsExpired(s.clock.Now()) {
		if err := s.sessions.Abandon(ctx, userID, session.ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("abandon expired session: %w", err)
		}
		s.log.InfoContext(ctx, "session expired",
			slog.String("user_id", userID.String()),
			slog.String("session_id", session.ID.String()),
		)
		return nil, domain.ErrSessionExpired
	}

	def, err := s.exercises.GetByID(ctx, session.ExerciseID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrExerciseNotFound
		}
		return nil, fmt.Errorf("get exercise: %w", err)
	}

	var (
		expected string
		correct  bool
	)
	if input.VocabularyID != nil && *input.VocabularyID != uuid.Nil {
		expected, correct, err = s.checkVocabulary(ctx, def, *input.VocabularyID, input.UserAnswer, input.Direction)
	} else {
		expected, correct, err = s.checkSentence(ctx, def, *input.SentenceID, input.UserAnswer)
	}
	if err != nil {
		return nil, err
	}

	result := &AnswerResult{
		IsCorrect:      correct,
		CorrectAnswer:  expected,
		CurrentScore:   session.Score,
		TotalQuestions: session.TotalQuestions,
	}
	if !correct {
		return result, nil
	}

	updated, err := s.sessions.IncrementScore(ctx, userID, session.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("increment score: %w", err)
	}
	result.CurrentScore = updated.Score
	result.TotalQuestions = updated.TotalQuestions

	if !updated.IsFinished() {
		return result, nil
	}

	if err := s.complete(ctx, updated); err != nil {
		return nil, err
	}
	result.SessionComplete = true
	return result, nil
}

// complete marks the session completed and recomputes trail step progress
// atomically. A session already completed by a concurrent request is not
// an error; that request recomputed progress.
func (s *Service) complete(ctx context.Context, session *domain.ExerciseSession) error {
	now := s.clock.Now()
	alreadyCompleted := false

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.sessions.Complete(txCtx, session.UserID, session.ID, now); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				alreadyCompleted = true
				return nil
			}
			return err
		}
		if _, err := s.progress.Recompute(txCtx, session.UserID, session.TrailStepID); err != nil {
			return fmt.Errorf("recompute progress: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("complete session: %w", err)
	}
	if alreadyCompleted {
		return nil
	}

	s.log.InfoContext(ctx, "session completed",
		slog.String("user_id", session.UserID.String()),
		slog.String("session_id", session.ID.String()),
		slog.String("trail_step_id", session.TrailStepID.String()),
	)
	return nil
}

// checkVocabulary only accepts the exercise's own words. Backfilled options
// are distractors and sentence exercises take no vocabulary answers.
func (s *Service) checkVocabulary(ctx context.Context, def *domain.ExerciseDefinition, vocabularyID uuid.UUID, answer string, dir domain.ExerciseDirection) (string, bool, error) {
	if def.Kind.UsesSentences() || !lo.Contains(def.VocabularyIDs, vocabularyID) {
		return "", false, domain.ErrVocabularyNotFound
	}

	v, err := s.vocabulary.GetByID(ctx, vocabularyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", false, domain.ErrVocabularyNotFound
		}
		return "", false, fmt.Errorf("get vocabulary: %w", err)
	}

	expected := v.AnswerFor(dir)
	return expected, domain.AnswersMatch(answer, expected), nil
}

func (s *Service) checkSentence(ctx context.Context, def *domain.ExerciseDefinition, sentenceID uuid.UUID, answer string) (string, bool, error) {
	if !def.Kind.UsesSentences() || !lo.Contains(def.SentenceIDs, sentenceID) {
		return "", false, domain.ErrSentenceNotFound
	}

	sn, err := s.sentences.GetByID(ctx, sentenceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", false, domain.ErrSentenceNotFound
		}
		return "", false, fmt.Errorf("get sentence: %w", err)
	}

	words, err := s.wordsInOrder(ctx, lo.Uniq(sn.VocabularyIDs))
	if err != nil {
		return "", false, err
	}

	expected := CanonicalSentenceAnswer(sn.TargetText, lo.Map(words, func(v domain.Vocabulary, _ int) string {
		return v.TargetWord
	}))
	return expected, domain.NormalizeAnswer(answer) == expected, nil
}
