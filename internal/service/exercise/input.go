package exercise

import (
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/rbradwell/language-learning/internal/domain"
)

// StartExerciseInput holds the parameters for starting or resuming an exercise.
type StartExerciseInput struct {
	ExerciseID uuid.UUID
	IsRetry    bool
}

// Validate checks all fields and collects all errors.
func (i *StartExerciseInput) Validate() error {
	var errs []domain.FieldError

	if i.ExerciseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "exercise_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SubmitAnswerInput holds one answer. Exactly one of VocabularyID and
// SentenceID is set; Direction only applies to vocabulary questions.
type SubmitAnswerInput struct {
	SessionID    uuid.UUID
	VocabularyID *uuid.UUID
	SentenceID   *uuid.UUID
	UserAnswer   string
	Direction    domain.ExerciseDirection
}

// Validate checks all fields and collects all errors.
func (i *SubmitAnswerInput) Validate() error {
	var errs []domain.FieldError

	if i.SessionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "session_id", Message: "required"})
	}

	hasVocabulary := i.VocabularyID != nil && *i.VocabularyID != uuid.Nil
	hasSentence := i.SentenceID != nil && *i.SentenceID != uuid.Nil
	switch {
	case hasVocabulary && hasSentence:
		errs = append(errs, domain.FieldError{Field: "vocabulary_id", Message: "cannot be combined with sentence_id"})
	case !hasVocabulary && !hasSentence:
		errs = append(errs, domain.FieldError{Field: "vocabulary_id", Message: "vocabulary_id or sentence_id required"})
	}

	if i.Direction != "" && !i.Direction.IsValid() {
		errs = append(errs, domain.FieldError{Field: "exercise_direction", Message: "must be native_to_target or target_to_native"})
	}
	if utf8.RuneCountInString(i.UserAnswer) > 500 {
		errs = append(errs, domain.FieldError{Field: "user_answer", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
