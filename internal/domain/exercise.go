package domain

import (
	"github.com/google/uuid"
)

// ExerciseDefinition is the tagged variant for all exercise kinds.
// vocabulary_matching uses VocabularyIDs; the sentence kinds use SentenceIDs
// and MissingWordCount. Build values with NewVocabularyExercise or
// NewSentenceExercise so the payload always matches the kind.
type ExerciseDefinition struct {
	ID               uuid.UUID
	Kind             ExerciseKind
	TrailStepID      uuid.UUID
	Instructions     string
	VocabularyIDs    []uuid.UUID
	SentenceIDs      []uuid.UUID
	MissingWordCount int
}

// NewVocabularyExercise constructs a vocabulary_matching definition.
func NewVocabularyExercise(id, trailStepID uuid.UUID, instructions string, vocabularyIDs []uuid.UUID) ExerciseDefinition {
	return ExerciseDefinition{
		ID:            id,
		Kind:          ExerciseKindVocabularyMatching,
		TrailStepID:   trailStepID,
		Instructions:  instructions,
		VocabularyIDs: vocabularyIDs,
	}
}

// NewSentenceExercise constructs a sentence_completion or fill_blanks definition.
func NewSentenceExercise(id, trailStepID uuid.UUID, kind ExerciseKind, instructions string, sentenceIDs []uuid.UUID, missingWordCount int) ExerciseDefinition {
	return ExerciseDefinition{
		ID:               id,
		Kind:             kind,
		TrailStepID:      trailStepID,
		Instructions:     instructions,
		SentenceIDs:      sentenceIDs,
		MissingWordCount: missingWordCount,
	}
}

// QuestionCount is the number of distinct questions a session on this exercise holds.
func (e ExerciseDefinition) QuestionCount() int {
	if e.Kind.UsesSentences() {
		return len(e.SentenceIDs)
	}
	return len(e.VocabularyIDs)
}

// Validate checks the variant invariants.
func (e ExerciseDefinition) Validate() error {
	var errs []FieldError

	if !e.Kind.IsValid() {
		errs = append(errs, FieldError{Field: "kind", Message: "unknown exercise kind"})
	}
	if e.TrailStepID == uuid.Nil {
		errs = append(errs, FieldError{Field: "trail_step_id", Message: "required"})
	}
	switch {
	case e.Kind == ExerciseKindVocabularyMatching && len(e.VocabularyIDs) == 0:
		errs = append(errs, FieldError{Field: "vocabulary_ids", Message: "at least one required"})
	case e.Kind.UsesSentences() && len(e.SentenceIDs) == 0:
		errs = append(errs, FieldError{Field: "sentence_ids", Message: "at least one required"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// TrailStep is one gated stage of a trail.
// TimeLimit is advisory (seconds) and is not enforced server side.
type TrailStep struct {
	ID           uuid.UUID
	TrailID      uuid.UUID
	Name         string
	Type         string
	StepNumber   int
	PassingScore int
	TimeLimit    int
}

// Trail is an ordered sequence of trail steps within a category.
type Trail struct {
	ID         uuid.UUID
	CategoryID uuid.UUID
	Name       string
	Position   int
}

// Category groups trails by topic.
type Category struct {
	ID       uuid.UUID
	Name     string
	Position int
}

// Catalog is the static category -> trail -> step -> exercise tree.
type Catalog struct {
	Categories []Category
	Trails     []Trail
	Steps      []TrailStep
	Exercises  []ExerciseDefinition
}
