package domain

import (
	"github.com/google/uuid"
)

// Vocabulary is a single native/target word pair. Reference data, never
// mutated by the exercise engine.
type Vocabulary struct {
	ID            uuid.UUID
	CategoryID    uuid.UUID
	NativeWord    string
	TargetWord    string
	Pronunciation string
	Difficulty    int
}

// AnswerFor returns the word the user is expected to produce for the given direction.
func (v Vocabulary) AnswerFor(dir ExerciseDirection) string {
	if dir.OrDefault() == DirectionTargetToNative {
		return v.NativeWord
	}
	return v.TargetWord
}

// Sentence is a target-language sentence built from vocabulary tokens.
// VocabularyIDs lists token occurrences in reading order and may repeat ids.
type Sentence struct {
	ID             uuid.UUID
	CategoryID     uuid.UUID
	NativeText     string
	TargetText     string
	VocabularyIDs  []uuid.UUID
	Difficulty     int
	SentenceLength int
}
