package exercise

import (
	"github.com/rbradwell/language-learning/internal/domain"
)

// Content is what the client renders for a session. Vocabulary exercises
// fill Vocabulary only; sentence exercises fill Sentences, the vocabulary
// those sentences reference, and MissingWordCount.
type Content struct {
	Instructions     string
	Vocabulary       []domain.Vocabulary
	Sentences        []domain.Sentence
	MissingWordCount int
}

// StartResult is returned by StartExercise.
type StartResult struct {
	Session   *domain.ExerciseSession
	Exercise  *domain.ExerciseDefinition
	TrailStep *domain.TrailStep
	Content   Content
	Resumed   bool
}

// AnswerResult is returned by SubmitAnswer.
type AnswerResult struct {
	IsCorrect       bool
	CorrectAnswer   string
	CurrentScore    int
	TotalQuestions  int
	SessionComplete bool
}
