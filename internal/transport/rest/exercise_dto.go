package rest

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/rbradwell/language-learning/internal/domain"
	"github.com/rbradwell/language-learning/internal/service/exercise"
	"github.com/rbradwell/language-learning/internal/service/progress"
)

type startResponse struct {
	Success  bool             `json:"success"`
	Resumed  bool             `json:"resumed"`
	Session  sessionResponse  `json:"session"`
	Exercise exerciseResponse `json:"exercise"`
}

type sessionResponse struct {
	ID             uuid.UUID  `json:"id"`
	ExerciseID     uuid.UUID  `json:"exerciseId"`
	TrailStepID    uuid.UUID  `json:"trailStepId"`
	Score          int        `json:"score"`
	TotalQuestions int        `json:"totalQuestions"`
	Status         string     `json:"status"`
	ExpiresAt      time.Time  `json:"expiresAt"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
}

type exerciseResponse struct {
	ID        uuid.UUID         `json:"id"`
	Type      string            `json:"type"`
	Content   contentResponse   `json:"content"`
	TrailStep trailStepResponse `json:"trailStep"`
}

type contentResponse struct {
	Instructions     string               `json:"instructions"`
	Vocabulary       []vocabularyResponse `json:"vocabulary"`
	Sentences        []sentenceResponse   `json:"sentences,omitempty"`
	MissingWordCount int                  `json:"missingWordCount,omitempty"`
}

type vocabularyResponse struct {
	ID            uuid.UUID `json:"id"`
	NativeWord    string    `json:"nativeWord"`
	TargetWord    string    `json:"targetWord"`
	Pronunciation string    `json:"pronunciation,omitempty"`
	Difficulty    int       `json:"difficulty"`
}

type sentenceResponse struct {
	ID            uuid.UUID   `json:"id"`
	NativeText    string      `json:"nativeText"`
	TargetText    string      `json:"targetText"`
	VocabularyIDs []uuid.UUID `json:"vocabularyIds"`
	Difficulty    int         `json:"difficulty"`
}

type trailStepResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	StepNumber   int       `json:"stepNumber"`
	PassingScore int       `json:"passingScore"`
	TimeLimit    int       `json:"timeLimit"`
}

type answerResponse struct {
	Success         bool   `json:"success"`
	IsCorrect       bool   `json:"isCorrect"`
	CorrectAnswer   string `json:"correctAnswer"`
	CurrentScore    int    `json:"currentScore"`
	TotalQuestions  int    `json:"totalQuestions"`
	SessionComplete bool   `json:"sessionComplete"`
}

type progressResponse struct {
	Success    bool                       `json:"success"`
	Categories []categoryProgressResponse `json:"categories"`
}

type categoryProgressResponse struct {
	ID     uuid.UUID               `json:"id"`
	Name   string                  `json:"name"`
	Trails []trailProgressResponse `json:"trails"`
}

type trailProgressResponse struct {
	ID    uuid.UUID              `json:"id"`
	Name  string                 `json:"name"`
	Steps []stepProgressResponse `json:"steps"`
}

type stepProgressResponse struct {
	ID           uuid.UUID                  `json:"id"`
	Name         string                     `json:"name"`
	StepNumber   int                        `json:"stepNumber"`
	PassingScore int                        `json:"passingScore"`
	Score        int                        `json:"score"`
	Completed    bool                       `json:"completed"`
	Attempts     int                        `json:"attempts"`
	Unlocked     bool                       `json:"unlocked"`
	Exercises    []exerciseProgressResponse `json:"exercises"`
}

type exerciseProgressResponse struct {
	ID             uuid.UUID `json:"id"`
	Type           string    `json:"type"`
	Status         string    `json:"status,omitempty"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
}

func toStartResponse(r *exercise.StartResult) startResponse {
	return startResponse{
		Success: true,
		Resumed: r.Resumed,
		Session: sessionResponse{
			ID:             r.Session.ID,
			ExerciseID:     r.Session.ExerciseID,
			TrailStepID:    r.Session.TrailStepID,
			Score:          r.Session.Score,
			TotalQuestions: r.Session.TotalQuestions,
			Status:         r.Session.Status.String(),
			ExpiresAt:      r.Session.ExpiresAt,
			CompletedAt:    r.Session.CompletedAt,
		},
		Exercise: exerciseResponse{
			ID:   r.Exercise.ID,
			Type: r.Exercise.Kind.String(),
			Content: contentResponse{
				Instructions:     r.Content.Instructions,
				Vocabulary:       lo.Map(r.Content.Vocabulary, toVocabularyResponse),
				Sentences:        lo.Map(r.Content.Sentences, toSentenceResponse),
				MissingWordCount: r.Content.MissingWordCount,
			},
			TrailStep: trailStepResponse{
				ID:           r.TrailStep.ID,
				Name:         r.TrailStep.Name,
				StepNumber:   r.TrailStep.StepNumber,
				PassingScore: r.TrailStep.PassingScore,
				TimeLimit:    r.TrailStep.TimeLimit,
			},
		},
	}
}

func toVocabularyResponse(v domain.Vocabulary, _ int) vocabularyResponse {
	return vocabularyResponse{
		ID:            v.ID,
		NativeWord:    v.NativeWord,
		TargetWord:    v.TargetWord,
		Pronunciation: v.Pronunciation,
		Difficulty:    v.Difficulty,
	}
}

func toSentenceResponse(s domain.Sentence, _ int) sentenceResponse {
	return sentenceResponse{
		ID:            s.ID,
		NativeText:    s.NativeText,
		TargetText:    s.TargetText,
		VocabularyIDs: s.VocabularyIDs,
		Difficulty:    s.Difficulty,
	}
}

func toProgressResponse(tree []progress.CategoryProgress) progressResponse {
	return progressResponse{
		Success: true,
		Categories: lo.Map(tree, func(c progress.CategoryProgress, _ int) categoryProgressResponse {
			return categoryProgressResponse{
				ID:   c.Category.ID,
				Name: c.Category.Name,
				Trails: lo.Map(c.Trails, func(t progress.TrailProgress, _ int) trailProgressResponse {
					return trailProgressResponse{
						ID:    t.Trail.ID,
						Name:  t.Trail.Name,
						Steps: lo.Map(t.Steps, toStepProgressResponse),
					}
				}),
			}
		}),
	}
}

func toStepProgressResponse(s progress.StepProgress, _ int) stepProgressResponse {
	return stepProgressResponse{
		ID:           s.Step.ID,
		Name:         s.Step.Name,
		StepNumber:   s.Step.StepNumber,
		PassingScore: s.Step.PassingScore,
		Score:        s.Score,
		Completed:    s.Completed,
		Attempts:     s.Attempts,
		Unlocked:     s.Unlocked,
		Exercises: lo.Map(s.Exercises, func(e progress.ExerciseProgress, _ int) exerciseProgressResponse {
			return exerciseProgressResponse{
				ID:             e.ExerciseID,
				Type:           e.Kind.String(),
				Status:         e.Status.String(),
				Score:          e.Score,
				TotalQuestions: e.TotalQuestions,
			}
		}),
	}
}
