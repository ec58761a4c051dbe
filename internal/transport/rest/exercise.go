package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/rbradwell/language-learning/internal/domain"
	"github.com/rbradwell/language-learning/internal/service/exercise"
	"github.com/rbradwell/language-learning/internal/service/progress"
)

// exerciseService defines the minimal interface needed by ExerciseHandler.
type exerciseService interface {
	StartExercise(ctx context.Context, input exercise.StartExerciseInput) (*exercise.StartResult, error)
	SubmitAnswer(ctx context.Context, input exercise.SubmitAnswerInput) (*exercise.AnswerResult, error)
}

// progressService defines the minimal interface needed by ExerciseHandler.
type progressService interface {
	TrailStepsProgress(ctx context.Context) ([]progress.CategoryProgress, error)
}

// ExerciseHandler serves the exercise session endpoints.
type ExerciseHandler struct {
	exercises exerciseService
	progress  progressService
	log       *slog.Logger
}

// NewExerciseHandler creates an ExerciseHandler.
func NewExerciseHandler(exercises exerciseService, progress progressService, logger *slog.Logger) *ExerciseHandler {
	return &ExerciseHandler{exercises: exercises, progress: progress, log: logger.With("handler", "exercise")}
}

type startExerciseRequest struct {
	ExerciseID uuid.UUID `json:"exerciseId"`
	IsRetry    bool      `json:"isRetry"`
}

type submitAnswerRequest struct {
	SessionID         uuid.UUID  `json:"sessionId"`
	VocabularyID      *uuid.UUID `json:"vocabularyId,omitempty"`
	SentenceID        *uuid.UUID `json:"sentenceId,omitempty"`
	UserAnswer        string     `json:"userAnswer"`
	ExerciseDirection string     `json:"exerciseDirection,omitempty"`
}

// StartExercise handles POST /exercises/start-exercise.
func (h *ExerciseHandler) StartExercise(w http.ResponseWriter, r *http.Request) {
	var req startExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.exercises.StartExercise(r.Context(), exercise.StartExerciseInput{
		ExerciseID: req.ExerciseID,
		IsRetry:    req.IsRetry,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toStartResponse(result))
}

// SubmitAnswer handles POST /exercises/submit-answer.
func (h *ExerciseHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req submitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.exercises.SubmitAnswer(r.Context(), exercise.SubmitAnswerInput{
		SessionID:    req.SessionID,
		VocabularyID: req.VocabularyID,
		SentenceID:   req.SentenceID,
		UserAnswer:   req.UserAnswer,
		Direction:    domain.ExerciseDirection(req.ExerciseDirection),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, answerResponse{
		Success:         true,
		IsCorrect:       result.IsCorrect,
		CorrectAnswer:   result.CorrectAnswer,
		CurrentScore:    result.CurrentScore,
		TotalQuestions:  result.TotalQuestions,
		SessionComplete: result.SessionComplete,
	})
}

// TrailStepsProgress handles GET /exercises/trail-steps-progress.
func (h *ExerciseHandler) TrailStepsProgress(w http.ResponseWriter, r *http.Request) {
	tree, err := h.progress.TrailStepsProgress(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProgressResponse(tree))
}

type errorResponse struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	AlreadyCompleted bool   `json:"alreadyCompleted,omitempty"`
}

func (h *ExerciseHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrAlreadyCompleted):
		writeJSON(w, http.StatusConflict, errorResponse{
			Message:          "exercise already completed, start it with isRetry to try again",
			AlreadyCompleted: true,
		})
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrExpired):
		writeError(w, http.StatusGone, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		h.log.ErrorContext(r.Context(), "exercise handler error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}
