package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrConflict      = errors.New("conflict")
	ErrExpired       = errors.New("expired")
)

// Specific errors surfaced by the exercise engine. Each wraps one of the
// sentinels above so the transport layer only needs to match the category.
var (
	ErrExerciseNotFound   = fmt.Errorf("exercise %w", ErrNotFound)
	ErrSessionNotFound    = fmt.Errorf("session %w", ErrNotFound)
	ErrVocabularyNotFound = fmt.Errorf("vocabulary %w", ErrNotFound)
	ErrSentenceNotFound   = fmt.Errorf("sentence %w", ErrNotFound)
	ErrTrailStepNotFound  = fmt.Errorf("trail step %w", ErrNotFound)
	ErrAlreadyCompleted   = fmt.Errorf("exercise already completed: %w", ErrConflict)
	ErrSessionExpired     = fmt.Errorf("session %w", ErrExpired)
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
