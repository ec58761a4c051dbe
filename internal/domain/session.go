package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// ExerciseSession is one user's timed attempt at an exercise.
type ExerciseSession struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	ExerciseID     uuid.UUID
	TrailStepID    uuid.UUID
	TotalQuestions int
	Score          int
	Status         SessionStatus
	ExpiresAt      time.Time
	CompletedAt    *time.Time
	CreatedAt      time.Time
}

// IsExpired reports whether now is past the session deadline.
func (s *ExerciseSession) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// IsResumable reports whether the session can be handed back to the user as-is.
func (s *ExerciseSession) IsResumable(now time.Time) bool {
	return s.Status == SessionStatusInProgress && !s.IsExpired(now)
}

// IsFinished reports whether every question has been answered correctly.
func (s *ExerciseSession) IsFinished() bool {
	return s.Score >= s.TotalQuestions
}

// Percentage returns round(100 * score / total). A session without questions scores 0.
func (s *ExerciseSession) Percentage() int {
	return Percentage(s.Score, s.TotalQuestions)
}

// Percentage returns round(100 * part / total), or 0 when total is not positive.
func Percentage(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(total)))
}

// UserProgress is the per-user, per-trail-step completion record.
type UserProgress struct {
	UserID      uuid.UUID
	TrailStepID uuid.UUID
	Score       int
	Completed   bool
	Attempts    int
	UpdatedAt   time.Time
}
