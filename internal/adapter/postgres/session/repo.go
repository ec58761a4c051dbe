// Package session implements the ExerciseSession repository using PostgreSQL.
// Queries are raw SQL; the session row and its vocabulary join rows are the
// only mutable state owned by the session engine.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/rbradwell/language-learning/internal/adapter/postgres"
	"github.com/rbradwell/language-learning/internal/domain"
)

// Repo provides exercise session persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new session repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const sessionColumns = `id, user_id, exercise_id, trail_step_id, total_questions, score, status, expires_at, completed_at, created_at`

const createSQL = `
INSERT INTO exercise_sessions (id, user_id, exercise_id, trail_step_id, total_questions, score, status, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5, 0, 'in_progress', $6, $7)
RETURNING ` + sessionColumns

const linkVocabularySQL = `
INSERT INTO exercise_session_vocabularies (session_id, vocabulary_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING`

const getLatestSQL = `
SELECT ` + sessionColumns + `
FROM exercise_sessions
WHERE user_id = $1 AND exercise_id = $2
ORDER BY created_at DESC, id DESC
LIMIT 1`

const getInProgressSQL = `
SELECT ` + sessionColumns + `
FROM exercise_sessions
WHERE id = $1 AND user_id = $2 AND status = 'in_progress'`

const getScoredSQL = `
SELECT ` + sessionColumns + `
FROM exercise_sessions
WHERE id = $1 AND user_id = $2 AND status IN ('in_progress', 'completed')`

const listVocabularyIDsSQL = `
SELECT vocabulary_id FROM exercise_session_vocabularies WHERE session_id = $1 ORDER BY vocabulary_id`

const deleteLinksSQL = `
DELETE FROM exercise_session_vocabularies
WHERE session_id IN (SELECT id FROM exercise_sessions WHERE id = $1 AND user_id = $2)`

const deleteSQL = `
DELETE FROM exercise_sessions WHERE id = $1 AND user_id = $2`

const abandonSQL = `
UPDATE exercise_sessions
SET status = 'abandoned'
WHERE id = $1 AND user_id = $2 AND status = 'in_progress'`

const incrementScoreSQL = `
UPDATE exercise_sessions
SET score = score + 1
WHERE id = $1 AND user_id = $2 AND status = 'in_progress' AND score < total_questions
RETURNING ` + sessionColumns

const completeSQL = `
UPDATE exercise_sessions
SET status = 'completed', completed_at = $3
WHERE id = $1 AND user_id = $2 AND status = 'in_progress'
RETURNING ` + sessionColumns

const listCompletedByStepSQL = `
SELECT ` + sessionColumns + `
FROM exercise_sessions
WHERE user_id = $1 AND trail_step_id = $2 AND status = 'completed'
ORDER BY completed_at DESC NULLS LAST, created_at DESC`

const listLatestByUserSQL = `
SELECT DISTINCT ON (exercise_id) ` + sessionColumns + `
FROM exercise_sessions
WHERE user_id = $1
ORDER BY exercise_id, created_at DESC, id DESC`

const abandonExpiredSQL = `
UPDATE exercise_sessions
SET status = 'abandoned'
WHERE status = 'in_progress' AND expires_at < $1`

const deleteAbandonedSQL = `
DELETE FROM exercise_sessions
WHERE status = 'abandoned' AND expires_at < $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetLatest returns the most recently created session of a user for an exercise.
// Returns domain.ErrNotFound if the user never started the exercise.
func (r *Repo) GetLatest(ctx context.Context, userID, exerciseID uuid.UUID) (*domain.ExerciseSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	s, err := scanSession(querier.QueryRow(ctx, getLatestSQL, userID, exerciseID))
	if err != nil {
		return nil, postgres.MapError(err, "latest session for exercise", exerciseID)
	}
	return s, nil
}

// GetInProgress returns an in_progress session owned by userID.
// Returns domain.ErrNotFound for unknown ids, other owners and finished sessions alike.
func (r *Repo) GetInProgress(ctx context.Context, userID, sessionID uuid.UUID) (*domain.ExerciseSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	s, err := scanSession(querier.QueryRow(ctx, getInProgressSQL, sessionID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "session", sessionID)
	}
	return s, nil
}

// ListVocabularyIDs returns the vocabulary ids linked to a session when it was created.
func (r *Repo) ListVocabularyIDs(ctx context.Context, sessionID uuid.UUID) ([]uuid.UUID, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, listVocabularyIDsSQL, sessionID)
	if err != nil {
		return nil, fmt.Errorf("session %s: list vocabulary ids: %w", sessionID, err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("session %s: list vocabulary ids: %w", sessionID, err)
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return ids, nil
}

// ListCompletedByTrailStep returns the user's completed sessions for a trail step.
func (r *Repo) ListCompletedByTrailStep(ctx context.Context, userID, trailStepID uuid.UUID) ([]domain.ExerciseSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, listCompletedByStepSQL, userID, trailStepID)
	if err != nil {
		return nil, fmt.Errorf("list completed sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// ListLatestByUser returns, for every exercise the user has touched, the most
// recent session.
func (r *Repo) ListLatestByUser(ctx context.Context, userID uuid.UUID) ([]domain.ExerciseSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, listLatestByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list latest sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new in_progress session and links the given vocabulary ids
// to it. Both statements run on the querier from ctx, so callers wrap Create in
// a transaction to make it atomic. A second live session for the same
// (user, exercise) violates a partial unique index and yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, s *domain.ExerciseSession, vocabularyIDs []uuid.UUID) (*domain.ExerciseSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	createdAt := s.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	row := querier.QueryRow(ctx, createSQL,
		s.ID,
		s.UserID,
		s.ExerciseID,
		s.TrailStepID,
		s.TotalQuestions,
		s.ExpiresAt.UTC().Truncate(time.Microsecond),
		createdAt.UTC().Truncate(time.Microsecond),
	)

	created, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "session", s.ID)
	}

	if len(vocabularyIDs) == 0 {
		return created, nil
	}

	batch := &pgx.Batch{}
	for _, vid := range vocabularyIDs {
		batch.Queue(linkVocabularySQL, created.ID, vid)
	}

	br := querier.SendBatch(ctx, batch)
	for range vocabularyIDs {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return nil, postgres.MapError(err, "session vocabulary", created.ID)
		}
	}
	if err := br.Close(); err != nil {
		return nil, postgres.MapError(err, "session vocabulary", created.ID)
	}

	return created, nil
}

// Delete removes a session and its vocabulary join rows. Callers run it in a
// transaction so the two deletes succeed or fail together.
// Returns domain.ErrNotFound if the session does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, sessionID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := querier.Exec(ctx, deleteLinksSQL, sessionID, userID); err != nil {
		return postgres.MapError(err, "session vocabulary", sessionID)
	}

	ct, err := querier.Exec(ctx, deleteSQL, sessionID, userID)
	if err != nil {
		return postgres.MapError(err, "session", sessionID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("session %s: %w", sessionID, domain.ErrNotFound)
	}

	return nil
}

// Abandon marks an in_progress session as abandoned.
// Returns domain.ErrNotFound if the session is not in progress or belongs to another user.
func (r *Repo) Abandon(ctx context.Context, userID, sessionID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	ct, err := querier.Exec(ctx, abandonSQL, sessionID, userID)
	if err != nil {
		return postgres.MapError(err, "session", sessionID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("session %s: %w", sessionID, domain.ErrNotFound)
	}

	return nil
}

// IncrementScore atomically adds one point to an in_progress session as long
// as the score is below total_questions. When the ceiling has already been
// reached the session is returned unchanged, so a resubmitted answer can never
// push the score past the total. An abandoned session yields domain.ErrNotFound.
func (r *Repo) IncrementScore(ctx context.Context, userID, sessionID uuid.UUID) (*domain.ExerciseSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	s, err := scanSession(querier.QueryRow(ctx, incrementScoreSQL, sessionID, userID))
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, postgres.MapError(err, "session", sessionID)
	}

	s, err = scanSession(querier.QueryRow(ctx, getScoredSQL, sessionID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "session", sessionID)
	}
	return s, nil
}

// Complete transitions an in_progress session to completed.
// Returns domain.ErrNotFound if the session was already finished.
func (r *Repo) Complete(ctx context.Context, userID, sessionID uuid.UUID, at time.Time) (*domain.ExerciseSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	s, err := scanSession(querier.QueryRow(ctx, completeSQL, sessionID, userID, at.UTC().Truncate(time.Microsecond)))
	if err != nil {
		return nil, postgres.MapError(err, "session", sessionID)
	}
	return s, nil
}

// AbandonExpired marks every in_progress session whose deadline is before now
// as abandoned. Returns the number of sessions updated.
func (r *Repo) AbandonExpired(ctx context.Context, now time.Time) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	ct, err := querier.Exec(ctx, abandonExpiredSQL, now.UTC())
	if err != nil {
		return 0, fmt.Errorf("abandon expired sessions: %w", err)
	}
	return ct.RowsAffected(), nil
}

// DeleteAbandonedBefore removes abandoned sessions that expired before the
// threshold. Join rows go with them through the foreign key cascade.
func (r *Repo) DeleteAbandonedBefore(ctx context.Context, threshold time.Time) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	ct, err := querier.Exec(ctx, deleteAbandonedSQL, threshold.UTC())
	if err != nil {
		return 0, fmt.Errorf("delete abandoned sessions: %w", err)
	}
	return ct.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanSession(row pgx.Row) (*domain.ExerciseSession, error) {
	var (
		s      domain.ExerciseSession
		status string
	)

	if err := row.Scan(
		&s.ID, &s.UserID, &s.ExerciseID, &s.TrailStepID,
		&s.TotalQuestions, &s.Score, &status,
		&s.ExpiresAt, &s.CompletedAt, &s.CreatedAt,
	); err != nil {
		return nil, err
	}

	s.Status = domain.SessionStatus(status)
	return &s, nil
}

func scanSessions(rows pgx.Rows) ([]domain.ExerciseSession, error) {
	sessions := []domain.ExerciseSession{}
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}
