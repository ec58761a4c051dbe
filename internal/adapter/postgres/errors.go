package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rbradwell/language-learning/internal/domain"
)

// SQLSTATE codes mapped onto domain categories.
var pgCodeCategory = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation (incl. one live session per user and exercise)
	"23503": domain.ErrNotFound,      // foreign_key_violation
	"23514": domain.ErrValidation,    // check_violation
	"22P02": domain.ErrValidation,    // invalid_text_representation
	"40001": domain.ErrConflict,      // serialization_failure
	"40P01": domain.ErrConflict,      // deadlock_detected
}

// MapError converts pgx errors into domain errors prefixed with the entity
// and id. Context cancellation and deadlines pass through unmapped. For
// constraint violations the constraint name is kept in the message.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if category, ok := pgCodeCategory[pgErr.Code]; ok {
			if pgErr.ConstraintName != "" {
				return fmt.Errorf("%s %s (%s): %w", entity, id, pgErr.ConstraintName, category)
			}
			return fmt.Errorf("%s %s: %w", entity, id, category)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
