package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/wanderto/wanderto-backend/internal/domain"
)

// mapError converts pgx/pgconn errors into domain errors. The key identifies
// the affected row (event ID or link).
func mapError(err error, key string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("event %s: %w", key, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("event %s: %w", key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("event %s: %w", key, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("event %s: %w", key, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("event %s: %w", key, domain.ErrValidation)
		}
	}

	return fmt.Errorf("event %s: %w", key, err)
}
