package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/factsphere/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors and prefixes them with
// op (for example "fact 7" or "insert fact").
// context.DeadlineExceeded and context.Canceled are NOT mapped, they pass through.
func MapError(err error, op string) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}

	// pgx.ErrNoRows → domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrUnavailable, err)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s: %w", op, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s: %w", op, domain.ErrValidation)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s: %w", op, err)
}
