package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"companyapi/internal/repository"
)

// wrapError annotates err with the failed operation.
// Missing rows become repository.ErrNotFound; constraint violations keep the constraint name for the logs.
func wrapError(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.ConstraintName != "" {
		return fmt.Errorf("%s: constraint %s (sqlstate %s): %w", op, pgErr.ConstraintName, pgErr.Code, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// checkRowsAffected returns repository.ErrNotFound when a statement touched no rows.
func checkRowsAffected(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}
	return nil
}
