package postgres

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"companyapi/internal/repository"
)

func TestWrapError(t *testing.T) {
	assert.NoError(t, wrapError(nil, "noop"))

	err := wrapError(sql.ErrNoRows, "get company 1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.EqualError(t, err, "get company 1: record not found")

	fk := &pgconn.PgError{Code: "23503", ConstraintName: "contacts_company_id_fkey"}
	err = wrapError(fk, "create contact")
	assert.NotErrorIs(t, err, repository.ErrNotFound)
	assert.Contains(t, err.Error(), "contacts_company_id_fkey")
	assert.Contains(t, err.Error(), "23503")
	var pgErr *pgconn.PgError
	assert.True(t, errors.As(err, &pgErr))

	err = wrapError(errors.New("timeout"), "list contacts")
	assert.EqualError(t, err, "list contacts: timeout")
}

func TestCheckRowsAffected(t *testing.T) {
	assert.NoError(t, checkRowsAffected(sqlmock.NewResult(0, 1), "delete contact 1"))
	assert.ErrorIs(t, checkRowsAffected(sqlmock.NewResult(0, 0), "delete contact 1"), repository.ErrNotFound)

	err := checkRowsAffected(sqlmock.NewErrorResult(errors.New("unsupported")), "delete contact 1")
	assert.EqualError(t, err, "delete contact 1: rows affected: unsupported")
}
