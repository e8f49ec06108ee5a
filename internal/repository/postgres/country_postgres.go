package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"companyapi/internal/model"
	"companyapi/internal/repository"
)

type countryRow struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

func (r countryRow) toModel() *model.Country {
	return &model.Country{ID: r.ID, Name: r.Name}
}

// CountryPostgres is a PostgreSQL implementation of repository.CountryRepository.
type CountryPostgres struct {
	db *sqlx.DB
}

// NewCountryPostgres returns a CountryPostgres backed by db.
func NewCountryPostgres(db *sqlx.DB) *CountryPostgres {
	return &CountryPostgres{db: db}
}

var _ repository.CountryRepository = (*CountryPostgres)(nil)

func (r *CountryPostgres) List(ctx context.Context) ([]model.Country, error) {
	const q = `SELECT id, name FROM countries ORDER BY id`
	var rows []countryRow
	if err := r.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, wrapError(err, "list countries")
	}

	items := make([]model.Country, 0, len(rows))
	for _, row := range rows {
		items = append(items, *row.toModel())
	}
	return items, nil
}

func (r *CountryPostgres) FindByID(ctx context.Context, id int64) (*model.Country, error) {
	const q = `SELECT id, name FROM countries WHERE id = $1`
	var row countryRow
	if err := r.db.GetContext(ctx, &row, q, id); err != nil {
		return nil, wrapError(err, fmt.Sprintf("get country %d", id))
	}
	return row.toModel(), nil
}

func (r *CountryPostgres) Create(ctx context.Context, c *model.Country) (*model.Country, error) {
	const q = `INSERT INTO countries (name) VALUES ($1) RETURNING id, name`
	var row countryRow
	if err := r.db.GetContext(ctx, &row, q, c.Name); err != nil {
		return nil, wrapError(err, "create country")
	}
	return row.toModel(), nil
}

func (r *CountryPostgres) Update(ctx context.Context, c *model.Country) (*model.Country, error) {
	const q = `UPDATE countries SET name = $1 WHERE id = $2 RETURNING id, name`
	var row countryRow
	if err := r.db.GetContext(ctx, &row, q, c.Name, c.ID); err != nil {
		return nil, wrapError(err, fmt.Sprintf("update country %d", c.ID))
	}
	return row.toModel(), nil
}

func (r *CountryPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM countries WHERE id = $1`
	op := fmt.Sprintf("delete country %d", id)
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return wrapError(err, op)
	}
	return checkRowsAffected(res, op)
}
