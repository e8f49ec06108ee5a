package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"companyapi/internal/model"
	"companyapi/internal/repository"
)

type companyRow struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

func (r companyRow) toModel() *model.Company {
	return &model.Company{ID: r.ID, Name: r.Name}
}

// CompanyPostgres is a PostgreSQL implementation of repository.CompanyRepository.
type CompanyPostgres struct {
	db *sqlx.DB
}

// NewCompanyPostgres creates a new CompanyPostgres repository.
func NewCompanyPostgres(db *sqlx.DB) *CompanyPostgres {
	return &CompanyPostgres{db: db}
}

var _ repository.CompanyRepository = (*CompanyPostgres)(nil)

func (r *CompanyPostgres) List(ctx context.Context) ([]model.Company, error) {
	const q = `SELECT id, name FROM companies ORDER BY id`
	var rows []companyRow
	if err := r.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, wrapError(err, "list companies")
	}

	items := make([]model.Company, 0, len(rows))
	for _, row := range rows {
		items = append(items, *row.toModel())
	}
	return items, nil
}

func (r *CompanyPostgres) FindByID(ctx context.Context, id int64) (*model.Company, error) {
	const q = `SELECT id, name FROM companies WHERE id = $1`
	var row companyRow
	if err := r.db.GetContext(ctx, &row, q, id); err != nil {
		return nil, wrapError(err, fmt.Sprintf("get company %d", id))
	}
	return row.toModel(), nil
}

func (r *CompanyPostgres) Create(ctx context.Context, c *model.Company) (*model.Company, error) {
	const q = `INSERT INTO companies (name) VALUES ($1) RETURNING id, name`
	var row companyRow
	if err := r.db.GetContext(ctx, &row, q, c.Name); err != nil {
		return nil, wrapError(err, "create company")
	}
	return row.toModel(), nil
}

func (r *CompanyPostgres) Update(ctx context.Context, c *model.Company) (*model.Company, error) {
	const q = `UPDATE companies SET name = $1 WHERE id = $2 RETURNING id, name`
	var row companyRow
	if err := r.db.GetContext(ctx, &row, q, c.Name, c.ID); err != nil {
		return nil, wrapError(err, fmt.Sprintf("update company %d", c.ID))
	}
	return row.toModel(), nil
}

func (r *CompanyPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM companies WHERE id = $1`
	op := fmt.Sprintf("delete company %d", id)
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return wrapError(err, op)
	}
	return checkRowsAffected(res, op)
}
