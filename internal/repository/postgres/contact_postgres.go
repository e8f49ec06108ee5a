package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"companyapi/internal/model"
	"companyapi/internal/repository"
)

type contactRow struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	CompanyID int64  `db:"company_id"`
	CountryID int64  `db:"country_id"`
}

func (r contactRow) toModel() *model.Contact {
	return &model.Contact{
		ID:        r.ID,
		Name:      r.Name,
		CompanyID: r.CompanyID,
		CountryID: r.CountryID,
	}
}

// contactDetailRow is a contact joined with its company and country names.
type contactDetailRow struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	CompanyID   int64  `db:"company_id"`
	CountryID   int64  `db:"country_id"`
	CompanyName string `db:"company_name"`
	CountryName string `db:"country_name"`
}

func (r contactDetailRow) toModel() model.Contact {
	return model.Contact{
		ID:        r.ID,
		Name:      r.Name,
		CompanyID: r.CompanyID,
		CountryID: r.CountryID,
		Company:   &model.Company{ID: r.CompanyID, Name: r.CompanyName},
		Country:   &model.Country{ID: r.CountryID, Name: r.CountryName},
	}
}

const contactDetailsQuery = `
	SELECT c.id, c.name, c.company_id, c.country_id,
	       co.name AS company_name, cn.name AS country_name
	FROM contacts c
	JOIN companies co ON co.id = c.company_id
	JOIN countries cn ON cn.id = c.country_id`

// ContactPostgres is a PostgreSQL implementation of repository.ContactRepository.
// It uses sqlx with parameterized queries and contains no business logic.
type ContactPostgres struct {
	db *sqlx.DB
}

// NewContactPostgres creates a new ContactPostgres repository.
func NewContactPostgres(db *sqlx.DB) *ContactPostgres {
	return &ContactPostgres{db: db}
}

var _ repository.ContactRepository = (*ContactPostgres)(nil)

// List returns all contacts ordered by id. Company and Country are left nil.
func (r *ContactPostgres) List(ctx context.Context) ([]model.Contact, error) {
	const q = `SELECT id, name, company_id, country_id FROM contacts ORDER BY id`
	var rows []contactRow
	if err := r.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, wrapError(err, "list contacts")
	}
	return contactsFromRows(rows), nil
}

// ListPage returns the LIMIT/OFFSET window of the List ordering.
func (r *ContactPostgres) ListPage(ctx context.Context, pq repository.PageQuery) ([]model.Contact, error) {
	const q = `
		SELECT id, name, company_id, country_id
		FROM contacts
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	var rows []contactRow
	if err := r.db.SelectContext(ctx, &rows, q, pq.Limit, pq.Offset); err != nil {
		return nil, wrapError(err, fmt.Sprintf("list contacts page (limit %d, offset %d)", pq.Limit, pq.Offset))
	}
	return contactsFromRows(rows), nil
}

// ListWithDetails returns all contacts with their company and country loaded.
func (r *ContactPostgres) ListWithDetails(ctx context.Context) ([]model.Contact, error) {
	return r.selectDetails(ctx, repository.ContactFilter{}, "list contacts with details")
}

// Filter returns contacts matching every non-nil field of f, with company and country loaded.
func (r *ContactPostgres) Filter(ctx context.Context, f repository.ContactFilter) ([]model.Contact, error) {
	return r.selectDetails(ctx, f, "filter contacts")
}

func (r *ContactPostgres) selectDetails(ctx context.Context, f repository.ContactFilter, op string) ([]model.Contact, error) {
	where, args := buildContactWhere(f)
	q := contactDetailsQuery + where + "\n\tORDER BY c.id"

	var rows []contactDetailRow
	if err := r.db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, wrapError(err, op)
	}

	items := make([]model.Contact, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toModel())
	}
	return items, nil
}

// buildContactWhere renders the WHERE clause for f with positional arguments.
func buildContactWhere(f repository.ContactFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.CountryID != nil {
		args = append(args, *f.CountryID)
		conds = append(conds, fmt.Sprintf("c.country_id = $%d", len(args)))
	}
	if f.CompanyID != nil {
		args = append(args, *f.CompanyID)
		conds = append(conds, fmt.Sprintf("c.company_id = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return "\n\tWHERE " + strings.Join(conds, " AND "), args
}

func (r *ContactPostgres) FindByID(ctx context.Context, id int64) (*model.Contact, error) {
	const q = `SELECT id, name, company_id, country_id FROM contacts WHERE id = $1`
	var row contactRow
	if err := r.db.GetContext(ctx, &row, q, id); err != nil {
		return nil, wrapError(err, fmt.Sprintf("get contact %d", id))
	}
	return row.toModel(), nil
}

func (r *ContactPostgres) Create(ctx context.Context, c *model.Contact) (*model.Contact, error) {
	const q = `
		INSERT INTO contacts (name, company_id, country_id)
		VALUES ($1, $2, $3)
		RETURNING id, name, company_id, country_id
	`
	var row contactRow
	if err := r.db.GetContext(ctx, &row, q, c.Name, c.CompanyID, c.CountryID); err != nil {
		return nil, wrapError(err, "create contact")
	}
	return row.toModel(), nil
}

// Update replaces name and both foreign keys of an existing contact.
func (r *ContactPostgres) Update(ctx context.Context, c *model.Contact) (*model.Contact, error) {
	const q = `
		UPDATE contacts
		SET name = $1, company_id = $2, country_id = $3
		WHERE id = $4
		RETURNING id, name, company_id, country_id
	`
	var row contactRow
	if err := r.db.GetContext(ctx, &row, q, c.Name, c.CompanyID, c.CountryID, c.ID); err != nil {
		return nil, wrapError(err, fmt.Sprintf("update contact %d", c.ID))
	}
	return row.toModel(), nil
}

func (r *ContactPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM contacts WHERE id = $1`
	op := fmt.Sprintf("delete contact %d", id)
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return wrapError(err, op)
	}
	return checkRowsAffected(res, op)
}

func contactsFromRows(rows []contactRow) []model.Contact {
	items := make([]model.Contact, 0, len(rows))
	for _, row := range rows {
		items = append(items, *row.toModel())
	}
	return items
}
