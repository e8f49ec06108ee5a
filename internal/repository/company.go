package repository

import (
	"context"

	"companyapi/internal/model"
)

// CompanyRepository defines data access for companies using SQL queries only.
type CompanyRepository interface {
	// List returns every company ordered by id.
	List(ctx context.Context) ([]model.Company, error)

	// FindByID returns a company by its ID or ErrNotFound.
	FindByID(ctx context.Context, id int64) (*model.Company, error)

	// Create inserts a new company and returns it with the store-assigned ID.
	Create(ctx context.Context, c *model.Company) (*model.Company, error)

	// Update replaces the mutable fields of an existing company. It returns ErrNotFound if the row is absent.
	Update(ctx context.Context, c *model.Company) (*model.Company, error)

	// Delete removes a company by ID. It returns ErrNotFound if the row is absent.
	Delete(ctx context.Context, id int64) error
}
