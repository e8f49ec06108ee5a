package repository

import (
	"context"

	"companyapi/internal/model"
)

// CountryRepository defines data access for countries.
type CountryRepository interface {
	List(ctx context.Context) ([]model.Country, error)
	FindByID(ctx context.Context, id int64) (*model.Country, error)
	Create(ctx context.Context, c *model.Country) (*model.Country, error)
	Update(ctx context.Context, c *model.Country) (*model.Country, error)
	Delete(ctx context.Context, id int64) error
}
