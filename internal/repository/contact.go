package repository

import (
	"context"

	"companyapi/internal/model"
)

// ContactRepository defines data access for contacts.
type ContactRepository interface {
	// List returns every contact ordered by id, without company/country details.
	List(ctx context.Context) ([]model.Contact, error)

	// ListPage returns one LIMIT/OFFSET window of the List ordering.
	ListPage(ctx context.Context, pq PageQuery) ([]model.Contact, error)

	// ListWithDetails returns every contact with Company and Country populated.
	ListWithDetails(ctx context.Context) ([]model.Contact, error)

	// Filter returns contacts matching f with Company and Country populated.
	Filter(ctx context.Context, f ContactFilter) ([]model.Contact, error)

	FindByID(ctx context.Context, id int64) (*model.Contact, error)
	Create(ctx context.Context, c *model.Contact) (*model.Contact, error)
	Update(ctx context.Context, c *model.Contact) (*model.Contact, error)
	Delete(ctx context.Context, id int64) error
}
