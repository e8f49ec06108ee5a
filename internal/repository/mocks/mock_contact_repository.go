package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"companyapi/internal/model"
	"companyapi/internal/repository"
)

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) contacts(args mock.Arguments) ([]model.Contact, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Contact), args.Error(1)
}

func (m *MockContactRepository) contact(args mock.Arguments) (*model.Contact, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contact), args.Error(1)
}

func (m *MockContactRepository) List(ctx context.Context) ([]model.Contact, error) {
	return m.contacts(m.Called(ctx))
}

func (m *MockContactRepository) ListPage(ctx context.Context, pq repository.PageQuery) ([]model.Contact, error) {
	return m.contacts(m.Called(ctx, pq))
}

func (m *MockContactRepository) ListWithDetails(ctx context.Context) ([]model.Contact, error) {
	return m.contacts(m.Called(ctx))
}

func (m *MockContactRepository) Filter(ctx context.Context, f repository.ContactFilter) ([]model.Contact, error) {
	return m.contacts(m.Called(ctx, f))
}

func (m *MockContactRepository) FindByID(ctx context.Context, id int64) (*model.Contact, error) {
	return m.contact(m.Called(ctx, id))
}

func (m *MockContactRepository) Create(ctx context.Context, c *model.Contact) (*model.Contact, error) {
	return m.contact(m.Called(ctx, c))
}

func (m *MockContactRepository) Update(ctx context.Context, c *model.Contact) (*model.Contact, error) {
	return m.contact(m.Called(ctx, c))
}

func (m *MockContactRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
