package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"companyapi/internal/model"
)

type MockCountryRepository struct {
	mock.Mock
}

func (m *MockCountryRepository) List(ctx context.Context) ([]model.Country, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Country), args.Error(1)
}

func (m *MockCountryRepository) FindByID(ctx context.Context, id int64) (*model.Country, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Country), args.Error(1)
}

func (m *MockCountryRepository) Create(ctx context.Context, c *model.Country) (*model.Country, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Country), args.Error(1)
}

func (m *MockCountryRepository) Update(ctx context.Context, c *model.Country) (*model.Country, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Country), args.Error(1)
}

func (m *MockCountryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
