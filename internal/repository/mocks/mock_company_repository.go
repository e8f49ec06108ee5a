package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"companyapi/internal/model"
)

type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) List(ctx context.Context) ([]model.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindByID(ctx context.Context, id int64) (*model.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Company), args.Error(1)
}

func (m *MockCompanyRepository) Create(ctx context.Context, c *model.Company) (*model.Company, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Company), args.Error(1)
}

func (m *MockCompanyRepository) Update(ctx context.Context, c *model.Company) (*model.Company, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Company), args.Error(1)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
