package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"companyapi/internal/model"
	"companyapi/internal/repository"
)

type MockContactService struct {
	mock.Mock
}

func contactList(args mock.Arguments) ([]model.Contact, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Contact), args.Error(1)
}

func contactOne(args mock.Arguments) (*model.Contact, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contact), args.Error(1)
}

func (m *MockContactService) List(ctx context.Context) ([]model.Contact, error) {
	return contactList(m.Called(ctx))
}

func (m *MockContactService) ListPaged(ctx context.Context, pageNumber int) ([]model.Contact, error) {
	return contactList(m.Called(ctx, pageNumber))
}

func (m *MockContactService) ListWithDetails(ctx context.Context) ([]model.Contact, error) {
	return contactList(m.Called(ctx))
}

func (m *MockContactService) Filter(ctx context.Context, f repository.ContactFilter) ([]model.Contact, error) {
	return contactList(m.Called(ctx, f))
}

func (m *MockContactService) Get(ctx context.Context, id int64) (*model.Contact, error) {
	return contactOne(m.Called(ctx, id))
}

func (m *MockContactService) Create(ctx context.Context, c *model.Contact) (*model.Contact, error) {
	return contactOne(m.Called(ctx, c))
}

func (m *MockContactService) Update(ctx context.Context, c *model.Contact) (*model.Contact, error) {
	return contactOne(m.Called(ctx, c))
}

func (m *MockContactService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
