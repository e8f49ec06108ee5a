package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"companyapi/internal/model"
	"companyapi/internal/repository"
	repoMocks "companyapi/internal/repository/mocks"
)

func TestCountryService(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockCountryRepository)
	svc := NewCountryService(mRepo, zap.NewNop())

	in := &model.Country{Name: "US"}
	mRepo.On("Create", ctx, in).Return(&model.Country{ID: 1, Name: "US"}, nil).Once()
	created, err := svc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	mRepo.On("FindByID", ctx, int64(1)).Return(created, nil).Once()
	got, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	mRepo.On("List", ctx).Return([]model.Country{*created}, nil).Once()
	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Country{{ID: 1, Name: "US"}}, all)

	mRepo.On("Delete", ctx, int64(1)).Return(nil).Once()
	require.NoError(t, svc.Delete(ctx, 1))

	mRepo.On("FindByID", ctx, int64(1)).Return(nil, repository.ErrNotFound).Once()
	_, err = svc.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	mRepo.On("Update", ctx, created).Return(nil, repository.ErrNotFound).Once()
	_, err = svc.Update(ctx, created)
	assert.ErrorIs(t, err, ErrNotFound)

	mRepo.AssertExpectations(t)
}
