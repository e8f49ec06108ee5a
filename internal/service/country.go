package service

import (
	"context"

	"go.uber.org/zap"

	"companyapi/internal/model"
	"companyapi/internal/repository"
)

// CountryService defines the use cases for managing countries.
// It mirrors CompanyService.
type CountryService interface {
	List(ctx context.Context) ([]model.Country, error)
	Get(ctx context.Context, id int64) (*model.Country, error)
	Create(ctx context.Context, c *model.Country) (*model.Country, error)
	Update(ctx context.Context, c *model.Country) (*model.Country, error)
	Delete(ctx context.Context, id int64) error
}

type countryService struct {
	repo repository.CountryRepository
	log  *zap.Logger
}

func NewCountryService(repo repository.CountryRepository, log *zap.Logger) CountryService {
	return &countryService{repo: repo, log: log.Named("country")}
}

func (s *countryService) List(ctx context.Context) ([]model.Country, error) {
	return s.repo.List(ctx)
}

func (s *countryService) Get(ctx context.Context, id int64) (*model.Country, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return c, nil
}

func (s *countryService) Create(ctx context.Context, c *model.Country) (*model.Country, error) {
	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	s.log.Info("country created", zap.Int64("country_id", created.ID), zap.String("name", created.Name))
	return created, nil
}

func (s *countryService) Update(ctx context.Context, c *model.Country) (*model.Country, error) {
	updated, err := s.repo.Update(ctx, c)
	if err != nil {
		return nil, translate(err)
	}
	s.log.Info("country updated", zap.Int64("country_id", updated.ID))
	return updated, nil
}

func (s *countryService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translate(err)
	}
	s.log.Info("country deleted", zap.Int64("country_id", id))
	return nil
}
