package service

import (
	"context"

	"go.uber.org/zap"

	"companyapi/internal/model"
	"companyapi/internal/repository"
)

// CompanyService defines the use cases for managing companies.
type CompanyService interface {
	// List returns every company.
	List(ctx context.Context) ([]model.Company, error)

	// Get returns a single company or ErrNotFound.
	Get(ctx context.Context, id int64) (*model.Company, error)

	// Create stores a new company; the returned value carries the assigned ID.
	Create(ctx context.Context, c *model.Company) (*model.Company, error)

	// Update replaces an existing company or returns ErrNotFound.
	Update(ctx context.Context, c *model.Company) (*model.Company, error)

	// Delete removes a company or returns ErrNotFound.
	Delete(ctx context.Context, id int64) error
}

type companyService struct {
	repo repository.CompanyRepository
	log  *zap.Logger
}

// NewCompanyService constructs a new CompanyService.
func NewCompanyService(repo repository.CompanyRepository, log *zap.Logger) CompanyService {
	return &companyService{repo: repo, log: log.Named("company")}
}

func (s *companyService) List(ctx context.Context) ([]model.Company, error) {
	return s.repo.List(ctx)
}

func (s *companyService) Get(ctx context.Context, id int64) (*model.Company, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return c, nil
}

func (s *companyService) Create(ctx context.Context, c *model.Company) (*model.Company, error) {
	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	s.log.Info("company created", zap.Int64("company_id", created.ID), zap.String("name", created.Name))
	return created, nil
}

func (s *companyService) Update(ctx context.Context, c *model.Company) (*model.Company, error) {
	updated, err := s.repo.Update(ctx, c)
	if err != nil {
		return nil, translate(err)
	}
	s.log.Info("company updated", zap.Int64("company_id", updated.ID))
	return updated, nil
}

func (s *companyService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translate(err)
	}
	s.log.Info("company deleted", zap.Int64("company_id", id))
	return nil
}
