package service

import (
	"context"
	"math"

	"go.uber.org/zap"

	"companyapi/internal/model"
	"companyapi/internal/repository"
)

// ContactService defines the use cases for managing contacts.
type ContactService interface {
	List(ctx context.Context) ([]model.Contact, error)

	// ListPaged returns page pageNumber (1-based) of the id-ordered contact list.
	// pageNumber below 1 yields ErrInvalidPageNumber. A page whose offset does not fit in an int
	// lies past any stored data and is returned empty.
	ListPaged(ctx context.Context, pageNumber int) ([]model.Contact, error)

	// ListWithDetails returns every contact with Company and Country populated.
	ListWithDetails(ctx context.Context) ([]model.Contact, error)

	// Filter returns contacts matching all present filters, with Company and Country populated.
	Filter(ctx context.Context, f repository.ContactFilter) ([]model.Contact, error)

	Get(ctx context.Context, id int64) (*model.Contact, error)
	Create(ctx context.Context, c *model.Contact) (*model.Contact, error)
	Update(ctx context.Context, c *model.Contact) (*model.Contact, error)
	Delete(ctx context.Context, id int64) error
}

type contactService struct {
	repo     repository.ContactRepository
	pageSize int
	log      *zap.Logger
}

// defaultPageSize applies when a non-positive page size is passed to NewContactService.
const defaultPageSize = 10

// NewContactService constructs a ContactService paging with the given page size.
func NewContactService(repo repository.ContactRepository, pageSize int, log *zap.Logger) ContactService {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &contactService{repo: repo, pageSize: pageSize, log: log.Named("contact")}
}

func (s *contactService) List(ctx context.Context) ([]model.Contact, error) {
	return s.repo.List(ctx)
}

func (s *contactService) ListPaged(ctx context.Context, pageNumber int) ([]model.Contact, error) {
	if pageNumber < 1 {
		return nil, ErrInvalidPageNumber
	}
	if pageNumber-1 > math.MaxInt/s.pageSize {
		s.log.Debug("contacts page beyond addressable offset", zap.Int("page_number", pageNumber))
		return []model.Contact{}, nil
	}
	pq := repository.PageQuery{
		Limit:  s.pageSize,
		Offset: (pageNumber - 1) * s.pageSize,
	}
	s.log.Debug("fetching contacts page", zap.Int("page_number", pageNumber), zap.Int("page_size", s.pageSize))
	return s.repo.ListPage(ctx, pq)
}

func (s *contactService) ListWithDetails(ctx context.Context) ([]model.Contact, error) {
	return s.repo.ListWithDetails(ctx)
}

func (s *contactService) Filter(ctx context.Context, f repository.ContactFilter) ([]model.Contact, error) {
	s.log.Debug("filtering contacts", zap.Int64p("country_id", f.CountryID), zap.Int64p("company_id", f.CompanyID))
	return s.repo.Filter(ctx, f)
}

func (s *contactService) Get(ctx context.Context, id int64) (*model.Contact, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return c, nil
}

func (s *contactService) Create(ctx context.Context, c *model.Contact) (*model.Contact, error) {
	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	s.log.Info("contact created",
		zap.Int64("contact_id", created.ID),
		zap.Int64("company_id", created.CompanyID),
		zap.Int64("country_id", created.CountryID),
	)
	return created, nil
}

func (s *contactService) Update(ctx context.Context, c *model.Contact) (*model.Contact, error) {
	updated, err := s.repo.Update(ctx, c)
	if err != nil {
		return nil, translate(err)
	}
	s.log.Info("contact updated", zap.Int64("contact_id", updated.ID))
	return updated, nil
}

func (s *contactService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translate(err)
	}
	s.log.Info("contact deleted", zap.Int64("contact_id", id))
	return nil
}
