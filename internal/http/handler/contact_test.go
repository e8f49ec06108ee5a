package handler

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"companyapi/internal/model"
	"companyapi/internal/repository"
	repoMocks "companyapi/internal/repository/mocks"
	"companyapi/internal/service"
	serviceMocks "companyapi/internal/service/mocks"
)

func newContactApp(svc service.ContactService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	RegisterRoutes(app, nil, Services{Contact: svc})
	return app
}

func int64Ptr(v int64) *int64 { return &v }

func bob() model.Contact {
	return model.Contact{
		ID:        1,
		Name:      "Bob",
		CompanyID: 1,
		CountryID: 1,
		Company:   &model.Company{ID: 1, Name: "Acme"},
		Country:   &model.Country{ID: 1, Name: "US"},
	}
}

func TestListContactsPaged(t *testing.T) {
	mockSvc := new(serviceMocks.MockContactService)
	app := newContactApp(mockSvc)

	t.Run("defaults to first page", func(t *testing.T) {
		mockSvc.On("ListPaged", mock.Anything, 1).Return([]model.Contact{{ID: 1, Name: "Bob", CompanyID: 1, CountryID: 1}}, nil).Once()

		resp, err := app.Test(jsonRequest(http.MethodGet, "/api/contact/paged", ""))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, decode[[]model.Contact](t, resp), 1)
	})

	t.Run("explicit page", func(t *testing.T) {
		mockSvc.On("ListPaged", mock.Anything, 3).Return([]model.Contact{}, nil).Once()

		resp, err := app.Test(jsonRequest(http.MethodGet, "/api/contact/paged?pageNumber=3", ""))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, decode[[]model.Contact](t, resp))
	})

	t.Run("invalid page numbers", func(t *testing.T) {
		for _, q := range []string{"0", "-1", "two"} {
			resp, err := app.Test(jsonRequest(http.MethodGet, "/api/contact/paged?pageNumber="+q, ""))
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
			assert.Equal(t, "INVALID_PAGE_NUMBER", decode[errorPayload](t, resp).Error.Code)
		}
	})

	mockSvc.AssertExpectations(t)
}

func TestListContactsPaged_PageBeyondAddressableOffset(t *testing.T) {
	repo := new(repoMocks.MockContactRepository)
	app := newContactApp(service.NewContactService(repo, 10, zap.NewNop()))

	target := "/api/contact/paged?pageNumber=" + strconv.Itoa(math.MaxInt/10+2)
	resp, err := app.Test(jsonRequest(http.MethodGet, target, ""))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[[]model.Contact](t, resp))
	repo.AssertNotCalled(t, "ListPage", mock.Anything, mock.Anything)
}

func TestListContactsWithDetails(t *testing.T) {
	mockSvc := new(serviceMocks.MockContactService)
	app := newContactApp(mockSvc)

	mockSvc.On("ListWithDetails", mock.Anything).Return([]model.Contact{bob()}, nil).Once()

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/contact/details", ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	items := decode[[]map[string]any](t, resp)
	require.Len(t, items, 1)
	assert.Equal(t, "Bob", items[0]["name"])
	assert.Equal(t, map[string]any{"id": float64(1), "name": "Acme"}, items[0]["company"])
	assert.Equal(t, map[string]any{"id": float64(1), "name": "US"}, items[0]["country"])
	mockSvc.AssertExpectations(t)
}

func TestFilterContacts(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		filter repository.ContactFilter
	}{
		{"no filters", "", repository.ContactFilter{}},
		{"country only", "?countryId=1", repository.ContactFilter{CountryID: int64Ptr(1)}},
		{"company only", "?companyId=2", repository.ContactFilter{CompanyID: int64Ptr(2)}},
		{"both", "?countryId=1&companyId=2", repository.ContactFilter{CountryID: int64Ptr(1), CompanyID: int64Ptr(2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(serviceMocks.MockContactService)
			app := newContactApp(mockSvc)
			mockSvc.On("Filter", mock.Anything, tt.filter).Return([]model.Contact{bob()}, nil).Once()

			resp, err := app.Test(jsonRequest(http.MethodGet, "/api/contact/filter"+tt.query, ""))
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			mockSvc.AssertExpectations(t)
		})
	}

	t.Run("non-numeric id", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockContactService)
		app := newContactApp(mockSvc)

		resp, err := app.Test(jsonRequest(http.MethodGet, "/api/contact/filter?countryId=us", ""))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_FILTER", decode[errorPayload](t, resp).Error.Code)
		mockSvc.AssertNotCalled(t, "Filter", mock.Anything, mock.Anything)
	})
}

func TestContactCRUD(t *testing.T) {
	mockSvc := new(serviceMocks.MockContactService)
	app := newContactApp(mockSvc)

	t.Run("list", func(t *testing.T) {
		mockSvc.On("List", mock.Anything).Return([]model.Contact{{ID: 1, Name: "Bob", CompanyID: 1, CountryID: 1}}, nil).Once()

		resp, err := app.Test(jsonRequest(http.MethodGet, "/api/contact", ""))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		items := decode[[]map[string]any](t, resp)
		require.Len(t, items, 1)
		assert.NotContains(t, items[0], "company")
		assert.NotContains(t, items[0], "country")
	})

	t.Run("create", func(t *testing.T) {
		in := &model.Contact{Name: "Bob", CompanyID: 1, CountryID: 1}
		mockSvc.On("Create", mock.Anything, in).Return(&model.Contact{ID: 10, Name: "Bob", CompanyID: 1, CountryID: 1}, nil).Once()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/contact", `{"name":"Bob","companyId":1,"countryId":1}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "/api/contact/10", resp.Header.Get(fiber.HeaderLocation))
	})

	t.Run("create without company", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/contact", `{"name":"Bob","countryId":1}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_BODY", decode[errorPayload](t, resp).Error.Code)
	})

	t.Run("create with unknown company", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Contact) bool { return c.CompanyID == 999 })).
			Return(nil, errors.New("create contact: foreign key violation")).Once()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/contact", `{"name":"Eve","companyId":999,"countryId":1}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})

	t.Run("get", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, int64(10)).Return(&model.Contact{ID: 10, Name: "Bob", CompanyID: 1, CountryID: 1}, nil).Once()

		resp, err := app.Test(jsonRequest(http.MethodGet, "/api/contact/10", ""))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, int64(10), decode[model.Contact](t, resp).ID)
	})

	t.Run("update", func(t *testing.T) {
		in := &model.Contact{ID: 10, Name: "Robert", CompanyID: 1, CountryID: 2}
		mockSvc.On("Update", mock.Anything, in).Return(in, nil).Once()

		resp, err := app.Test(jsonRequest(http.MethodPut, "/api/contact/10", `{"id":10,"name":"Robert","companyId":1,"countryId":2}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Robert", decode[model.Contact](t, resp).Name)
	})

	t.Run("update mismatch", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPut, "/api/contact/10", `{"id":11,"name":"Robert","companyId":1,"countryId":2}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "ID_MISMATCH", decode[errorPayload](t, resp).Error.Code)
	})

	t.Run("delete missing", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, int64(77)).Return(service.ErrNotFound).Once()

		resp, err := app.Test(jsonRequest(http.MethodDelete, "/api/contact/77", ""))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	mockSvc.AssertExpectations(t)
	mockSvc.AssertNumberOfCalls(t, "Update", 1)
}
