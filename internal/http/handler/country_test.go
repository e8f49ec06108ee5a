package handler

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"companyapi/internal/model"
	"companyapi/internal/service"
	serviceMocks "companyapi/internal/service/mocks"
)

func TestCountryHandlers(t *testing.T) {
	mockSvc := new(serviceMocks.MockCountryService)
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/api/country", ListCountries(mockSvc))
	app.Post("/api/country", CreateCountry(mockSvc))
	app.Get("/api/country/:id", GetCountry(mockSvc))
	app.Put("/api/country/:id", UpdateCountry(mockSvc))
	app.Delete("/api/country/:id", DeleteCountry(mockSvc))

	t.Run("list", func(t *testing.T) {
		mockSvc.On("List", mock.Anything).Return([]model.Country{{ID: 1, Name: "US"}}, nil).Once()

		resp, err := app.Test(jsonRequest(http.MethodGet, "/api/country", ""))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, []model.Country{{ID: 1, Name: "US"}}, decode[[]model.Country](t, resp))
	})

	t.Run("create", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, &model.Country{Name: "US"}).Return(&model.Country{ID: 1, Name: "US"}, nil).Once()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/country", `{"name":"US"}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "/api/country/1", resp.Header.Get(fiber.HeaderLocation))
	})

	t.Run("get missing", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, int64(7)).Return(nil, service.ErrNotFound).Once()

		resp, err := app.Test(jsonRequest(http.MethodGet, "/api/country/7", ""))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("update mismatch", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPut, "/api/country/1", `{"id":2,"name":"CA"}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "ID_MISMATCH", decode[errorPayload](t, resp).Error.Code)
	})

	t.Run("delete", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, int64(1)).Return(nil).Once()

		resp, err := app.Test(jsonRequest(http.MethodDelete, "/api/country/1", ""))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	mockSvc.AssertExpectations(t)
	mockSvc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
