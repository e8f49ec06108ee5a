package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"companyapi/internal/model"
	"companyapi/internal/service"
)

type countryRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required,max=200"`
}

func (r countryRequest) toModel() *model.Country {
	return &model.Country{ID: r.ID, Name: r.Name}
}

// ListCountries godoc
// @Summary      List countries
// @Tags         country
// @Produce      json
// @Success      200  {array}   model.Country
// @Failure      500  {object}  errorPayload
// @Router       /api/country [get]
func ListCountries(svc service.CountryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return internalError(c, err)
		}
		return c.JSON(items)
	}
}

// GetCountry godoc
// @Summary      Get a country
// @Tags         country
// @Produce      json
// @Param        id   path      int  true  "Country ID"
// @Success      200  {object}  model.Country
// @Failure      400  {object}  errorPayload
// @Failure      404  {object}  errorPayload
// @Router       /api/country/{id} [get]
func GetCountry(svc service.CountryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		country, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "country not found")
			}
			return internalError(c, err)
		}
		return c.JSON(country)
	}
}

// CreateCountry godoc
// @Summary      Create a country
// @Tags         country
// @Accept       json
// @Produce      json
// @Param        country  body      countryRequest  true  "Country"
// @Success      201      {object}  model.Country
// @Failure      400      {object}  errorPayload
// @Router       /api/country [post]
func CreateCountry(svc service.CountryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req countryRequest
		if err := bindBody(c, &req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		req.ID = 0
		created, err := svc.Create(c.UserContext(), req.toModel())
		if err != nil {
			return internalError(c, err)
		}
		c.Location(fmt.Sprintf("/api/country/%d", created.ID))
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// UpdateCountry godoc
// @Summary      Update a country
// @Description  The id in the path must match the id in the body.
// @Tags         country
// @Accept       json
// @Produce      json
// @Param        id       path      int             true  "Country ID"
// @Param        country  body      countryRequest  true  "Country"
// @Success      200      {object}  model.Country
// @Failure      400      {object}  errorPayload
// @Failure      404      {object}  errorPayload
// @Router       /api/country/{id} [put]
func UpdateCountry(svc service.CountryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var req countryRequest
		if err := bindBody(c, &req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if req.ID != id {
			return writeError(c, fiber.StatusBadRequest, "ID_MISMATCH", "id in path does not match body")
		}
		updated, err := svc.Update(c.UserContext(), req.toModel())
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "country not found")
			}
			return internalError(c, err)
		}
		return c.JSON(updated)
	}
}

// DeleteCountry godoc
// @Summary      Delete a country
// @Tags         country
// @Param        id   path  int  true  "Country ID"
// @Success      204
// @Failure      400  {object}  errorPayload
// @Failure      404  {object}  errorPayload
// @Router       /api/country/{id} [delete]
func DeleteCountry(svc service.CountryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "country not found")
			}
			return internalError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
