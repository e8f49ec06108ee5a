package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"companyapi/internal/model"
	"companyapi/internal/service"
)

type companyRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required,max=200"`
}

func (r companyRequest) toModel() *model.Company {
	return &model.Company{ID: r.ID, Name: r.Name}
}

// ListCompanies godoc
// @Summary      List companies
// @Tags         company
// @Produce      json
// @Success      200  {array}   model.Company
// @Failure      500  {object}  errorPayload
// @Router       /api/company [get]
func ListCompanies(svc service.CompanyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return internalError(c, err)
		}
		return c.JSON(items)
	}
}

// GetCompany godoc
// @Summary      Get a company
// @Tags         company
// @Produce      json
// @Param        id   path      int  true  "Company ID"
// @Success      200  {object}  model.Company
// @Failure      400  {object}  errorPayload
// @Failure      404  {object}  errorPayload
// @Router       /api/company/{id} [get]
func GetCompany(svc service.CompanyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		company, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "company not found")
			}
			return internalError(c, err)
		}
		return c.JSON(company)
	}
}

// CreateCompany godoc
// @Summary      Create a company
// @Tags         company
// @Accept       json
// @Produce      json
// @Param        company  body      companyRequest  true  "Company"
// @Success      201      {object}  model.Company
// @Failure      400      {object}  errorPayload
// @Router       /api/company [post]
func CreateCompany(svc service.CompanyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req companyRequest
		if err := bindBody(c, &req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		req.ID = 0
		created, err := svc.Create(c.UserContext(), req.toModel())
		if err != nil {
			return internalError(c, err)
		}
		c.Location(fmt.Sprintf("/api/company/%d", created.ID))
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// UpdateCompany godoc
// @Summary      Update a company
// @Description  The id in the path must match the id in the body.
// @Tags         company
// @Accept       json
// @Produce      json
// @Param        id       path      int             true  "Company ID"
// @Param        company  body      companyRequest  true  "Company"
// @Success      200      {object}  model.Company
// @Failure      400      {object}  errorPayload
// @Failure      404      {object}  errorPayload
// @Router       /api/company/{id} [put]
func UpdateCompany(svc service.CompanyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var req companyRequest
		if err := bindBody(c, &req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if req.ID != id {
			return writeError(c, fiber.StatusBadRequest, "ID_MISMATCH", "id in path does not match body")
		}
		updated, err := svc.Update(c.UserContext(), req.toModel())
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "company not found")
			}
			return internalError(c, err)
		}
		return c.JSON(updated)
	}
}

// DeleteCompany godoc
// @Summary      Delete a company
// @Tags         company
// @Param        id   path  int  true  "Company ID"
// @Success      204
// @Failure      400  {object}  errorPayload
// @Failure      404  {object}  errorPayload
// @Router       /api/company/{id} [delete]
func DeleteCompany(svc service.CompanyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "company not found")
			}
			return internalError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
