package handler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"companyapi/internal/model"
	"companyapi/internal/repository"
	"companyapi/internal/service"
)

type contactRequest struct {
	ID        int64  `json:"id"`
	Name      string `json:"name" validate:"required,max=200"`
	CompanyID int64  `json:"companyId" validate:"required,gt=0"`
	CountryID int64  `json:"countryId" validate:"required,gt=0"`
}

func (r contactRequest) toModel() *model.Contact {
	return &model.Contact{
		ID:        r.ID,
		Name:      r.Name,
		CompanyID: r.CompanyID,
		CountryID: r.CountryID,
	}
}

// ListContacts godoc
// @Summary      List contacts
// @Description  Nested company and country are not populated.
// @Tags         contact
// @Produce      json
// @Success      200  {array}   model.Contact
// @Failure      500  {object}  errorPayload
// @Router       /api/contact [get]
func ListContacts(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return internalError(c, err)
		}
		return c.JSON(items)
	}
}

// ListContactsPaged godoc
// @Summary      List one page of contacts
// @Tags         contact
// @Produce      json
// @Param        pageNumber  query     int  false  "1-based page number"  default(1)
// @Success      200         {array}   model.Contact
// @Failure      400         {object}  errorPayload
// @Router       /api/contact/paged [get]
func ListContactsPaged(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pageNumber, err := strconv.Atoi(c.Query("pageNumber", "1"))
		if err != nil || pageNumber < 1 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PAGE_NUMBER", "pageNumber must be a positive integer")
		}
		items, err := svc.ListPaged(c.UserContext(), pageNumber)
		if err != nil {
			if errors.Is(err, service.ErrInvalidPageNumber) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_PAGE_NUMBER", "pageNumber must be a positive integer")
			}
			return internalError(c, err)
		}
		return c.JSON(items)
	}
}

// ListContactsWithDetails godoc
// @Summary      List contacts with company and country
// @Tags         contact
// @Produce      json
// @Success      200  {array}   model.Contact
// @Router       /api/contact/details [get]
func ListContactsWithDetails(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.ListWithDetails(c.UserContext())
		if err != nil {
			return internalError(c, err)
		}
		return c.JSON(items)
	}
}

// FilterContacts godoc
// @Summary      Filter contacts by country and/or company
// @Description  Absent parameters do not constrain the result.
// @Tags         contact
// @Produce      json
// @Param        countryId  query     int  false  "Country ID"
// @Param        companyId  query     int  false  "Company ID"
// @Success      200        {array}   model.Contact
// @Failure      400        {object}  errorPayload
// @Router       /api/contact/filter [get]
func FilterContacts(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		countryID, err := optionalInt64Query(c, "countryId")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_FILTER", "countryId must be an integer")
		}
		companyID, err := optionalInt64Query(c, "companyId")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_FILTER", "companyId must be an integer")
		}

		items, err := svc.Filter(c.UserContext(), repository.ContactFilter{
			CountryID: countryID,
			CompanyID: companyID,
		})
		if err != nil {
			return internalError(c, err)
		}
		return c.JSON(items)
	}
}

// GetContact godoc
// @Summary      Get a contact
// @Tags         contact
// @Produce      json
// @Param        id   path      int  true  "Contact ID"
// @Success      200  {object}  model.Contact
// @Failure      400  {object}  errorPayload
// @Failure      404  {object}  errorPayload
// @Router       /api/contact/{id} [get]
func GetContact(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		contact, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "contact not found")
			}
			return internalError(c, err)
		}
		return c.JSON(contact)
	}
}

// CreateContact godoc
// @Summary      Create a contact
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      contactRequest  true  "Contact"
// @Success      201      {object}  model.Contact
// @Failure      400      {object}  errorPayload
// @Router       /api/contact [post]
func CreateContact(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req contactRequest
		if err := bindBody(c, &req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		req.ID = 0
		created, err := svc.Create(c.UserContext(), req.toModel())
		if err != nil {
			return internalError(c, err)
		}
		c.Location(fmt.Sprintf("/api/contact/%d", created.ID))
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// UpdateContact godoc
// @Summary      Update a contact
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        id       path      int             true  "Contact ID"
// @Param        contact  body      contactRequest  true  "Contact"
// @Success      200      {object}  model.Contact
// @Failure      400      {object}  errorPayload
// @Failure      404      {object}  errorPayload
// @Router       /api/contact/{id} [put]
func UpdateContact(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var req contactRequest
		if err := bindBody(c, &req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if req.ID != id {
			return writeError(c, fiber.StatusBadRequest, "ID_MISMATCH", "id in path does not match body")
		}
		updated, err := svc.Update(c.UserContext(), req.toModel())
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "contact not found")
			}
			return internalError(c, err)
		}
		return c.JSON(updated)
	}
}

// DeleteContact godoc
// @Summary      Delete a contact
// @Tags         contact
// @Param        id   path  int  true  "Contact ID"
// @Success      204
// @Failure      404  {object}  errorPayload
// @Router       /api/contact/{id} [delete]
func DeleteContact(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "contact not found")
			}
			return internalError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
