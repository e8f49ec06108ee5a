package handler

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// parseID reads the :id path parameter. Only positive integers are accepted.
func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// bindBody decodes the JSON body into v and validates its struct tags.
func bindBody(c *fiber.Ctx, v any) error {
	if err := c.BodyParser(v); err != nil {
		return err
	}
	return validate.Struct(v)
}

// optionalInt64Query parses an optional integer query parameter.
// An absent or empty value yields nil.
func optionalInt64Query(c *fiber.Ctx, key string) (*int64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
