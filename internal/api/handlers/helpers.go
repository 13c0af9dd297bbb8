package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"restaurant-inventory/domain"
)

// parseID reads a positive integer path parameter.
func parseID(c *fiber.Ctx, param string, resource string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(param), 10, 0)
	if err != nil || id == 0 {
		return 0, domain.NewFailure(domain.KindInvalidInput, resource, domain.ErrInvalidID)
	}
	return uint(id), nil
}

func invalidInput(resource string, err error) error {
	return domain.NewFailure(domain.KindInvalidInput, resource, err)
}
