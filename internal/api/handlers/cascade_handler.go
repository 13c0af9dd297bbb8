package handlers

import (
	"github.com/gofiber/fiber/v2"

	"restaurant-inventory/domain"
	"restaurant-inventory/internal/api/presenters"
	"restaurant-inventory/pkg/cascade"
)

type (
	CascadeHandler interface {
		Delete(resource string) fiber.Handler
	}

	cascadeHandler struct {
		cascadeService cascade.CascadeService
	}
)

func NewCascadeHandler(cascadeService cascade.CascadeService) CascadeHandler {
	return &cascadeHandler{cascadeService: cascadeService}
}

func (h *cascadeHandler) Delete(resource string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c, "id", resource)
		if err != nil {
			return presenters.FailureResponse(c, domain.MessageFailedInvalidID, err)
		}

		if err := h.cascadeService.Delete(c.UserContext(), resource, id); err != nil {
			return presenters.FailureResponse(c, domain.MessageFailedDelete(resource), err)
		}
		return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDelete(resource))
	}
}
