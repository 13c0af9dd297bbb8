package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"restaurant-inventory/domain"
	"restaurant-inventory/internal/api/presenters"
	"restaurant-inventory/pkg/crud"
)

type (
	ResourceHandler interface {
		List(c *fiber.Ctx) error
		Create(c *fiber.Ctx) error
		Get(c *fiber.Ctx) error
		Update(c *fiber.Ctx) error
		Delete(c *fiber.Ctx) error
	}

	resourceHandler[T any, I crud.Input[T], P crud.Patch] struct {
		service   crud.Service[T, I, P]
		validator *validator.Validate
		name      string
	}
)

func NewResourceHandler[T any, I crud.Input[T], P crud.Patch](service crud.Service[T, I, P], validator *validator.Validate) ResourceHandler {
	return &resourceHandler[T, I, P]{
		service:   service,
		validator: validator,
		name:      service.Descriptor().Name,
	}
}

func (h *resourceHandler[T, I, P]) List(c *fiber.Ctx) error {
	res, err := h.service.List(c.UserContext())
	if err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedList(h.name), err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessList(h.name))
}

func (h *resourceHandler[T, I, P]) Create(c *fiber.Ctx) error {
	req := new(I)
	if err := c.BodyParser(req); err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedBodyRequest, invalidInput(h.name, err))
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedCreate(h.name), invalidInput(h.name, err))
	}

	res, err := h.service.Create(c.UserContext(), *req)
	if err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedCreate(h.name), err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreate(h.name))
}

func (h *resourceHandler[T, I, P]) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id", h.name)
	if err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedInvalidID, err)
	}

	res, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedGet(h.name), err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGet(h.name))
}

func (h *resourceHandler[T, I, P]) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id", h.name)
	if err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedInvalidID, err)
	}

	patch := new(P)
	if err := c.BodyParser(patch); err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedBodyRequest, invalidInput(h.name, err))
	}
	if err := h.validator.Struct(patch); err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedUpdate(h.name), invalidInput(h.name, err))
	}

	res, err := h.service.Update(c.UserContext(), id, *patch)
	if err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedUpdate(h.name), err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdate(h.name))
}

func (h *resourceHandler[T, I, P]) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id", h.name)
	if err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedInvalidID, err)
	}

	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedDelete(h.name), err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDelete(h.name))
}
