package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"restaurant-inventory/domain"
	"restaurant-inventory/internal/api/presenters"
	"restaurant-inventory/pkg/registry"
	"restaurant-inventory/pkg/stock"
)

type (
	StockHandler interface {
		List(c *fiber.Ctx) error
		Create(c *fiber.Ctx) error
		Get(c *fiber.Ctx) error
		Delete(c *fiber.Ctx) error
	}

	stockHandler struct {
		stockService stock.StockService
		validator    *validator.Validate
	}
)

func NewStockHandler(stockService stock.StockService, validator *validator.Validate) StockHandler {
	return &stockHandler{
		stockService: stockService,
		validator:    validator,
	}
}

func (h *stockHandler) List(c *fiber.Ctx) error {
	res, err := h.stockService.List(c.UserContext())
	if err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedGetStock, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStock)
}

func (h *stockHandler) Create(c *fiber.Ctx) error {
	req := new(domain.StockPurchaseRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedBodyRequest, invalidInput(registry.StockIngredients, err))
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedCreateStock, invalidInput(registry.StockIngredients, err))
	}

	res, err := h.stockService.Create(c.UserContext(), *req)
	if err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedCreateStock, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateStock)
}

func (h *stockHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id", registry.StockIngredients)
	if err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedInvalidID, err)
	}

	res, err := h.stockService.Get(c.UserContext(), id)
	if err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedGetStock, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStockOne)
}

// Delete addresses a purchase by its own id and its ingredient id together.
func (h *stockHandler) Delete(c *fiber.Ctx) error {
	stockID, err := parseID(c, "stockId", registry.StockIngredients)
	if err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedInvalidID, err)
	}
	ingredientID, err := parseID(c, "ingredientId", registry.StockIngredients)
	if err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedInvalidID, err)
	}

	if err := h.stockService.Delete(c.UserContext(), stockID, ingredientID); err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedDeleteStock, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteStock)
}
