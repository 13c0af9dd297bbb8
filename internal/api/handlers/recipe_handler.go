package handlers

import (
	"github.com/gofiber/fiber/v2"

	"restaurant-inventory/domain"
	"restaurant-inventory/internal/api/presenters"
	"restaurant-inventory/pkg/recipe"
)

type (
	RecipeHandler interface {
		ListWithNames(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService) RecipeHandler {
	return &recipeHandler{recipeService: recipeService}
}

func (h *recipeHandler) ListWithNames(c *fiber.Ctx) error {
	res, err := h.recipeService.ListWithNames(c.UserContext())
	if err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedGetRecipes, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}
