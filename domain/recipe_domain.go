package domain

import "restaurant-inventory/entities"

var (
	MessageSuccessGetRecipes = "success get recipes"
	MessageFailedGetRecipes  = "failed to get recipes"
)

type (
	RecipeRequest struct {
		MenuID        uint    `json:"MenuID" validate:"required"`
		IngredientsID uint    `json:"IngredientsID" validate:"required"`
		Quantity      float64 `json:"Quantity" validate:"required,gt=0"`
	}

	RecipePatch struct {
		MenuID        *uint    `json:"MenuID,omitempty" validate:"omitempty,gt=0"`
		IngredientsID *uint    `json:"IngredientsID,omitempty" validate:"omitempty,gt=0"`
		Quantity      *float64 `json:"Quantity,omitempty" validate:"omitempty,gt=0"`
	}

	// RecipeListing is a recipe row with the owning names attached. The names are
	// nil when the parent row is gone.
	RecipeListing struct {
		RecipeID       uint    `gorm:"column:recipe_id" json:"RecipeID"`
		MenuID         uint    `gorm:"column:menu_id" json:"MenuID"`
		IngredientsID  uint    `gorm:"column:ingredients_id" json:"IngredientsID"`
		Quantity       float64 `gorm:"column:quantity" json:"Quantity"`
		IngredientName *string `gorm:"column:ingredient_name" json:"IngredientName"`
		Menu           *string `gorm:"column:menu" json:"Menu"`
	}
)

func (r RecipeRequest) Entity() entities.Recipe {
	return entities.Recipe{MenuID: r.MenuID, IngredientsID: r.IngredientsID, Quantity: r.Quantity}
}

func (p RecipePatch) Columns() map[string]any {
	cols := map[string]any{}
	if p.MenuID != nil {
		cols["menu_id"] = *p.MenuID
	}
	if p.IngredientsID != nil {
		cols["ingredients_id"] = *p.IngredientsID
	}
	if p.Quantity != nil {
		cols["quantity"] = *p.Quantity
	}
	return cols
}
