package domain

import "restaurant-inventory/entities"

type (
	IngredientRequest struct {
		IngredientName    string `json:"IngredientName" validate:"required,max=100"`
		UnitOfMeasurement string `json:"UnitOfMeasurement" validate:"required,max=20"`
		CategoryID        uint   `json:"CategoryID" validate:"required"`
	}

	IngredientPatch struct {
		IngredientName    *string `json:"IngredientName,omitempty" validate:"omitempty,min=1,max=100"`
		UnitOfMeasurement *string `json:"UnitOfMeasurement,omitempty" validate:"omitempty,min=1,max=20"`
		CategoryID        *uint   `json:"CategoryID,omitempty" validate:"omitempty,gt=0"`
	}
)

func (r IngredientRequest) Entity() entities.Ingredient {
	return entities.Ingredient{
		IngredientName:    r.IngredientName,
		UnitOfMeasurement: r.UnitOfMeasurement,
		CategoryID:        r.CategoryID,
	}
}

func (p IngredientPatch) Columns() map[string]any {
	cols := map[string]any{}
	if p.IngredientName != nil {
		cols["ingredient_name"] = *p.IngredientName
	}
	if p.UnitOfMeasurement != nil {
		cols["unit_of_measurement"] = *p.UnitOfMeasurement
	}
	if p.CategoryID != nil {
		cols["category_id"] = *p.CategoryID
	}
	return cols
}
