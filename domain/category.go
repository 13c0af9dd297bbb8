package domain

import "restaurant-inventory/entities"

type (
	CategoryRequest struct {
		Category string `json:"Category" validate:"required,max=100"`
	}

	CategoryPatch struct {
		Category *string `json:"Category,omitempty" validate:"omitempty,min=1,max=100"`
	}
)

func (r CategoryRequest) Entity() entities.Category {
	return entities.Category{Category: r.Category}
}

func (p CategoryPatch) Columns() map[string]any {
	cols := map[string]any{}
	if p.Category != nil {
		cols["category"] = *p.Category
	}
	return cols
}
