package domain

import "restaurant-inventory/entities"

type (
	MenuItemRequest struct {
		Menu         string  `json:"Menu" validate:"required,max=100"`
		SellingPrice float64 `json:"SellingPrice" validate:"gte=0"`
	}

	MenuItemPatch struct {
		Menu         *string  `json:"Menu,omitempty" validate:"omitempty,min=1,max=100"`
		SellingPrice *float64 `json:"SellingPrice,omitempty" validate:"omitempty,gte=0"`
	}
)

func (r MenuItemRequest) Entity() entities.MenuItem {
	return entities.MenuItem{Menu: r.Menu, SellingPrice: r.SellingPrice}
}

func (p MenuItemPatch) Columns() map[string]any {
	cols := map[string]any{}
	if p.Menu != nil {
		cols["menu"] = *p.Menu
	}
	if p.SellingPrice != nil {
		cols["selling_price"] = *p.SellingPrice
	}
	return cols
}
