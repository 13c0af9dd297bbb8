package domain

import "restaurant-inventory/entities"

// OrderDate is assigned by the store at insert, so neither shape carries it.
type (
	OrderRequest struct {
		MenuID     uint    `json:"MenuID" validate:"required"`
		Quantity   int     `json:"Quantity" validate:"required,gt=0"`
		TotalPrice float64 `json:"TotalPrice" validate:"gte=0"`
	}

	OrderPatch struct {
		MenuID     *uint    `json:"MenuID,omitempty" validate:"omitempty,gt=0"`
		Quantity   *int     `json:"Quantity,omitempty" validate:"omitempty,gt=0"`
		TotalPrice *float64 `json:"TotalPrice,omitempty" validate:"omitempty,gte=0"`
	}
)

func (r OrderRequest) Entity() entities.Order {
	return entities.Order{MenuID: r.MenuID, Quantity: r.Quantity, TotalPrice: r.TotalPrice}
}

func (p OrderPatch) Columns() map[string]any {
	cols := map[string]any{}
	if p.MenuID != nil {
		cols["menu_id"] = *p.MenuID
	}
	if p.Quantity != nil {
		cols["quantity"] = *p.Quantity
	}
	if p.TotalPrice != nil {
		cols["total_price"] = *p.TotalPrice
	}
	return cols
}
