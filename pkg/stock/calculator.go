package stock

import (
	"fmt"
	"math"

	"restaurant-inventory/domain"
	"restaurant-inventory/entities"
)

// Compute fills the derived columns of a stock purchase. The unit price is
// only defined for a positive total quantity, and every derived value must be
// finite.
func Compute(req domain.StockPurchaseRequest) (entities.StockIngredient, error) {
	totalQuantity := req.Quantity * req.ContainerSize
	totalPrice := req.Quantity * req.ContainerPrice

	if !(totalQuantity > 0) {
		return entities.StockIngredient{}, fmt.Errorf("%w: total quantity %v is not positive",
			domain.ErrInvalidComputation, totalQuantity)
	}
	unitPrice := totalPrice / totalQuantity

	for name, v := range map[string]float64{
		"Total_Quantity": totalQuantity,
		"Total_Price":    totalPrice,
		"Unit_Price":     unitPrice,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return entities.StockIngredient{}, fmt.Errorf("%w: %s is not finite", domain.ErrInvalidComputation, name)
		}
	}

	return entities.StockIngredient{
		IngredientsID:  req.IngredientsID,
		Container:      req.Container,
		Quantity:       req.Quantity,
		ContainerSize:  req.ContainerSize,
		ContainerPrice: req.ContainerPrice,
		TotalQuantity:  totalQuantity,
		TotalPrice:     totalPrice,
		UnitPrice:      unitPrice,
	}, nil
}
