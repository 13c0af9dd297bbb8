package stock_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-inventory/domain"
	"restaurant-inventory/pkg/stock"
)

func TestComputeDerivesTotals(t *testing.T) {
	got, err := stock.Compute(domain.StockPurchaseRequest{
		IngredientsID:  1,
		Container:      "crate",
		Quantity:       2,
		ContainerSize:  5,
		ContainerPrice: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, 10.0, got.TotalQuantity)
	assert.Equal(t, 20.0, got.TotalPrice)
	assert.Equal(t, 2.0, got.UnitPrice)
	assert.Equal(t, "crate", got.Container)
	assert.Zero(t, got.StockIngredientsID)
}

func TestComputeFractionalQuantities(t *testing.T) {
	got, err := stock.Compute(domain.StockPurchaseRequest{
		IngredientsID:  1,
		Container:      "bag",
		Quantity:       0.5,
		ContainerSize:  4,
		ContainerPrice: 3,
	})
	require.NoError(t, err)

	assert.InDelta(t, 2.0, got.TotalQuantity, 1e-9)
	assert.InDelta(t, 1.5, got.TotalPrice, 1e-9)
	assert.InDelta(t, 0.75, got.UnitPrice, 1e-9)
}

func TestComputeRejectsInvalidTotals(t *testing.T) {
	tests := []struct {
		name string
		req  domain.StockPurchaseRequest
	}{
		{"zero container size", domain.StockPurchaseRequest{Quantity: 2, ContainerSize: 0, ContainerPrice: 10}},
		{"zero quantity", domain.StockPurchaseRequest{Quantity: 0, ContainerSize: 5, ContainerPrice: 10}},
		{"negative quantity", domain.StockPurchaseRequest{Quantity: -1, ContainerSize: 5, ContainerPrice: 10}},
		{"nan size", domain.StockPurchaseRequest{Quantity: 1, ContainerSize: math.NaN(), ContainerPrice: 10}},
		{"infinite size", domain.StockPurchaseRequest{Quantity: 1, ContainerSize: math.Inf(1), ContainerPrice: 10}},
		{"infinite price", domain.StockPurchaseRequest{Quantity: 1, ContainerSize: 5, ContainerPrice: math.Inf(1)}},
		{"overflow", domain.StockPurchaseRequest{Quantity: math.MaxFloat64, ContainerSize: 10, ContainerPrice: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := stock.Compute(tt.req)
			require.ErrorIs(t, err, domain.ErrInvalidComputation)
		})
	}
}
