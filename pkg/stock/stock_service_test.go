package stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"restaurant-inventory/domain"
	"restaurant-inventory/entities"
	"restaurant-inventory/pkg/database"
	"restaurant-inventory/pkg/database/mock"
	"restaurant-inventory/pkg/registry"
	"restaurant-inventory/pkg/stock"
)

func newService(t *testing.T) (stock.StockService, *database.Manager, mock.Fixture) {
	t.Helper()
	ctx := context.Background()

	manager, err := mock.New(ctx, t.Name())
	require.NoError(t, err)
	t.Cleanup(func() { manager.Close() })

	seed, err := mock.Seed(ctx, manager)
	require.NoError(t, err)

	reg, err := registry.Default()
	require.NoError(t, err)
	desc := reg.MustLookup(registry.StockIngredients)

	return stock.NewStockService(stock.NewStockRepository(manager, desc), desc), manager, seed
}

func countStock(t *testing.T, manager *database.Manager) int64 {
	t.Helper()
	var n int64
	require.NoError(t, manager.Do(context.Background(), func(db *gorm.DB) error {
		return db.Model(&entities.StockIngredient{}).Count(&n).Error
	}))
	return n
}

func TestCreatePersistsDerivedFields(t *testing.T) {
	svc, _, seed := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.StockPurchaseRequest{
		IngredientsID:  seed.IngredientID,
		Container:      "box",
		Quantity:       3,
		ContainerSize:  4,
		ContainerPrice: 6,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.StockIngredientsID)

	got, err := svc.Get(ctx, created.StockIngredientsID)
	require.NoError(t, err)
	assert.Equal(t, 12.0, got.TotalQuantity)
	assert.Equal(t, 18.0, got.TotalPrice)
	assert.Equal(t, 1.5, got.UnitPrice)
	require.NotNil(t, got.IngredientName)
	assert.Equal(t, "Tomato", *got.IngredientName)
}

func TestCreateInvalidComputationWritesNothing(t *testing.T) {
	svc, manager, seed := newService(t)
	before := countStock(t, manager)

	_, err := svc.Create(context.Background(), domain.StockPurchaseRequest{
		IngredientsID:  seed.IngredientID,
		Container:      "crate",
		Quantity:       2,
		ContainerSize:  0,
		ContainerPrice: 10,
	})

	require.ErrorIs(t, err, domain.ErrInvalidComputation)
	assert.Equal(t, domain.KindInvalidComputation, domain.AsFailure(err).Kind)
	assert.Equal(t, before, countStock(t, manager))
}

func TestCreateForMissingIngredientIsInvalidReference(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.Create(context.Background(), domain.StockPurchaseRequest{
		IngredientsID:  999,
		Container:      "crate",
		Quantity:       1,
		ContainerSize:  1,
		ContainerPrice: 1,
	})

	require.ErrorIs(t, err, domain.ErrReferenceMissing)
}

func TestListKeepsRowsWithoutIngredient(t *testing.T) {
	svc, manager, seed := newService(t)
	ctx := context.Background()

	require.NoError(t, manager.Do(ctx, func(db *gorm.DB) error {
		if err := db.Exec("PRAGMA foreign_keys = OFF").Error; err != nil {
			return err
		}
		return db.Exec("DELETE FROM ingredients WHERE ingredients_id = ?", seed.IngredientID).Error
	}))

	rows, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, seed.StockID, rows[0].StockIngredientsID)
	assert.Nil(t, rows[0].IngredientName)
}

func TestGetMissingIsNotFound(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.Get(context.Background(), 999)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteRequiresMatchingPair(t *testing.T) {
	svc, manager, seed := newService(t)
	ctx := context.Background()

	err := svc.Delete(ctx, seed.StockID, seed.IngredientID+1)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualValues(t, 1, countStock(t, manager))

	require.NoError(t, svc.Delete(ctx, seed.StockID, seed.IngredientID))
	assert.Zero(t, countStock(t, manager))
}
