package crud_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-inventory/domain"
	"restaurant-inventory/entities"
	"restaurant-inventory/pkg/crud"
	"restaurant-inventory/pkg/database"
	"restaurant-inventory/pkg/database/mock"
	"restaurant-inventory/pkg/registry"
)

type fixture struct {
	manager     *database.Manager
	seed        mock.Fixture
	categories  crud.Service[entities.Category, domain.CategoryRequest, domain.CategoryPatch]
	ingredients crud.Service[entities.Ingredient, domain.IngredientRequest, domain.IngredientPatch]
	orders      crud.Service[entities.Order, domain.OrderRequest, domain.OrderPatch]
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()

	manager, err := mock.New(ctx, t.Name())
	require.NoError(t, err)
	t.Cleanup(func() { manager.Close() })

	seed, err := mock.Seed(ctx, manager)
	require.NoError(t, err)

	reg, err := registry.Default()
	require.NoError(t, err)

	category := reg.MustLookup(registry.Category)
	ingredient := reg.MustLookup(registry.Ingredients)
	order := reg.MustLookup(registry.Orders)

	return fixture{
		manager: manager,
		seed:    seed,
		categories: crud.NewService[entities.Category, domain.CategoryRequest, domain.CategoryPatch](
			crud.NewRepository[entities.Category](manager, category), category),
		ingredients: crud.NewService[entities.Ingredient, domain.IngredientRequest, domain.IngredientPatch](
			crud.NewRepository[entities.Ingredient](manager, ingredient), ingredient),
		orders: crud.NewService[entities.Order, domain.OrderRequest, domain.OrderPatch](
			crud.NewRepository[entities.Order](manager, order), order),
	}
}

func ptr[T any](v T) *T { return &v }

func TestCreateAndGet(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	created, err := fx.categories.Create(ctx, domain.CategoryRequest{Category: "Dairy"})
	require.NoError(t, err)
	assert.NotZero(t, created.CategoryID)
	assert.Equal(t, "Dairy", created.Category)

	got, err := fx.categories.Get(ctx, created.CategoryID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	all, err := fx.categories.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCreateOrderAssignsOrderDate(t *testing.T) {
	fx := newFixture(t)

	order, err := fx.orders.Create(context.Background(), domain.OrderRequest{
		MenuID:     fx.seed.MenuID,
		Quantity:   2,
		TotalPrice: 15,
	})
	require.NoError(t, err)
	assert.NotZero(t, order.OrderID)
	assert.False(t, order.OrderDate.IsZero())
	assert.Zero(t, order.OrderDate.Nanosecond()%int(time.Millisecond))

	got, err := fx.orders.Get(context.Background(), order.OrderID)
	require.NoError(t, err)
	assert.True(t, order.OrderDate.Equal(got.OrderDate))
}

func TestCreateWithMissingParentIsInvalidReference(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.ingredients.Create(context.Background(), domain.IngredientRequest{
		IngredientName:    "Basil",
		UnitOfMeasurement: "g",
		CategoryID:        999,
	})

	require.ErrorIs(t, err, domain.ErrReferenceMissing)
	assert.Equal(t, domain.GuidanceReferenceMissing, domain.AsFailure(err).Guidance)
}

func TestGetMissingIsNotFound(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.categories.Get(context.Background(), 999)

	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, registry.Category, domain.AsFailure(err).Resource)
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	echo, err := fx.ingredients.Update(ctx, fx.seed.IngredientID, domain.IngredientPatch{
		IngredientName: ptr("Roma Tomato"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Roma Tomato", echo["IngredientName"])
	assert.Equal(t, fx.seed.IngredientID, echo["IngredientsID"])
	assert.NotContains(t, echo, "UnitOfMeasurement")

	got, err := fx.ingredients.Get(ctx, fx.seed.IngredientID)
	require.NoError(t, err)
	assert.Equal(t, "Roma Tomato", got.IngredientName)
	assert.Equal(t, "kg", got.UnitOfMeasurement)
	assert.Equal(t, fx.seed.CategoryID, got.CategoryID)
}

func TestUpdateWithSameValuesSucceeds(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.categories.Update(context.Background(), fx.seed.CategoryID, domain.CategoryPatch{
		Category: ptr("Produce"),
	})
	require.NoError(t, err)
}

func TestUpdateRejectsEmptyPatch(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.categories.Update(context.Background(), fx.seed.CategoryID, domain.CategoryPatch{})

	require.ErrorIs(t, err, domain.ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrEmptyUpdate)
}

func TestUpdateMissingIsNotFound(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.categories.Update(context.Background(), 999, domain.CategoryPatch{Category: ptr("Bakery")})

	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateToMissingParentIsInvalidReference(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.ingredients.Update(context.Background(), fx.seed.IngredientID, domain.IngredientPatch{
		CategoryID: ptr(uint(999)),
	})

	require.ErrorIs(t, err, domain.ErrReferenceMissing)
}

func TestDeleteWithDependentsIsConflict(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	err := fx.categories.Delete(ctx, fx.seed.CategoryID)

	require.ErrorIs(t, err, domain.ErrDependentsExist)
	f := domain.AsFailure(err)
	assert.Equal(t, domain.KindDependentsExist, f.Kind)
	assert.Equal(t, domain.GuidanceCategoryDelete, f.Guidance)

	_, err = fx.categories.Get(ctx, fx.seed.CategoryID)
	require.NoError(t, err)
}

func TestDeleteRemovesRowOnce(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	require.NoError(t, fx.orders.Delete(ctx, fx.seed.OrderID))

	err := fx.orders.Delete(ctx, fx.seed.OrderID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
