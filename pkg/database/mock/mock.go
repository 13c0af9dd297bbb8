package mock

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	migration "restaurant-inventory/cmd/database/migrate"
	"restaurant-inventory/entities"
	"restaurant-inventory/pkg/database"
)

// Fixture holds the ids of the rows written by Seed.
type Fixture struct {
	CategoryID   uint
	IngredientID uint
	MenuID       uint
	RecipeID     uint
	StockID      uint
	OrderID      uint
}

// New returns a migrated in-memory sqlite database with foreign keys enforced.
// Each name gets its own database; a single pooled connection keeps it alive.
func New(ctx context.Context, name string, opts ...func(*database.Options)) (*database.Manager, error) {
	name = strings.NewReplacer("/", "_", " ", "_").Replace(name)
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		TranslateError:         true,
		NowFunc:                database.Now,
	})
	if err != nil {
		return nil, err
	}

	options := database.Options{PoolSize: 1, AcquireTimeout: 5 * time.Second}
	for _, opt := range opts {
		opt(&options)
	}
	manager, err := database.NewManager(db, options)
	if err != nil {
		return nil, err
	}

	if err := migration.Migrate(db.WithContext(ctx)); err != nil {
		manager.Close()
		return nil, err
	}
	return manager, nil
}

// Seed writes the produce example: one category, one ingredient with a stock
// purchase, one menu item using it and one order.
func Seed(ctx context.Context, m *database.Manager) (Fixture, error) {
	var fx Fixture
	err := m.Do(ctx, func(db *gorm.DB) error {
		category := entities.Category{Category: "Produce"}
		if err := db.Create(&category).Error; err != nil {
			return err
		}
		tomato := entities.Ingredient{IngredientName: "Tomato", UnitOfMeasurement: "kg", CategoryID: category.CategoryID}
		if err := db.Create(&tomato).Error; err != nil {
			return err
		}
		stock := entities.StockIngredient{
			IngredientsID:  tomato.IngredientsID,
			Container:      "crate",
			Quantity:       2,
			ContainerSize:  5,
			ContainerPrice: 10,
			TotalQuantity:  10,
			TotalPrice:     20,
			UnitPrice:      2,
		}
		if err := db.Create(&stock).Error; err != nil {
			return err
		}
		salad := entities.MenuItem{Menu: "Tomato Salad", SellingPrice: 7.5}
		if err := db.Create(&salad).Error; err != nil {
			return err
		}
		recipe := entities.Recipe{MenuID: salad.MenuID, IngredientsID: tomato.IngredientsID, Quantity: 0.5}
		if err := db.Create(&recipe).Error; err != nil {
			return err
		}
		order := entities.Order{MenuID: salad.MenuID, Quantity: 4, TotalPrice: 30}
		if err := db.Create(&order).Error; err != nil {
			return err
		}

		fx = Fixture{
			CategoryID:   category.CategoryID,
			IngredientID: tomato.IngredientsID,
			MenuID:       salad.MenuID,
			RecipeID:     recipe.RecipeID,
			StockID:      stock.StockIngredientsID,
			OrderID:      order.OrderID,
		}
		return nil
	})
	return fx, err
}
