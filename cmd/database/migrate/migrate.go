package migration

import (
	"fmt"

	"gorm.io/gorm"

	"restaurant-inventory/entities"
)

const (
	ViewTotalStock     = "view_total_stock_by_ingredient"
	ViewIngredientUsed = "view_total_ingredients_used"
	ViewRemaining      = "view_remaining_ingredients"
)

// view definitions use unquoted lower-case identifiers so the same text works on
// postgres, mysql and sqlite.
var views = []struct {
	name  string
	query string
}{
	{
		name: ViewTotalStock,
		query: `SELECT i.ingredients_id, i.ingredient_name, i.unit_of_measurement,
	COALESCE(SUM(s.total_quantity), 0) AS total_stock
FROM ingredients i
LEFT JOIN stock_ingredients s ON s.ingredients_id = i.ingredients_id
GROUP BY i.ingredients_id, i.ingredient_name, i.unit_of_measurement`,
	},
	{
		name: ViewIngredientUsed,
		query: `SELECT i.ingredients_id, i.ingredient_name,
	COALESCE(SUM(r.quantity * o.quantity), 0) AS total_used
FROM ingredients i
JOIN recipes r ON r.ingredients_id = i.ingredients_id
JOIN orders o ON o.menu_id = r.menu_id
GROUP BY i.ingredients_id, i.ingredient_name`,
	},
	{
		name: ViewRemaining,
		query: `SELECT i.ingredients_id, i.ingredient_name, i.unit_of_measurement,
	COALESCE(st.total_stock, 0) AS total_stock,
	COALESCE(us.total_used, 0) AS total_used,
	COALESCE(st.total_stock, 0) - COALESCE(us.total_used, 0) AS remaining_stock
FROM ingredients i
LEFT JOIN (
	SELECT ingredients_id, SUM(total_quantity) AS total_stock
	FROM stock_ingredients
	GROUP BY ingredients_id
) st ON st.ingredients_id = i.ingredients_id
LEFT JOIN (
	SELECT r.ingredients_id, SUM(r.quantity * o.quantity) AS total_used
	FROM recipes r
	JOIN orders o ON o.menu_id = r.menu_id
	GROUP BY r.ingredients_id
) us ON us.ingredients_id = i.ingredients_id`,
	},
}

// Migrate creates the tables parent-first and recreates the aggregate views.
func Migrate(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database handle is nil")
	}

	// views depend on the tables, so they go first and come back last
	for i := len(views) - 1; i >= 0; i-- {
		if err := db.Exec("DROP VIEW IF EXISTS " + views[i].name).Error; err != nil {
			return fmt.Errorf("drop view %s: %w", views[i].name, err)
		}
	}

	models := []any{
		&entities.Category{},
		&entities.Ingredient{},
		&entities.MenuItem{},
		&entities.StockIngredient{},
		&entities.Recipe{},
		&entities.Order{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("migrate %T: %w", model, err)
		}
	}

	for _, v := range views {
		if err := db.Exec("CREATE VIEW " + v.name + " AS " + v.query).Error; err != nil {
			return fmt.Errorf("create view %s: %w", v.name, err)
		}
	}

	return nil
}
