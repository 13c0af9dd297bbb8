package recipe

import (
	"context"

	"gorm.io/gorm"

	"restaurant-inventory/domain"
	"restaurant-inventory/entities"
	"restaurant-inventory/pkg/crud"
	"restaurant-inventory/pkg/database"
	"restaurant-inventory/pkg/registry"
)

type (
	RecipeRepository interface {
		crud.Repository[entities.Recipe]
		ListWithNames(ctx context.Context) ([]domain.RecipeListing, error)
	}

	recipeRepository struct {
		crud.Repository[entities.Recipe]
		manager *database.Manager
	}
)

func NewRecipeRepository(manager *database.Manager, desc registry.Descriptor) RecipeRepository {
	return &recipeRepository{
		Repository: crud.NewRepository[entities.Recipe](manager, desc),
		manager:    manager,
	}
}

// ListWithNames returns every recipe row. Missing ingredient or menu item rows
// leave the corresponding name NULL instead of dropping the recipe.
func (r *recipeRepository) ListWithNames(ctx context.Context) ([]domain.RecipeListing, error) {
	rows := make([]domain.RecipeListing, 0)
	err := r.manager.Do(ctx, func(db *gorm.DB) error {
		return db.Table("recipes AS r").
			Select("r.recipe_id, r.menu_id, r.ingredients_id, r.quantity, i.ingredient_name, m.menu").
			Joins("LEFT JOIN ingredients AS i ON i.ingredients_id = r.ingredients_id").
			Joins("LEFT JOIN menu_items AS m ON m.menu_id = r.menu_id").
			Scan(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}
