package stock

import (
	"context"

	"gorm.io/gorm"

	"restaurant-inventory/domain"
	"restaurant-inventory/entities"
	"restaurant-inventory/pkg/database"
	"restaurant-inventory/pkg/failure"
	"restaurant-inventory/pkg/registry"
)

const listingQuery = "s.stock_ingredients_id, s.ingredients_id, s.container, s.quantity, s.container_size, " +
	"s.container_price, s.total_quantity, s.total_price, s.unit_price, i.ingredient_name"

type (
	StockRepository interface {
		Create(ctx context.Context, purchase *entities.StockIngredient) error
		List(ctx context.Context) ([]domain.StockListing, error)
		Get(ctx context.Context, id uint) (domain.StockListing, error)
		Delete(ctx context.Context, stockID, ingredientID uint) error
	}

	stockRepository struct {
		manager *database.Manager
		desc    registry.Descriptor
	}
)

func NewStockRepository(manager *database.Manager, desc registry.Descriptor) StockRepository {
	return &stockRepository{manager: manager, desc: desc}
}

func (r *stockRepository) Create(ctx context.Context, purchase *entities.StockIngredient) error {
	return r.manager.Do(ctx, func(db *gorm.DB) error {
		return db.Create(purchase).Error
	})
}

// listing keeps purchases whose ingredient row is gone; their name is NULL.
func listing(db *gorm.DB) *gorm.DB {
	return db.Table("stock_ingredients AS s").
		Select(listingQuery).
		Joins("LEFT JOIN ingredients AS i ON i.ingredients_id = s.ingredients_id")
}

func (r *stockRepository) List(ctx context.Context) ([]domain.StockListing, error) {
	rows := make([]domain.StockListing, 0)
	err := r.manager.Do(ctx, func(db *gorm.DB) error {
		return listing(db).Scan(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *stockRepository) Get(ctx context.Context, id uint) (domain.StockListing, error) {
	var rows []domain.StockListing
	err := r.manager.Do(ctx, func(db *gorm.DB) error {
		return listing(db).Where("s.stock_ingredients_id = ?", id).Limit(1).Scan(&rows).Error
	})
	if err != nil {
		return domain.StockListing{}, err
	}
	if len(rows) == 0 {
		return domain.StockListing{}, failure.NotFound(r.desc)
	}
	return rows[0], nil
}

func (r *stockRepository) Delete(ctx context.Context, stockID, ingredientID uint) error {
	return r.manager.Do(ctx, func(db *gorm.DB) error {
		result := db.Where("stock_ingredients_id = ? AND ingredients_id = ?", stockID, ingredientID).
			Delete(&entities.StockIngredient{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return failure.NotFound(r.desc)
		}
		return nil
	})
}
