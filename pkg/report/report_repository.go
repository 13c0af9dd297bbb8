package report

import (
	"context"

	"gorm.io/gorm"

	migration "restaurant-inventory/cmd/database/migrate"
	"restaurant-inventory/domain"
	"restaurant-inventory/pkg/database"
)

type (
	// ReportRepository reads the aggregate views. Every call queries the store.
	ReportRepository interface {
		TotalStock(ctx context.Context) ([]domain.TotalStockRow, error)
		IngredientsUsed(ctx context.Context) ([]domain.IngredientUsageRow, error)
		Remaining(ctx context.Context) ([]domain.RemainingStockRow, error)
	}

	reportRepository struct {
		manager *database.Manager
	}
)

func NewReportRepository(manager *database.Manager) ReportRepository {
	return &reportRepository{manager: manager}
}

func readView[T any](ctx context.Context, manager *database.Manager, view string) ([]T, error) {
	rows := make([]T, 0)
	err := manager.Do(ctx, func(db *gorm.DB) error {
		return db.Table(view).Scan(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reportRepository) TotalStock(ctx context.Context) ([]domain.TotalStockRow, error) {
	return readView[domain.TotalStockRow](ctx, r.manager, migration.ViewTotalStock)
}

func (r *reportRepository) IngredientsUsed(ctx context.Context) ([]domain.IngredientUsageRow, error) {
	return readView[domain.IngredientUsageRow](ctx, r.manager, migration.ViewIngredientUsed)
}

func (r *reportRepository) Remaining(ctx context.Context) ([]domain.RemainingStockRow, error) {
	return readView[domain.RemainingStockRow](ctx, r.manager, migration.ViewRemaining)
}
