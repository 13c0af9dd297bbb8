package crud

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"restaurant-inventory/pkg/database"
	"restaurant-inventory/pkg/failure"
	"restaurant-inventory/pkg/registry"
)

type (
	// Repository issues exactly one statement per operation against the table
	// named by its descriptor.
	Repository[T any] interface {
		List(ctx context.Context) ([]T, error)
		Create(ctx context.Context, record *T) error
		Get(ctx context.Context, id uint) (T, error)
		Update(ctx context.Context, id uint, columns map[string]any) error
		Delete(ctx context.Context, id uint) error
	}

	repository[T any] struct {
		manager *database.Manager
		desc    registry.Descriptor
	}
)

func NewRepository[T any](manager *database.Manager, desc registry.Descriptor) Repository[T] {
	return &repository[T]{manager: manager, desc: desc}
}

func (r *repository[T]) byID(id uint) clause.Expression {
	return clause.Eq{Column: clause.Column{Name: r.desc.Column}, Value: id}
}

func (r *repository[T]) List(ctx context.Context) ([]T, error) {
	records := make([]T, 0)
	err := r.manager.Do(ctx, func(db *gorm.DB) error {
		return db.Find(&records).Error
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repository[T]) Create(ctx context.Context, record *T) error {
	return r.manager.Do(ctx, func(db *gorm.DB) error {
		return db.Create(record).Error
	})
}

func (r *repository[T]) Get(ctx context.Context, id uint) (T, error) {
	var record T
	err := r.manager.Do(ctx, func(db *gorm.DB) error {
		return db.Where(r.byID(id)).Take(&record).Error
	})
	return record, err
}

func (r *repository[T]) Update(ctx context.Context, id uint, columns map[string]any) error {
	return r.manager.Do(ctx, func(db *gorm.DB) error {
		result := db.Model(new(T)).Where(r.byID(id)).Updates(columns)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return failure.NotFound(r.desc)
		}
		return nil
	})
}

func (r *repository[T]) Delete(ctx context.Context, id uint) error {
	return r.manager.Do(ctx, func(db *gorm.DB) error {
		result := db.Where(r.byID(id)).Delete(new(T))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return failure.NotFound(r.desc)
		}
		return nil
	})
}
