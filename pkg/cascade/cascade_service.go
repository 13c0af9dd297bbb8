package cascade

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"restaurant-inventory/domain"
	"restaurant-inventory/entities"
	"restaurant-inventory/internal/utils/logger"
	"restaurant-inventory/pkg/database"
	"restaurant-inventory/pkg/failure"
	"restaurant-inventory/pkg/registry"
)

const (
	OutcomeCommitted  = "committed"
	OutcomeRolledBack = "rolled_back"
	// OutcomeRejected means the transaction never started, e.g. pool timeout.
	OutcomeRejected = "rejected"
)

var ErrNotCascadable = errors.New("resource does not support cascade delete")

type (
	// Recorder receives the outcome of every cascade.
	Recorder interface {
		ObserveCascade(resource, outcome string)
	}

	CascadeService interface {
		Delete(ctx context.Context, resource string, id uint) error
	}

	cascadeService struct {
		manager  *database.Manager
		registry *registry.Registry
		recorder Recorder
		purges   map[string]purgeFunc
	}

	// purgeFunc removes the dependents of id and then id itself.
	purgeFunc func(tx *gorm.DB, id uint) (removal, error)

	removal struct {
		root       int64
		dependents int64
	}
)

func NewCascadeService(manager *database.Manager, reg *registry.Registry, recorder Recorder) CascadeService {
	return &cascadeService{
		manager:  manager,
		registry: reg,
		recorder: recorder,
		purges: map[string]purgeFunc{
			registry.Ingredients: purgeIngredient,
			registry.MenuItems:   purgeMenuItem,
			registry.Category:    purgeCategory,
		},
	}
}

// Delete removes the root row and every dependent row inside one transaction.
// Either everything is removed or nothing is.
func (s *cascadeService) Delete(ctx context.Context, resource string, id uint) error {
	desc, ok := s.registry.Lookup(resource)
	purge, known := s.purges[resource]
	if !ok || !known || !desc.Cascade {
		return domain.NewFailure(domain.KindInvalidInput, resource, ErrNotCascadable)
	}

	var removed removal
	started := false
	err := s.manager.Transaction(ctx, func(tx *gorm.DB) error {
		started = true
		var err error
		removed, err = purge(tx, id)
		if err != nil {
			return err
		}
		if removed.root == 0 {
			return failure.NotFound(desc)
		}
		return nil
	})

	outcome := OutcomeCommitted
	switch {
	case err != nil && !started:
		outcome = OutcomeRejected
	case err != nil:
		outcome = OutcomeRolledBack
	}
	if s.recorder != nil {
		s.recorder.ObserveCascade(resource, outcome)
	}

	log := logger.FromContext(ctx).With(
		zap.String("resource", resource),
		zap.Uint("id", id),
		zap.String("outcome", outcome),
	)
	if err != nil {
		log.Warn("cascade delete failed", zap.Error(err))
		return failure.Classify(failure.OpDelete, desc, err)
	}
	log.Info("cascade delete committed", zap.Int64("dependents_removed", removed.dependents))
	return nil
}

func deleteWhere(tx *gorm.DB, model any, query string, args ...any) (int64, error) {
	result := tx.Where(query, args...).Delete(model)
	if result.Error != nil {
		return 0, fmt.Errorf("delete %T: %w", model, result.Error)
	}
	return result.RowsAffected, nil
}

func purgeIngredient(tx *gorm.DB, id uint) (removal, error) {
	var r removal
	steps := []struct {
		model any
		query string
	}{
		{&entities.Recipe{}, "ingredients_id = ?"},
		{&entities.StockIngredient{}, "ingredients_id = ?"},
	}
	for _, step := range steps {
		n, err := deleteWhere(tx, step.model, step.query, id)
		if err != nil {
			return r, err
		}
		r.dependents += n
	}

	n, err := deleteWhere(tx, &entities.Ingredient{}, "ingredients_id = ?", id)
	r.root = n
	return r, err
}

func purgeMenuItem(tx *gorm.DB, id uint) (removal, error) {
	var r removal
	steps := []struct {
		model any
		query string
	}{
		{&entities.Recipe{}, "menu_id = ?"},
		{&entities.Order{}, "menu_id = ?"},
	}
	for _, step := range steps {
		n, err := deleteWhere(tx, step.model, step.query, id)
		if err != nil {
			return r, err
		}
		r.dependents += n
	}

	n, err := deleteWhere(tx, &entities.MenuItem{}, "menu_id = ?", id)
	r.root = n
	return r, err
}

// purgeCategory removes the recipes and stock of every ingredient in the
// category, then the ingredients, then the category. Dependents are matched
// through a subquery so the statement size does not grow with the category.
func purgeCategory(tx *gorm.DB, id uint) (removal, error) {
	var r removal

	var ingredientIDs []uint
	if err := tx.Model(&entities.Ingredient{}).
		Where("category_id = ?", id).
		Pluck("ingredients_id", &ingredientIDs).Error; err != nil {
		return r, fmt.Errorf("collect ingredients: %w", err)
	}

	if len(ingredientIDs) > 0 {
		inCategory := tx.Model(&entities.Ingredient{}).
			Select("ingredients_id").
			Where("category_id = ?", id)

		steps := []struct {
			model any
			query string
			arg   any
		}{
			{&entities.Recipe{}, "ingredients_id IN (?)", inCategory},
			{&entities.StockIngredient{}, "ingredients_id IN (?)", inCategory},
			{&entities.Ingredient{}, "category_id = ?", id},
		}
		for _, step := range steps {
			n, err := deleteWhere(tx, step.model, step.query, step.arg)
			if err != nil {
				return r, err
			}
			r.dependents += n
		}
	}

	n, err := deleteWhere(tx, &entities.Category{}, "category_id = ?", id)
	r.root = n
	return r, err
}
