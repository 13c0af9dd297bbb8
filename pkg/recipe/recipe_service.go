package recipe

import (
	"context"

	"restaurant-inventory/domain"
	"restaurant-inventory/entities"
	"restaurant-inventory/pkg/crud"
	"restaurant-inventory/pkg/failure"
	"restaurant-inventory/pkg/registry"
)

type (
	// RecipeService serves single recipes through the generic handler and adds
	// the named listing.
	RecipeService interface {
		crud.Service[entities.Recipe, domain.RecipeRequest, domain.RecipePatch]
		ListWithNames(ctx context.Context) ([]domain.RecipeListing, error)
	}

	recipeService struct {
		crud.Service[entities.Recipe, domain.RecipeRequest, domain.RecipePatch]
		recipeRepository RecipeRepository
		desc             registry.Descriptor
	}
)

func NewRecipeService(recipeRepository RecipeRepository, desc registry.Descriptor) RecipeService {
	return &recipeService{
		Service:          crud.NewService[entities.Recipe, domain.RecipeRequest, domain.RecipePatch](recipeRepository, desc),
		recipeRepository: recipeRepository,
		desc:             desc,
	}
}

func (s *recipeService) ListWithNames(ctx context.Context) ([]domain.RecipeListing, error) {
	rows, err := s.recipeRepository.ListWithNames(ctx)
	if err != nil {
		return nil, failure.Classify(failure.OpRead, s.desc, err)
	}
	return rows, nil
}
