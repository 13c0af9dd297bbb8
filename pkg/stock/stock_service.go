package stock

import (
	"context"

	"restaurant-inventory/domain"
	"restaurant-inventory/entities"
	"restaurant-inventory/pkg/failure"
	"restaurant-inventory/pkg/registry"
)

type (
	// StockService handles stock purchases. Purchases are immutable once
	// recorded, so there is no update.
	StockService interface {
		Create(ctx context.Context, req domain.StockPurchaseRequest) (entities.StockIngredient, error)
		List(ctx context.Context) ([]domain.StockListing, error)
		Get(ctx context.Context, id uint) (domain.StockListing, error)
		Delete(ctx context.Context, stockID, ingredientID uint) error
	}

	stockService struct {
		stockRepository StockRepository
		desc            registry.Descriptor
	}
)

func NewStockService(stockRepository StockRepository, desc registry.Descriptor) StockService {
	return &stockService{
		stockRepository: stockRepository,
		desc:            desc,
	}
}

func (s *stockService) Create(ctx context.Context, req domain.StockPurchaseRequest) (entities.StockIngredient, error) {
	purchase, err := Compute(req)
	if err != nil {
		return entities.StockIngredient{}, domain.NewFailure(domain.KindInvalidComputation, s.desc.Name, err)
	}

	if err := s.stockRepository.Create(ctx, &purchase); err != nil {
		return entities.StockIngredient{}, failure.Classify(failure.OpCreate, s.desc, err)
	}
	return purchase, nil
}

func (s *stockService) List(ctx context.Context) ([]domain.StockListing, error) {
	rows, err := s.stockRepository.List(ctx)
	if err != nil {
		return nil, failure.Classify(failure.OpRead, s.desc, err)
	}
	return rows, nil
}

func (s *stockService) Get(ctx context.Context, id uint) (domain.StockListing, error) {
	row, err := s.stockRepository.Get(ctx, id)
	if err != nil {
		return domain.StockListing{}, failure.Classify(failure.OpRead, s.desc, err)
	}
	return row, nil
}

func (s *stockService) Delete(ctx context.Context, stockID, ingredientID uint) error {
	if err := s.stockRepository.Delete(ctx, stockID, ingredientID); err != nil {
		return failure.Classify(failure.OpDelete, s.desc, err)
	}
	return nil
}
