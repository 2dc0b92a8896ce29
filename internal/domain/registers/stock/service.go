package stock

import (
	"context"

	"procura/internal/core/apperror"
	"procura/internal/core/id"
)

// Service provides read access to the stock register.
// Writes go through goods receipts only.
type Service struct {
	repo Repository
}

// NewService creates a new stock register service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get retrieves the stock row for an item in a warehouse.
func (s *Service) Get(ctx context.Context, itemID, warehouseID id.ID) (*WarehouseStock, error) {
	row, err := s.repo.Get(ctx, itemID, warehouseID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("stock", itemID.String()).
				WithDetail("warehouseId", warehouseID.String())
		}
		return nil, err
	}
	return row, nil
}

// ListByWarehouse retrieves all stock rows of a warehouse.
func (s *Service) ListByWarehouse(ctx context.Context, warehouseID id.ID) ([]*WarehouseStock, error) {
	return s.repo.ListByWarehouse(ctx, warehouseID)
}

// ListByItem retrieves stock of an item across all warehouses.
func (s *Service) ListByItem(ctx context.Context, itemID id.ID) ([]*WarehouseStock, error) {
	return s.repo.ListByItem(ctx, itemID)
}
