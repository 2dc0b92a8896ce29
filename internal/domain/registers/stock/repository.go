package stock

import (
	"context"

	"procura/internal/core/id"
)

// Repository defines the interface for the stock register.
type Repository interface {
	// Apply upserts register rows, incrementing quantity and value.
	// Must be called inside the receiving transaction.
	Apply(ctx context.Context, movements []Movement) error

	// Get retrieves one register row; NotFound when the item was never stocked
	// in the warehouse.
	Get(ctx context.Context, itemID, warehouseID id.ID) (*WarehouseStock, error)

	// ListByWarehouse retrieves all rows for a warehouse
	ListByWarehouse(ctx context.Context, warehouseID id.ID) ([]*WarehouseStock, error)

	// ListByItem retrieves all rows for an item across warehouses
	ListByItem(ctx context.Context, itemID id.ID) ([]*WarehouseStock, error)
}
