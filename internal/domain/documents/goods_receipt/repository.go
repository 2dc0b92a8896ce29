package goods_receipt

import (
	"context"

	"procura/internal/core/id"
	"procura/internal/domain"
)

// Repository defines the interface for GoodsReceipt persistence.
// Receipts are immutable once created; there is no Update.
type Repository interface {
	// Create inserts the receipt with its lines
	Create(ctx context.Context, gr *GoodsReceipt) error

	// GetByID retrieves a receipt with lines
	GetByID(ctx context.Context, id id.ID) (*GoodsReceipt, error)

	// List retrieves receipts (headers only) with filtering and pagination
	List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*GoodsReceipt], error)

	// ListByOrder retrieves all receipts recorded against an order
	ListByOrder(ctx context.Context, orderID id.ID) ([]*GoodsReceipt, error)
}
