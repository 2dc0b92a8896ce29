package purchase_order

import (
	"context"

	"procura/internal/core/id"
	"procura/internal/core/types"
	"procura/internal/domain"
)

// Repository defines the interface for PurchaseOrder persistence.
// Get methods return the order with its lines loaded.
type Repository interface {
	// Create inserts the order with its lines
	Create(ctx context.Context, po *PurchaseOrder) error

	// GetByID retrieves an order with lines
	GetByID(ctx context.Context, id id.ID) (*PurchaseOrder, error)

	// GetForUpdate retrieves an order with a row lock inside the current
	// transaction. Lines are loaded as well.
	GetForUpdate(ctx context.Context, id id.ID) (*PurchaseOrder, error)

	// Update saves the header with optimistic locking and rewrites the lines
	Update(ctx context.Context, po *PurchaseOrder) error

	// UpdateHeader saves the header only, leaving lines untouched
	UpdateHeader(ctx context.Context, po *PurchaseOrder) error

	// Delete physically removes the order and its lines
	Delete(ctx context.Context, id id.ID) error

	// List retrieves orders (headers only) with filtering and pagination
	List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*PurchaseOrder], error)

	// AddReceivedQuantity atomically increments received_quantity on a line
	AddReceivedQuantity(ctx context.Context, lineID id.ID, quantity types.Quantity) error

	// SetStatus updates the fulfillment status only
	SetStatus(ctx context.Context, id id.ID, status Status) error

	// SetPaymentStatus updates the payment status only
	SetPaymentStatus(ctx context.Context, id id.ID, status PaymentStatus) error

	// Exists checks if an order with the given ID exists
	Exists(ctx context.Context, id id.ID) (bool, error)
}
