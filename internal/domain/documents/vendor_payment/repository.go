package vendor_payment

import (
	"context"

	"procura/internal/core/id"
	"procura/internal/core/types"
	"procura/internal/domain"
)

// Repository defines the interface for VendorPayment persistence.
// Payments are immutable once created; there is no Update.
type Repository interface {
	// Create inserts the payment
	Create(ctx context.Context, vp *VendorPayment) error

	// GetByID retrieves a payment
	GetByID(ctx context.Context, id id.ID) (*VendorPayment, error)

	// List retrieves payments with filtering and pagination
	List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*VendorPayment], error)

	// ListByOrder retrieves all payments recorded against an order
	ListByOrder(ctx context.Context, orderID id.ID) ([]*VendorPayment, error)

	// TotalPaidForOrder sums payment amounts for an order.
	// Call inside the payment transaction so the sum is consistent with
	// the locked order row.
	TotalPaidForOrder(ctx context.Context, orderID id.ID) (types.Money, error)
}
