package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/shopspring/decimal"

	"procura/internal/core/id"
	"procura/internal/core/types"
	"procura/internal/domain/documents/vendor_payment"
	"procura/internal/infrastructure/storage/postgres"
)

// Compile-time check that VendorPaymentRepo implements vendor_payment.Repository.
var _ vendor_payment.Repository = (*VendorPaymentRepo)(nil)

const vpTable = "doc_vendor_payments"

// VendorPaymentRepo is the PostgreSQL repository for vendor payments.
type VendorPaymentRepo struct {
	*BaseDocumentRepo[*vendor_payment.VendorPayment]
}

// NewVendorPaymentRepo creates a new vendor payment repository.
func NewVendorPaymentRepo(txm *postgres.TxManager) *VendorPaymentRepo {
	return &VendorPaymentRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			txm,
			vpTable,
			postgres.ExtractDBColumns[vendor_payment.VendorPayment](),
			func() *vendor_payment.VendorPayment { return &vendor_payment.VendorPayment{} },
		),
	}
}

// Create inserts the payment.
func (r *VendorPaymentRepo) Create(ctx context.Context, vp *vendor_payment.VendorPayment) error {
	return r.CreateHeader(ctx, vp)
}

// GetByID retrieves a payment.
func (r *VendorPaymentRepo) GetByID(ctx context.Context, paymentID id.ID) (*vendor_payment.VendorPayment, error) {
	return r.GetHeader(ctx, paymentID)
}

// ListByOrder retrieves all payments recorded against an order.
func (r *VendorPaymentRepo) ListByOrder(ctx context.Context, orderID id.ID) ([]*vendor_payment.VendorPayment, error) {
	q := r.Builder().
		Select(postgres.ExtractDBColumns[vendor_payment.VendorPayment]()...).
		From(vpTable).
		Where(squirrel.Eq{"order_id": orderID}).
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("date", "number")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list by order: %w", err)
	}

	var payments []*vendor_payment.VendorPayment
	if err := pgxscan.Select(ctx, r.Querier(ctx), &payments, sql, args...); err != nil {
		return nil, fmt.Errorf("list %s by order: %w", vpTable, err)
	}

	return payments, nil
}

// TotalPaidForOrder sums payment amounts for an order.
func (r *VendorPaymentRepo) TotalPaidForOrder(ctx context.Context, orderID id.ID) (types.Money, error) {
	q := r.Builder().
		Select("COALESCE(SUM(amount), 0)").
		From(vpTable).
		Where(squirrel.Eq{"order_id": orderID}).
		Where(squirrel.Eq{"deletion_mark": false})

	sql, args, err := q.ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("build total paid: %w", err)
	}

	var total decimal.Decimal
	if err := r.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("total paid for order: %w", err)
	}

	return total, nil
}
