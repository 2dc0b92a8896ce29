package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"procura/internal/core/apperror"
	"procura/internal/core/id"
	"procura/internal/core/types"
	"procura/internal/domain/documents/purchase_order"
	"procura/internal/infrastructure/storage/postgres"
)

// Compile-time check that PurchaseOrderRepo implements purchase_order.Repository.
var _ purchase_order.Repository = (*PurchaseOrderRepo)(nil)

const (
	poTable     = "doc_purchase_orders"
	poLineTable = "doc_purchase_order_lines"
)

// PurchaseOrderRepo is the PostgreSQL repository for purchase orders.
// Header operations come from BaseDocumentRepo; lines are managed here.
type PurchaseOrderRepo struct {
	*BaseDocumentRepo[*purchase_order.PurchaseOrder]
	lineCols []string
}

// NewPurchaseOrderRepo creates a new purchase order repository.
func NewPurchaseOrderRepo(txm *postgres.TxManager) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			txm,
			poTable,
			postgres.ExtractDBColumns[purchase_order.PurchaseOrder](),
			func() *purchase_order.PurchaseOrder { return &purchase_order.PurchaseOrder{} },
		),
		lineCols: postgres.ExtractDBColumns[purchase_order.Line](),
	}
}

// Create inserts the order with its lines.
func (r *PurchaseOrderRepo) Create(ctx context.Context, po *purchase_order.PurchaseOrder) error {
	if err := r.CreateHeader(ctx, po); err != nil {
		return err
	}
	return r.insertLines(ctx, po.Lines)
}

// GetByID retrieves an order with lines.
func (r *PurchaseOrderRepo) GetByID(ctx context.Context, orderID id.ID) (*purchase_order.PurchaseOrder, error) {
	po, err := r.GetHeader(ctx, orderID)
	if err != nil {
		return nil, err
	}
	po.Lines, err = r.loadLines(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return po, nil
}

// GetForUpdate retrieves an order with a row lock inside the current transaction.
func (r *PurchaseOrderRepo) GetForUpdate(ctx context.Context, orderID id.ID) (*purchase_order.PurchaseOrder, error) {
	po, err := r.GetHeaderForUpdate(ctx, orderID)
	if err != nil {
		return nil, err
	}
	po.Lines, err = r.loadLines(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return po, nil
}

// Update saves the header with optimistic locking and rewrites the lines.
func (r *PurchaseOrderRepo) Update(ctx context.Context, po *purchase_order.PurchaseOrder) error {
	if err := r.UpdateHeader(ctx, po); err != nil {
		return err
	}

	if err := r.deleteLines(ctx, po.ID); err != nil {
		return err
	}
	return r.insertLines(ctx, po.Lines)
}

// Delete physically removes the order and its lines.
func (r *PurchaseOrderRepo) Delete(ctx context.Context, orderID id.ID) error {
	if err := r.deleteLines(ctx, orderID); err != nil {
		return err
	}

	q := r.Builder().
		Delete(poTable).
		Where(squirrel.Eq{"id": orderID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete %s: %w", poTable, err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(poTable, orderID.String())
	}

	return nil
}

// AddReceivedQuantity atomically increments received_quantity on a line.
// The increment happens in SQL so concurrent receipts never lose updates.
func (r *PurchaseOrderRepo) AddReceivedQuantity(ctx context.Context, lineID id.ID, quantity types.Quantity) error {
	q := r.Builder().
		Update(poLineTable).
		Set("received_quantity", squirrel.Expr("received_quantity + ?", quantity)).
		Where(squirrel.Eq{"id": lineID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build add received quantity: %w", err)
	}

	result, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("add received quantity: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(poLineTable, lineID.String())
	}

	return nil
}

// SetStatus updates the fulfillment status only.
func (r *PurchaseOrderRepo) SetStatus(ctx context.Context, orderID id.ID, status purchase_order.Status) error {
	return r.SetField(ctx, orderID, "status", string(status))
}

// SetPaymentStatus updates the payment status only.
func (r *PurchaseOrderRepo) SetPaymentStatus(ctx context.Context, orderID id.ID, status purchase_order.PaymentStatus) error {
	return r.SetField(ctx, orderID, "payment_status", string(status))
}

// --- lines ---

func (r *PurchaseOrderRepo) insertLines(ctx context.Context, lines []*purchase_order.Line) error {
	if len(lines) == 0 {
		return nil
	}

	q := r.Builder().
		Insert(poLineTable).
		Columns(r.lineCols...)

	for _, line := range lines {
		data := postgres.StructToMap(line)
		vals := make([]any, 0, len(r.lineCols))
		for _, col := range r.lineCols {
			vals = append(vals, data[col])
		}
		q = q.Values(vals...)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert lines: %w", err)
	}

	if _, err := r.Querier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert %s: %w", poLineTable, err)
	}

	return nil
}

func (r *PurchaseOrderRepo) deleteLines(ctx context.Context, orderID id.ID) error {
	q := r.Builder().
		Delete(poLineTable).
		Where(squirrel.Eq{"order_id": orderID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete lines: %w", err)
	}

	if _, err := r.Querier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete %s: %w", poLineTable, err)
	}

	return nil
}

func (r *PurchaseOrderRepo) loadLines(ctx context.Context, orderID id.ID) ([]*purchase_order.Line, error) {
	q := r.Builder().
		Select(r.lineCols...).
		From(poLineTable).
		Where(squirrel.Eq{"order_id": orderID}).
		OrderBy("line_no")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build load lines: %w", err)
	}

	var lines []*purchase_order.Line
	if err := pgxscan.Select(ctx, r.Querier(ctx), &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("load %s: %w", poLineTable, err)
	}

	return lines, nil
}
