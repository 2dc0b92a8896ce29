package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"procura/internal/core/id"
	"procura/internal/domain/documents/goods_receipt"
	"procura/internal/infrastructure/storage/postgres"
)

// Compile-time check that GoodsReceiptRepo implements goods_receipt.Repository.
var _ goods_receipt.Repository = (*GoodsReceiptRepo)(nil)

const (
	grTable     = "doc_goods_receipts"
	grLineTable = "doc_goods_receipt_lines"
)

// GoodsReceiptRepo is the PostgreSQL repository for goods receipts.
type GoodsReceiptRepo struct {
	*BaseDocumentRepo[*goods_receipt.GoodsReceipt]
	lineCols []string
}

// NewGoodsReceiptRepo creates a new goods receipt repository.
func NewGoodsReceiptRepo(txm *postgres.TxManager) *GoodsReceiptRepo {
	return &GoodsReceiptRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			txm,
			grTable,
			postgres.ExtractDBColumns[goods_receipt.GoodsReceipt](),
			func() *goods_receipt.GoodsReceipt { return &goods_receipt.GoodsReceipt{} },
		),
		lineCols: postgres.ExtractDBColumns[goods_receipt.Line](),
	}
}

// Create inserts the receipt with its lines.
func (r *GoodsReceiptRepo) Create(ctx context.Context, gr *goods_receipt.GoodsReceipt) error {
	if err := r.CreateHeader(ctx, gr); err != nil {
		return err
	}
	return r.insertLines(ctx, gr.Lines)
}

// GetByID retrieves a receipt with lines.
func (r *GoodsReceiptRepo) GetByID(ctx context.Context, receiptID id.ID) (*goods_receipt.GoodsReceipt, error) {
	gr, err := r.GetHeader(ctx, receiptID)
	if err != nil {
		return nil, err
	}
	gr.Lines, err = r.loadLines(ctx, receiptID)
	if err != nil {
		return nil, err
	}
	return gr, nil
}

// ListByOrder retrieves all receipts recorded against an order, with lines.
func (r *GoodsReceiptRepo) ListByOrder(ctx context.Context, orderID id.ID) ([]*goods_receipt.GoodsReceipt, error) {
	q := r.Builder().
		Select(postgres.ExtractDBColumns[goods_receipt.GoodsReceipt]()...).
		From(grTable).
		Where(squirrel.Eq{"order_id": orderID}).
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("date", "number")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list by order: %w", err)
	}

	var receipts []*goods_receipt.GoodsReceipt
	if err := pgxscan.Select(ctx, r.Querier(ctx), &receipts, sql, args...); err != nil {
		return nil, fmt.Errorf("list %s by order: %w", grTable, err)
	}

	for _, gr := range receipts {
		gr.Lines, err = r.loadLines(ctx, gr.ID)
		if err != nil {
			return nil, err
		}
	}

	return receipts, nil
}

func (r *GoodsReceiptRepo) insertLines(ctx context.Context, lines []*goods_receipt.Line) error {
	if len(lines) == 0 {
		return nil
	}

	q := r.Builder().
		Insert(grLineTable).
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
		return fmt.Errorf("insert %s: %w", grLineTable, err)
	}

	return nil
}

func (r *GoodsReceiptRepo) loadLines(ctx context.Context, receiptID id.ID) ([]*goods_receipt.Line, error) {
	q := r.Builder().
		Select(r.lineCols...).
		From(grLineTable).
		Where(squirrel.Eq{"receipt_id": receiptID}).
		OrderBy("line_no")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build load lines: %w", err)
	}

	var lines []*goods_receipt.Line
	if err := pgxscan.Select(ctx, r.Querier(ctx), &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("load %s: %w", grLineTable, err)
	}

	return lines, nil
}
