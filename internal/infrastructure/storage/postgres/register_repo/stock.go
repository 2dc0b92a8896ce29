// Package register_repo provides PostgreSQL implementations for accumulation registers.
package register_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"procura/internal/core/apperror"
	"procura/internal/core/id"
	"procura/internal/domain/registers/stock"
	"procura/internal/infrastructure/storage/postgres"
)

// Compile-time check that StockRepo implements stock.Repository.
var _ stock.Repository = (*StockRepo)(nil)

const stockTable = "reg_warehouse_stock"

// StockRepo is the PostgreSQL repository for the warehouse stock register.
type StockRepo struct {
	txm  *postgres.TxManager
	cols []string
}

// NewStockRepo creates a new stock register repository.
func NewStockRepo(txm *postgres.TxManager) *StockRepo {
	return &StockRepo{
		txm:  txm,
		cols: postgres.ExtractDBColumns[stock.WarehouseStock](),
	}
}

func (r *StockRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Apply upserts register rows, incrementing quantity and value.
// The increment happens in SQL so concurrent receipts for the same
// (item, warehouse) pair never lose updates.
func (r *StockRepo) Apply(ctx context.Context, movements []stock.Movement) error {
	const sql = `
		INSERT INTO reg_warehouse_stock (item_id, warehouse_id, quantity, value, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (item_id, warehouse_id) DO UPDATE SET
			quantity   = reg_warehouse_stock.quantity + EXCLUDED.quantity,
			value      = reg_warehouse_stock.value + EXCLUDED.value,
			updated_at = NOW()
	`

	querier := r.txm.GetQuerier(ctx)
	for _, m := range movements {
		if _, err := querier.Exec(ctx, sql, m.ItemID, m.WarehouseID, m.Quantity, m.Value); err != nil {
			return fmt.Errorf("apply stock movement: %w", err)
		}
	}

	return nil
}

// Get retrieves one register row.
func (r *StockRepo) Get(ctx context.Context, itemID, warehouseID id.ID) (*stock.WarehouseStock, error) {
	q := r.builder().
		Select(r.cols...).
		From(stockTable).
		Where(squirrel.Eq{"item_id": itemID}).
		Where(squirrel.Eq{"warehouse_id": warehouseID})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	row := &stock.WarehouseStock{}
	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound(stockTable, itemID.String())
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}

	return row, nil
}

// ListByWarehouse retrieves all rows for a warehouse.
func (r *StockRepo) ListByWarehouse(ctx context.Context, warehouseID id.ID) ([]*stock.WarehouseStock, error) {
	return r.list(ctx, squirrel.Eq{"warehouse_id": warehouseID})
}

// ListByItem retrieves all rows for an item across warehouses.
func (r *StockRepo) ListByItem(ctx context.Context, itemID id.ID) ([]*stock.WarehouseStock, error) {
	return r.list(ctx, squirrel.Eq{"item_id": itemID})
}

func (r *StockRepo) list(ctx context.Context, where squirrel.Eq) ([]*stock.WarehouseStock, error) {
	q := r.builder().
		Select(r.cols...).
		From(stockTable).
		Where(where).
		OrderBy("item_id", "warehouse_id")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []*stock.WarehouseStock
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}

	return rows, nil
}
