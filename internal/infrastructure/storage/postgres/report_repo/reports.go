// Package report_repo provides PostgreSQL implementations for reports.
package report_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/shopspring/decimal"

	"procura/internal/domain/reports"
	"procura/internal/infrastructure/storage/postgres"
)

// Compile-time check that ReportRepo implements reports.Repository.
var _ reports.Repository = (*ReportRepo)(nil)

// ReportRepo builds report queries over the register and catalog tables.
type ReportRepo struct {
	txm *postgres.TxManager
}

// NewReportRepo creates a new report repository.
func NewReportRepo(txm *postgres.TxManager) *ReportRepo {
	return &ReportRepo{txm: txm}
}

func (r *ReportRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// GetStockBalance joins the stock register with warehouse and item catalogs.
func (r *ReportRepo) GetStockBalance(ctx context.Context, filter reports.StockBalanceFilter) (*reports.StockBalanceReport, error) {
	q := r.builder().
		Select(
			"s.warehouse_id",
			"w.name AS warehouse_name",
			"s.item_id",
			"i.name AS item_name",
			"i.sku",
			"i.unit",
			"s.quantity",
			"s.value",
		).
		From("reg_warehouse_stock s").
		Join("cat_warehouses w ON w.id = s.warehouse_id").
		Join("cat_items i ON i.id = s.item_id").
		OrderBy("w.name", "i.name").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	if len(filter.WarehouseIDs) > 0 {
		q = q.Where(squirrel.Eq{"s.warehouse_id": filter.WarehouseIDs})
	}
	if len(filter.ItemIDs) > 0 {
		q = q.Where(squirrel.Eq{"s.item_id": filter.ItemIDs})
	}
	if filter.ExcludeZero {
		q = q.Where("s.quantity <> 0")
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build stock balance query: %w", err)
	}

	var rows []reports.StockBalanceRow
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("stock balance report: %w", err)
	}

	report := &reports.StockBalanceReport{
		AsOfDate:      time.Now().UTC(),
		Items:         rows,
		TotalItems:    len(rows),
		TotalQuantity: decimal.Zero,
		TotalValue:    decimal.Zero,
	}
	for _, row := range rows {
		report.TotalQuantity = report.TotalQuantity.Add(row.Quantity)
		report.TotalValue = report.TotalValue.Add(row.Value)
	}

	return report, nil
}

// GetLowStock sums stock per item across the selected warehouses and keeps
// active items below their reorder level. Items with no stock rows at all
// count as zero on hand.
func (r *ReportRepo) GetLowStock(ctx context.Context, filter reports.LowStockFilter) (*reports.LowStockReport, error) {
	stockSum := r.builder().
		Select("s.item_id", "SUM(s.quantity) AS quantity").
		From("reg_warehouse_stock s").
		GroupBy("s.item_id")

	if len(filter.WarehouseIDs) > 0 {
		stockSum = stockSum.Where(squirrel.Eq{"s.warehouse_id": filter.WarehouseIDs})
	}

	sumSQL, sumArgs, err := stockSum.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build stock sum query: %w", err)
	}

	q := r.builder().
		Select(
			"i.id AS item_id",
			"i.name AS item_name",
			"i.sku",
			"i.unit",
			"COALESCE(st.quantity, 0) AS quantity",
			"i.reorder_level",
		).
		From("cat_items i").
		JoinClause("LEFT JOIN ("+sumSQL+") st ON st.item_id = i.id", sumArgs...).
		Where(squirrel.Eq{"i.deletion_mark": false}).
		Where(squirrel.Eq{"i.is_folder": false}).
		Where(squirrel.Eq{"i.is_active": true}).
		Where("i.reorder_level > 0").
		Where("COALESCE(st.quantity, 0) < i.reorder_level").
		OrderBy("i.name").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build low stock query: %w", err)
	}

	var rows []reports.LowStockRow
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("low stock report: %w", err)
	}

	return &reports.LowStockReport{
		AsOfDate:   time.Now().UTC(),
		Items:      rows,
		TotalItems: len(rows),
	}, nil
}
