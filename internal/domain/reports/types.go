// Package reports provides read-only procurement and inventory reports.
package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"procura/internal/core/id"
)

// --- Stock Balance Report ---

// StockBalanceFilter defines filters for the stock balance report.
type StockBalanceFilter struct {
	WarehouseIDs []id.ID
	ItemIDs      []id.ID

	// ExcludeZero drops rows with zero on-hand quantity
	ExcludeZero bool

	// Pagination
	Limit  int
	Offset int
}

// StockBalanceRow is a single row of the stock balance report.
type StockBalanceRow struct {
	WarehouseID   id.ID           `db:"warehouse_id" json:"warehouseId"`
	WarehouseName string          `db:"warehouse_name" json:"warehouseName"`
	ItemID        id.ID           `db:"item_id" json:"itemId"`
	ItemName      string          `db:"item_name" json:"itemName"`
	SKU           *string         `db:"sku" json:"sku,omitempty"`
	Unit          string          `db:"unit" json:"unit"`
	Quantity      decimal.Decimal `db:"quantity" json:"quantity"`
	Value         decimal.Decimal `db:"value" json:"value"`
}

// StockBalanceReport is the full stock balance report.
type StockBalanceReport struct {
	AsOfDate   time.Time         `json:"asOfDate"`
	Items      []StockBalanceRow `json:"items"`
	TotalItems int               `json:"totalItems"`

	// Summary
	TotalQuantity decimal.Decimal `json:"totalQuantity"`
	TotalValue    decimal.Decimal `json:"totalValue"`
}

// --- Low Stock Report ---

// LowStockFilter defines filters for the low stock report.
type LowStockFilter struct {
	WarehouseIDs []id.ID

	// Pagination
	Limit  int
	Offset int
}

// LowStockRow is an item whose availability dropped below its reorder level.
// Quantity is summed across the selected warehouses.
type LowStockRow struct {
	ItemID       id.ID           `db:"item_id" json:"itemId"`
	ItemName     string          `db:"item_name" json:"itemName"`
	SKU          *string         `db:"sku" json:"sku,omitempty"`
	Unit         string          `db:"unit" json:"unit"`
	Quantity     decimal.Decimal `db:"quantity" json:"quantity"`
	ReorderLevel decimal.Decimal `db:"reorder_level" json:"reorderLevel"`
}

// Shortage returns how far the item is below its reorder level.
func (r *LowStockRow) Shortage() decimal.Decimal {
	return r.ReorderLevel.Sub(r.Quantity)
}

// LowStockReport is the full low stock report.
type LowStockReport struct {
	AsOfDate   time.Time     `json:"asOfDate"`
	Items      []LowStockRow `json:"items"`
	TotalItems int           `json:"totalItems"`
}
