package reports

import (
	"context"
)

// Repository defines report data access interface.
type Repository interface {
	GetStockBalance(ctx context.Context, filter StockBalanceFilter) (*StockBalanceReport, error)
	GetLowStock(ctx context.Context, filter LowStockFilter) (*LowStockReport, error)
}
