package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"procura/internal/domain/registers/stock"
)

// StockResponse is one row of the warehouse stock register.
type StockResponse struct {
	ItemID      string          `json:"itemId"`
	WarehouseID string          `json:"warehouseId"`
	Quantity    decimal.Decimal `json:"quantity"`
	Value       decimal.Decimal `json:"value"`
	AverageCost decimal.Decimal `json:"averageCost"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// FromStock creates response DTO from a register row.
func FromStock(s *stock.WarehouseStock) *StockResponse {
	return &StockResponse{
		ItemID:      s.ItemID.String(),
		WarehouseID: s.WarehouseID.String(),
		Quantity:    s.Quantity,
		Value:       s.Value,
		AverageCost: s.AverageCost(),
		UpdatedAt:   s.UpdatedAt,
	}
}

// FromStockList maps register rows to DTOs.
func FromStockList(rows []*stock.WarehouseStock) []*StockResponse {
	out := make([]*StockResponse, len(rows))
	for i, r := range rows {
		out[i] = FromStock(r)
	}
	return out
}
