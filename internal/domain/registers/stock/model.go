// Package stock implements the warehouse stock accumulation register.
// Each row keeps the on-hand quantity and total inventory value of one item
// in one warehouse. Goods receipts increment both atomically.
package stock

import (
	"time"

	"github.com/shopspring/decimal"

	"procura/internal/core/id"
	"procura/internal/core/types"
)

// WarehouseStock is one accumulation row of the register.
type WarehouseStock struct {
	ItemID      id.ID `db:"item_id" json:"itemId"`
	WarehouseID id.ID `db:"warehouse_id" json:"warehouseId"`

	// Quantity on hand
	Quantity types.Quantity `db:"quantity" json:"quantity"`

	// Value is the total cost of the quantity on hand
	Value types.Money `db:"value" json:"value"`

	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// AverageCost returns value divided by quantity, zero when empty.
func (s *WarehouseStock) AverageCost() types.Money {
	if !s.Quantity.IsPositive() {
		return decimal.Zero
	}
	return types.RoundMoney(s.Value.Div(s.Quantity))
}

// Movement is a single increment applied to the register.
type Movement struct {
	ItemID      id.ID
	WarehouseID id.ID
	Quantity    types.Quantity
	Value       types.Money
}
