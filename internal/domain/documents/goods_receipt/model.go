// Package goods_receipt implements the GoodsReceipt document.
// A receipt records goods arriving against a sent purchase order, increments
// warehouse stock and advances the order's fulfillment status.
package goods_receipt

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"procura/internal/core/apperror"
	"procura/internal/core/entity"
	"procura/internal/core/id"
	"procura/internal/core/types"
)

// GoodsReceipt is a delivery received against a purchase order.
type GoodsReceipt struct {
	entity.Document

	// OrderID references the purchase order being fulfilled
	OrderID id.ID `db:"order_id" json:"orderId"`

	// OrderNumber is a display snapshot of the order number
	OrderNumber string `db:"order_number" json:"orderNumber"`

	// WarehouseID is the warehouse receiving the goods
	WarehouseID id.ID `db:"warehouse_id" json:"warehouseId"`

	// DeliveryNoteNumber is the vendor's delivery note reference (optional)
	DeliveryNoteNumber *string `db:"delivery_note_number" json:"deliveryNoteNumber,omitempty"`

	// ReferenceNumber is an internal reference (optional)
	ReferenceNumber *string `db:"reference_number" json:"referenceNumber,omitempty"`

	// Lines are loaded separately by the repository
	Lines []*Line `db:"-" json:"lines"`
}

// Line is a single received item position.
type Line struct {
	ID        id.ID `db:"id" json:"id"`
	ReceiptID id.ID `db:"receipt_id" json:"receiptId"`

	// LineNo is the 1-based position within the receipt
	LineNo int `db:"line_no" json:"lineNo"`

	// OrderLineID references the order line being fulfilled
	OrderLineID id.ID `db:"order_line_id" json:"orderLineId"`

	ItemID id.ID `db:"item_id" json:"itemId"`

	// ItemName is a display snapshot copied from the order line
	ItemName string `db:"item_name" json:"itemName"`

	// Quantity received in this delivery
	Quantity types.Quantity `db:"quantity" json:"quantity"`

	// UnitCost is copied from the order line's unit price, never supplied
	// by the caller
	UnitCost types.Money `db:"unit_cost" json:"unitCost"`

	// Optional traceability fields
	LotNumber  *string    `db:"lot_number" json:"lotNumber,omitempty"`
	ExpiryDate *time.Time `db:"expiry_date" json:"expiryDate,omitempty"`
	Location   *string    `db:"location" json:"location,omitempty"`
}

// Value returns the inventory value of the line (quantity * unit cost,
// rounded to the monetary scale).
func (l *Line) Value() types.Money {
	return types.RoundMoney(l.Quantity.Mul(l.UnitCost))
}

// NewGoodsReceipt creates a receipt for the given order and warehouse.
func NewGoodsReceipt(orderID, warehouseID id.ID) *GoodsReceipt {
	return &GoodsReceipt{
		Document:    entity.NewDocument(),
		OrderID:     orderID,
		WarehouseID: warehouseID,
	}
}

// AddLine appends a received position. Unit cost is resolved from the order
// line at receive time.
func (gr *GoodsReceipt) AddLine(orderLineID id.ID, quantity types.Quantity) *Line {
	line := &Line{
		ID:          id.New(),
		ReceiptID:   gr.ID,
		LineNo:      len(gr.Lines) + 1,
		OrderLineID: orderLineID,
		Quantity:    quantity,
		UnitCost:    decimal.Zero,
	}
	gr.Lines = append(gr.Lines, line)
	return line
}

// Validate implements entity.Validatable interface.
func (gr *GoodsReceipt) Validate(ctx context.Context) error {
	if err := gr.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(gr.OrderID) {
		return apperror.NewValidation("order is required").
			WithDetail("field", "orderId")
	}

	if id.IsNil(gr.WarehouseID) {
		return apperror.NewValidation("warehouse is required").
			WithDetail("field", "warehouseId")
	}

	if len(gr.Lines) == 0 {
		return apperror.NewValidation("receipt must have at least one line").
			WithDetail("field", "lines")
	}

	for _, l := range gr.Lines {
		if id.IsNil(l.OrderLineID) {
			return apperror.NewValidation("order line reference is required").
				WithDetail("lineNo", l.LineNo)
		}
		if !l.Quantity.IsPositive() {
			return apperror.NewInvalidInput("received quantity must be positive").
				WithDetail("lineNo", l.LineNo).
				WithDetail("value", l.Quantity.String())
		}
	}

	return nil
}
