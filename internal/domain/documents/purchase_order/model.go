// Package purchase_order implements the PurchaseOrder document.
// Purchase orders move through draft -> sent -> partially_received ->
// fully_received; cancelled is terminal. Monetary amounts on lines are
// derived with package calc and frozen at save time.
package purchase_order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"procura/internal/core/apperror"
	"procura/internal/core/entity"
	"procura/internal/core/id"
	"procura/internal/core/types"
	"procura/internal/domain/calc"
)

// Status is the fulfillment lifecycle state of a purchase order.
type Status string

const (
	StatusDraft             Status = "draft"
	StatusSent              Status = "sent"
	StatusPartiallyReceived Status = "partially_received"
	StatusFullyReceived     Status = "fully_received"
	StatusCancelled         Status = "cancelled"
)

// PaymentStatus tracks how much of the order total has been paid.
type PaymentStatus string

const (
	PaymentUnpaid        PaymentStatus = "unpaid"
	PaymentPartiallyPaid PaymentStatus = "partially_paid"
	PaymentPaid          PaymentStatus = "paid"
)

// PurchaseOrder is an order placed with a vendor for goods.
type PurchaseOrder struct {
	entity.Document

	// VendorID references the Partner catalog
	VendorID id.ID `db:"vendor_id" json:"vendorId"`

	// VendorName is a display snapshot taken at creation time
	VendorName string `db:"vendor_name" json:"vendorName"`

	// Status is the fulfillment state
	Status Status `db:"status" json:"status"`

	// PaymentStatus is derived from recorded vendor payments
	PaymentStatus PaymentStatus `db:"payment_status" json:"paymentStatus"`

	// ExpectedDate is the promised delivery date (optional)
	ExpectedDate *time.Time `db:"expected_date" json:"expectedDate,omitempty"`

	// ShippingAddress overrides the default delivery address (optional)
	ShippingAddress *string `db:"shipping_address" json:"shippingAddress,omitempty"`

	// Totals are sums of already-rounded line amounts
	Subtotal      types.Money `db:"subtotal" json:"subtotal"`
	TaxTotal      types.Money `db:"tax_total" json:"taxTotal"`
	DiscountTotal types.Money `db:"discount_total" json:"discountTotal"`
	Total         types.Money `db:"total" json:"total"`

	// Lines are loaded separately by the repository
	Lines []*Line `db:"-" json:"lines"`
}

// Line is a single item position on a purchase order.
type Line struct {
	ID      id.ID `db:"id" json:"id"`
	OrderID id.ID `db:"order_id" json:"orderId"`

	// LineNo is the 1-based position within the order
	LineNo int `db:"line_no" json:"lineNo"`

	ItemID id.ID `db:"item_id" json:"itemId"`

	// ItemName is a display snapshot taken when the line was added
	ItemName string `db:"item_name" json:"itemName"`

	Quantity        types.Quantity  `db:"quantity" json:"quantity"`
	UnitPrice       types.Money     `db:"unit_price" json:"unitPrice"`
	TaxRate         decimal.Decimal `db:"tax_rate" json:"taxRate"`
	DiscountPercent decimal.Decimal `db:"discount_percent" json:"discountPercent"`

	// Derived amounts, frozen at save time
	Subtotal       types.Money `db:"subtotal" json:"subtotal"`
	TaxAmount      types.Money `db:"tax_amount" json:"taxAmount"`
	DiscountAmount types.Money `db:"discount_amount" json:"discountAmount"`
	Total          types.Money `db:"total" json:"total"`

	// ReceivedQuantity accumulates over goods receipts
	ReceivedQuantity types.Quantity `db:"received_quantity" json:"receivedQuantity"`
}

// RemainingQuantity returns the quantity still expected on this line.
func (l *Line) RemainingQuantity() types.Quantity {
	return l.Quantity.Sub(l.ReceivedQuantity)
}

// IsFullyReceived reports whether the line has no remaining quantity.
func (l *Line) IsFullyReceived() bool {
	return l.ReceivedQuantity.GreaterThanOrEqual(l.Quantity)
}

// NewPurchaseOrder creates a draft order for the given vendor.
func NewPurchaseOrder(vendorID id.ID) *PurchaseOrder {
	return &PurchaseOrder{
		Document:      entity.NewDocument(),
		VendorID:      vendorID,
		Status:        StatusDraft,
		PaymentStatus: PaymentUnpaid,
		Subtotal:      decimal.Zero,
		TaxTotal:      decimal.Zero,
		DiscountTotal: decimal.Zero,
		Total:         decimal.Zero,
	}
}

// AddLine appends a line with derived amounts. Inputs are validated against
// business ranges (positive quantity, non-negative price and tax,
// discount within 0..100).
func (po *PurchaseOrder) AddLine(itemID id.ID, itemName string, quantity types.Quantity, unitPrice types.Money, taxRate, discountPct decimal.Decimal) error {
	amounts, err := calc.Compute(quantity, unitPrice, taxRate, discountPct)
	if err != nil {
		return err
	}

	po.Lines = append(po.Lines, &Line{
		ID:               id.New(),
		OrderID:          po.ID,
		LineNo:           len(po.Lines) + 1,
		ItemID:           itemID,
		ItemName:         itemName,
		Quantity:         quantity,
		UnitPrice:        unitPrice,
		TaxRate:          taxRate,
		DiscountPercent:  discountPct,
		Subtotal:         amounts.Subtotal,
		TaxAmount:        amounts.TaxAmount,
		DiscountAmount:   amounts.DiscountAmount,
		Total:            amounts.Total,
		ReceivedQuantity: decimal.Zero,
	})

	po.Recalculate()
	return nil
}

// ClearLines removes all lines and resets totals.
func (po *PurchaseOrder) ClearLines() {
	po.Lines = nil
	po.Recalculate()
}

// Recalculate rebuilds document totals from line amounts.
func (po *PurchaseOrder) Recalculate() {
	amounts := make([]calc.LineAmounts, 0, len(po.Lines))
	for _, l := range po.Lines {
		amounts = append(amounts, calc.LineAmounts{
			Subtotal:       l.Subtotal,
			TaxAmount:      l.TaxAmount,
			DiscountAmount: l.DiscountAmount,
			Total:          l.Total,
		})
	}

	sum := calc.SumTotals(amounts)
	po.Subtotal = sum.Subtotal
	po.TaxTotal = sum.TaxAmount
	po.DiscountTotal = sum.DiscountAmount
	po.Total = sum.Total
}

// Validate implements entity.Validatable interface.
func (po *PurchaseOrder) Validate(ctx context.Context) error {
	if err := po.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(po.VendorID) {
		return apperror.NewValidation("vendor is required").
			WithDetail("field", "vendorId")
	}

	if len(po.Lines) == 0 {
		return apperror.NewValidation("order must have at least one line").
			WithDetail("field", "lines")
	}

	return nil
}

// CanEdit reports whether the order content may still change.
// Only drafts are editable.
func (po *PurchaseOrder) CanEdit() bool {
	return po.Status == StatusDraft
}

// CanReceive reports whether goods may be received against the order.
func (po *PurchaseOrder) CanReceive() bool {
	return po.Status == StatusSent || po.Status == StatusPartiallyReceived
}

// Balance returns the unpaid portion of the order total.
func (po *PurchaseOrder) Balance(paid types.Money) types.Money {
	return po.Total.Sub(paid)
}

// FindLine returns the line with the given ID, or nil.
func (po *PurchaseOrder) FindLine(lineID id.ID) *Line {
	for _, l := range po.Lines {
		if l.ID == lineID {
			return l
		}
	}
	return nil
}
