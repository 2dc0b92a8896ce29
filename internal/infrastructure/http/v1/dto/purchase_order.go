package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"procura/internal/core/apperror"
	"procura/internal/core/id"
	"procura/internal/domain/documents/purchase_order"
)

// --- Request DTOs ---

// OrderLineRequest is one line of a purchase order request.
type OrderLineRequest struct {
	ItemID          string          `json:"itemId" binding:"required"`
	ItemName        string          `json:"itemName"`
	Quantity        decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	TaxRate         decimal.Decimal `json:"taxRate"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
}

// CreatePurchaseOrderRequest is the request body for creating an order.
type CreatePurchaseOrderRequest struct {
	VendorID        string             `json:"vendorId" binding:"required"`
	Date            *time.Time         `json:"date"`
	ExpectedDate    *time.Time         `json:"expectedDate"`
	ShippingAddress *string            `json:"shippingAddress"`
	Comment         string             `json:"comment"`
	Lines           []OrderLineRequest `json:"lines" binding:"required"`
}

// ToEntity converts DTO to domain entity. Line amounts are derived here,
// so range violations surface before the service is called.
func (r *CreatePurchaseOrderRequest) ToEntity() (*purchase_order.PurchaseOrder, error) {
	vendorID, err := id.Parse(r.VendorID)
	if err != nil {
		return nil, apperror.NewValidation("invalid vendorId format")
	}

	po := purchase_order.NewPurchaseOrder(vendorID)
	if r.Date != nil {
		po.Date = *r.Date
	}
	po.ExpectedDate = r.ExpectedDate
	po.ShippingAddress = r.ShippingAddress
	po.Comment = r.Comment

	if err := applyOrderLines(po, r.Lines); err != nil {
		return nil, err
	}

	return po, nil
}

// UpdatePurchaseOrderRequest is the request body for updating a draft order.
// Lines replace the stored ones entirely.
type UpdatePurchaseOrderRequest struct {
	VendorID        *string            `json:"vendorId"`
	Date            *time.Time         `json:"date"`
	ExpectedDate    *time.Time         `json:"expectedDate"`
	ShippingAddress *string            `json:"shippingAddress"`
	Comment         string             `json:"comment"`
	Lines           []OrderLineRequest `json:"lines" binding:"required"`
	Version         int                `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdatePurchaseOrderRequest) ApplyTo(po *purchase_order.PurchaseOrder) error {
	if r.VendorID != nil {
		vendorID, err := id.Parse(*r.VendorID)
		if err != nil {
			return apperror.NewValidation("invalid vendorId format")
		}
		po.VendorID = vendorID
	}
	if r.Date != nil {
		po.Date = *r.Date
	}
	po.ExpectedDate = r.ExpectedDate
	po.ShippingAddress = r.ShippingAddress
	po.Comment = r.Comment
	po.Version = r.Version

	po.ClearLines()
	return applyOrderLines(po, r.Lines)
}

func applyOrderLines(po *purchase_order.PurchaseOrder, lines []OrderLineRequest) error {
	for i, l := range lines {
		itemID, err := id.Parse(l.ItemID)
		if err != nil {
			return apperror.NewValidation("invalid itemId format").
				WithDetail("lineNo", i+1)
		}
		if err := po.AddLine(itemID, l.ItemName, l.Quantity, l.UnitPrice, l.TaxRate, l.DiscountPercent); err != nil {
			return err
		}
	}
	return nil
}

// --- Response DTOs ---

// OrderLineResponse is one line of a purchase order response.
type OrderLineResponse struct {
	ID                string          `json:"id"`
	LineNo            int             `json:"lineNo"`
	ItemID            string          `json:"itemId"`
	ItemName          string          `json:"itemName"`
	Quantity          decimal.Decimal `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
	TaxRate           decimal.Decimal `json:"taxRate"`
	DiscountPercent   decimal.Decimal `json:"discountPercent"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	TaxAmount         decimal.Decimal `json:"taxAmount"`
	DiscountAmount    decimal.Decimal `json:"discountAmount"`
	Total             decimal.Decimal `json:"total"`
	ReceivedQuantity  decimal.Decimal `json:"receivedQuantity"`
	RemainingQuantity decimal.Decimal `json:"remainingQuantity"`
}

// PurchaseOrderResponse is the response body for a purchase order.
type PurchaseOrderResponse struct {
	DocumentResponse
	VendorID        string               `json:"vendorId"`
	VendorName      string               `json:"vendorName"`
	Status          string               `json:"status"`
	PaymentStatus   string               `json:"paymentStatus"`
	ExpectedDate    *time.Time           `json:"expectedDate,omitempty"`
	ShippingAddress *string              `json:"shippingAddress,omitempty"`
	Subtotal        decimal.Decimal      `json:"subtotal"`
	TaxTotal        decimal.Decimal      `json:"taxTotal"`
	DiscountTotal   decimal.Decimal      `json:"discountTotal"`
	Total           decimal.Decimal      `json:"total"`
	Lines           []*OrderLineResponse `json:"lines"`
}

// FromPurchaseOrder creates response DTO from domain entity.
func FromPurchaseOrder(po *purchase_order.PurchaseOrder) *PurchaseOrderResponse {
	lines := make([]*OrderLineResponse, len(po.Lines))
	for i, l := range po.Lines {
		lines[i] = &OrderLineResponse{
			ID:                l.ID.String(),
			LineNo:            l.LineNo,
			ItemID:            l.ItemID.String(),
			ItemName:          l.ItemName,
			Quantity:          l.Quantity,
			UnitPrice:         l.UnitPrice,
			TaxRate:           l.TaxRate,
			DiscountPercent:   l.DiscountPercent,
			Subtotal:          l.Subtotal,
			TaxAmount:         l.TaxAmount,
			DiscountAmount:    l.DiscountAmount,
			Total:             l.Total,
			ReceivedQuantity:  l.ReceivedQuantity,
			RemainingQuantity: l.RemainingQuantity(),
		}
	}

	return &PurchaseOrderResponse{
		DocumentResponse: FromDocument(po.Document),
		VendorID:         po.VendorID.String(),
		VendorName:       po.VendorName,
		Status:           string(po.Status),
		PaymentStatus:    string(po.PaymentStatus),
		ExpectedDate:     po.ExpectedDate,
		ShippingAddress:  po.ShippingAddress,
		Subtotal:         po.Subtotal,
		TaxTotal:         po.TaxTotal,
		DiscountTotal:    po.DiscountTotal,
		Total:            po.Total,
		Lines:            lines,
	}
}
