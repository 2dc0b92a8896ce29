package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"procura/internal/core/apperror"
	"procura/internal/core/id"
	"procura/internal/domain/documents/goods_receipt"
)

// --- Request DTOs ---

// ReceiptLineRequest is one line of a goods receipt request.
// Unit cost is never accepted from the caller; it is copied from the order.
type ReceiptLineRequest struct {
	OrderLineID string          `json:"orderLineId" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	LotNumber   *string         `json:"lotNumber"`
	ExpiryDate  *time.Time      `json:"expiryDate"`
	Location    *string         `json:"location"`
}

// CreateGoodsReceiptRequest is the request body for receiving goods.
type CreateGoodsReceiptRequest struct {
	OrderID            string               `json:"orderId" binding:"required"`
	WarehouseID        string               `json:"warehouseId" binding:"required"`
	Date               *time.Time           `json:"date"`
	DeliveryNoteNumber *string              `json:"deliveryNoteNumber"`
	ReferenceNumber    *string              `json:"referenceNumber"`
	Comment            string               `json:"comment"`
	Lines              []ReceiptLineRequest `json:"lines" binding:"required"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateGoodsReceiptRequest) ToEntity() (*goods_receipt.GoodsReceipt, error) {
	orderID, err := id.Parse(r.OrderID)
	if err != nil {
		return nil, apperror.NewValidation("invalid orderId format")
	}
	warehouseID, err := id.Parse(r.WarehouseID)
	if err != nil {
		return nil, apperror.NewValidation("invalid warehouseId format")
	}

	gr := goods_receipt.NewGoodsReceipt(orderID, warehouseID)
	if r.Date != nil {
		gr.Date = *r.Date
	}
	gr.DeliveryNoteNumber = r.DeliveryNoteNumber
	gr.ReferenceNumber = r.ReferenceNumber
	gr.Comment = r.Comment

	for i, l := range r.Lines {
		orderLineID, err := id.Parse(l.OrderLineID)
		if err != nil {
			return nil, apperror.NewValidation("invalid orderLineId format").
				WithDetail("lineNo", i+1)
		}
		line := gr.AddLine(orderLineID, l.Quantity)
		line.LotNumber = l.LotNumber
		line.ExpiryDate = l.ExpiryDate
		line.Location = l.Location
	}

	return gr, nil
}

// --- Response DTOs ---

// ReceiptLineResponse is one line of a goods receipt response.
type ReceiptLineResponse struct {
	ID          string          `json:"id"`
	LineNo      int             `json:"lineNo"`
	OrderLineID string          `json:"orderLineId"`
	ItemID      string          `json:"itemId"`
	ItemName    string          `json:"itemName"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unitCost"`
	Value       decimal.Decimal `json:"value"`
	LotNumber   *string         `json:"lotNumber,omitempty"`
	ExpiryDate  *time.Time      `json:"expiryDate,omitempty"`
	Location    *string         `json:"location,omitempty"`
}

// GoodsReceiptResponse is the response body for a goods receipt.
type GoodsReceiptResponse struct {
	DocumentResponse
	OrderID            string                 `json:"orderId"`
	OrderNumber        string                 `json:"orderNumber"`
	WarehouseID        string                 `json:"warehouseId"`
	DeliveryNoteNumber *string                `json:"deliveryNoteNumber,omitempty"`
	ReferenceNumber    *string                `json:"referenceNumber,omitempty"`
	Lines              []*ReceiptLineResponse `json:"lines"`
}

// FromGoodsReceipt creates response DTO from domain entity.
func FromGoodsReceipt(gr *goods_receipt.GoodsReceipt) *GoodsReceiptResponse {
	lines := make([]*ReceiptLineResponse, len(gr.Lines))
	for i, l := range gr.Lines {
		lines[i] = &ReceiptLineResponse{
			ID:          l.ID.String(),
			LineNo:      l.LineNo,
			OrderLineID: l.OrderLineID.String(),
			ItemID:      l.ItemID.String(),
			ItemName:    l.ItemName,
			Quantity:    l.Quantity,
			UnitCost:    l.UnitCost,
			Value:       l.Value(),
			LotNumber:   l.LotNumber,
			ExpiryDate:  l.ExpiryDate,
			Location:    l.Location,
		}
	}

	return &GoodsReceiptResponse{
		DocumentResponse:   FromDocument(gr.Document),
		OrderID:            gr.OrderID.String(),
		OrderNumber:        gr.OrderNumber,
		WarehouseID:        gr.WarehouseID.String(),
		DeliveryNoteNumber: gr.DeliveryNoteNumber,
		ReferenceNumber:    gr.ReferenceNumber,
		Lines:              lines,
	}
}
