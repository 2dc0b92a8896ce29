package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"procura/internal/core/apperror"
	"procura/internal/core/id"
	"procura/internal/domain/documents/vendor_payment"
)

// --- Request DTOs ---

// CreateVendorPaymentRequest is the request body for recording a payment.
type CreateVendorPaymentRequest struct {
	OrderID         string          `json:"orderId" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Method          string          `json:"method" binding:"required"`
	Date            *time.Time      `json:"date"`
	ReferenceNumber *string         `json:"referenceNumber"`
	Comment         string          `json:"comment"`
}

// ToEntity converts DTO to domain entity. Vendor is resolved from the order
// by the service.
func (r *CreateVendorPaymentRequest) ToEntity() (*vendor_payment.VendorPayment, error) {
	orderID, err := id.Parse(r.OrderID)
	if err != nil {
		return nil, apperror.NewValidation("invalid orderId format")
	}

	vp := vendor_payment.NewVendorPayment(orderID, id.Nil(), r.Amount, vendor_payment.Method(r.Method))
	if r.Date != nil {
		vp.Date = *r.Date
	}
	vp.ReferenceNumber = r.ReferenceNumber
	vp.Comment = r.Comment

	return vp, nil
}

// --- Response DTOs ---

// VendorPaymentResponse is the response body for a vendor payment.
type VendorPaymentResponse struct {
	DocumentResponse
	OrderID         string          `json:"orderId"`
	OrderNumber     string          `json:"orderNumber"`
	VendorID        string          `json:"vendorId"`
	Amount          decimal.Decimal `json:"amount"`
	Method          string          `json:"method"`
	ReferenceNumber *string         `json:"referenceNumber,omitempty"`
}

// FromVendorPayment creates response DTO from domain entity.
func FromVendorPayment(vp *vendor_payment.VendorPayment) *VendorPaymentResponse {
	return &VendorPaymentResponse{
		DocumentResponse: FromDocument(vp.Document),
		OrderID:          vp.OrderID.String(),
		OrderNumber:      vp.OrderNumber,
		VendorID:         vp.VendorID.String(),
		Amount:           vp.Amount,
		Method:           string(vp.Method),
		ReferenceNumber:  vp.ReferenceNumber,
	}
}
