// Package vendor_payment implements the VendorPayment document.
// A payment records money paid against a purchase order's total and drives
// the order's payment status. Payments are immutable after creation.
package vendor_payment

import (
	"context"

	"procura/internal/core/apperror"
	"procura/internal/core/entity"
	"procura/internal/core/id"
	"procura/internal/core/types"
)

// Method is the payment method.
type Method string

const (
	MethodCash         Method = "cash"
	MethodBankTransfer Method = "bank_transfer"
	MethodCheck        Method = "check"
	MethodCreditCard   Method = "credit_card"
)

// IsValid reports whether the value is a known method.
func (m Method) IsValid() bool {
	switch m {
	case MethodCash, MethodBankTransfer, MethodCheck, MethodCreditCard:
		return true
	}
	return false
}

// VendorPayment is a payment recorded against a purchase order.
type VendorPayment struct {
	entity.Document

	// OrderID references the purchase order being paid
	OrderID id.ID `db:"order_id" json:"orderId"`

	// OrderNumber is a display snapshot of the order number
	OrderNumber string `db:"order_number" json:"orderNumber"`

	// VendorID references the Partner catalog
	VendorID id.ID `db:"vendor_id" json:"vendorId"`

	// Amount paid, always positive
	Amount types.Money `db:"amount" json:"amount"`

	// Method of payment
	Method Method `db:"method" json:"method"`

	// ReferenceNumber is a bank or check reference (optional)
	ReferenceNumber *string `db:"reference_number" json:"referenceNumber,omitempty"`
}

// NewVendorPayment creates a payment for the given order.
func NewVendorPayment(orderID, vendorID id.ID, amount types.Money, method Method) *VendorPayment {
	return &VendorPayment{
		Document: entity.NewDocument(),
		OrderID:  orderID,
		VendorID: vendorID,
		Amount:   amount,
		Method:   method,
	}
}

// Validate implements entity.Validatable interface.
func (vp *VendorPayment) Validate(ctx context.Context) error {
	if err := vp.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(vp.OrderID) {
		return apperror.NewValidation("order is required").
			WithDetail("field", "orderId")
	}

	if !vp.Amount.IsPositive() {
		return apperror.NewInvalidInput("payment amount must be positive").
			WithDetail("field", "amount").
			WithDetail("value", vp.Amount.String())
	}

	if !vp.Method.IsValid() {
		return apperror.NewValidation("invalid payment method").
			WithDetail("field", "method").
			WithDetail("value", string(vp.Method))
	}

	return nil
}
