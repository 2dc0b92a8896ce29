package purchase_order

import (
	"procura/internal/core/types"
)

// transitions enumerates the allowed fulfillment state changes.
// Receiving states are entered only through goods receipts, never directly.
var transitions = map[Status][]Status{
	StatusDraft:             {StatusSent, StatusCancelled},
	StatusSent:              {StatusPartiallyReceived, StatusFullyReceived, StatusCancelled},
	StatusPartiallyReceived: {StatusFullyReceived},
	StatusFullyReceived:     {},
	StatusCancelled:         {},
}

// CanTransitionTo reports whether moving to target is allowed.
func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further fulfillment transitions exist.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// IsValid reports whether the value is a known status.
func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// DeriveFulfillmentStatus computes the order status from its line receipts.
// Fully received when every line is complete, partially received when any
// quantity arrived, otherwise the current status is kept.
func DeriveFulfillmentStatus(current Status, lines []*Line) Status {
	if len(lines) == 0 {
		return current
	}

	allFull := true
	anyReceived := false
	for _, l := range lines {
		if !l.IsFullyReceived() {
			allFull = false
		}
		if l.ReceivedQuantity.IsPositive() {
			anyReceived = true
		}
	}

	switch {
	case allFull:
		return StatusFullyReceived
	case anyReceived:
		return StatusPartiallyReceived
	default:
		return current
	}
}

// DerivePaymentStatus computes the payment status from the order total and
// the cumulative paid amount.
func DerivePaymentStatus(total, paid types.Money) PaymentStatus {
	switch {
	case !paid.IsPositive():
		return PaymentUnpaid
	case paid.GreaterThanOrEqual(total):
		return PaymentPaid
	default:
		return PaymentPartiallyPaid
	}
}
