package purchase_order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusDraft, StatusSent, true},
		{StatusDraft, StatusCancelled, true},
		{StatusDraft, StatusFullyReceived, false},
		{StatusSent, StatusPartiallyReceived, true},
		{StatusSent, StatusFullyReceived, true},
		{StatusSent, StatusDraft, false},
		{StatusPartiallyReceived, StatusFullyReceived, true},
		{StatusPartiallyReceived, StatusCancelled, false},
		{StatusFullyReceived, StatusSent, false},
		{StatusCancelled, StatusDraft, false},
		{StatusCancelled, StatusSent, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusDraft.IsTerminal())
	assert.False(t, StatusSent.IsTerminal())
	assert.False(t, StatusPartiallyReceived.IsTerminal())
	assert.True(t, StatusFullyReceived.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestDeriveFulfillmentStatus(t *testing.T) {
	tests := []struct {
		name     string
		current  Status
		lines    []*Line
		expected Status
	}{
		{
			name:    "nothing received keeps current",
			current: StatusSent,
			lines: []*Line{
				{Quantity: dec("10"), ReceivedQuantity: dec("0")},
				{Quantity: dec("5"), ReceivedQuantity: dec("0")},
			},
			expected: StatusSent,
		},
		{
			name:    "one line partially received",
			current: StatusSent,
			lines: []*Line{
				{Quantity: dec("10"), ReceivedQuantity: dec("4")},
				{Quantity: dec("5"), ReceivedQuantity: dec("0")},
			},
			expected: StatusPartiallyReceived,
		},
		{
			name:    "one line complete others pending",
			current: StatusSent,
			lines: []*Line{
				{Quantity: dec("10"), ReceivedQuantity: dec("10")},
				{Quantity: dec("5"), ReceivedQuantity: dec("0")},
			},
			expected: StatusPartiallyReceived,
		},
		{
			name:    "all lines complete",
			current: StatusPartiallyReceived,
			lines: []*Line{
				{Quantity: dec("10"), ReceivedQuantity: dec("10")},
				{Quantity: dec("5"), ReceivedQuantity: dec("5")},
			},
			expected: StatusFullyReceived,
		},
		{
			name:     "no lines keeps current",
			current:  StatusSent,
			lines:    nil,
			expected: StatusSent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveFulfillmentStatus(tt.current, tt.lines))
		})
	}
}

func TestDerivePaymentStatus(t *testing.T) {
	total := dec("1100.00")

	assert.Equal(t, PaymentUnpaid, DerivePaymentStatus(total, dec("0")))
	assert.Equal(t, PaymentPartiallyPaid, DerivePaymentStatus(total, dec("500")))
	assert.Equal(t, PaymentPaid, DerivePaymentStatus(total, dec("1100.00")))
	assert.Equal(t, PaymentPaid, DerivePaymentStatus(total, dec("1100.01")))
}
