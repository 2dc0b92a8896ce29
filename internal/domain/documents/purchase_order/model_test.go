package purchase_order

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procura/internal/core/apperror"
	"procura/internal/core/id"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAddLine_DerivesAmounts(t *testing.T) {
	po := NewPurchaseOrder(id.New())

	err := po.AddLine(id.New(), "Widget", dec("10"), dec("100"), dec("10"), dec("0"))
	require.NoError(t, err)

	require.Len(t, po.Lines, 1)
	line := po.Lines[0]
	assert.Equal(t, 1, line.LineNo)
	assert.True(t, line.Subtotal.Equal(dec("1000.00")), "subtotal = %s", line.Subtotal)
	assert.True(t, line.TaxAmount.Equal(dec("100.00")), "tax = %s", line.TaxAmount)
	assert.True(t, line.DiscountAmount.Equal(dec("0")), "discount = %s", line.DiscountAmount)
	assert.True(t, line.Total.Equal(dec("1100.00")), "total = %s", line.Total)
}

func TestAddLine_RejectsInvalidInputs(t *testing.T) {
	po := NewPurchaseOrder(id.New())

	err := po.AddLine(id.New(), "Widget", dec("0"), dec("100"), dec("0"), dec("0"))
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeInvalidInput))
	assert.Empty(t, po.Lines)
}

func TestRecalculate_SumsLineTotals(t *testing.T) {
	po := NewPurchaseOrder(id.New())

	require.NoError(t, po.AddLine(id.New(), "A", dec("2"), dec("49.99"), dec("20"), dec("15")))
	require.NoError(t, po.AddLine(id.New(), "B", dec("1"), dec("10"), dec("0"), dec("0")))

	// Line A: 99.98 + 20.00 - 15.00 = 104.98; line B: 10.00
	assert.True(t, po.Subtotal.Equal(dec("109.98")), "subtotal = %s", po.Subtotal)
	assert.True(t, po.TaxTotal.Equal(dec("20.00")), "tax = %s", po.TaxTotal)
	assert.True(t, po.DiscountTotal.Equal(dec("15.00")), "discount = %s", po.DiscountTotal)
	assert.True(t, po.Total.Equal(dec("114.98")), "total = %s", po.Total)
}

func TestValidate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid order", func(t *testing.T) {
		po := NewPurchaseOrder(id.New())
		require.NoError(t, po.AddLine(id.New(), "Widget", dec("1"), dec("5"), dec("0"), dec("0")))
		assert.NoError(t, po.Validate(ctx))
	})

	t.Run("missing vendor", func(t *testing.T) {
		po := NewPurchaseOrder(id.Nil())
		require.NoError(t, po.AddLine(id.New(), "Widget", dec("1"), dec("5"), dec("0"), dec("0")))
		err := po.Validate(ctx)
		require.Error(t, err)
		assert.True(t, apperror.IsCode(err, apperror.CodeValidation))
	})

	t.Run("no lines", func(t *testing.T) {
		po := NewPurchaseOrder(id.New())
		err := po.Validate(ctx)
		require.Error(t, err)
		assert.True(t, apperror.IsCode(err, apperror.CodeValidation))
	})
}

func TestLine_RemainingQuantity(t *testing.T) {
	line := &Line{
		Quantity:         dec("10"),
		ReceivedQuantity: dec("3.5"),
	}

	assert.True(t, line.RemainingQuantity().Equal(dec("6.5")))
	assert.False(t, line.IsFullyReceived())

	line.ReceivedQuantity = dec("10")
	assert.True(t, line.IsFullyReceived())
	assert.True(t, line.RemainingQuantity().IsZero())
}

func TestCanEditCanReceive(t *testing.T) {
	po := NewPurchaseOrder(id.New())

	assert.True(t, po.CanEdit())
	assert.False(t, po.CanReceive())

	po.Status = StatusSent
	assert.False(t, po.CanEdit())
	assert.True(t, po.CanReceive())

	po.Status = StatusPartiallyReceived
	assert.True(t, po.CanReceive())

	po.Status = StatusFullyReceived
	assert.False(t, po.CanReceive())

	po.Status = StatusCancelled
	assert.False(t, po.CanEdit())
	assert.False(t, po.CanReceive())
}
