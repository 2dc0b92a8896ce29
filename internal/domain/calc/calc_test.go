package calc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procura/internal/core/apperror"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCompute_Basic(t *testing.T) {
	amounts, err := Compute(d("10"), d("100"), d("10"), d("0"))
	require.NoError(t, err)

	assert.True(t, amounts.Subtotal.Equal(d("1000")), "subtotal = %s", amounts.Subtotal)
	assert.True(t, amounts.TaxAmount.Equal(d("100")), "tax = %s", amounts.TaxAmount)
	assert.True(t, amounts.DiscountAmount.Equal(d("0")))
	assert.True(t, amounts.Total.Equal(d("1100")), "total = %s", amounts.Total)
}

func TestCompute_WithDiscount(t *testing.T) {
	amounts, err := Compute(d("2"), d("49.99"), d("20"), d("15"))
	require.NoError(t, err)

	assert.True(t, amounts.Subtotal.Equal(d("99.98")))
	assert.True(t, amounts.TaxAmount.Equal(d("20.00")), "tax = %s", amounts.TaxAmount)
	assert.True(t, amounts.DiscountAmount.Equal(d("15.00")), "discount = %s", amounts.DiscountAmount)
	assert.True(t, amounts.Total.Equal(d("104.98")))
}

func TestCompute_IndependentRounding(t *testing.T) {
	// 0.05 * 200.10 = 10.005. Tax and discount derive from the raw product,
	// not the rounded subtotal: 10.005 * 50% = 5.0025 -> 5.00 (a rounded
	// subtotal would give 10.01 * 50% = 5.005 -> 5.01).
	amounts, err := Compute(d("0.05"), d("200.10"), d("50"), d("10"))
	require.NoError(t, err)

	assert.True(t, amounts.Subtotal.Equal(d("10.01")), "subtotal = %s", amounts.Subtotal)
	assert.True(t, amounts.TaxAmount.Equal(d("5.00")), "tax = %s", amounts.TaxAmount)
	assert.True(t, amounts.DiscountAmount.Equal(d("1.00")), "discount = %s", amounts.DiscountAmount)

	// Total always equals the sum of the stored components.
	want := amounts.Subtotal.Add(amounts.TaxAmount).Sub(amounts.DiscountAmount)
	assert.True(t, amounts.Total.Equal(want))
	assert.True(t, amounts.Total.Equal(d("14.01")), "total = %s", amounts.Total)
}

func TestCompute_RoundsEachAmountAtOutput(t *testing.T) {
	// 3 * 3.333 = 9.999 -> 10.00; tax 7.5% of 9.999 = 0.749925 -> 0.75;
	// discount 2.5% of 9.999 = 0.249975 -> 0.25.
	amounts, err := Compute(d("3"), d("3.333"), d("7.5"), d("2.5"))
	require.NoError(t, err)

	assert.True(t, amounts.Subtotal.Equal(d("10.00")), "subtotal = %s", amounts.Subtotal)
	assert.True(t, amounts.TaxAmount.Equal(d("0.75")), "tax = %s", amounts.TaxAmount)
	assert.True(t, amounts.DiscountAmount.Equal(d("0.25")), "discount = %s", amounts.DiscountAmount)
	assert.True(t, amounts.Total.Equal(d("10.50")), "total = %s", amounts.Total)
}

func TestCompute_FractionalQuantity(t *testing.T) {
	amounts, err := Compute(d("0.5"), d("3.99"), d("0"), d("0"))
	require.NoError(t, err)

	assert.True(t, amounts.Subtotal.Equal(d("2.00")), "subtotal = %s", amounts.Subtotal)
	assert.True(t, amounts.Total.Equal(d("2.00")))
}

func TestCompute_FullDiscount(t *testing.T) {
	amounts, err := Compute(d("1"), d("80"), d("0"), d("100"))
	require.NoError(t, err)

	assert.True(t, amounts.DiscountAmount.Equal(d("80")))
	assert.True(t, amounts.Total.Equal(d("0")))
}

func TestCompute_InvalidInputs(t *testing.T) {
	cases := []struct {
		name     string
		qty      string
		price    string
		tax      string
		discount string
	}{
		{"zero quantity", "0", "10", "0", "0"},
		{"negative quantity", "-1", "10", "0", "0"},
		{"negative price", "1", "-0.01", "0", "0"},
		{"negative tax", "1", "10", "-5", "0"},
		{"negative discount", "1", "10", "0", "-1"},
		{"discount over 100", "1", "10", "0", "100.01"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compute(d(tc.qty), d(tc.price), d(tc.tax), d(tc.discount))
			require.Error(t, err)
			assert.True(t, apperror.IsCode(err, apperror.CodeInvalidInput), "got %v", err)
		})
	}
}

func TestSumTotals(t *testing.T) {
	a, err := Compute(d("10"), d("100"), d("10"), d("0"))
	require.NoError(t, err)
	b, err := Compute(d("2"), d("49.99"), d("20"), d("15"))
	require.NoError(t, err)

	sum := SumTotals([]LineAmounts{a, b})
	assert.True(t, sum.Subtotal.Equal(d("1099.98")))
	assert.True(t, sum.Total.Equal(d("1204.98")))
}
