// Package calc implements line amount arithmetic for trade documents.
//
// Subtotal, tax and discount each derive from the raw quantity*price product
// and are rounded to two decimal places independently at output. The total is
// the sum of the stored components, so total == subtotal + tax - discount
// holds exactly as persisted. Document totals are sums of already-rounded
// line values.
package calc

import (
	"github.com/shopspring/decimal"

	"procura/internal/core/apperror"
	"procura/internal/core/types"
)

var hundred = decimal.NewFromInt(100)

// LineAmounts holds the derived monetary amounts of a single document line.
type LineAmounts struct {
	Subtotal       types.Money
	TaxAmount      types.Money
	DiscountAmount types.Money
	Total          types.Money
}

// Compute derives line amounts from quantity, unit price and percentage rates.
//
//	subtotal = round(quantity * unitPrice)
//	tax      = round(quantity * unitPrice * taxRate / 100)
//	discount = round(quantity * unitPrice * discountPct / 100)
//	total    = subtotal + tax - discount
//
// Tax and discount derive from the raw product, never from the rounded
// subtotal. The total sums the stored components, so it stays consistent
// with what is persisted.
func Compute(quantity types.Quantity, unitPrice types.Money, taxRate, discountPct decimal.Decimal) (LineAmounts, error) {
	if err := ValidateInputs(quantity, unitPrice, taxRate, discountPct); err != nil {
		return LineAmounts{}, err
	}

	raw := quantity.Mul(unitPrice)
	subtotal := types.RoundMoney(raw)
	tax := types.RoundMoney(raw.Mul(taxRate).Div(hundred))
	discount := types.RoundMoney(raw.Mul(discountPct).Div(hundred))
	total := subtotal.Add(tax).Sub(discount)

	return LineAmounts{
		Subtotal:       subtotal,
		TaxAmount:      tax,
		DiscountAmount: discount,
		Total:          total,
	}, nil
}

// ValidateInputs checks the business ranges for line inputs.
func ValidateInputs(quantity types.Quantity, unitPrice types.Money, taxRate, discountPct decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return apperror.NewInvalidInput("quantity must be positive").
			WithDetail("field", "quantity").
			WithDetail("value", quantity.String())
	}
	if unitPrice.IsNegative() {
		return apperror.NewInvalidInput("unit price must not be negative").
			WithDetail("field", "unitPrice").
			WithDetail("value", unitPrice.String())
	}
	if taxRate.IsNegative() {
		return apperror.NewInvalidInput("tax rate must not be negative").
			WithDetail("field", "taxRate").
			WithDetail("value", taxRate.String())
	}
	if discountPct.IsNegative() || discountPct.GreaterThan(hundred) {
		return apperror.NewInvalidInput("discount must be between 0 and 100").
			WithDetail("field", "discountPercent").
			WithDetail("value", discountPct.String())
	}
	return nil
}

// SumTotals adds a slice of already-rounded line amounts into document totals.
func SumTotals(lines []LineAmounts) LineAmounts {
	var sum LineAmounts
	sum.Subtotal = decimal.Zero
	sum.TaxAmount = decimal.Zero
	sum.DiscountAmount = decimal.Zero
	sum.Total = decimal.Zero
	for _, l := range lines {
		sum.Subtotal = sum.Subtotal.Add(l.Subtotal)
		sum.TaxAmount = sum.TaxAmount.Add(l.TaxAmount)
		sum.DiscountAmount = sum.DiscountAmount.Add(l.DiscountAmount)
		sum.Total = sum.Total.Add(l.Total)
	}
	return sum
}
