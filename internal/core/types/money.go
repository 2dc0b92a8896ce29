// Package types provides shared value types for monetary amounts and quantities.
package types

import (
	"github.com/shopspring/decimal"
)

// Money is a decimal monetary amount. All money math in the service goes
// through decimal.Decimal so binary floating point never touches totals.
type Money = decimal.Decimal

// Quantity is a decimal quantity of goods. Fractional quantities are allowed
// (kilograms, litres), whole units are the common case.
type Quantity = decimal.Decimal

// MoneyScale is the number of decimal places stored for monetary amounts.
const MoneyScale = 2

// RoundMoney rounds an amount to the monetary scale (2 decimal places,
// half away from zero).
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyScale)
}

// ZeroMoney returns the zero amount.
func ZeroMoney() Money {
	return decimal.Zero
}

// MoneyFromString parses a monetary amount from its string form.
func MoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// MustMoney parses a monetary amount, panicking on malformed input.
// Use only for constants and tests.
func MustMoney(s string) Money {
	return decimal.RequireFromString(s)
}
