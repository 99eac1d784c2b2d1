package decimal

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used by Format when no currency is given.
const DefaultCurrency = money.EUR

// Money is a reporting amount with cent precision. Projection math runs on
// float64 values; Money is where they are rounded for display.
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Round rounds the amount to cents, half away from zero.
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Add returns the exact sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sum adds a series of float amounts exactly.
func Sum(values []float64) Money {
	var total Money
	for _, v := range values {
		total = total.Add(NewMoney(v))
	}
	return total
}

// String returns the amount with two decimals and no currency symbol.
// StringFixed rounds half away from zero, like Round.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount in DefaultCurrency.
func (m Money) Format() string {
	return m.FormatIn(DefaultCurrency)
}

// FormatIn renders the amount with the symbol and separators of an ISO 4217
// currency code. Unknown codes fall back to DefaultCurrency.
func (m Money) FormatIn(code string) string {
	if money.GetCurrency(code) == nil {
		code = DefaultCurrency
	}
	cur := money.GetCurrency(code)
	minor := m.Decimal.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, code).Display()
}
