package output

import (
	"math"
	"strconv"

	money "github.com/ddcalc/investment-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats an amount in the default report currency.
func FormatCurrency(amount float64) string {
	if !finite(amount) {
		return nonFinite(amount)
	}
	return money.NewMoney(amount).Format()
}

// FormatAmount formats an amount rounded to cents with no symbol, for CSV cells.
func FormatAmount(amount float64) string {
	if !finite(amount) {
		return nonFinite(amount)
	}
	return money.NewMoney(amount).Round().String()
}

// Decimals cannot hold Inf or NaN.
func finite(v float64) bool { return !math.IsInf(v, 0) && !math.IsNaN(v) }

func nonFinite(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// FormatPercentage formats a fraction (0.41) as a percentage with 2 decimals.
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

func intToString(v int) string { return strconv.Itoa(v) }

func boolToString(v bool) string { return strconv.FormatBool(v) }
