package domain

import (
	"github.com/shopspring/decimal"
)

// DefaultTaxRate is the deemed-disposal exit tax rate applied when none is given.
var DefaultTaxRate = decimal.NewFromFloat(0.41)

// Parameters holds the validated inputs of a projection. The zero value is not
// usable; build one with NewParameters. Parameters is immutable.
type Parameters struct {
	principal  decimal.Decimal
	years      int
	growthRate decimal.Decimal
	frequency  Frequency
	taxRate    decimal.Decimal
}

// NewParameters validates the raw inputs using DefaultTaxRate.
// growthPC is a percentage (10 means 10% a year).
func NewParameters(principal decimal.Decimal, years int, growthPC decimal.Decimal, frequency string) (Parameters, error) {
	return NewParametersWithTaxRate(principal, years, growthPC, frequency, DefaultTaxRate)
}

// NewParametersWithTaxRate validates the raw inputs with an explicit tax rate
// expressed as a fraction in [0, 1].
func NewParametersWithTaxRate(principal decimal.Decimal, years int, growthPC decimal.Decimal, frequency string, taxRate decimal.Decimal) (Parameters, error) {
	if principal.IsNegative() {
		return Parameters{}, invalidArgument("principal", principal, "principal cannot be negative")
	}
	if years < 0 {
		return Parameters{}, invalidArgument("years", years, "years cannot be negative")
	}
	if growthPC.IsNegative() {
		return Parameters{}, invalidArgument("growth_pc", growthPC, "growth cannot be negative")
	}
	if taxRate.IsNegative() || taxRate.GreaterThan(decimal.NewFromInt(1)) {
		return Parameters{}, invalidArgument("tax_rate", taxRate, "tax rate must be between 0 and 1")
	}
	freq, err := ParseFrequency(frequency)
	if err != nil {
		return Parameters{}, err
	}

	return Parameters{
		principal:  principal,
		years:      years,
		growthRate: growthPC.Div(decimal.NewFromInt(100)),
		frequency:  freq,
		taxRate:    taxRate,
	}, nil
}

func (p Parameters) Principal() decimal.Decimal  { return p.principal }
func (p Parameters) Years() int                  { return p.years }
func (p Parameters) GrowthRate() decimal.Decimal { return p.growthRate }
func (p Parameters) Frequency() Frequency        { return p.frequency }
func (p Parameters) TaxRate() decimal.Decimal    { return p.taxRate }
