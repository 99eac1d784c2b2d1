package calculation

import (
	"testing"

	"github.com/ddcalc/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func mustParams(t *testing.T, principal int64, years int, growthPC int64, frequency string) domain.Parameters {
	t.Helper()
	p, err := domain.NewParameters(decimal.NewFromInt(principal), years, decimal.NewFromInt(growthPC), frequency)
	require.NoError(t, err)
	return p
}

func relDelta(want float64) float64 {
	if want < 0 {
		want = -want
	}
	if want < 1 {
		return 1e-6
	}
	return want * 1e-6
}
