package calculation

import (
	"math"
	"testing"

	"github.com/ddcalc/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrowthMultiplier(t *testing.T) {
	rate := decimal.NewFromFloat(0.12)
	assert.InDelta(t, 1.01, GrowthMultiplier(rate, domain.Monthly), 1e-12)
	assert.InDelta(t, 1.12, GrowthMultiplier(rate, domain.Yearly), 1e-12)
}

// One year at 10% compounded monthly: 1000 grows to 1104.71 before deemed
// disposal and 1061.78 after 41% tax on the gain.
func TestGrowthEngine_OneYearMonthly(t *testing.T) {
	params := mustParams(t, 1000, 1, 10, "monthly")

	assert.Equal(t, 12, PeriodsFor(params.Years(), params.Frequency()))
	assert.Equal(t, domain.ChunkPlan{FullChunks: 0, Remainder: 12, ChunkSize: 96}, PlanChunks(12, params.Frequency()))

	untaxed := NewGrowthEngine(params, Untaxed).Compute(12)
	require.Len(t, untaxed, 13)
	assert.InDelta(t, 1104.71, untaxed[12], 0.01)

	taxed, events := NewGrowthEngine(params, Taxed).Run(12)
	require.Len(t, taxed, 13)
	assert.InDelta(t, 1061.78, taxed[12], 0.01)
	assert.InDelta(t, 1000+(untaxed[12]-1000)*0.59, taxed[12], 1e-9)

	require.Len(t, events, 1)
	assert.True(t, events[0].Final)
	assert.Equal(t, 12, events[0].Period)
	assert.Equal(t, 1, events[0].TaxYear)
	assert.InDelta(t, untaxed[12], events[0].RawValue, 1e-9)

	// Before the disposal the taxed and untaxed runs coincide.
	for k := 0; k < 12; k++ {
		assert.Equal(t, untaxed[k], taxed[k], "period %d", k)
	}
}

func TestGrowthEngine_TwoYearsMonthly(t *testing.T) {
	params := mustParams(t, 1000, 2, 10, "monthly")

	assert.Equal(t, 24, PeriodsFor(params.Years(), params.Frequency()))
	untaxed := NewGrowthEngine(params, Untaxed).Compute(24)
	require.Len(t, untaxed, 25)
	assert.InDelta(t, 1104.71, untaxed[12], 0.01)
}

func TestGrowthEngine_YearlyCompoundsOncePerYear(t *testing.T) {
	params := mustParams(t, 1000, 3, 5, "YEARLY")

	assert.Equal(t, domain.ChunkPlan{FullChunks: 0, Remainder: 3, ChunkSize: 8}, PlanChunks(3, params.Frequency()))

	untaxed := NewGrowthEngine(params, Untaxed).Compute(3)
	require.Len(t, untaxed, 4)
	assert.InDelta(t, 1050.0, untaxed[1], 1e-9)
	assert.InDelta(t, 1157.625, untaxed[3], 1e-9)

	taxed, events := NewGrowthEngine(params, Taxed).Run(3)
	require.Len(t, events, 1, "only the final disposal applies inside one chunk")
	assert.InDelta(t, 1000+157.625*0.59, taxed.Final(), 1e-9)
}

func TestGrowthEngine_ChunkBoundaryCarriesTaxedBasis(t *testing.T) {
	params := mustParams(t, 1000, 10, 5, "yearly")

	traj, events := NewGrowthEngine(params, Taxed).Run(10)
	require.Len(t, traj, 11)
	require.Len(t, events, 2)

	first := events[0]
	assert.False(t, first.Final)
	assert.Equal(t, 8, first.Period)
	assert.Equal(t, 8, first.TaxYear)
	assert.InDelta(t, 1477.455443789063, first.RawValue, 1e-6)
	assert.InDelta(t, 195.75673195351587, first.Tax, 1e-6)
	assert.InDelta(t, 1281.6987118355473, first.TaxedValue, 1e-6)

	// The boundary entry holds the gross value; compounding resumes from the taxed basis.
	assert.InDelta(t, first.RawValue, traj[8], 1e-9)
	assert.InDelta(t, first.TaxedValue*1.05, traj[9], 1e-6)

	final := events[1]
	assert.True(t, final.Final)
	assert.Equal(t, 10, final.Period)
	assert.Equal(t, 10, final.TaxYear)
	assert.InDelta(t, first.TaxedValue, final.Basis, 1e-9)
	assert.InDelta(t, 1413.072829798691, final.RawValue, 1e-6)
	assert.InDelta(t, 1359.209441433802, traj.Final(), 1e-6)
	assert.InDelta(t, 249.62012031840473, final.CumulativeTax, 1e-6)
}

func TestGrowthEngine_ExactChunkTaxesFinalEntry(t *testing.T) {
	params := mustParams(t, 1000, 8, 5, "yearly")

	traj, events := NewGrowthEngine(params, Taxed).Run(8)
	require.Len(t, events, 1)
	assert.True(t, events[0].Final)
	assert.InDelta(t, 1000+477.455443789063*0.59, traj.Final(), 1e-6)
}

func TestGrowthEngine_ZeroPeriods(t *testing.T) {
	params := mustParams(t, 2500, 0, 7, "monthly")

	for _, mode := range []Mode{Taxed, Untaxed} {
		t.Run(mode.String(), func(t *testing.T) {
			traj, events := NewGrowthEngine(params, mode).Run(0)
			assert.Equal(t, domain.Trajectory{2500}, traj)
			assert.Empty(t, events)
			assert.NotPanics(t, func() { NewGrowthEngine(params, mode).Compute(-3) })
		})
	}
}

func TestGrowthEngine_StrictlyIncreasingWithinChunk(t *testing.T) {
	params := mustParams(t, 1000, 20, 7, "monthly")
	size := params.Frequency().ChunkSize()

	traj := NewGrowthEngine(params, Taxed).Compute(240)
	require.Len(t, traj, 241)

	assert.Greater(t, traj[1], traj[0])
	for k := 2; k < len(traj)-1; k++ {
		if (k-1)%size == 0 {
			continue // first period after a disposal restarts from the taxed basis
		}
		assert.Greater(t, traj[k], traj[k-1], "period %d", k)
	}
}

func TestGrowthEngine_TaxReducesForwardBase(t *testing.T) {
	params := mustParams(t, 1000, 20, 7, "monthly")
	size := params.Frequency().ChunkSize()

	taxed, events := NewGrowthEngine(params, Taxed).Run(240)
	untaxed := NewGrowthEngine(params, Untaxed).Compute(240)

	for _, ev := range events {
		assert.Less(t, ev.TaxedValue, ev.RawValue)
	}
	for k := size + 1; k < len(taxed); k++ {
		assert.Less(t, taxed[k], untaxed[k], "period %d", k)
	}
}

func TestGrowthEngine_ZeroGrowthOwesNoTax(t *testing.T) {
	params := mustParams(t, 1000, 12, 0, "monthly")

	traj, events := NewGrowthEngine(params, Taxed).Run(144)
	for _, v := range traj {
		assert.Equal(t, 1000.0, v)
	}
	for _, ev := range events {
		assert.Zero(t, ev.Tax)
	}
}

func TestDDTax(t *testing.T) {
	assert.InDelta(t, 41.0, DDTaxOwed(1000, 1100, 0.41), 1e-9)
	assert.InDelta(t, 1059.0, DDTaxDeduct(1000, 1100, 0.41), 1e-9)
	assert.Zero(t, DDTaxOwed(1000, 900, 0.41))
	assert.Equal(t, 900.0, DDTaxDeduct(1000, 900, 0.41))
	assert.False(t, math.IsNaN(DDTaxOwed(0, 0, 0.41)))
}
