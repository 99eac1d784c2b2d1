package calculation

import (
	"math"

	"github.com/ddcalc/investment-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Mode selects whether deemed disposal is applied to a growth run.
type Mode int

const (
	// Taxed applies deemed-disposal tax at every chunk boundary and at the end.
	Taxed Mode = iota
	// Untaxed compounds the principal without any disposal, for comparison.
	Untaxed
)

func (m Mode) String() string {
	if m == Untaxed {
		return "untaxed"
	}
	return "taxed"
}

// GrowthMultiplier returns the per-period growth factor: the annual rate is
// split evenly across the periods of a year.
func GrowthMultiplier(annualRate decimal.Decimal, freq domain.Frequency) float64 {
	return 1 + annualRate.InexactFloat64()/float64(freq.PeriodsPerYear())
}

// GrowthEngine compounds a principal period by period.
type GrowthEngine struct {
	principal  float64
	multiplier float64
	taxRate    float64
	frequency  domain.Frequency
	mode       Mode
}

// NewGrowthEngine creates a growth engine for the given parameters and mode.
func NewGrowthEngine(params domain.Parameters, mode Mode) *GrowthEngine {
	return &GrowthEngine{
		principal:  params.Principal().InexactFloat64(),
		multiplier: GrowthMultiplier(params.GrowthRate(), params.Frequency()),
		taxRate:    params.TaxRate().InexactFloat64(),
		frequency:  params.Frequency(),
		mode:       mode,
	}
}

// Mode reports whether the engine applies deemed disposal.
func (ge *GrowthEngine) Mode() Mode { return ge.mode }

// Compute returns the value trajectory for a run of the given number of periods.
func (ge *GrowthEngine) Compute(periods int) domain.Trajectory {
	traj, _ := ge.Run(periods)
	return traj
}

// Run returns the value trajectory together with the disposal events that
// shaped it. The trajectory has periods+1 entries: the principal followed by
// the value at the end of each period. Intermediate chunk boundaries hold the
// gross value before tax; the last entry holds the post-tax final value.
// A run of zero periods is just the untouched principal.
func (ge *GrowthEngine) Run(periods int) (domain.Trajectory, []domain.DisposalEvent) {
	if periods <= 0 {
		return domain.Trajectory{ge.principal}, nil
	}

	traj := make(domain.Trajectory, 1, periods+1)
	traj[0] = ge.principal

	if ge.mode == Untaxed {
		traj = ge.appendSegment(traj, ge.principal, periods)
		return traj, nil
	}

	plan := PlanChunks(periods, ge.frequency)
	events := make([]domain.DisposalEvent, 0, plan.FullChunks+1)
	basis := ge.principal
	var cumulative float64

	for c := 0; c < plan.FullChunks; c++ {
		traj = ge.appendSegment(traj, basis, plan.ChunkSize)
		ev := ge.dispose(basis, traj.Final(), len(traj)-1, &cumulative)
		events = append(events, ev)
		basis = ev.TaxedValue
	}

	if plan.Remainder > 0 {
		traj = ge.appendSegment(traj, basis, plan.Remainder)
		ev := ge.dispose(basis, traj.Final(), len(traj)-1, &cumulative)
		events = append(events, ev)
	}

	last := &events[len(events)-1]
	last.Final = true
	traj[len(traj)-1] = last.TaxedValue

	return traj, events
}

// appendSegment appends basis*m^k for k = 1..n.
func (ge *GrowthEngine) appendSegment(traj domain.Trajectory, basis float64, n int) domain.Trajectory {
	for k := 1; k <= n; k++ {
		traj = append(traj, basis*math.Pow(ge.multiplier, float64(k)))
	}
	return traj
}

func (ge *GrowthEngine) dispose(basis, raw float64, period int, cumulative *float64) domain.DisposalEvent {
	tax := DDTaxOwed(basis, raw, ge.taxRate)
	*cumulative += tax
	return domain.DisposalEvent{
		Period:        period,
		TaxYear:       RoundUp(period, ge.frequency),
		Basis:         basis,
		RawValue:      raw,
		TaxedValue:    DDTaxDeduct(basis, raw, ge.taxRate),
		Gain:          raw - basis,
		Tax:           tax,
		CumulativeTax: *cumulative,
	}
}

// DDTaxOwed is the deemed-disposal tax on the gain from basis to raw.
// Losses are not taxed.
func DDTaxOwed(basis, raw, taxRate float64) float64 {
	gain := raw - basis
	if gain <= 0 {
		return 0
	}
	return gain * taxRate
}

// DDTaxDeduct returns the value left after deemed-disposal tax:
// basis + gain*(1 - taxRate).
func DDTaxDeduct(basis, raw, taxRate float64) float64 {
	return raw - DDTaxOwed(basis, raw, taxRate)
}
