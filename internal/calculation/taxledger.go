package calculation

import "github.com/ddcalc/investment-calculator/internal/domain"

// TaxLedger records the deemed-disposal tax owed at each disposal event,
// aligned period-for-period with the growth trajectory of the same run.
type TaxLedger struct {
	growth *GrowthEngine
}

// NewTaxLedger creates a tax ledger for the given parameters.
func NewTaxLedger(params domain.Parameters) *TaxLedger {
	return &TaxLedger{
		growth: NewGrowthEngine(params, Taxed),
	}
}

// Compute returns the tax trajectory for a run: periods+1 entries, zero
// except at disposal periods. Each entry is the tax of that event alone, not
// a running total. The closing disposal sits on the last entry: its tax year
// (DisposalEvent.TaxYear) ends at or after the run, so the run end is the
// latest index it can occupy.
func (tl *TaxLedger) Compute(periods int) domain.Trajectory {
	if periods <= 0 {
		return domain.Trajectory{0}
	}
	tax := make(domain.Trajectory, periods+1)
	for _, ev := range tl.Events(periods) {
		tax[ev.Period] += ev.Tax
	}
	return tax
}

// Events returns the disposal events of a run, each carrying the tax year it
// is assessed in and the cumulative tax paid so far.
func (tl *TaxLedger) Events(periods int) []domain.DisposalEvent {
	_, events := tl.growth.Run(periods)
	return events
}

// Total returns the tax collected over a run.
func (tl *TaxLedger) Total(periods int) float64 {
	events := tl.Events(periods)
	if len(events) == 0 {
		return 0
	}
	return events[len(events)-1].CumulativeTax
}
