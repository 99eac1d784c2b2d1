package calculation

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/ddcalc/investment-calculator/internal/domain"
)

// ErrOverflow is returned when a projection leaves the float64 range. No
// partial result accompanies it.
var ErrOverflow = errors.New("projection value overflow")

// CalculationEngine orchestrates all projection queries for one set of
// validated parameters.
type CalculationEngine struct {
	Params  domain.Parameters
	Workers int  // Maximum cohort rows computed concurrently
	Debug   bool // Enable debug output for detailed calculations
	Logger  Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine(params domain.Parameters) *CalculationEngine {
	return &CalculationEngine{
		Params:  params,
		Workers: DefaultMatrixWorkers,
		Logger:  NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	ce.Logger = orNop(l)
}

// Periods returns the number of periods in the horizon.
func (ce *CalculationEngine) Periods() int {
	return PeriodsFor(ce.Params.Years(), ce.Params.Frequency())
}

// ChunkPlan returns the deemed-disposal chunk plan of the full horizon.
func (ce *CalculationEngine) ChunkPlan() domain.ChunkPlan {
	return PlanChunks(ce.Periods(), ce.Params.Frequency())
}

// Growth returns the taxed growth trajectory over the full horizon.
func (ce *CalculationEngine) Growth() domain.Trajectory {
	return NewGrowthEngine(ce.Params, Taxed).Compute(ce.Periods())
}

// Untaxed returns the comparison trajectory with no deemed disposal.
func (ce *CalculationEngine) Untaxed() domain.Trajectory {
	return NewGrowthEngine(ce.Params, Untaxed).Compute(ce.Periods())
}

// Tax returns the tax trajectory over the full horizon.
func (ce *CalculationEngine) Tax() domain.Trajectory {
	return NewTaxLedger(ce.Params).Compute(ce.Periods())
}

// TaxEvents returns the disposal events over the full horizon.
func (ce *CalculationEngine) TaxEvents() []domain.DisposalEvent {
	return NewTaxLedger(ce.Params).Events(ce.Periods())
}

// Matrix builds the cohort matrix of the given kind.
func (ce *CalculationEngine) Matrix(ctx context.Context, kind MatrixKind) (domain.Matrix, error) {
	mb := NewMatrixBuilder(ce.Params)
	mb.Workers = ce.Workers
	mb.Logger = ce.Logger
	m, err := mb.Build(ctx, kind)
	if err == nil {
		err = checkFinite("column sum", m.ColumnSums())
	}
	if err != nil {
		return domain.Matrix{}, fmt.Errorf("build %s matrix: %w", kind, err)
	}
	return m, nil
}

// GrowthMatrix builds the taxed growth cohort matrix.
func (ce *CalculationEngine) GrowthMatrix(ctx context.Context) (domain.Matrix, error) {
	return ce.Matrix(ctx, GrowthMatrix)
}

// TaxMatrix builds the tax cohort matrix.
func (ce *CalculationEngine) TaxMatrix(ctx context.Context) (domain.Matrix, error) {
	return ce.Matrix(ctx, TaxMatrix)
}

// UntaxedMatrix builds the untaxed comparison cohort matrix.
func (ce *CalculationEngine) UntaxedMatrix(ctx context.Context) (domain.Matrix, error) {
	return ce.Matrix(ctx, UntaxedMatrix)
}

// GrowthSummary returns the aggregate value of all cohorts at each period.
func (ce *CalculationEngine) GrowthSummary(ctx context.Context) ([]float64, error) {
	m, err := ce.GrowthMatrix(ctx)
	if err != nil {
		return nil, err
	}
	return MatrixSum(m), nil
}

// TaxSummary returns the aggregate tax of all cohorts at each period.
func (ce *CalculationEngine) TaxSummary(ctx context.Context) ([]float64, error) {
	m, err := ce.TaxMatrix(ctx)
	if err != nil {
		return nil, err
	}
	return MatrixSum(m), nil
}

// Project runs every query and assembles the projection summary.
func (ce *CalculationEngine) Project(ctx context.Context) (*domain.Projection, error) {
	p := ce.Params
	log := orNop(ce.Logger)
	growth, events := NewGrowthEngine(p, Taxed).Run(ce.Periods())
	untaxed := ce.Untaxed()
	if err := checkFinite("untaxed value", untaxed); err != nil {
		return nil, err
	}
	if err := checkFinite("value", growth); err != nil {
		return nil, err
	}

	growthSummary, err := ce.GrowthSummary(ctx)
	if err != nil {
		return nil, err
	}
	taxSummary, err := ce.TaxSummary(ctx)
	if err != nil {
		return nil, err
	}

	proj := &domain.Projection{
		RunID:             runIDFunc(),
		GeneratedAt:       nowFunc(),
		Principal:         p.Principal(),
		Years:             p.Years(),
		GrowthRate:        p.GrowthRate(),
		Frequency:         p.Frequency(),
		TaxRate:           p.TaxRate(),
		Periods:           ce.Periods(),
		ChunkPlan:         ce.ChunkPlan(),
		Growth:            growth,
		Untaxed:           untaxed,
		Tax:               ce.Tax(),
		Events:            events,
		FinalValue:        growth.Final(),
		FinalUntaxedValue: untaxed.Final(),
		GrowthSummary:     growthSummary,
		TaxSummary:        taxSummary,
	}
	if len(events) > 0 {
		proj.TotalTax = events[len(events)-1].CumulativeTax
	}

	if ce.Debug {
		log.Debugf("PROJECTION %s", proj.RunID)
		log.Debugf("  Periods:        %d (%d chunks + %d)", proj.Periods, proj.ChunkPlan.FullChunks, proj.ChunkPlan.Remainder)
		for _, ev := range events {
			log.Debugf("  Disposal @%-4d  raw=%.2f tax=%.2f taxed=%.2f", ev.Period, ev.RawValue, ev.Tax, ev.TaxedValue)
		}
		log.Debugf("  Final value:    %.2f", proj.FinalValue)
		log.Debugf("  Untaxed value:  %.2f", proj.FinalUntaxedValue)
		log.Debugf("  Total tax:      %.2f", proj.TotalTax)
	}
	log.Infof("projection complete: periods=%d final=%.2f tax=%.2f", proj.Periods, proj.FinalValue, proj.TotalTax)

	return proj, nil
}

// checkFinite reports the first period whose value is not a finite number.
func checkFinite(what string, values []float64) error {
	for i, v := range values {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return fmt.Errorf("%s at period %d: %w", what, i, ErrOverflow)
		}
	}
	return nil
}
