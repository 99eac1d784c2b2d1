package calculation

import (
	"context"
	"fmt"
	"sync"

	"github.com/ddcalc/investment-calculator/internal/domain"
)

// MatrixKind selects which trajectory fills the cohort matrix.
type MatrixKind int

const (
	GrowthMatrix MatrixKind = iota
	TaxMatrix
	UntaxedMatrix
)

var matrixKindNames = map[MatrixKind]string{
	GrowthMatrix:  "growth",
	TaxMatrix:     "tax",
	UntaxedMatrix: "untaxed",
}

func (k MatrixKind) String() string { return matrixKindNames[k] }

// ParseMatrixKind resolves a matrix kind by name.
func ParseMatrixKind(name string) (MatrixKind, error) {
	for k, n := range matrixKindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown matrix kind %q (want growth, tax or untaxed)", name)
}

// DefaultMatrixWorkers bounds the number of cohort rows computed at once.
const DefaultMatrixWorkers = 8

// MatrixBuilder assembles cohort matrices: one row per start offset within the
// horizon, left-padded with zeros up to its offset.
type MatrixBuilder struct {
	Periods int
	Workers int
	Logger  Logger

	taxed   *GrowthEngine
	untaxed *GrowthEngine
	ledger  *TaxLedger
}

// NewMatrixBuilder creates a builder for the full horizon of params.
func NewMatrixBuilder(params domain.Parameters) *MatrixBuilder {
	return &MatrixBuilder{
		Periods: PeriodsFor(params.Years(), params.Frequency()),
		Workers: DefaultMatrixWorkers,
		Logger:  NopLogger{},
		taxed:   NewGrowthEngine(params, Taxed),
		untaxed: NewGrowthEngine(params, Untaxed),
		ledger:  NewTaxLedger(params),
	}
}

// BuildGrowth builds the deemed-disposal growth matrix.
func (mb *MatrixBuilder) BuildGrowth(ctx context.Context) (domain.Matrix, error) {
	return mb.Build(ctx, GrowthMatrix)
}

// BuildTax builds the tax matrix.
func (mb *MatrixBuilder) BuildTax(ctx context.Context) (domain.Matrix, error) {
	return mb.Build(ctx, TaxMatrix)
}

// Build computes every cohort row. Row i is the cohort starting at offset i,
// running for the remaining Periods-i periods. Rows are independent and are
// computed concurrently by at most Workers goroutines.
func (mb *MatrixBuilder) Build(ctx context.Context, kind MatrixKind) (domain.Matrix, error) {
	compute, err := mb.trajectoryFunc(kind)
	if err != nil {
		return domain.Matrix{}, err
	}

	horizon := mb.Periods
	if horizon < 0 {
		horizon = 0
	}
	rows := make([][]float64, horizon+1)
	orNop(mb.Logger).Debugf("building %s matrix: %d cohorts, %d workers", kind, len(rows), mb.Workers)

	if mb.Workers <= 1 {
		for i := range rows {
			if err := ctx.Err(); err != nil {
				return domain.Matrix{}, err
			}
			rows[i] = cohortRow(i, compute(horizon-i))
		}
		return domain.NewMatrix(rows), nil
	}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, mb.Workers)

	for i := range rows {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			if ctx.Err() != nil {
				return
			}
			rows[offset] = cohortRow(offset, compute(horizon-offset))
		}(i)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return domain.Matrix{}, err
	}
	return domain.NewMatrix(rows), nil
}

func (mb *MatrixBuilder) trajectoryFunc(kind MatrixKind) (func(int) domain.Trajectory, error) {
	switch kind {
	case GrowthMatrix:
		return mb.taxed.Compute, nil
	case TaxMatrix:
		return mb.ledger.Compute, nil
	case UntaxedMatrix:
		return mb.untaxed.Compute, nil
	default:
		return nil, fmt.Errorf("unknown matrix kind %d", kind)
	}
}

// cohortRow left-pads a trajectory with offset zeros.
func cohortRow(offset int, traj domain.Trajectory) []float64 {
	row := make([]float64, offset+len(traj))
	copy(row[offset:], traj)
	return row
}

// MatrixSum reduces a matrix column-wise.
func MatrixSum(m domain.Matrix) []float64 {
	return m.ColumnSums()
}
