package calculation

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixBuilder_Shape(t *testing.T) {
	params := mustParams(t, 1000, 3, 5, "yearly")
	mb := NewMatrixBuilder(params)

	for _, kind := range []MatrixKind{GrowthMatrix, TaxMatrix, UntaxedMatrix} {
		t.Run(kind.String(), func(t *testing.T) {
			m, err := mb.Build(context.Background(), kind)
			require.NoError(t, err)
			assert.Equal(t, 4, m.Rows())
			assert.Equal(t, 4, m.Cols())
		})
	}
}

func TestMatrixBuilder_RowIsOffsetCohort(t *testing.T) {
	params := mustParams(t, 1000, 3, 5, "yearly")
	mb := NewMatrixBuilder(params)

	m, err := mb.BuildGrowth(context.Background())
	require.NoError(t, err)

	engine := NewGrowthEngine(params, Taxed)
	for i := 0; i < m.Rows(); i++ {
		row := m.Row(i)
		for j := 0; j < i; j++ {
			assert.Zero(t, row[j], "row %d col %d should be padding", i, j)
		}
		assert.Equal(t, []float64(engine.Compute(3-i)), row[i:], "row %d", i)
	}

	// The last cohort starts on the final period and holds only its principal.
	assert.Equal(t, []float64{0, 0, 0, 1000}, m.Row(3))
}

func TestMatrixBuilder_UntaxedColumnSums(t *testing.T) {
	params := mustParams(t, 1000, 3, 5, "yearly")

	m, err := NewMatrixBuilder(params).Build(context.Background(), UntaxedMatrix)
	require.NoError(t, err)

	sums := MatrixSum(m)
	require.Len(t, sums, 4)
	for j := range sums {
		var want float64
		for i := 0; i <= j; i++ {
			want += 1000 * math.Pow(1.05, float64(j-i))
		}
		assert.InDelta(t, want, sums[j], 1e-9, "column %d", j)
	}
}

func TestMatrixBuilder_FirstColumnIsPrincipal(t *testing.T) {
	params := mustParams(t, 1000, 12, 6, "monthly")

	m, err := NewMatrixBuilder(params).BuildGrowth(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1000.0, m.ColumnSums()[0])
}

func TestMatrixBuilder_TaxRowsAlignWithGrowthRows(t *testing.T) {
	params := mustParams(t, 1000, 10, 6, "monthly")
	mb := NewMatrixBuilder(params)

	growth, err := mb.BuildGrowth(context.Background())
	require.NoError(t, err)
	tax, err := mb.BuildTax(context.Background())
	require.NoError(t, err)

	assert.Equal(t, growth.Rows(), tax.Rows())
	assert.Equal(t, growth.Cols(), tax.Cols())

	ledger := NewTaxLedger(params)
	assert.Equal(t, []float64(ledger.Compute(120)), tax.Row(0))
	for i := 0; i < tax.Rows(); i++ {
		for j := 0; j < i; j++ {
			assert.Zero(t, tax.At(i, j))
		}
	}
}

func TestMatrixBuilder_ParallelMatchesSequential(t *testing.T) {
	params := mustParams(t, 1000, 15, 7, "monthly")

	seq := NewMatrixBuilder(params)
	seq.Workers = 1
	par := NewMatrixBuilder(params)
	par.Workers = 16

	for _, kind := range []MatrixKind{GrowthMatrix, TaxMatrix} {
		a, err := seq.Build(context.Background(), kind)
		require.NoError(t, err)
		b, err := par.Build(context.Background(), kind)
		require.NoError(t, err)
		assert.Equal(t, a.ColumnSums(), b.ColumnSums(), kind.String())
		assert.Equal(t, a.Row(a.Rows()/2), b.Row(b.Rows()/2))
	}
}

func TestMatrixBuilder_ZeroHorizon(t *testing.T) {
	params := mustParams(t, 1000, 0, 7, "monthly")

	m, err := NewMatrixBuilder(params).BuildGrowth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, m.Rows())
	assert.Equal(t, []float64{1000}, m.ColumnSums())
}

func TestMatrixBuilder_Cancelled(t *testing.T) {
	params := mustParams(t, 1000, 40, 7, "monthly")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		mb := NewMatrixBuilder(params)
		mb.Workers = workers
		_, err := mb.BuildGrowth(ctx)
		assert.True(t, errors.Is(err, context.Canceled), "workers=%d", workers)
	}
}

func TestParseMatrixKind(t *testing.T) {
	k, err := ParseMatrixKind("tax")
	require.NoError(t, err)
	assert.Equal(t, TaxMatrix, k)

	_, err = ParseMatrixKind("bogus")
	assert.Error(t, err)
}
