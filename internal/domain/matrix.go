package domain

import (
	"encoding/json"
	"fmt"
)

// Matrix is a rectangular cohort matrix: row i holds the cohort that starts at
// period offset i, column j the absolute period j.
type Matrix struct {
	rows [][]float64
	cols int
}

// NewMatrix builds a matrix from rows, right-padding short rows with zeros so
// every row has the width of the longest one.
func NewMatrix(rows [][]float64) Matrix {
	cols := 0
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	out := make([][]float64, len(rows))
	for i, r := range rows {
		if len(r) == cols {
			out[i] = r
			continue
		}
		padded := make([]float64, cols)
		copy(padded, r)
		out[i] = padded
	}
	return Matrix{rows: out, cols: cols}
}

func (m Matrix) Rows() int { return len(m.rows) }
func (m Matrix) Cols() int { return m.cols }

// At returns the value at row i, column j.
func (m Matrix) At(i, j int) float64 {
	if i < 0 || i >= len(m.rows) || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrix index (%d,%d) out of range %dx%d", i, j, len(m.rows), m.cols))
	}
	return m.rows[i][j]
}

// Row returns a copy of row i.
func (m Matrix) Row(i int) []float64 {
	return append([]float64(nil), m.rows[i]...)
}

// ColumnSums reduces the matrix column-wise: the aggregate over all cohorts
// at each absolute period.
func (m Matrix) ColumnSums() []float64 {
	sums := make([]float64, m.cols)
	for _, r := range m.rows {
		for j, v := range r {
			sums[j] += v
		}
	}
	return sums
}

// MarshalJSON encodes the matrix as an array of rows.
func (m Matrix) MarshalJSON() ([]byte, error) {
	if m.rows == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(m.rows)
}
