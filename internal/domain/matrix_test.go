package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatrix_PadsRows(t *testing.T) {
	m := NewMatrix([][]float64{{1, 2, 3}, {0, 4}, {}})

	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, []float64{0, 4, 0}, m.Row(1))
	assert.Equal(t, []float64{0, 0, 0}, m.Row(2))
	assert.Equal(t, []float64{1, 6, 3}, m.ColumnSums())
}

func TestMatrix_At(t *testing.T) {
	m := NewMatrix([][]float64{{1, 2}, {3, 4}})
	assert.Equal(t, 3.0, m.At(1, 0))
	assert.Panics(t, func() { m.At(2, 0) })
}

func TestMatrix_RowIsCopy(t *testing.T) {
	m := NewMatrix([][]float64{{1, 2}})
	r := m.Row(0)
	r[0] = 99
	assert.Equal(t, 1.0, m.At(0, 0))
}

func TestMatrix_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(NewMatrix([][]float64{{1, 2}, {0, 3}}))
	require.NoError(t, err)
	assert.JSONEq(t, `[[1,2],[0,3]]`, string(b))

	b, err = json.Marshal(Matrix{})
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(b))
}

func TestTrajectory(t *testing.T) {
	assert.Zero(t, Trajectory{}.Final())
	assert.Equal(t, 3.0, Trajectory{1, 2, 3}.Final())
	assert.Equal(t, 6.0, Trajectory{1, 2, 3}.Sum())
	assert.Equal(t, 10, ChunkPlan{FullChunks: 1, Remainder: 2, ChunkSize: 8}.Periods())
}
