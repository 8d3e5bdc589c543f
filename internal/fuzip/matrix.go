package fuzip

import (
	"fmt"
	"math"
)

// Matrix is a dense rows x cols table of int64 weights.
type Matrix struct {
	rows  int
	cols  int
	cells []int64
}

// NewMatrix returns a zeroed rows x cols matrix. Both dimensions must be
// positive.
func NewMatrix(rows, cols int) *Matrix {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("fuzip: matrix dimensions must be positive, got %dx%d", rows, cols))
	}
	return &Matrix{rows: rows, cols: cols, cells: make([]int64, rows*cols)}
}

// MatrixFromRows copies a rectangular [][]int64 into a Matrix.
func MatrixFromRows(values [][]int64) *Matrix {
	if len(values) == 0 {
		panic("fuzip: matrix has no rows")
	}
	m := NewMatrix(len(values), len(values[0]))
	for i, row := range values {
		if len(row) != m.cols {
			panic(fmt.Sprintf("fuzip: row %d has %d columns, want %d", i, len(row), m.cols))
		}
		copy(m.cells[i*m.cols:], row)
	}
	return m
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// At returns the weight at (i, j).
func (m *Matrix) At(i, j int) int64 { return m.cells[i*m.cols+j] }

// Set stores the weight at (i, j).
func (m *Matrix) Set(i, j int, w int64) { m.cells[i*m.cols+j] = w }

// Max returns the largest weight in the matrix.
func (m *Matrix) Max() int64 {
	best := m.cells[0]
	for _, w := range m.cells[1:] {
		best = max(best, w)
	}
	return best
}

// BuildMatrix computes the edit distance between every row key and every
// column key. It panics unless 0 < len(rows) <= len(cols).
func BuildMatrix[K comparable](rows, cols [][]K) *Matrix {
	if len(rows) == 0 || len(cols) == 0 {
		panic("fuzip: cannot build a cost matrix from an empty side")
	}
	if len(rows) > len(cols) {
		panic(fmt.Sprintf("fuzip: cost matrix needs rows <= cols, got %d > %d", len(rows), len(cols)))
	}
	m := NewMatrix(len(rows), len(cols))
	for i, rk := range rows {
		for j, ck := range cols {
			m.Set(i, j, weight(Distance(rk, ck)))
		}
	}
	return m
}

func weight(d int) int64 {
	if d < 0 || uint64(d) > math.MaxInt64 {
		panic(fmt.Sprintf("fuzip: weight %d does not fit in int64", d))
	}
	return int64(d)
}
