// SPDX-License-Identifier: MIT

// Package sparse: the Matrix type, construction from dense and triplet
// input, and entry-level accessors. Ops that derive new matrices live in
// ops.go; the incremental Builder lives in builder.go.
package sparse

import (
	"fmt"
	"sort"
)

// Matrix is an immutable rows×cols sparse matrix in CSR form.
//
// The zero value is a valid empty 0×0 matrix. All other shapes come from
// NewFromDense, NewFromTriplets or Builder.Build; there is no mutation API,
// so a Matrix may be shared freely across goroutines.
type Matrix struct {
	rows, cols int
	rowPtr     []int     // len rows+1; rowPtr[r]..rowPtr[r+1] bounds row r
	colIndex   []int     // len nnz; strictly increasing within each row
	values     []float64 // len nnz; parallel to colIndex
}

// Triplet is a single (row, column, value) entry used for incremental
// construction. Triplets addressing the same cell are summed, not
// overwritten.
type Triplet struct {
	Row, Col int
	Value    float64
}

// NewFromDense builds a Matrix from a row-major dense array, skipping zero
// cells. Every row must have the same length; a ragged input is rejected
// with ErrInvalidInput. An empty input (no rows, or rows of length zero)
// yields a valid empty matrix.
//
// Complexity: O(rows·cols) scan, O(nnz) storage.
func NewFromDense(dense [][]float64) (*Matrix, error) {
	rows := len(dense)
	cols := 0
	if rows > 0 {
		cols = len(dense[0])
	}

	m := &Matrix{rows: rows, cols: cols, rowPtr: make([]int, rows+1)}
	for r, rowVals := range dense {
		if len(rowVals) != cols {
			return nil, fmt.Errorf("NewFromDense: row %d has %d columns, want %d: %w",
				r, len(rowVals), cols, ErrInvalidInput)
		}
		for c, v := range rowVals {
			if v != 0 {
				m.values = append(m.values, v)
				m.colIndex = append(m.colIndex, c)
			}
		}
		m.rowPtr[r+1] = len(m.values)
	}

	return m, nil
}

// NewFromTriplets builds a rows×cols Matrix from an unordered triplet list.
// Duplicate (row, col) cells are merged by summation in input order; rows
// without triplets occupy zero-length segments. Negative dimensions or a
// triplet outside the matrix are rejected with ErrInvalidInput.
//
// Complexity: O(t + rows + per-row sort) for t input triplets.
func NewFromTriplets(rows, cols int, triplets []Triplet) (*Matrix, error) {
	b, err := NewBuilder(rows, cols)
	if err != nil {
		return nil, err
	}
	for i, t := range triplets {
		if err = b.Add(t.Row, t.Col, t.Value); err != nil {
			return nil, fmt.Errorf("NewFromTriplets: triplet %d: %w", i, err)
		}
	}

	return b.Build(), nil
}

// Rows returns the number of matrix rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of matrix columns.
func (m *Matrix) Cols() int { return m.cols }

// NonZeros returns the number of stored entries (nnz). Entries created
// through triplet cancellation count even when their value is zero.
func (m *Matrix) NonZeros() int { return len(m.values) }

// Sparsity returns 1 − nnz/(rows·cols), the stored-entry deficit of the
// matrix. An empty matrix (rows·cols == 0) has sparsity 1.
func (m *Matrix) Sparsity() float64 {
	total := float64(m.rows) * float64(m.cols)
	if total == 0 {
		return 1
	}

	return 1 - float64(len(m.values))/total
}

// At returns the entry at (row, col), zero when the cell is not stored.
// Indices outside the matrix are rejected with ErrInvalidInput.
//
// Complexity: O(log k) for a row with k stored entries.
func (m *Matrix) At(row, col int) (float64, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, fmt.Errorf("At: index (%d,%d) outside %d×%d: %w",
			row, col, m.rows, m.cols, ErrInvalidInput)
	}

	return m.lookup(row, col), nil
}

// lookup assumes row and col are in range; binary search over the row.
func (m *Matrix) lookup(row, col int) float64 {
	lo, hi := m.rowPtr[row], m.rowPtr[row+1]
	k := lo + sort.SearchInts(m.colIndex[lo:hi], col)
	if k < hi && m.colIndex[k] == col {
		return m.values[k]
	}

	return 0
}

// ToDense materializes the matrix as a row-major dense array. Intended for
// inspection and tests; the result is independent of the receiver.
func (m *Matrix) ToDense() [][]float64 {
	dense := make([][]float64, m.rows)
	for r := range dense {
		dense[r] = make([]float64, m.cols)
		for k := m.rowPtr[r]; k < m.rowPtr[r+1]; k++ {
			dense[r][m.colIndex[k]] = m.values[k]
		}
	}

	return dense
}

// IsSymmetric reports whether the matrix equals its transpose within tol
// (|a[r][c] − a[c][r]| ≤ tol for every stored entry). Non-square matrices
// are never symmetric. Symmetry is a necessary (not sufficient) part of the
// SPD contract assumed by conjugate-gradient solves; this probe is meant for
// offline validation, not for hot paths.
//
// Complexity: O(nnz·log k) for max row length k.
func (m *Matrix) IsSymmetric(tol float64) bool {
	if m.rows != m.cols {
		return false
	}
	for r := 0; r < m.rows; r++ {
		for k := m.rowPtr[r]; k < m.rowPtr[r+1]; k++ {
			c := m.colIndex[k]
			if c == r {
				continue
			}
			d := m.values[k] - m.lookup(c, r)
			if !(d <= tol && d >= -tol) {
				return false
			}
		}
	}

	return true
}
