// SPDX-License-Identifier: MIT

// Package sparse: operations deriving vectors and new matrices from a built
// Matrix. Everything here treats the receiver as read-only.
package sparse

import (
	"fmt"
	"sort"
)

// MulVec returns y = A·x as a freshly allocated vector of length Rows().
// len(x) must equal Cols(), else ErrDimensionMismatch.
//
// Complexity: O(nnz), independent of the dense rows×cols footprint.
func (m *Matrix) MulVec(x []float64) ([]float64, error) {
	if len(x) != m.cols {
		return nil, fmt.Errorf("MulVec: vector length %d, want %d columns: %w",
			len(x), m.cols, ErrDimensionMismatch)
	}
	y := make([]float64, m.rows)
	m.mulVec(y, x)

	return y, nil
}

// MulVecTo writes y = A·x into dst, allocating nothing. len(dst) must equal
// Rows() and len(x) must equal Cols().
func (m *Matrix) MulVecTo(dst, x []float64) error {
	if len(x) != m.cols {
		return fmt.Errorf("MulVecTo: vector length %d, want %d columns: %w",
			len(x), m.cols, ErrDimensionMismatch)
	}
	if len(dst) != m.rows {
		return fmt.Errorf("MulVecTo: dst length %d, want %d rows: %w",
			len(dst), m.rows, ErrDimensionMismatch)
	}
	m.mulVec(dst, x)

	return nil
}

// mulVec assumes len(dst) == rows and len(x) == cols.
func (m *Matrix) mulVec(dst, x []float64) {
	for r := 0; r < m.rows; r++ {
		var s float64
		for k := m.rowPtr[r]; k < m.rowPtr[r+1]; k++ {
			s += m.values[k] * x[m.colIndex[k]]
		}
		dst[r] = s
	}
}

// MulTransVec returns y = Aᵀ·x as a freshly allocated vector of length
// Cols(), without materializing the transpose. len(x) must equal Rows().
//
// Complexity: O(nnz + cols).
func (m *Matrix) MulTransVec(x []float64) ([]float64, error) {
	if len(x) != m.rows {
		return nil, fmt.Errorf("MulTransVec: vector length %d, want %d rows: %w",
			len(x), m.rows, ErrDimensionMismatch)
	}
	y := make([]float64, m.cols)
	m.mulTransVec(y, x)

	return y, nil
}

// MulTransVecTo writes y = Aᵀ·x into dst, allocating nothing. len(dst) must
// equal Cols() and len(x) must equal Rows().
func (m *Matrix) MulTransVecTo(dst, x []float64) error {
	if len(x) != m.rows {
		return fmt.Errorf("MulTransVecTo: vector length %d, want %d rows: %w",
			len(x), m.rows, ErrDimensionMismatch)
	}
	if len(dst) != m.cols {
		return fmt.Errorf("MulTransVecTo: dst length %d, want %d columns: %w",
			len(dst), m.cols, ErrDimensionMismatch)
	}
	m.mulTransVec(dst, x)

	return nil
}

// mulTransVec assumes len(dst) == cols and len(x) == rows. Row r scatters
// values[k]·x[r] into dst[colIndex[k]].
func (m *Matrix) mulTransVec(dst, x []float64) {
	for i := range dst {
		dst[i] = 0
	}
	for r := 0; r < m.rows; r++ {
		for k := m.rowPtr[r]; k < m.rowPtr[r+1]; k++ {
			dst[m.colIndex[k]] += m.values[k] * x[r]
		}
	}
}

// Transposed returns a new cols×rows Matrix with every entry (r, c, v)
// relocated to (c, r, v). Entries are re-bucketed by column in one counting
// pass; within each new row they arrive in increasing old-row order, so the
// CSR invariants hold without an explicit sort. Transposing twice reproduces
// the original entry set exactly.
//
// Complexity: O(nnz + rows + cols).
func (m *Matrix) Transposed() *Matrix {
	t := &Matrix{rows: m.cols, cols: m.rows, rowPtr: make([]int, m.cols+1)}
	nnz := len(m.values)
	t.colIndex = make([]int, nnz)
	t.values = make([]float64, nnz)

	for _, c := range m.colIndex {
		t.rowPtr[c+1]++
	}
	for c := 0; c < m.cols; c++ {
		t.rowPtr[c+1] += t.rowPtr[c]
	}

	next := make([]int, m.cols)
	copy(next, t.rowPtr[:m.cols])
	for r := 0; r < m.rows; r++ {
		for k := m.rowPtr[r]; k < m.rowPtr[r+1]; k++ {
			c := m.colIndex[k]
			w := next[c]
			t.colIndex[w] = r
			t.values[w] = m.values[k]
			next[c]++
		}
	}

	return t
}

// Submatrix returns the block selected by the half-open ranges
// [rowLo, rowHi) × [colLo, colHi), re-indexed to the range origin. Bounds
// outside the matrix, or inverted ranges, are rejected with ErrInvalidInput;
// ranges are never clamped. Empty ranges yield valid empty matrices.
//
// Complexity: O(selected rows · log k + selected nnz).
func (m *Matrix) Submatrix(rowLo, rowHi, colLo, colHi int) (*Matrix, error) {
	if rowLo < 0 || rowHi > m.rows || rowLo > rowHi ||
		colLo < 0 || colHi > m.cols || colLo > colHi {
		return nil, fmt.Errorf("Submatrix: range [%d,%d)×[%d,%d) invalid for %d×%d: %w",
			rowLo, rowHi, colLo, colHi, m.rows, m.cols, ErrInvalidInput)
	}

	sub := &Matrix{
		rows:   rowHi - rowLo,
		cols:   colHi - colLo,
		rowPtr: make([]int, rowHi-rowLo+1),
	}
	for r := rowLo; r < rowHi; r++ {
		lo, hi := m.rowPtr[r], m.rowPtr[r+1]
		// Columns are sorted within the row: binary-search the range start,
		// then copy until the range end.
		k := lo + sort.SearchInts(m.colIndex[lo:hi], colLo)
		for ; k < hi && m.colIndex[k] < colHi; k++ {
			sub.values = append(sub.values, m.values[k])
			sub.colIndex = append(sub.colIndex, m.colIndex[k]-colLo)
		}
		sub.rowPtr[r-rowLo+1] = len(sub.values)
	}

	return sub, nil
}
