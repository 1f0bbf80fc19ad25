// SPDX-License-Identifier: MIT

// Package sparse: incremental construction. A Builder accumulates entries
// into a growable arena; Build freezes the arena into the fixed CSR arrays
// of an immutable Matrix.
package sparse

import (
	"fmt"
	"sort"
)

// Builder accumulates (row, col, value) entries for a rows×cols matrix.
//
// Add validates bounds immediately, so Build cannot fail. Build takes a
// snapshot: the returned Matrix owns fresh arrays, and the Builder may keep
// accumulating for further, independent Build calls.
type Builder struct {
	rows, cols int
	entries    []Triplet
}

// NewBuilder returns an empty Builder for a rows×cols matrix. Negative
// dimensions are rejected with ErrInvalidInput.
func NewBuilder(rows, cols int) (*Builder, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewBuilder: negative dimensions %d×%d: %w",
			rows, cols, ErrInvalidInput)
	}

	return &Builder{rows: rows, cols: cols}, nil
}

// Add records one entry. Entries addressing the same cell are summed by
// Build, in the order they were added. Out-of-range coordinates are rejected
// with ErrInvalidInput.
func (b *Builder) Add(row, col int, value float64) error {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return fmt.Errorf("Add: entry (%d,%d) outside %d×%d: %w",
			row, col, b.rows, b.cols, ErrInvalidInput)
	}
	b.entries = append(b.entries, Triplet{Row: row, Col: col, Value: value})

	return nil
}

// Len returns the number of accumulated entries, duplicates included.
func (b *Builder) Len() int { return len(b.entries) }

// Build freezes the accumulated entries into an immutable Matrix.
//
// Steps:
//  1. Count entries per row and prefix-sum the counts into row offsets.
//  2. Scatter entries into their row segments, preserving input order
//     within each row.
//  3. Stable-sort each row segment by column, so entries at the same cell
//     stay in input order.
//  4. Collapse runs of equal columns by summation, left to right; this makes
//     the duplicate-summation order exactly the input order.
//
// Complexity: O(t + rows) plus O(k·log k) per row of k entries.
func (b *Builder) Build() *Matrix {
	m := &Matrix{rows: b.rows, cols: b.cols, rowPtr: make([]int, b.rows+1)}
	nnz := len(b.entries)
	if nnz == 0 {
		return m
	}

	// Step 1: per-row counts, then offsets.
	offsets := make([]int, b.rows+1)
	for _, t := range b.entries {
		offsets[t.Row+1]++
	}
	for r := 0; r < b.rows; r++ {
		offsets[r+1] += offsets[r]
	}

	// Step 2: scatter into row segments.
	cols := make([]int, nnz)
	vals := make([]float64, nnz)
	next := make([]int, b.rows)
	copy(next, offsets[:b.rows])
	for _, t := range b.entries {
		k := next[t.Row]
		cols[k], vals[k] = t.Col, t.Value
		next[t.Row]++
	}

	// Steps 3-4: per-row stable sort and in-place duplicate merge. The write
	// cursor w never passes the read cursor, so compaction is safe in place.
	w := 0
	for r := 0; r < b.rows; r++ {
		lo, hi := offsets[r], offsets[r+1]
		sort.Stable(byColumn{cols: cols[lo:hi], vals: vals[lo:hi]})
		rowStart := w
		for k := lo; k < hi; k++ {
			if w > rowStart && cols[w-1] == cols[k] {
				vals[w-1] += vals[k]

				continue
			}
			cols[w], vals[w] = cols[k], vals[k]
			w++
		}
		m.rowPtr[r+1] = w
	}
	m.colIndex = cols[:w:w]
	m.values = vals[:w:w]

	return m
}

// byColumn co-sorts a row's column and value segments by column index.
type byColumn struct {
	cols []int
	vals []float64
}

func (s byColumn) Len() int           { return len(s.cols) }
func (s byColumn) Less(i, j int) bool { return s.cols[i] < s.cols[j] }
func (s byColumn) Swap(i, j int) {
	s.cols[i], s.cols[j] = s.cols[j], s.cols[i]
	s.vals[i], s.vals[j] = s.vals[j], s.vals[i]
}
