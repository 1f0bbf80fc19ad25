// SPDX-License-Identifier: MIT

// Package sparse: test-only exports. Invariant tests need to see the frozen
// CSR arrays; nothing here ships outside the test binary.
package sparse

// RawRowPtr exposes the row-pointer table for invariant checks.
func (m *Matrix) RawRowPtr() []int { return m.rowPtr }

// RawColIndex exposes the column-index array for invariant checks.
func (m *Matrix) RawColIndex() []int { return m.colIndex }

// RawValues exposes the value array for invariant checks.
func (m *Matrix) RawValues() []float64 { return m.values }
