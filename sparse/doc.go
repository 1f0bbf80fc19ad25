// SPDX-License-Identifier: MIT

// Package sparse implements an immutable sparse matrix in compressed sparse
// row (CSR) form, built for systems where almost every entry is zero.
//
// Storage: three parallel arrays (values, column indices and a row-pointer
// table of length rows+1) hold only the stored entries. For a matrix with
// nnz stored entries this costs O(nnz + rows) memory regardless of the dense
// rows×cols footprint, and matrix-vector multiply runs in O(nnz).
//
// Structural invariants, established at construction and relied upon by
// every operation:
//
//   - rowPtr[0] == 0, rowPtr[rows] == nnz, rowPtr non-decreasing
//   - column indices lie in [0, cols) and are strictly increasing within
//     each row (duplicate cells are merged, by summation, while building)
//
// Construction paths:
//
//   - NewFromDense: row-major scan of a dense [][]float64, zeros skipped
//   - NewFromTriplets: unordered (row, col, value) list; duplicates summed
//     in input order
//   - Builder: incremental accumulation with fail-fast range checks,
//     frozen into a Matrix by Build
//
// A Matrix is never mutated after construction: Transposed and Submatrix
// return new instances, and the zero value sparse.Matrix{} behaves as a
// valid empty 0×0 matrix. Immutability is what makes concurrent solver
// calls on a shared matrix safe without locks.
//
// The triplet path stores every referenced cell, even when summation cancels
// to zero; the dense path stores only non-zero cells. NonZeros counts stored
// entries, so the two paths can disagree on a cancelled cell.
//
// Errors (sentinel):
//
//   - ErrDimensionMismatch: operand vector length incompatible with the
//     matrix shape (MulVec and friends)
//   - ErrInvalidInput: malformed construction input, i.e. ragged dense rows,
//     negative dimensions, out-of-range triplet or submatrix bounds
package sparse
