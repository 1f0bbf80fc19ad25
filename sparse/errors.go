// SPDX-License-Identifier: MIT

// Package sparse: sentinel error set. This file defines ONLY package-level
// sentinels; call sites wrap them with an operation tag via fmt.Errorf("...:
// %w", ...) so that tests and callers match with errors.Is while messages
// keep their context. No operation in this package panics on user input.
package sparse

import "errors"

var (
	// ErrDimensionMismatch indicates an operand vector whose length does not
	// match the matrix shape, e.g. MulVec with len(x) != Cols().
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrInvalidInput indicates malformed construction input or bounds:
	// ragged dense rows, negative dimensions, a triplet or index outside the
	// matrix, or an invalid submatrix range.
	ErrInvalidInput = errors.New("sparse: invalid input")
)
