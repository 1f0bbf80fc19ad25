// Package solver: error taxonomy. This file defines the package sentinels
// plus the two typed failure modes of the iterative methods. Sentinels carry
// the "solver: " prefix and are matched with errors.Is; the typed errors
// expose diagnostic fields and are matched with errors.As. No solver path
// panics on user input.
package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates a malformed problem or option: nil matrix,
	// non-square matrix, non-positive or NaN tolerance, negative iteration
	// cap, bad breakdown tolerance, or an unknown method.
	ErrInvalidInput = errors.New("solver: invalid input")

	// ErrDimensionMismatch indicates a right-hand side or initial guess
	// whose length differs from the system dimension.
	ErrDimensionMismatch = errors.New("solver: dimension mismatch")
)

// NotConvergedError reports that the iteration cap was exhausted before the
// residual norm dropped below the configured tolerance. No partial iterate is
// returned alongside it; rerun with a larger cap or a looser tolerance.
//
// ResidualNorm is the norm at the last completed iteration and may be NaN
// when the recurrence diverged (e.g. CG applied to an indefinite matrix).
type NotConvergedError struct {
	Iterations   int
	ResidualNorm float64
}

func (e *NotConvergedError) Error() string {
	return fmt.Sprintf("solver: not converged after %d iterations (residual norm %g)", e.Iterations, e.ResidualNorm)
}

// BreakdownError reports that a BiCG pivot denominator fell below the
// breakdown tolerance at the given zero-based iteration, so the recurrence
// cannot continue. The partial iterate is discarded.
type BreakdownError struct {
	Iteration int
}

func (e *BreakdownError) Error() string {
	return fmt.Sprintf("solver: breakdown at iteration %d", e.Iteration)
}
