// Package solver: the Solve facade. This file owns everything the two
// recurrences share: problem validation, option resolution, the initial
// iterate and residual, the zero-iteration edge cases, method dispatch and
// the one debug log event per call.
package solver

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/lvlinalg/logger"
	"github.com/katalvlaran/lvlinalg/sparse"
	"github.com/katalvlaran/lvlinalg/vec"
)

// state carries the per-call vectors and counters shared by both recurrences.
// Everything in it is owned by the current call; nothing escapes except x,
// which is handed to the caller inside the Result.
type state struct {
	x       []float64 // current iterate
	r       []float64 // current residual b − A·x
	matVecs int       // matrix-vector products so far
}

// Solve computes x with A·x = b for a square sparse matrix A, using the
// conjugate gradient method by default or the biconjugate gradient method
// when selected via WithMethod. The matrix is only read; concurrent Solve
// calls on the same matrix are safe.
//
// Validation (in order):
//  1. m must be non-nil (ErrInvalidInput).
//  2. m must be square (ErrInvalidInput).
//  3. len(b) must equal the dimension (ErrDimensionMismatch).
//  4. Resolved options must be sane: tolerance > 0 and not NaN, iteration
//     cap ≥ 0, guess length = dimension, breakdown tolerance positive and
//     finite, method known (ErrInvalidInput / ErrDimensionMismatch).
//
// Outcomes:
//
//   - An iterate whose absolute residual norm ‖b − A·x‖ is below the
//     tolerance: returned in a Result together with iteration and
//     multiply counts and the wall-clock runtime.
//   - Iteration cap exhausted: *NotConvergedError, no partial solution.
//   - Vanishing BiCG pivot: *BreakdownError.
//
// The zero-dimension system (0×0 matrix, empty right-hand side) converges
// trivially with an empty solution and zero iterations.
func Solve(m *sparse.Matrix, b []float64, opts ...Option) (*Result, error) {
	start := time.Now()

	if m == nil {
		return nil, fmt.Errorf("Solve: matrix is nil: %w", ErrInvalidInput)
	}
	n := m.Rows()
	if m.Cols() != n {
		return nil, fmt.Errorf("Solve: matrix is %d×%d, want square: %w", n, m.Cols(), ErrInvalidInput)
	}
	if len(b) != n {
		return nil, fmt.Errorf("Solve: right-hand side length %d, want %d: %w", len(b), n, ErrDimensionMismatch)
	}

	o := gatherOptions(opts...)
	if err := o.validate(n); err != nil {
		return nil, err
	}

	log := logger.Logger()

	res, err := o.run(m, b)
	if err != nil {
		log.Debug().
			Stringer("method", o.method).
			Int("dim", n).
			Int("nnz", m.NonZeros()).
			Dur("took", time.Since(start)).
			Err(err).
			Msg("solve failed")

		return nil, err
	}
	res.Runtime = time.Since(start)

	log.Debug().
		Stringer("method", o.method).
		Int("dim", n).
		Int("nnz", m.NonZeros()).
		Int("iterations", res.Iterations).
		Float64("residual", res.ResidualNorm).
		Dur("took", res.Runtime).
		Msg("solve finished")

	return res, nil
}

// validate checks the resolved configuration against the system dimension n
// and fills in the dimension-scaled iteration cap when the caller left the
// cap unset.
func (o *Options) validate(n int) error {
	if o.method != MethodCG && o.method != MethodBiCG {
		return fmt.Errorf("Solve: unknown method %d: %w", int(o.method), ErrInvalidInput)
	}
	if math.IsNaN(o.tolerance) || o.tolerance <= 0 {
		return fmt.Errorf("Solve: tolerance %g, want > 0: %w", o.tolerance, ErrInvalidInput)
	}
	if o.maxIterSet && o.maxIter < 0 {
		return fmt.Errorf("Solve: max iterations %d, want >= 0: %w", o.maxIter, ErrInvalidInput)
	}
	if !o.maxIterSet {
		o.maxIter = DefaultMaxIterationsFactor * n
	}
	if o.guess != nil && len(o.guess) != n {
		return fmt.Errorf("Solve: initial guess length %d, want %d: %w", len(o.guess), n, ErrDimensionMismatch)
	}
	if math.IsNaN(o.breakdownTol) || math.IsInf(o.breakdownTol, 0) || o.breakdownTol <= 0 {
		return fmt.Errorf("Solve: breakdown tolerance %g, want positive and finite: %w", o.breakdownTol, ErrInvalidInput)
	}

	return nil
}

// run prepares the initial iterate and residual, settles the zero-iteration
// outcomes, and dispatches to the configured recurrence.
func (o *Options) run(m *sparse.Matrix, b []float64) (*Result, error) {
	n := len(b)
	s := &state{
		x: make([]float64, n),
		r: make([]float64, n),
	}

	// r₀ = b − A·x₀. Without a guess x₀ is zero and the multiply is skipped.
	if o.guess == nil {
		copy(s.r, b)
	} else {
		copy(s.x, o.guess)
		if err := m.MulVecTo(s.r, s.x); err != nil {
			return nil, err
		}
		s.matVecs++
		if err := vec.SubTo(s.r, b, s.r); err != nil {
			return nil, err
		}
	}

	rnorm := vec.Norm(s.r)
	if rnorm < o.tolerance {
		return &Result{X: s.x, Iterations: 0, ResidualNorm: rnorm, MatVecs: s.matVecs}, nil
	}
	if o.maxIter == 0 {
		return nil, &NotConvergedError{Iterations: 0, ResidualNorm: rnorm}
	}

	if o.method == MethodBiCG {
		return bicg(m, s, o.tolerance, o.breakdownTol, o.maxIter)
	}

	return cg(m, s, o.tolerance, o.maxIter)
}
