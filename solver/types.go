// Package solver: configuration surface and result shape. This file defines
// the Method enum, the documented defaults, the functional Option setters and
// the Result struct. Setters only record values; Solve validates the resolved
// configuration once the system dimension is known and reports
// ErrInvalidInput or ErrDimensionMismatch, so a bad option never panics.
package solver

import (
	"fmt"
	"time"
)

// Method selects the iterative scheme run by Solve.
type Method int

const (
	// MethodCG is the conjugate gradient method. The matrix must be symmetric
	// positive-definite; that contract is not checked on the solve path
	// (probe offline with sparse.Matrix.IsSymmetric when unsure). Applied to
	// an unsuitable matrix the recurrence may diverge and end in a
	// NotConvergedError whose residual norm can be NaN.
	MethodCG Method = iota

	// MethodBiCG is the biconjugate gradient method for general square
	// systems. Each iteration multiplies once by A and once by Aᵀ, and the
	// recurrence may stop early with a BreakdownError on a vanishing pivot.
	MethodBiCG
)

// String returns the conventional short name of the method.
func (m Method) String() string {
	switch m {
	case MethodCG:
		return "CG"
	case MethodBiCG:
		return "BiCG"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Defaults resolved by DefaultOptions; each is overridable per call.
const (
	// DefaultTolerance is the absolute residual-norm threshold below which an
	// iterate is accepted.
	DefaultTolerance = 1e-10

	// DefaultMaxIterationsFactor scales the system dimension into the default
	// iteration cap: an n×n solve may run up to 2·n iterations before
	// reporting a NotConvergedError.
	DefaultMaxIterationsFactor = 2

	// epsilon is the relative machine precision of float64.
	epsilon = 0x1p-53

	// DefaultBreakdownTolerance is the absolute magnitude under which a BiCG
	// pivot denominator counts as vanished (ε² for ε = 2⁻⁵³).
	DefaultBreakdownTolerance = epsilon * epsilon
)

// Option mutates an Options value. Solve accepts ...Option and resolves them
// against DefaultOptions via gatherOptions, last-writer-wins.
type Option func(*Options)

// Options stores the effective solver configuration after applying Option
// setters. Fields are unexported; Solve validates the resolved values.
type Options struct {
	method       Method    // iterative scheme to dispatch
	tolerance    float64   // absolute residual-norm threshold
	maxIter      int       // iteration cap, meaningful when maxIterSet
	maxIterSet   bool      // distinguishes an explicit cap (even 0) from the dimension-scaled default
	guess        []float64 // starting iterate; nil means the zero vector
	breakdownTol float64   // BiCG pivot magnitude threshold
}

// WithMethod selects the iterative scheme; MethodCG is the default. An
// unknown value is rejected by Solve with ErrInvalidInput.
func WithMethod(m Method) Option {
	return func(o *Options) { o.method = m }
}

// WithTolerance sets the absolute residual-norm threshold below which an
// iterate is accepted. Solve rejects NaN and non-positive values with
// ErrInvalidInput.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.tolerance = tol }
}

// WithMaxIterations caps the number of iterations. Zero is honored literally:
// no iterations run, and unless the initial residual already meets the
// tolerance Solve reports a NotConvergedError. Negative values are rejected
// with ErrInvalidInput. When the cap is never set it defaults to
// DefaultMaxIterationsFactor times the system dimension.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		o.maxIter = n
		o.maxIterSet = true
	}
}

// WithInitialGuess starts the iteration from x0 instead of the zero vector.
// The slice is only read; a length other than the system dimension is
// rejected by Solve with ErrDimensionMismatch.
func WithInitialGuess(x0 []float64) Option {
	return func(o *Options) { o.guess = x0 }
}

// WithBreakdownTolerance overrides the absolute magnitude under which BiCG
// treats a pivot denominator as vanished and stops with a BreakdownError.
// Solve rejects values that are not positive and finite with ErrInvalidInput.
// MethodCG ignores this setting.
func WithBreakdownTolerance(tol float64) Option {
	return func(o *Options) { o.breakdownTol = tol }
}

// DefaultOptions returns the configuration Solve starts from: conjugate
// gradient, tolerance DefaultTolerance, a zero initial guess, the ε²
// breakdown tolerance, and an iteration cap resolved to 2·n at solve time.
func DefaultOptions() Options {
	return Options{
		method:       MethodCG,
		tolerance:    DefaultTolerance,
		breakdownTol: DefaultBreakdownTolerance,
	}
}

// gatherOptions applies user setters on top of DefaultOptions in order.
func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, set := range user {
		set(&o)
	}

	return o
}

// Result reports a successful solve. Failure paths return typed errors
// instead, never a partial Result.
type Result struct {
	// X is the computed solution, length n. The caller owns the slice.
	X []float64

	// Iterations is the number of completed iterations; 0 means the initial
	// iterate already satisfied the tolerance.
	Iterations int

	// ResidualNorm is ‖b − A·x‖ as maintained by the recurrence at the
	// accepting test.
	ResidualNorm float64

	// MatVecs counts matrix-vector products, products by A and by Aᵀ alike.
	MatVecs int

	// Runtime is the wall-clock duration of the call.
	Runtime time.Duration
}
