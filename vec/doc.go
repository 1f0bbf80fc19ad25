// Package vec provides the float64 slice primitives shared by the iterative
// solvers: inner product, Euclidean norm, scaled accumulation and
// subtraction.
//
// All functions are pure and deterministic. The allocating forms (Axpy, Sub)
// allocate exactly one result slice; the To-forms (AddScaled, AddScaledTo,
// SubTo) write into a caller-provided destination and allocate nothing, which
// keeps solver inner loops free of garbage.
//
// The only error condition is a length mismatch between operands, reported as
// ErrDimensionMismatch. Inputs are never mutated except for the designated
// destination slice of a To-form.
//
// Complexity: every function is a single O(n) pass with O(1) extra state.
package vec
