package vec

import (
	"errors"
	"fmt"
	"math"
)

// ErrDimensionMismatch indicates two operands of unequal length.
// Every fallible function in this package wraps it with the operation name
// and the offending lengths; match with errors.Is.
var ErrDimensionMismatch = errors.New("vec: dimension mismatch")

// mismatch builds the canonical wrapped length error for operation op.
func mismatch(op string, a, b int) error {
	return fmt.Errorf("%s: lengths %d and %d: %w", op, a, b, ErrDimensionMismatch)
}

// Dot returns the inner product u·v.
func Dot(u, v []float64) (float64, error) {
	if len(u) != len(v) {
		return 0, mismatch("Dot", len(u), len(v))
	}

	return dot(u, v), nil
}

// dot assumes len(u) == len(v).
func dot(u, v []float64) float64 {
	var s float64
	for i := range u {
		s += u[i] * v[i]
	}

	return s
}

// Norm returns the Euclidean norm sqrt(v·v). The norm of an empty vector is 0.
func Norm(v []float64) float64 {
	return math.Sqrt(dot(v, v))
}

// Axpy returns a·x + y as a freshly allocated vector; x and y are untouched.
func Axpy(a float64, x, y []float64) ([]float64, error) {
	if len(x) != len(y) {
		return nil, mismatch("Axpy", len(x), len(y))
	}
	out := make([]float64, len(x))
	for i := range x {
		out[i] = a*x[i] + y[i]
	}

	return out, nil
}

// Sub returns u − v as a freshly allocated vector; u and v are untouched.
func Sub(u, v []float64) ([]float64, error) {
	if len(u) != len(v) {
		return nil, mismatch("Sub", len(u), len(v))
	}
	out := make([]float64, len(u))
	for i := range u {
		out[i] = u[i] - v[i]
	}

	return out, nil
}

// AddScaled accumulates dst += a·x in place.
func AddScaled(dst []float64, a float64, x []float64) error {
	if len(dst) != len(x) {
		return mismatch("AddScaled", len(dst), len(x))
	}
	for i := range dst {
		dst[i] += a * x[i]
	}

	return nil
}

// AddScaledTo writes dst = y + a·x. dst may alias y or x; each index is read
// before it is written, so overlapping slices stay consistent.
func AddScaledTo(dst, y []float64, a float64, x []float64) error {
	if len(y) != len(x) {
		return mismatch("AddScaledTo", len(y), len(x))
	}
	if len(dst) != len(x) {
		return mismatch("AddScaledTo", len(dst), len(x))
	}
	for i := range dst {
		dst[i] = y[i] + a*x[i]
	}

	return nil
}

// SubTo writes dst = u − v. dst may alias u or v.
func SubTo(dst, u, v []float64) error {
	if len(u) != len(v) {
		return mismatch("SubTo", len(u), len(v))
	}
	if len(dst) != len(u) {
		return mismatch("SubTo", len(dst), len(u))
	}
	for i := range dst {
		dst[i] = u[i] - v[i]
	}

	return nil
}
