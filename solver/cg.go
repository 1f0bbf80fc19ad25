// Package solver: conjugate gradient recurrence.
//
// CG minimizes the A-norm of the error over the growing Krylov subspace
// span{r₀, A·r₀, A²·r₀, ...}, which is what makes it the method of choice for
// symmetric positive-definite systems: one multiply by A per iteration, three
// vectors of state, and in exact arithmetic convergence within n iterations.
//
// Complexity per iteration:
//
//   - Time:  O(nnz) for the multiply + O(n) for the vector updates.
//   - Space: O(n) scratch (direction p and product A·p) on top of the
//     iterate and residual owned by the caller.
package solver

import (
	"math"

	"github.com/katalvlaran/lvlinalg/sparse"
	"github.com/katalvlaran/lvlinalg/vec"
)

// cg runs the conjugate gradient recurrence on a prepared state (s.x holds
// the initial iterate, s.r its residual b − A·x with norm at or above the
// tolerance). It returns the accepted Result, or a NotConvergedError after
// maxIter iterations. maxIter is at least 1 here; the zero-iteration case is
// settled by the facade.
//
// Positive-definiteness is a caller contract. On an indefinite or asymmetric
// matrix the curvature term pᵀ·A·p may reach zero or flip sign, the iterates
// then drift or turn NaN, and the run ends in a NotConvergedError.
func cg(m *sparse.Matrix, s *state, tol float64, maxIter int) (*Result, error) {
	n := len(s.x)

	// Direction vector starts as the residual; ap holds A·p.
	p := make([]float64, n)
	copy(p, s.r)
	ap := make([]float64, n)

	// rr = r·r is carried across iterations so each one costs a single
	// fresh inner product of the updated residual.
	rr, err := vec.Dot(s.r, s.r)
	if err != nil {
		return nil, err
	}

	rnorm := math.Sqrt(rr)
	for k := 0; k < maxIter; k++ {
		// 1) ap = A·p
		if err = m.MulVecTo(ap, p); err != nil {
			return nil, err
		}
		s.matVecs++

		// 2) α = r·r / p·ap
		pap, err := vec.Dot(p, ap)
		if err != nil {
			return nil, err
		}
		alpha := rr / pap

		// 3) x += α·p ; r −= α·ap
		if err = vec.AddScaled(s.x, alpha, p); err != nil {
			return nil, err
		}
		if err = vec.AddScaled(s.r, -alpha, ap); err != nil {
			return nil, err
		}

		// 4) Accept as soon as ‖r‖ drops below the tolerance.
		rrNext, err := vec.Dot(s.r, s.r)
		if err != nil {
			return nil, err
		}
		rnorm = math.Sqrt(rrNext)
		if rnorm < tol {
			return &Result{X: s.x, Iterations: k + 1, ResidualNorm: rnorm, MatVecs: s.matVecs}, nil
		}

		// 5) β = r₊·r₊ / r·r ; p = r₊ + β·p
		beta := rrNext / rr
		if err = vec.AddScaledTo(p, s.r, beta, p); err != nil {
			return nil, err
		}
		rr = rrNext
	}

	return nil, &NotConvergedError{Iterations: maxIter, ResidualNorm: rnorm}
}
