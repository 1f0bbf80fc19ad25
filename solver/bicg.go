// Package solver: biconjugate gradient recurrence.
//
// BiCG extends CG to general square systems by running a second, "shadow"
// recurrence on Aᵀ: two coupled residuals r and r̃ are kept biorthogonal, at
// the price of one extra multiply per iteration and a recurrence that can
// break down when a pivot denominator vanishes. For a symmetric matrix the
// shadow sequence mirrors the primal one and BiCG produces the CG iterates.
//
// Complexity per iteration:
//
//   - Time:  O(nnz) for the two multiplies (A and Aᵀ, both row-major over
//     the same CSR arrays) + O(n) vector updates.
//   - Space: O(n) scratch for the shadow residual, the two direction
//     vectors and the two products.
package solver

import (
	"math"

	"github.com/katalvlaran/lvlinalg/sparse"
	"github.com/katalvlaran/lvlinalg/vec"
)

// bicg runs the biconjugate gradient recurrence on a prepared state (s.x
// holds the initial iterate, s.r its residual with norm at or above the
// tolerance). The shadow residual starts equal to r₀. It returns the
// accepted Result, a BreakdownError when |r̃·r| or |p̃·A·p| falls below
// breakdownTol, or a NotConvergedError after maxIter iterations.
func bicg(m *sparse.Matrix, s *state, tol, breakdownTol float64, maxIter int) (*Result, error) {
	n := len(s.x)

	// Shadow residual r̃, direction pairs p/p̃ and products q = A·p,
	// q̃ = Aᵀ·p̃.
	rt := make([]float64, n)
	copy(rt, s.r)
	p := make([]float64, n)
	pt := make([]float64, n)
	q := make([]float64, n)
	qt := make([]float64, n)

	var rho, rhoPrev float64
	rnorm := vec.Norm(s.r)
	for k := 0; k < maxIter; k++ {
		// 1) ρ = r̃·r; a vanished ρ leaves β undefined next round.
		var err error
		rho, err = vec.Dot(rt, s.r)
		if err != nil {
			return nil, err
		}
		if math.Abs(rho) < breakdownTol {
			return nil, &BreakdownError{Iteration: k}
		}

		// 2) First round seeds the directions from the residuals;
		//    afterwards β = ρ/ρ₋ extends both.
		if k == 0 {
			copy(p, s.r)
			copy(pt, rt)
		} else {
			beta := rho / rhoPrev
			if err = vec.AddScaledTo(p, s.r, beta, p); err != nil {
				return nil, err
			}
			if err = vec.AddScaledTo(pt, rt, beta, pt); err != nil {
				return nil, err
			}
		}

		// 3) q = A·p ; q̃ = Aᵀ·p̃ (the transpose is applied in place over
		//    the CSR arrays, never materialized).
		if err = m.MulVecTo(q, p); err != nil {
			return nil, err
		}
		if err = m.MulTransVecTo(qt, pt); err != nil {
			return nil, err
		}
		s.matVecs += 2

		// 4) α = ρ / p̃·q; a vanished denominator is the second breakdown.
		den, err := vec.Dot(pt, q)
		if err != nil {
			return nil, err
		}
		if math.Abs(den) < breakdownTol {
			return nil, &BreakdownError{Iteration: k}
		}
		alpha := rho / den

		// 5) x += α·p ; r −= α·q ; r̃ −= α·q̃
		if err = vec.AddScaled(s.x, alpha, p); err != nil {
			return nil, err
		}
		if err = vec.AddScaled(s.r, -alpha, q); err != nil {
			return nil, err
		}
		if err = vec.AddScaled(rt, -alpha, qt); err != nil {
			return nil, err
		}

		// 6) Accept as soon as ‖r‖ drops below the tolerance.
		rnorm = vec.Norm(s.r)
		if rnorm < tol {
			return &Result{X: s.x, Iterations: k + 1, ResidualNorm: rnorm, MatVecs: s.matVecs}, nil
		}

		rhoPrev = rho
	}

	return nil, &NotConvergedError{Iterations: maxIter, ResidualNorm: rnorm}
}
