// Package solver provides iterative Krylov-subspace solvers for sparse
// linear systems A·x = b over CSR matrices.
//
// Overview:
//
//   - Solve(m, b, ...Option) is the single entry point. It validates the
//     problem, resolves options against documented defaults and dispatches
//     to the selected method.
//   - MethodCG (default): conjugate gradient, for symmetric
//     positive-definite systems. One multiply by A per iteration.
//   - MethodBiCG: biconjugate gradient, for general square systems. One
//     multiply by A and one by Aᵀ per iteration; the transpose product is
//     computed from the same CSR arrays, never materialized.
//   - Both methods touch the matrix only through matrix-vector products, so
//     an iteration costs O(nnz) plus a handful of O(n) vector updates from
//     the vec package.
//
// Convergence and failure:
//
//   - An iterate is accepted when the absolute residual norm ‖b − A·x‖
//     drops below the tolerance (default 1e-10). Result.Iterations counts
//     completed iterations; 0 means the initial iterate was already good
//     enough.
//   - When the iteration cap (default 2·n) is exhausted, Solve returns a
//     *NotConvergedError carrying the iteration count and last residual
//     norm; no partial solution is handed back.
//   - BiCG stops with a *BreakdownError when a pivot denominator falls
//     below the breakdown tolerance (default ε² for ε = 2⁻⁵³).
//   - Malformed problems and options are rejected up front with
//     ErrInvalidInput or ErrDimensionMismatch. Nothing in this package
//     panics on user input.
//
// Options:
//
//   - WithMethod(MethodCG | MethodBiCG)
//   - WithTolerance(t): absolute residual threshold, t > 0
//   - WithMaxIterations(k): iteration cap, k ≥ 0 (0 means no iterations)
//   - WithInitialGuess(x0): starting iterate instead of the zero vector
//   - WithBreakdownTolerance(t): BiCG pivot threshold, t > 0 and finite
//
// CG on a matrix that is not symmetric positive-definite is not detected on
// the solve path; the recurrence may diverge and end in a NotConvergedError
// whose residual norm can be NaN. Probe offline with
// sparse.Matrix.IsSymmetric, or switch to MethodBiCG.
//
// Thread safety:
//
//   - A sparse.Matrix is immutable and all solver state is call-local, so
//     concurrent Solve calls (same or different matrices) are safe without
//     synchronization.
//   - Solves are deterministic: the same inputs produce bitwise-identical
//     results.
//
// See also:
//
//   - sparse: CSR construction, multiply and transpose kernels.
//   - vec: the dense vector primitives both recurrences are built on.
package solver
