// Package lvlinalg is an in-memory sparse linear-algebra toolkit: compact
// matrix storage for systems dominated by zeros, and Krylov-subspace solvers
// that exploit it.
//
// 🚀 What is lvlinalg?
//
//	A compact, deterministic library that brings together:
//		• Sparse storage: immutable compressed-sparse-row (CSR) matrices
//		• Construction: dense scans, triplet lists, incremental builders
//		• Derived views: transpose, submatrix extraction
//		• Vector kernels: dot, norm, axpy and friends
//		• Iterative solvers: Conjugate Gradient (SPD), BiCG (general)
//		• One facade: Solve with tolerance, iteration cap, initial guess
//
// ✨ Why choose lvlinalg?
//
//   - Predictable numerics – every operation is deterministic, bit-for-bit
//   - Honest failures – typed NotConverged/Breakdown errors, never NaN leaks
//   - Sparse-first – O(nnz) multiply, 99%+ memory savings over dense forms
//   - Concurrency-friendly – immutable matrices, call-local solver state
//
// Everything is organized under four subpackages:
//
//	sparse/ — CSR matrix type, builders, multiply/transpose/submatrix
//	vec/    — float64 slice primitives shared by the solvers
//	solver/ — CG, BiCG and the Solve facade with functional options
//	logger/ — zerolog-backed logging shared across the library
//
// Quick sketch:
//
//	    ⎡ 4 −1  0 ⎤
//	A = ⎢−1  4 −1 ⎥ ,  b = [3 2 3]ᵀ  →  Solve(A, b)  →  x ≈ [1 1 1]ᵀ
//	    ⎣ 0 −1  4 ⎦
//
// Only the non-zero entries of A are stored; the solvers touch nothing else.
//
//	go get github.com/katalvlaran/lvlinalg
package lvlinalg
