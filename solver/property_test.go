package solver_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/lvlinalg/solver"
	"github.com/katalvlaran/lvlinalg/sparse"
	"github.com/katalvlaran/lvlinalg/vec"
)

// propDim is the dimension of the randomized systems. Diagonal dominance
// with a unit margin keeps every generated matrix nonsingular (SPD in the
// symmetric construction), so both methods are guaranteed a solution to
// find.
const propDim = 6

// setDominantDiagonal overwrites each diagonal entry with 1 plus the
// absolute off-diagonal row sum.
func setDominantDiagonal(dense [][]float64) {
	for i := range dense {
		var sum float64
		for j, v := range dense[i] {
			if j != i {
				sum += math.Abs(v)
			}
		}
		dense[i][i] = 1 + sum
	}
}

// dominantSymmetric builds a dense symmetric diagonally dominant matrix from
// the propDim·(propDim−1)/2 upper-triangle entries.
func dominantSymmetric(off []float64) [][]float64 {
	dense := make([][]float64, propDim)
	for i := range dense {
		dense[i] = make([]float64, propDim)
	}
	k := 0
	for i := 0; i < propDim; i++ {
		for j := i + 1; j < propDim; j++ {
			dense[i][j] = off[k]
			dense[j][i] = off[k]
			k++
		}
	}
	setDominantDiagonal(dense)

	return dense
}

// dominantGeneral builds a dense asymmetric diagonally dominant matrix from
// the propDim·(propDim−1) off-diagonal entries.
func dominantGeneral(off []float64) [][]float64 {
	dense := make([][]float64, propDim)
	for i := range dense {
		dense[i] = make([]float64, propDim)
	}
	k := 0
	for i := 0; i < propDim; i++ {
		for j := 0; j < propDim; j++ {
			if j != i {
				dense[i][j] = off[k]
				k++
			}
		}
	}
	setDominantDiagonal(dense)

	return dense
}

// goodResidual recomputes ‖b − A·x‖ from scratch and accepts it well below
// the generator scale.
func goodResidual(m *sparse.Matrix, b, x []float64) bool {
	ax, err := m.MulVec(x)
	if err != nil {
		return false
	}
	r, err := vec.Sub(b, ax)
	if err != nil {
		return false
	}

	return vec.Norm(r) < 1e-6
}

func TestSolverProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("CG solves diagonally dominant SPD systems", prop.ForAll(
		func(off, b []float64) bool {
			m, err := sparse.NewFromDense(dominantSymmetric(off))
			if err != nil {
				return false
			}
			res, err := solver.Solve(m, b,
				solver.WithTolerance(1e-9),
				solver.WithMaxIterations(100))
			if err != nil {
				return false
			}

			return goodResidual(m, b, res.X)
		},
		gen.SliceOfN(propDim*(propDim-1)/2, gen.Float64Range(-0.5, 0.5)),
		gen.SliceOfN(propDim, gen.Float64Range(-10, 10)),
	))

	properties.Property("BiCG solves diagonally dominant general systems", prop.ForAll(
		func(off, b []float64) bool {
			m, err := sparse.NewFromDense(dominantGeneral(off))
			if err != nil {
				return false
			}
			res, err := solver.Solve(m, b,
				solver.WithMethod(solver.MethodBiCG),
				solver.WithTolerance(1e-9),
				solver.WithMaxIterations(200))
			if err != nil {
				return false
			}

			return goodResidual(m, b, res.X)
		},
		gen.SliceOfN(propDim*(propDim-1), gen.Float64Range(-0.3, 0.3)),
		gen.SliceOfN(propDim, gen.Float64Range(-10, 10)),
	))

	properties.Property("solving the same system twice is bitwise identical", prop.ForAll(
		func(off, b []float64) bool {
			m, err := sparse.NewFromDense(dominantSymmetric(off))
			if err != nil {
				return false
			}
			first, err := solver.Solve(m, b, solver.WithMaxIterations(100))
			if err != nil {
				return false
			}
			second, err := solver.Solve(m, b, solver.WithMaxIterations(100))
			if err != nil {
				return false
			}
			if first.Iterations != second.Iterations || first.ResidualNorm != second.ResidualNorm {
				return false
			}
			for i := range first.X {
				if first.X[i] != second.X[i] {
					return false
				}
			}

			return true
		},
		gen.SliceOfN(propDim*(propDim-1)/2, gen.Float64Range(-0.5, 0.5)),
		gen.SliceOfN(propDim, gen.Float64Range(-10, 10)),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
