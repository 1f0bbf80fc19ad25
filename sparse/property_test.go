package sparse_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/lvlinalg/sparse"
)

// Property shapes: 4×5 keeps runs fast while covering rectangular layouts,
// empty rows and dense-ish rows alike.
const (
	propRows = 4
	propCols = 5
)

// genEntries mixes exact zeros with bounded floats so generated matrices are
// genuinely sparse.
func genEntries() gopter.Gen {
	return gen.SliceOfN(propRows*propCols, gen.OneGenOf(
		gen.Const(0.0),
		gen.Float64Range(-10, 10),
	))
}

// reshape turns a flat entry slice into propRows×propCols dense rows.
func reshape(flat []float64) [][]float64 {
	dense := make([][]float64, propRows)
	for r := range dense {
		dense[r] = flat[r*propCols : (r+1)*propCols]
	}

	return dense
}

// denseMulVec is the oracle product, computed without any CSR machinery.
func denseMulVec(dense [][]float64, x []float64) []float64 {
	y := make([]float64, len(dense))
	for r, row := range dense {
		for c, v := range row {
			y[r] += v * x[c]
		}
	}

	return y
}

func equalDense(a, b [][]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for r := range a {
		if len(a[r]) != len(b[r]) {
			return false
		}
		for c := range a[r] {
			if a[r][c] != b[r][c] {
				return false
			}
		}
	}

	return true
}

func TestMatrixProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("CSR multiply agrees with the dense product", prop.ForAll(
		func(flat, x []float64) bool {
			dense := reshape(flat)
			m, err := sparse.NewFromDense(dense)
			if err != nil {
				return false
			}
			got, err := m.MulVec(x)
			if err != nil {
				return false
			}
			want := denseMulVec(dense, x)
			for i := range want {
				if math.Abs(want[i]-got[i]) > 1e-9 {
					return false
				}
			}

			return true
		},
		genEntries(),
		gen.SliceOfN(propCols, gen.Float64Range(-10, 10)),
	))

	properties.Property("transpose is an involution on the entry set", prop.ForAll(
		func(flat []float64) bool {
			m, err := sparse.NewFromDense(reshape(flat))
			if err != nil {
				return false
			}
			back := m.Transposed().Transposed()

			return back.Rows() == m.Rows() &&
				back.Cols() == m.Cols() &&
				back.NonZeros() == m.NonZeros() &&
				equalDense(m.ToDense(), back.ToDense())
		},
		genEntries(),
	))

	properties.Property("sparsity complements stored-entry density", prop.ForAll(
		func(flat []float64) bool {
			m, err := sparse.NewFromDense(reshape(flat))
			if err != nil {
				return false
			}
			want := 1 - float64(m.NonZeros())/float64(propRows*propCols)

			return math.Abs(m.Sparsity()-want) < 1e-15
		},
		genEntries(),
	))

	properties.Property("submatrix equals the dense slice", prop.ForAll(
		func(flat []float64, r0, r1, c0, c1 int) bool {
			if r0 > r1 {
				r0, r1 = r1, r0
			}
			if c0 > c1 {
				c0, c1 = c1, c0
			}
			dense := reshape(flat)
			m, err := sparse.NewFromDense(dense)
			if err != nil {
				return false
			}
			sub, err := m.Submatrix(r0, r1, c0, c1)
			if err != nil {
				return false
			}
			want := make([][]float64, 0, r1-r0)
			for r := r0; r < r1; r++ {
				want = append(want, dense[r][c0:c1])
			}
			if len(want) == 0 {
				return sub.Rows() == 0 && sub.Cols() == c1-c0
			}

			return equalDense(want, sub.ToDense())
		},
		genEntries(),
		gen.IntRange(0, propRows),
		gen.IntRange(0, propRows),
		gen.IntRange(0, propCols),
		gen.IntRange(0, propCols),
	))

	properties.Property("duplicate triplets sum in input order", prop.ForAll(
		func(dups []float64) bool {
			trips := make([]sparse.Triplet, len(dups))
			var want float64
			for i, v := range dups {
				trips[i] = sparse.Triplet{Row: 0, Col: 0, Value: v}
				want += v
			}
			m, err := sparse.NewFromTriplets(1, 1, trips)
			if err != nil {
				return false
			}
			got, err := m.At(0, 0)
			if err != nil {
				return false
			}
			if len(dups) == 0 {
				return m.NonZeros() == 0 && got == 0
			}

			return m.NonZeros() == 1 && got == want
		},
		gen.SliceOf(gen.Float64Range(-100, 100)),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
