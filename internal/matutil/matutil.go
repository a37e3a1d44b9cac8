// Package matutil holds the small row/finite/reduction helpers shared by
// catirt's kernels, selector, and estimator: nothing here is specific to
// BRM or GRM. The split mirrors gonum's own separation of generic
// reduction helpers (floats) from the domain packages (stat, distuv) that
// call them.
package matutil

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// AllFinite reports whether every entry of m is finite (neither NaN nor
// ±Inf).
func AllFinite(m mat.Matrix) bool {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}

// BlockSum sums every entry of v's rows [i*numCats, i*numCats+numCats)
// across all columns.
func BlockSum(v *mat.Dense, i, numCats int) float64 {
	_, cols := v.Dims()
	var total float64
	for k := 0; k < numCats; k++ {
		row := i*numCats + k
		for j := 0; j < cols; j++ {
			total += v.At(row, j)
		}
	}
	return total
}

// RowSumsAndSem reduces an N×M item-information matrix to per-row test
// information (the rowwise sum) and sem = 1/√test.
func RowSumsAndSem(item *mat.Dense) (test, sem *mat.VecDense) {
	n, m := item.Dims()
	test = mat.NewVecDense(n, nil)
	sem = mat.NewVecDense(n, nil)
	row := make([]float64, m)
	for i := 0; i < n; i++ {
		mat.Row(row, i, item)
		s := floats.Sum(row)
		test.SetVec(i, s)
		sem.SetVec(i, math.Sqrt(1/s))
	}
	return test, sem
}
