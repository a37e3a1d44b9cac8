package catirt_test

import (
	"testing"

	"github.com/catirt/catirt"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// TestPGRM_S3 pins spec scenario S3: one person, K=4, single item.
func TestPGRM_S3(t *testing.T) {
	theta := mat.NewVecDense(1, []float64{0.5})
	params := mat.NewDense(1, 4, []float64{1.0, -1.0, 0.0, 1.0})

	p := catirt.PGRM(theta, params, 4)

	want := []float64{
		1 - sigmoid(1.5),
		sigmoid(1.5) - sigmoid(0.5),
		sigmoid(0.5) - sigmoid(-0.5),
		sigmoid(-0.5),
	}
	for k := 0; k < 4; k++ {
		if !scalar.EqualWithinAbs(p.At(k, 0), want[k], 1e-9) {
			t.Errorf("slot %d = %v, want %v", k, p.At(k, 0), want[k])
		}
	}
}

// TestPGRM_SlotsSumToOne checks invariant 2 across a grid of persons/items.
func TestPGRM_SlotsSumToOne(t *testing.T) {
	const numCats = 3
	theta := mat.NewVecDense(4, []float64{-2, -0.5, 0.5, 2})
	params := mat.NewDense(3, numCats, []float64{
		1.0, -1.0, 1.0,
		0.7, -0.3, 0.4,
		1.4, 0.2, 0.9,
	})
	p := catirt.PGRM(theta, params, numCats)

	n, m := 4, 3
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			var sum float64
			for k := 0; k < numCats; k++ {
				v := p.At(i*numCats+k, j)
				if v < -1e-12 || v > 1+1e-12 {
					t.Errorf("slot (i=%d,k=%d,j=%d)=%v outside [0,1]", i, k, j, v)
				}
				sum += v
			}
			if !scalar.EqualWithinAbs(sum, 1, 1e-12) {
				t.Errorf("person %d item %d: slots sum to %v, want 1", i, j, sum)
			}
		}
	}
}

// TestGRMDerivatives_SumToZero checks invariant 3.
func TestGRMDerivatives_SumToZero(t *testing.T) {
	const numCats = 4
	theta := mat.NewVecDense(3, []float64{-1, 0, 1.3})
	params := mat.NewDense(2, numCats, []float64{
		1.0, -1.5, 0.0, 1.5,
		0.6, -0.8, 0.1, 1.1,
	})
	pd1 := catirt.Pder1GRM(theta, params, numCats)
	pd2 := catirt.Pder2GRM(theta, params, numCats)

	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			var s1, s2 float64
			for k := 0; k < numCats; k++ {
				s1 += pd1.At(i*numCats+k, j)
				s2 += pd2.At(i*numCats+k, j)
			}
			if !scalar.EqualWithinAbs(s1, 0, 1e-9) {
				t.Errorf("person %d item %d: sum P' = %v, want 0", i, j, s1)
			}
			if !scalar.EqualWithinAbs(s2, 0, 1e-9) {
				t.Errorf("person %d item %d: sum P'' = %v, want 0", i, j, s2)
			}
		}
	}
}

// TestGRMDerivatives_FiniteDifference checks invariants 4 and 5 for GRM.
func TestGRMDerivatives_FiniteDifference(t *testing.T) {
	const numCats = 3
	params := mat.NewDense(2, numCats, []float64{
		1.0, -1.0, 1.0,
		0.7, -0.3, 0.4,
	})
	for _, th := range []float64{-2, -0.4, 0.6, 2.1} {
		for j := 0; j < 2; j++ {
			for k := 0; k < numCats; k++ {
				slot := k
				fP := func(x float64) float64 {
					tv := mat.NewVecDense(1, []float64{x})
					return catirt.PGRM(tv, params, numCats).At(slot, j)
				}
				gotD1 := catirt.Pder1GRM(mat.NewVecDense(1, []float64{th}), params, numCats).At(slot, j)
				wantD1 := fd.Derivative(fP, th, &fd.Settings{Formula: fd.Central, Step: 1e-5})
				if !scalar.EqualWithinAbsOrRel(gotD1, wantD1, 1e-4, 1e-4) {
					t.Errorf("item %d slot %d theta=%v: Pder1=%v fd=%v", j, slot, th, gotD1, wantD1)
				}

				fD1 := func(x float64) float64 {
					tv := mat.NewVecDense(1, []float64{x})
					return catirt.Pder1GRM(tv, params, numCats).At(slot, j)
				}
				gotD2 := catirt.Pder2GRM(mat.NewVecDense(1, []float64{th}), params, numCats).At(slot, j)
				wantD2 := fd.Derivative(fD1, th, &fd.Settings{Formula: fd.Central, Step: 1e-5})
				if !scalar.EqualWithinAbsOrRel(gotD2, wantD2, 1e-3, 1e-3) {
					t.Errorf("item %d slot %d theta=%v: Pder2=%v fd=%v", j, slot, th, gotD2, wantD2)
				}
			}
		}
	}
}
