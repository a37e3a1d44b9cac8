package catirt

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// SelPrm gathers, from a stacked (·K)×J polytomous value matrix v, the
// slice of values corresponding to each person's observed category in u
// (N×J, category codes 1..K, NaN for omitted).
//
// Output is T×J where T = N, EXCEPT when N==1: the source this package
// ports preserves a convention that a single-person call instead treats
// v's rows as indexed by item block count M = (v's row count)/K, yielding
// T=M. Every call site in this package only ever passes v stacked N·K
// rows, so M==N whenever this asymmetry could matter and it is inert in
// practice — see DESIGN.md. It is kept here, rather than silently
// resolved, so a caller porting reference numbers gets bit-identical
// output.
//
// For output row t, person index is i = t mod N. If u(i,j) is NaN, or
// casts to an integer outside [1,K], the result is NaN; otherwise it is
// v(t·K+(cat-1), j).
func SelPrm(v, u mat.Matrix, numCats int) (*mat.Dense, error) {
	vr, vc := v.Dims()
	n, uc := u.Dims()

	if n == 0 || uc == 0 || vr == 0 {
		return nil, newErr(kindEmptyInput, "N=%d, J=%d, V rows=%d", n, uc, vr)
	}
	if numCats < 2 {
		return nil, newErr(kindBadCategoryCount, "K=%d", numCats)
	}
	if uc != vc {
		return nil, newErr(kindDimensionMismatch, "u is %d×%d, V is %d×%d", n, uc, vr, vc)
	}
	if vr%numCats != 0 {
		return nil, newErr(kindDimensionMismatch, "V rows=%d not divisible by K=%d", vr, numCats)
	}
	if vr%n != 0 {
		return nil, newErr(kindDimensionMismatch, "V rows=%d not divisible by N=%d", vr, n)
	}

	t := n
	if n == 1 {
		t = vr / numCats
	}

	out := mat.NewDense(t, uc, nil)
	for row := 0; row < t; row++ {
		i := row % n
		for j := 0; j < uc; j++ {
			val := math.NaN()
			raw := u.At(i, j)
			if !math.IsNaN(raw) {
				cat := int(raw)
				if cat >= 1 && cat <= numCats {
					val = v.At(row*numCats+(cat-1), j)
				}
			}
			out.Set(row, j, val)
		}
	}
	return out, nil
}
