package catirt

import "gonum.org/v1/gonum/mat"

// cumTerms holds the K+1 "cumulative" logistic terms P*_0..P*_K (and their
// first two derivatives w.r.t. theta) used to build one person/item's GRM
// category-probability block. P*_0 is pinned to 1 (0 for its derivatives)
// and P*_K to 0, matching spec's boundary convention; interior terms are
// the logistic curve at the item's k-th threshold.
func cumTerms(theta, a float64, thresholds []float64) (pstar, pd1, pd2 []float64) {
	k := len(thresholds) + 1
	pstar = make([]float64, k+1)
	pd1 = make([]float64, k+1)
	pd2 = make([]float64, k+1)

	pstar[0] = 1
	for m := 1; m < k; m++ {
		z := a * (theta - thresholds[m-1])
		p := sigma(z)
		pstar[m] = p
		pd1[m] = a * sigma1(z)
		pd2[m] = a * a * p * (1 - p) * (1 - 2*p)
	}
	// pstar[k], pd1[k], pd2[k] stay at their zero values.
	return pstar, pd1, pd2
}

// thresholdRow extracts item j's K-1 thresholds (params columns 1..K-1)
// from an M×K GRM parameter matrix.
func thresholdRow(params mat.Matrix, j, numCats int) []float64 {
	th := make([]float64, numCats-1)
	for k := 1; k < numCats; k++ {
		th[k-1] = params.At(j, k)
	}
	return th
}

// grmStacked builds the (N·K)×M stacked GRM matrix (probabilities, first
// derivatives, or second derivatives, selected by which) for theta (length
// N) and params (M×K: column 0 discrimination, columns 1..K-1
// thresholds).
func grmStacked(theta mat.Vector, params mat.Matrix, numCats int, which int) *mat.Dense {
	n := theta.Len()
	m, _ := params.Dims()
	out := mat.NewDense(n*numCats, m, nil)
	for j := 0; j < m; j++ {
		a := params.At(j, 0)
		th := thresholdRow(params, j, numCats)
		for i := 0; i < n; i++ {
			pstar, pd1, pd2 := cumTerms(theta.AtVec(i), a, th)
			var terms []float64
			switch which {
			case 0:
				terms = pstar
			case 1:
				terms = pd1
			default:
				terms = pd2
			}
			for slot := 0; slot < numCats; slot++ {
				out.Set(i*numCats+slot, j, terms[slot]-terms[slot+1])
			}
		}
	}
	return out
}

// PGRM computes the graded-response category probability matrix, stacked
// (N·K)×M: rows [i·K, i·K+K) hold person i's K category probabilities for
// each item. Each such K-row block sums to 1 by construction.
func PGRM(theta mat.Vector, params mat.Matrix, numCats int) *mat.Dense {
	return grmStacked(theta, params, numCats, 0)
}

// Pder1GRM computes the first derivative of PGRM w.r.t. theta, in the same
// stacked (N·K)×M layout. Each K-row block sums to 0.
func Pder1GRM(theta mat.Vector, params mat.Matrix, numCats int) *mat.Dense {
	return grmStacked(theta, params, numCats, 1)
}

// Pder2GRM computes the second derivative of PGRM w.r.t. theta, in the
// same stacked (N·K)×M layout. Each K-row block sums to 0.
func Pder2GRM(theta mat.Vector, params mat.Matrix, numCats int) *mat.Dense {
	return grmStacked(theta, params, numCats, 2)
}
