package catirt

import (
	"gonum.org/v1/gonum/mat"

	"github.com/catirt/catirt/internal/matutil"
)

// FIResult is the result of a Fisher information computation: item-level
// information (N×M), per-person test information (N, the rowwise sum of
// item), and the standard error of measurement sem = 1/√test.
type FIResult struct {
	Item *mat.Dense
	Test *mat.VecDense
	Sem  *mat.VecDense
	Kind FIType
}

func checkFIType(kind FIType, resp mat.Matrix) error {
	if kind != Expected && kind != Observed {
		return newErr(kindBadFIType, "kind=%d", int(kind))
	}
	if kind == Expected && resp != nil {
		return newErr(kindExpectedWithResponses, "expected FI does not accept responses")
	}
	if kind == Observed && resp == nil {
		return newErr(kindObservedWithoutResponses, "observed FI requires responses")
	}
	return nil
}

// FIBRM computes BRM Fisher information. For kind Expected, resp must be
// nil and item_ij = p'_ij²/(p_ij·q_ij). For kind Observed, resp must be
// non-nil and item = -Lder2BRM(resp, theta, params).
func FIBRM(theta mat.Vector, params mat.Matrix, kind FIType, resp mat.Matrix) (*FIResult, error) {
	if err := checkFIType(kind, resp); err != nil {
		return nil, err
	}

	n := theta.Len()
	m, _ := params.Dims()

	var item *mat.Dense
	if kind == Expected {
		p := PBRM(theta, params)
		pd1 := Pder1BRM(theta, params)
		item = mat.NewDense(n, m, nil)
		for i := 0; i < n; i++ {
			for j := 0; j < m; j++ {
				pp := p.At(i, j)
				q := 1 - pp
				d := pd1.At(i, j)
				item.Set(i, j, d*d/(pp*q))
			}
		}
	} else {
		l2 := Lder2BRM(resp, theta, params)
		item = mat.NewDense(n, m, nil)
		item.Scale(-1, l2)
	}

	test, sem := matutil.RowSumsAndSem(item)
	return &FIResult{Item: item, Test: test, Sem: sem, Kind: kind}, nil
}

// FIGRM computes GRM Fisher information. For kind Expected, resp must be
// nil and item_ij = Σ_k p'[i·K+k,j]²/p[i·K+k,j]. For kind Observed, resp
// must be non-nil and item = -Lder2GRM(resp, theta, params, numCats).
func FIGRM(theta mat.Vector, params mat.Matrix, kind FIType, resp mat.Matrix, numCats int) (*FIResult, error) {
	if err := checkFIType(kind, resp); err != nil {
		return nil, err
	}

	n := theta.Len()
	m, _ := params.Dims()

	var item *mat.Dense
	if kind == Expected {
		p := PGRM(theta, params, numCats)
		pd1 := Pder1GRM(theta, params, numCats)
		item = mat.NewDense(n, m, nil)
		for i := 0; i < n; i++ {
			for j := 0; j < m; j++ {
				var s float64
				for k := 0; k < numCats; k++ {
					row := i*numCats + k
					d := pd1.At(row, j)
					s += d * d / p.At(row, j)
				}
				item.Set(i, j, s)
			}
		}
	} else {
		l2, err := Lder2GRM(resp, theta, params, numCats)
		if err != nil {
			return nil, err
		}
		item = mat.NewDense(n, m, nil)
		item.Scale(-1, l2)
	}

	test, sem := matutil.RowSumsAndSem(item)
	return &FIResult{Item: item, Test: test, Sem: sem, Kind: kind}, nil
}
