package catirt

import (
	"gonum.org/v1/gonum/mat"

	"github.com/catirt/catirt/internal/matutil"
)

// Lder1BRM computes the first derivative of the log-likelihood (the
// score) for each of N persons against M BRM items, optionally applying
// Warm's weighted-likelihood bias correction.
//
//	s_ij = (u_ij - p_ij) · p'_ij / (p_ij·q_ij)
//
// When ltype is WLE, each person's correction term
//
//	I_i = Σ_j p'_ij² / (p_ij·q_ij)
//	H_ij = p'_ij·p''_ij / (p_ij·q_ij) / (2·I_i)
//
// is added to s_ij before summing across items.
func Lder1BRM(u mat.Matrix, theta mat.Vector, params mat.Matrix, ltype LderType) *mat.VecDense {
	n := theta.Len()
	m, _ := params.Dims()

	p := PBRM(theta, params)
	pd1 := Pder1BRM(theta, params)
	pd2 := Pder2BRM(theta, params)

	out := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		var info float64
		s := make([]float64, m)
		h := make([]float64, m)
		for j := 0; j < m; j++ {
			pp, dd := p.At(i, j), pd1.At(i, j)
			q := 1 - pp
			pq := pp * q
			s[j] = (u.At(i, j) - pp) * dd / pq
			if ltype == WLE {
				info += dd * dd / pq
				h[j] = dd * pd2.At(i, j) / pq
			}
		}
		var total float64
		if ltype == WLE {
			for j := 0; j < m; j++ {
				total += s[j] + h[j]/(2*info)
			}
		} else {
			for j := 0; j < m; j++ {
				total += s[j]
			}
		}
		out.SetVec(i, total)
	}
	return out
}

// Lder2BRM computes the second derivative of the log-likelihood per
// person/item for M BRM items:
//
//	u·(-p'²/p² + p''/p) - (1-u)·(p'²/q² + p''/q)
func Lder2BRM(u mat.Matrix, theta mat.Vector, params mat.Matrix) *mat.Dense {
	n := theta.Len()
	m, _ := params.Dims()

	p := PBRM(theta, params)
	pd1 := Pder1BRM(theta, params)
	pd2 := Pder2BRM(theta, params)

	out := mat.NewDense(n, m, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			uu := u.At(i, j)
			pp, dd, d2 := p.At(i, j), pd1.At(i, j), pd2.At(i, j)
			q := 1 - pp
			term1 := -dd*dd/(pp*pp) + d2/pp
			term2 := dd*dd/(q*q) + d2/q
			out.Set(i, j, uu*term1-(1-uu)*term2)
		}
	}
	return out
}

// Lder1GRM computes the first derivative of the log-likelihood (the
// score) for each of N persons against M GRM items, optionally applying
// Warm's weighted-likelihood bias correction.
//
// MLE score per person i is Σ_j SelPrm(p'/p, u, K)[i,j]. For WLE, per
// person:
//
//	I_i = Σ over person i's K-row block of p'²/p
//	H_i = Σ over person i's K-row block of p'·p''/p
//
// and H_i/(2·I_i)/J is added to each item's contribution before the
// per-person row sum — algebraically H_i/(2·I_i) once summed across J
// items, but computed via the broadcast-then-sum the reference uses so
// rounding matches it exactly.
func Lder1GRM(u mat.Matrix, theta mat.Vector, params mat.Matrix, numCats int, ltype LderType) (*mat.VecDense, error) {
	n := theta.Len()
	m, _ := params.Dims()

	p := PGRM(theta, params, numCats)
	pd1 := Pder1GRM(theta, params, numCats)

	ratio := mat.NewDense(n*numCats, m, nil)
	for r := 0; r < n*numCats; r++ {
		for j := 0; j < m; j++ {
			ratio.Set(r, j, pd1.At(r, j)/p.At(r, j))
		}
	}
	mleContrib, err := SelPrm(ratio, u, numCats)
	if err != nil {
		return nil, err
	}

	out := mat.NewVecDense(n, nil)
	if ltype != WLE {
		for i := 0; i < n; i++ {
			var total float64
			for j := 0; j < m; j++ {
				total += mleContrib.At(i, j)
			}
			out.SetVec(i, total)
		}
		return out, nil
	}

	pd2 := Pder2GRM(theta, params, numCats)
	sqRatio := mat.NewDense(n*numCats, m, nil)
	hRatio := mat.NewDense(n*numCats, m, nil)
	for r := 0; r < n*numCats; r++ {
		for j := 0; j < m; j++ {
			sqRatio.Set(r, j, pd1.At(r, j)*pd1.At(r, j)/p.At(r, j))
			hRatio.Set(r, j, pd1.At(r, j)*pd2.At(r, j)/p.At(r, j))
		}
	}

	for i := 0; i < n; i++ {
		info := matutil.BlockSum(sqRatio, i, numCats)
		h := matutil.BlockSum(hRatio, i, numCats)
		correction := h / (2 * info) / float64(m)
		var total float64
		for j := 0; j < m; j++ {
			total += mleContrib.At(i, j) + correction
		}
		out.SetVec(i, total)
	}
	return out, nil
}

// Lder2GRM computes the second derivative of the log-likelihood per
// person/item for M GRM items: L = -p'²/p² + p''/p on the stacked
// (N·K)×M matrix, then SelPrm(L, u, K).
func Lder2GRM(u mat.Matrix, theta mat.Vector, params mat.Matrix, numCats int) (*mat.Dense, error) {
	n := theta.Len()
	m, _ := params.Dims()

	p := PGRM(theta, params, numCats)
	pd1 := Pder1GRM(theta, params, numCats)
	pd2 := Pder2GRM(theta, params, numCats)

	l := mat.NewDense(n*numCats, m, nil)
	for r := 0; r < n*numCats; r++ {
		for j := 0; j < m; j++ {
			pp, dd, d2 := p.At(r, j), pd1.At(r, j), pd2.At(r, j)
			l.Set(r, j, -dd*dd/(pp*pp)+d2/pp)
		}
	}
	return SelPrm(l, u, numCats)
}
