package catirt

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// PBRM computes the dichotomous 3-parameter (BRM) response probability
// matrix for theta (length N) and params (M×3, columns a, b, c). The
// result is N×M, with entry (i,j) in (c_j, 1):
//
//	P_ij = c_j + (1 - c_j) · σ(a_j(θ_i - b_j))
func PBRM(theta mat.Vector, params mat.Matrix) *mat.Dense {
	n := theta.Len()
	m, _ := params.Dims()
	p := mat.NewDense(n, m, nil)
	for i := 0; i < n; i++ {
		ti := theta.AtVec(i)
		for j := 0; j < m; j++ {
			a, b, c := params.At(j, 0), params.At(j, 1), params.At(j, 2)
			p.Set(i, j, c+(1-c)*sigma(a*(ti-b)))
		}
	}
	return p
}

// Pder1BRM computes the first derivative of PBRM with respect to theta.
// Following the reference's exact e⁻ᶻ parameterization:
//
//	P'_ij = (1 - c_j) · a_j · σ'(a_j(θ_i - b_j))
func Pder1BRM(theta mat.Vector, params mat.Matrix) *mat.Dense {
	n := theta.Len()
	m, _ := params.Dims()
	pd1 := mat.NewDense(n, m, nil)
	for i := 0; i < n; i++ {
		ti := theta.AtVec(i)
		for j := 0; j < m; j++ {
			a, b, c := params.At(j, 0), params.At(j, 1), params.At(j, 2)
			pd1.Set(i, j, (1-c)*a*sigma1(a*(ti-b)))
		}
	}
	return pd1
}

// Pder2BRM computes the second derivative of PBRM with respect to theta.
// It intentionally uses the alternate e⁺ᶻ parameterization the reference
// implementation does rather than differentiating Pder1BRM's e⁻ᶻ form
// again: the exact numerator/denominator cancellation pattern here is
// load-bearing for Lder2BRM and FI's observed-information formula at
// extreme theta, and must not be "simplified" to match Pder1BRM's form.
//
//	e⁺ = exp(a_j(θ_i - b_j));  p⁺ = e⁺/(1+e⁺)
//	rawDer1 = (1 - c_j) · a_j · p⁺ · (1 - p⁺)
//	P''_ij = a_j · (1 - e⁺) · (1 - p⁺) · rawDer1
func Pder2BRM(theta mat.Vector, params mat.Matrix) *mat.Dense {
	n := theta.Len()
	m, _ := params.Dims()
	pd2 := mat.NewDense(n, m, nil)
	for i := 0; i < n; i++ {
		ti := theta.AtVec(i)
		for j := 0; j < m; j++ {
			a, b, c := params.At(j, 0), params.At(j, 1), params.At(j, 2)
			ePlus := math.Exp(a * (ti - b))
			pPlus := ePlus / (1 + ePlus)
			rawDer1 := (1 - c) * a * pPlus * (1 - pPlus)
			pd2.Set(i, j, a*(1-ePlus)*(1-pPlus)*rawDer1)
		}
	}
	return pd2
}
