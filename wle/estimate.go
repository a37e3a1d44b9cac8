// Package wle implements the ability estimator that composes catirt's
// probability kernels, log-likelihood derivatives, Fisher information, and
// the root package's bracketed search into a single per-person maximum
// likelihood / Warm weighted-likelihood estimator — the "driver" in the
// same sense that gonum's optimize.Local is the driver that composes a
// Method with a user Problem.
package wle

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/catirt/catirt"
	"github.com/catirt/catirt/internal/matutil"
	"github.com/catirt/catirt/root"
)

// Result is the outcome of Estimate: per-person ability estimates, the
// observed Fisher information at those estimates, and the corresponding
// standard error of measurement.
type Result struct {
	Theta *mat.VecDense
	Info  *mat.VecDense
	Sem   *mat.VecDense
}

// score evaluates the family-appropriate log-likelihood derivative for a
// single person's response row at a candidate theta.
func score(family catirt.Family, uRow mat.Matrix, theta float64, params mat.Matrix, numCats int, ltype catirt.LderType) float64 {
	tv := mat.NewVecDense(1, []float64{theta})
	switch family {
	case catirt.BRM:
		return catirt.Lder1BRM(uRow, tv, params, ltype).AtVec(0)
	default:
		v, err := catirt.Lder1GRM(uRow, tv, params, numCats, ltype)
		if err != nil {
			// Preconditions on u/params/numCats are validated once in
			// Estimate before any person is scored; a failure here would
			// mean Estimate's validation has a gap, which is a bug in
			// this package, not a reportable runtime condition.
			panic(err)
		}
		return v.AtVec(0)
	}
}

func observedInfo(family catirt.Family, uRow mat.Matrix, theta float64, params mat.Matrix, numCats int) float64 {
	tv := mat.NewVecDense(1, []float64{theta})
	var fi *catirt.FIResult
	var err error
	switch family {
	case catirt.BRM:
		fi, err = catirt.FIBRM(tv, params, catirt.Observed, uRow)
	default:
		fi, err = catirt.FIGRM(tv, params, catirt.Observed, uRow, numCats)
	}
	if err != nil {
		panic(err)
	}
	return fi.Test.AtVec(0)
}

// Estimate computes Warm's weighted-likelihood ability estimate for each
// person (row) in resp against the given item params, searching for the
// score root within rng = [lo, hi] (lo < 0 < hi). numCats is ignored for
// family BRM.
func Estimate(family catirt.Family, resp *mat.Dense, params mat.Matrix, rng [2]float64, numCats int) (*Result, error) {
	n, m := resp.Dims()
	pr, _ := params.Dims()

	if !matutil.AllFinite(resp) {
		return nil, catirt.Errorf(catirt.NonFiniteResponses, "resp contains a non-finite value")
	}
	if !matutil.AllFinite(params) {
		return nil, catirt.Errorf(catirt.NonFiniteParams, "params contains a non-finite value")
	}
	if m != pr {
		return nil, catirt.Errorf(catirt.DimensionMismatch, "resp has %d columns, params has %d rows", m, pr)
	}
	if !(rng[0] < 0 && 0 < rng[1]) {
		return nil, catirt.Errorf(catirt.BadRange, "range must satisfy lo < 0 < hi, got [%v, %v]", rng[0], rng[1])
	}
	if family != catirt.BRM && numCats < 2 {
		return nil, catirt.Errorf(catirt.BadCategoryCount, "numCats must be at least 2, got %d", numCats)
	}

	theta := mat.NewVecDense(n, nil)
	info := mat.NewVecDense(n, nil)
	sem := mat.NewVecDense(n, nil)

	row := make([]float64, m)
	for i := 0; i < n; i++ {
		mat.Row(row, i, resp)
		uRow := mat.NewDense(1, m, append([]float64(nil), row...))

		f := func(th float64) float64 {
			return score(family, uRow, th, params, numCats, catirt.WLE)
		}
		res := root.Zeroin(f, rng[0], rng[1], 0, 0)
		thetaHat := res.Root

		dWLE := score(family, uRow, thetaHat, params, numCats, catirt.WLE)
		dMLE := score(family, uRow, thetaHat, params, numCats, catirt.MLE)
		d := dWLE - dMLE

		if thetaHat < rng[0] {
			thetaHat = rng[0]
		} else if thetaHat > rng[1] {
			thetaHat = rng[1]
		}

		infoVal := observedInfo(family, uRow, thetaHat, params, numCats)
		semVal := math.Sqrt((infoVal + d*d) / (infoVal * infoVal))

		theta.SetVec(i, thetaHat)
		info.SetVec(i, infoVal)
		sem.SetVec(i, semVal)
	}

	return &Result{Theta: theta, Info: info, Sem: sem}, nil
}
