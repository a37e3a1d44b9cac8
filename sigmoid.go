package catirt

import "gonum.org/v1/gonum/stat/distuv"

// stdLogistic is the standard logistic distribution, Mu=0, S=1, whose CDF
// is the canonical sigmoid σ(z) = 1/(1+e⁻ᶻ). Every BRM/GRM kernel routes
// its logistic term through this rather than a hand-rolled
// 1/(1+math.Exp(-z)), so the single σ implementation used throughout the
// package is the one the domain's own statistics library provides.
var stdLogistic = distuv.Logistic{Mu: 0, S: 1}

// sigma is σ(z) = 1/(1+e⁻ᶻ).
func sigma(z float64) float64 {
	return stdLogistic.CDF(z)
}

// sigma1 is σ'(z) = σ(z)(1-σ(z)), the standard logistic density. There is
// no closed-form σ'' on distuv.Logistic, so second derivatives stay
// hand-rolled in brm.go/grm.go.
func sigma1(z float64) float64 {
	return stdLogistic.Prob(z)
}
