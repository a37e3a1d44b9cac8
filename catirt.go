// Package catirt implements the numerical core of item response theory
// (IRT) based computerized adaptive testing: response probability kernels
// and their analytic derivatives for the dichotomous 3-parameter (BRM) and
// polytomous graded-response (GRM) models, log-likelihood derivatives,
// Fisher information, and a Warm weighted-likelihood (WLE) ability
// estimator.
//
// All public functions are pure: they read dense matrices supplied by the
// caller (gonum.org/v1/gonum/mat types) and return newly allocated results.
// No function retains a reference to its input after returning, and no
// function performs I/O or spawns goroutines, so callers are free to shard
// work across persons externally.
package catirt

// Family selects the item response model a function operates on.
type Family int

// Supported item response families.
const (
	BRM Family = iota // dichotomous 3-parameter logistic
	GRM               // polytomous graded response
)

func (f Family) String() string {
	switch f {
	case BRM:
		return "BRM"
	case GRM:
		return "GRM"
	default:
		return "unknown family"
	}
}

// LderType selects whether a log-likelihood derivative includes Warm's
// weighted-likelihood bias correction.
type LderType int

// Supported log-likelihood derivative types.
const (
	MLE LderType = iota // maximum likelihood, uncorrected
	WLE                 // Warm's weighted likelihood, bias-corrected
)

func (l LderType) String() string {
	switch l {
	case MLE:
		return "MLE"
	case WLE:
		return "WLE"
	default:
		return "unknown lder type"
	}
}

// FIType selects expected or observed Fisher information.
type FIType int

// Supported Fisher information kinds.
const (
	Expected FIType = iota
	Observed
)

func (k FIType) String() string {
	switch k {
	case Expected:
		return "expected"
	case Observed:
		return "observed"
	default:
		return "unknown FI type"
	}
}
