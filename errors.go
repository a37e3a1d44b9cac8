package catirt

import "fmt"

// Kind distinguishes the class of a validation failure reported by this
// package. Callers should test for a specific kind with errors.Is against
// the exported sentinels below (DimensionMismatch, BadRange, and so on),
// not by inspecting Error's message text.
type Kind int

// Error kinds returned by catirt's public entry points. Internal kernels
// assume their preconditions and do not re-validate; every check happens
// once, at the outermost call (FI, SelPrm, wle.Estimate).
const (
	_ Kind = iota
	kindDimensionMismatch
	kindBadCategoryCount
	kindEmptyInput
	kindNonFiniteResponses
	kindNonFiniteParams
	kindBadRange
	kindBadFIType
	kindExpectedWithResponses
	kindObservedWithoutResponses
)

func (k Kind) String() string {
	switch k {
	case kindDimensionMismatch:
		return "dimension mismatch"
	case kindBadCategoryCount:
		return "bad category count"
	case kindEmptyInput:
		return "empty input"
	case kindNonFiniteResponses:
		return "non-finite responses"
	case kindNonFiniteParams:
		return "non-finite params"
	case kindBadRange:
		return "bad range"
	case kindBadFIType:
		return "bad FI type"
	case kindExpectedWithResponses:
		return "expected FI requested with non-empty responses"
	case kindObservedWithoutResponses:
		return "observed FI requested without responses"
	default:
		return "unknown error kind"
	}
}

// Error is the error type returned by every validating entry point in
// catirt. Kind identifies the failure class; Msg carries the offending
// shapes or values for diagnostics.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return "catirt: " + e.Kind.String()
	}
	return fmt.Sprintf("catirt: %s: %s", e.Kind, e.Msg)
}

// Is reports whether target is a sentinel of the same Kind, so callers can
// write errors.Is(err, catirt.DimensionMismatch).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newErr(k Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// Errorf builds an *Error carrying sentinel's Kind with a formatted
// message, for use by other packages in this module (e.g. wle) that need
// to report one of the sentinel kinds above with call-site-specific
// context.
func Errorf(sentinel *Error, format string, args ...interface{}) *Error {
	return &Error{Kind: sentinel.Kind, Msg: fmt.Sprintf(format, args...)}
}

// Sentinel errors for use with errors.Is. These carry no message and exist
// only to be compared against by Kind; the actual errors returned by this
// package carry contextual messages but compare equal under errors.Is.
var (
	DimensionMismatch        = &Error{Kind: kindDimensionMismatch}
	BadCategoryCount         = &Error{Kind: kindBadCategoryCount}
	EmptyInput               = &Error{Kind: kindEmptyInput}
	NonFiniteResponses       = &Error{Kind: kindNonFiniteResponses}
	NonFiniteParams          = &Error{Kind: kindNonFiniteParams}
	BadRange                 = &Error{Kind: kindBadRange}
	BadFIType                = &Error{Kind: kindBadFIType}
	ExpectedWithResponses    = &Error{Kind: kindExpectedWithResponses}
	ObservedWithoutResponses = &Error{Kind: kindObservedWithoutResponses}
)
