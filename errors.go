package argon2id

import "errors"

// Sentinel errors identifying the three failure kinds of section 7's
// taxonomy. Every error DeriveEx and Derive return is reachable through
// errors.Is against exactly one of these.
//
// Grounded on the plain errors.New/custom-error-type style used throughout
// the teacher corpus (internal/argon2d/block.go's InvalidBlockSizeError,
// r2unit-openpasswd/pkg/crypto's validation errors) rather than a
// third-party error-wrapping library: the corpus itself never reaches for
// one for this concern, so neither does this package.
var (
	// ErrInvalidParameter is returned when a Params field or an input
	// byte slice falls outside the ranges section 6 allows.
	ErrInvalidParameter = errors.New("argon2id: invalid parameter")

	// ErrAllocationFailure names the failure to provision the memory
	// matrix at the requested cost. DeriveEx never returns it: the matrix
	// is allocated with make, which panics instead of returning an error.
	ErrAllocationFailure = errors.New("argon2id: unable to allocate memory matrix")

	// ErrInternal marks a violated internal invariant. Section 7 notes
	// this is "reserved; not reachable by construction" — it exists so
	// that a future defect fails loudly instead of silently.
	ErrInternal = errors.New("argon2id: internal invariant violation")
)

// ParameterError names the specific field and reason behind an
// ErrInvalidParameter failure.
type ParameterError struct {
	Field  string
	Reason string
}

func (e *ParameterError) Error() string {
	return "argon2id: invalid parameter " + e.Field + ": " + e.Reason
}

// Unwrap lets errors.Is(err, ErrInvalidParameter) succeed for any
// ParameterError.
func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}
