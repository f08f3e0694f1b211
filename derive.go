package argon2id

import "github.com/opd-ai/go-argon2id/internal/argon2"

// minSaltLength and maxSaltLength bound the caller-supplied salt, per
// section 6's DeriveEx input ranges.
const (
	minSaltLength = 8
	maxSaltLength = 64
)

// DeriveEx is the literal realization of spec.md section 6's DeriveEx
// operation: password, salt, optional secret key K, and optional
// associated data X, combined with the cost parameters in p, produce a
// tag of exactly p.KeyLength bytes.
//
// On any validation failure the returned tag is nil and err wraps
// ErrInvalidParameter; the internal algorithm itself cannot fail once its
// inputs are validated (section 7: "Internal invariants — treated as
// fatal... not reachable by construction"), so AllocationFailure and
// ErrInternal are never actually returned by this implementation — they
// remain part of the taxonomy for callers that want to branch on them.
func DeriveEx(password, salt, secret, associatedData []byte, p Params) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(password) < 1 {
		return nil, &ParameterError{Field: "password", Reason: "must be at least 1 byte"}
	}
	if len(salt) < minSaltLength || len(salt) > maxSaltLength {
		return nil, &ParameterError{Field: "salt", Reason: "length must be between 8 and 64 bytes"}
	}
	if len(secret) > 64 {
		return nil, &ParameterError{Field: "secret", Reason: "must be at most 64 bytes"}
	}

	memory := adjustedMemory(p.Memory, p.Parallelism)

	tag := argon2.Derive(password, salt, secret, associatedData,
		uint32(p.Parallelism), p.KeyLength, memory, p.Iterations)

	return tag, nil
}

// Derive is a convenience wrapper around DeriveEx with no secret key or
// associated data, in the style of r2unit-openpasswd's Argon2idKey.
func Derive(password, salt []byte, p Params) ([]byte, error) {
	return DeriveEx(password, salt, nil, nil, p)
}
