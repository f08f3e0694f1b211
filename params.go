// Package argon2id is a from-scratch, bit-exact implementation of the
// Argon2id password-hashing and key-derivation function as standardized by
// RFC 9106 (version 0x13). It is the only public surface of this module;
// the pass/slice/lane/column fill state machine, the G compression
// function, and the rest of the core algorithm live in internal/argon2 and
// are not importable from outside this module.
package argon2id

// Params bundles Argon2id's cost parameters (RFC 9106 section 3.1, spec
// section 6's DeriveEx inputs m, t, p, and the output length tau).
//
// Grounded on r2unit-openpasswd's Argon2Params and the teacher corpus's
// general "one small config struct, one or two entry functions" shape.
type Params struct {
	// Memory is the memory cost in KiB. It is adjusted down to the
	// nearest multiple of 4*Parallelism before use, with a floor of
	// 8*Parallelism (section 6's "recognized configuration choices").
	Memory uint32

	// Iterations is t, the number of passes over the memory matrix.
	Iterations uint32

	// Parallelism is p, the number of lanes. 1..255 per section 6.
	Parallelism uint8

	// SaltLength is informational only: it documents the salt length
	// this Params value was chosen for, but DeriveEx validates the
	// caller-supplied salt's actual length against section 6's 8..64
	// range, not against this field.
	SaltLength uint32

	// KeyLength is tau, the requested output tag length in bytes.
	KeyLength uint32
}

// DefaultParams returns RFC 9106 section 4's first recommended option: 2
// GiB of memory, a single pass, four lanes. Grounded on r2unit-openpasswd's
// DefaultArgon2Params, adjusted to the RFC's own "recommended" profile
// rather than that application's interactive-login profile (see
// InteractiveParams for that one).
func DefaultParams() Params {
	return Params{
		Memory:      2 * 1024 * 1024, // 2 GiB in KiB
		Iterations:  1,
		Parallelism: 4,
		SaltLength:  16,
		KeyLength:   32,
	}
}

// InteractiveParams returns RFC 9106 section 4's second recommended
// option, suitable for interactive logins where the 2 GiB default would be
// too slow. This is the profile r2unit-openpasswd ships as its own
// default.
func InteractiveParams() Params {
	return Params{
		Memory:      64 * 1024, // 64 MiB in KiB
		Iterations:  3,
		Parallelism: 4,
		SaltLength:  16,
		KeyLength:   32,
	}
}

// SensitiveParams returns a higher-cost profile for protecting especially
// valuable secrets: 1 GiB, four passes, two lanes. These are exactly the
// parameters spec.md section 8's literal test vectors use, so the test
// suite can call this preset by name instead of repeating the numbers.
func SensitiveParams() Params {
	return Params{
		Memory:      1024 * 1024, // 1 GiB in KiB
		Iterations:  4,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32,
	}
}

// Validate checks the cost parameters against section 6's ranges. It does
// not (and cannot) validate the password/salt/secret/associatedData
// lengths DeriveEx is called with — those are checked there, where the
// actual byte slices are in scope.
func (p Params) Validate() error {
	if p.Parallelism < 1 {
		return &ParameterError{Field: "Parallelism", Reason: "must be at least 1"}
	}
	if p.Iterations < 1 {
		return &ParameterError{Field: "Iterations", Reason: "must be at least 1"}
	}
	if p.KeyLength < 4 || p.KeyLength > 4096 {
		return &ParameterError{Field: "KeyLength", Reason: "must be between 4 and 4096 bytes"}
	}
	if p.Memory == 0 {
		return &ParameterError{Field: "Memory", Reason: "must be nonzero"}
	}
	return nil
}

// adjustedMemory computes m' (section 3): m rounded down to a multiple of
// 4*lanes, floored at 8*lanes so every lane's segment is always
// nonempty. This is the "raised to the floor" choice section 8's boundary
// behaviors leave to the implementation; DESIGN.md records the decision.
func adjustedMemory(memory uint32, lanes uint8) uint32 {
	p := uint32(lanes)
	floor := 8 * p
	quantum := 4 * p

	adjusted := memory - memory%quantum
	if adjusted < floor {
		adjusted = floor
	}
	return adjusted
}
