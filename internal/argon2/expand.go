package argon2

import "encoding/binary"

// expandHash is H', the Argon2 variable-length hash (section 4.2), built
// on the fixed-output keyless BLAKE2b of blake2b.go. outLen must be in
// 1..4096 — the caller (initial.go, finalize.go) is responsible for
// that range check; this function trusts its inputs because it is never
// reached from outside the package with an out-of-range length.
//
// Grounded on internal/argon2d/blake2b_long.go's Blake2bLong, corrected to
// use the fixed 64-byte BLAKE2b (not the variable-length one) for every
// link of the V1, V2, ... chain, and to require the mandatory 32-byte step
// between successive outputs (section 4.2, "the 32-byte step size is
// mandatory").
func expandHash(input []byte, outLen int) []byte {
	lenPrefix := make([]byte, 4)
	binary.LittleEndian.PutUint32(lenPrefix, uint32(outLen))
	defer zeroize(lenPrefix)

	if outLen <= 64 {
		prefixed := make([]byte, 4+len(input))
		copy(prefixed, lenPrefix)
		copy(prefixed[4:], input)
		defer zeroize(prefixed)
		return hashVar(prefixed, outLen)
	}

	out := make([]byte, outLen)

	prefixed := make([]byte, 4+len(input))
	copy(prefixed, lenPrefix)
	copy(prefixed[4:], input)
	v := hash64(prefixed)
	zeroize(prefixed)

	copied := copy(out, v[:32])
	for copied < outLen {
		v = hash64(v[:])
		remaining := outLen - copied
		if remaining > 64 {
			copy(out[copied:], v[:32])
			copied += 32
		} else {
			copy(out[copied:], v[:remaining])
			copied += remaining
		}
	}
	zeroize(v[:])

	return out
}
