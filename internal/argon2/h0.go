package argon2

import "encoding/binary"

// initialHash computes H0, the 64-byte seed described in section 4.3:
//
//	H0 = BLAKE2b-64( LE32(p) || LE32(tau) || LE32(m) || LE32(t) || LE32(v) ||
//	                 LE32(y) || LE32(|P|) || P || LE32(|S|) || S ||
//	                 LE32(|K|) || K || LE32(|X|) || X )
//
// Length fields are written even for empty K and X (section 4.3: "Length
// fields are included even when the corresponding field is empty"). The
// assembled preimage is zeroized before returning, per section 4.9.
//
// Grounded on internal/argon2d/argon2d.go's initialHash, generalized from
// RandomX's fixed (lanes=1, type=Argon2d) parameterization to the full
// Argon2id parameter set (type=2, version 0x13, optional secret/data).
func initialHash(lanes, tagLength, memory, timeCost uint32, password, salt, secret, data []byte) [64]byte {
	size := 7*4 + len(password) + 4 + len(salt) + 4 + len(secret) + 4 + len(data) + 4
	preimage := make([]byte, size)
	defer zeroize(preimage)

	off := 0
	putU32 := func(v uint32) {
		binary.LittleEndian.PutUint32(preimage[off:], v)
		off += 4
	}
	putField := func(b []byte) {
		putU32(uint32(len(b)))
		off += copy(preimage[off:], b)
	}

	putU32(lanes)
	putU32(tagLength)
	putU32(memory)
	putU32(timeCost)
	putU32(argon2Version)
	putU32(argon2TypeID)
	putField(password)
	putField(salt)
	putField(secret)
	putField(data)

	return hash64(preimage[:off])
}

const (
	// argon2Version is the RFC 9106 version byte (0x13 = 19 decimal).
	argon2Version = 0x13
	// argon2TypeID is the Argon2 "type" discriminator; 2 selects Argon2id
	// (0 is Argon2d, 1 is Argon2i — neither is exposed by this package,
	// per spec.md's Non-goals: "no runtime-pluggable hash algorithm").
	argon2TypeID = 2
)
