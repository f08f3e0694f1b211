package argon2

// A from-scratch, keyless BLAKE2b (RFC 7693) producing digests of 1 to 64
// bytes. Argon2id needs exactly two entry points into this primitive —
// hash64 for the fixed 64-byte digest used throughout H' and the internal
// compression chain, and hashVar for the variable-length digest used by
// H' itself when the requested tag is 64 bytes or shorter. There is no
// keyed mode, no salt, and no personalization: section 4.1's parameter
// block only ever varies in its digest-length byte, so initFromLength
// below hard-codes fanout=1, depth=1, key length=0 the way the spec
// describes rather than carrying gtank/blake2's general 64-byte parameter
// block.
//
// Grounded on the RFC 7693 reference algorithm and on the round structure
// of github.com/gtank/blake2's blake2b.go, adapted to the simplified
// keyless parameter block RFC 9106 actually requires.

const (
	blake2bBlockSize = 128
	blake2bRounds    = 12
)

// blake2bIV is the BLAKE2b initialization vector (RFC 7693 section 2.6).
var blake2bIV = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b,
	0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f,
	0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

// blake2bSigma is the message-schedule permutation table. BLAKE2b uses 12
// rounds but only 10 distinct permutations; rounds 10 and 11 repeat the
// schedules of rounds 0 and 1 (RFC 7693 section 2.7).
var blake2bSigma = [10][16]uint8{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{14, 10, 4, 8, 9, 15, 13, 6, 1, 12, 0, 2, 11, 7, 5, 3},
	{11, 8, 12, 0, 5, 2, 15, 13, 10, 14, 3, 6, 7, 1, 9, 4},
	{7, 9, 3, 1, 13, 12, 11, 14, 2, 6, 5, 10, 4, 0, 15, 8},
	{9, 0, 5, 7, 2, 4, 10, 15, 14, 1, 11, 12, 6, 8, 3, 13},
	{2, 12, 6, 10, 0, 11, 8, 3, 4, 13, 7, 5, 15, 14, 1, 9},
	{12, 5, 1, 15, 14, 13, 4, 10, 0, 7, 6, 3, 9, 2, 8, 11},
	{13, 11, 7, 14, 12, 1, 3, 9, 5, 0, 15, 4, 8, 6, 2, 10},
	{6, 15, 14, 9, 11, 3, 0, 8, 12, 2, 13, 7, 1, 4, 10, 5},
	{10, 2, 8, 4, 7, 6, 1, 5, 15, 11, 9, 14, 3, 12, 13, 0},
}

// blake2bDigest is the running state of a keyless BLAKE2b hash. It is
// unexported: the package boundary exposes only the one-shot hash64 and
// hashVar functions (no streaming Write/Sum surface — Non-goals, section
// 1), but BLAKE2b's own block-compression definition still requires a
// buffering Write loop internally for inputs longer than one block.
type blake2bDigest struct {
	h      [8]uint64
	t0, t1 uint64
	f0     uint64
	buf    [blake2bBlockSize]byte
	offset int
	outLen int
}

// newBlake2bDigest initializes state for a keyless digest of outLen bytes,
// 1 <= outLen <= 64, per section 4.1: "Initial state h[0] = IV[0] XOR
// 0x0101_0000 XOR nn, h[1..7] = IV[1..7]".
func newBlake2bDigest(outLen int) *blake2bDigest {
	d := &blake2bDigest{outLen: outLen}
	d.h = blake2bIV
	d.h[0] ^= 0x01010000 ^ uint64(outLen)
	return d
}

// write appends p to the digest, compressing full blocks as they fill.
// The final (possibly short) block is left buffered for finalize.
func (d *blake2bDigest) write(p []byte) {
	for len(p) > 0 {
		if d.offset == blake2bBlockSize {
			d.incrementCounter(blake2bBlockSize)
			d.compress(false)
			d.offset = 0
		}
		n := copy(d.buf[d.offset:], p)
		d.offset += n
		p = p[n:]
	}
}

func (d *blake2bDigest) incrementCounter(n uint64) {
	d.t0 += n
	if d.t0 < n {
		d.t1++
	}
}

// sum finalizes the digest (without mutating d, so it could in principle
// be called more than once) and returns outLen bytes.
func (d *blake2bDigest) sum() []byte {
	final := *d
	for i := final.offset; i < blake2bBlockSize; i++ {
		final.buf[i] = 0
	}
	final.incrementCounter(uint64(final.offset))
	final.f0 = 0xFFFFFFFFFFFFFFFF
	final.compress(true)

	out := make([]byte, final.outLen)
	for i := range out {
		out[i] = byte(final.h[i/8] >> (8 * uint(i%8)))
	}
	return out
}

// compress runs the 12-round BLAKE2b mixing function over the buffered
// block. last selects the finalization flag (already folded into d.f0 by
// the caller; it is accepted here only for documentation of intent).
func (d *blake2bDigest) compress(last bool) {
	var m [16]uint64
	for i := range m {
		m[i] = u64le(d.buf[i*8 : i*8+8])
	}

	v0, v1, v2, v3 := d.h[0], d.h[1], d.h[2], d.h[3]
	v4, v5, v6, v7 := d.h[4], d.h[5], d.h[6], d.h[7]
	v8, v9, v10, v11 := blake2bIV[0], blake2bIV[1], blake2bIV[2], blake2bIV[3]
	v12 := blake2bIV[4] ^ d.t0
	v13 := blake2bIV[5] ^ d.t1
	v14 := blake2bIV[6] ^ d.f0
	v15 := blake2bIV[7] ^ d.f1Value()

	for round := 0; round < blake2bRounds; round++ {
		s := blake2bSigma[round%10]

		v0, v4, v8, v12 = blake2bMix(v0, v4, v8, v12, m[s[0]], m[s[1]])
		v1, v5, v9, v13 = blake2bMix(v1, v5, v9, v13, m[s[2]], m[s[3]])
		v2, v6, v10, v14 = blake2bMix(v2, v6, v10, v14, m[s[4]], m[s[5]])
		v3, v7, v11, v15 = blake2bMix(v3, v7, v11, v15, m[s[6]], m[s[7]])

		v0, v5, v10, v15 = blake2bMix(v0, v5, v10, v15, m[s[8]], m[s[9]])
		v1, v6, v11, v12 = blake2bMix(v1, v6, v11, v12, m[s[10]], m[s[11]])
		v2, v7, v8, v13 = blake2bMix(v2, v7, v8, v13, m[s[12]], m[s[13]])
		v3, v4, v9, v14 = blake2bMix(v3, v4, v9, v14, m[s[14]], m[s[15]])
	}

	d.h[0] ^= v0 ^ v8
	d.h[1] ^= v1 ^ v9
	d.h[2] ^= v2 ^ v10
	d.h[3] ^= v3 ^ v11
	d.h[4] ^= v4 ^ v12
	d.h[5] ^= v5 ^ v13
	d.h[6] ^= v6 ^ v14
	d.h[7] ^= v7 ^ v15
}

// f1Value is always zero: sequential-mode BLAKE2b never sets the
// last-node flag, only the last-block flag f0.
func (d *blake2bDigest) f1Value() uint64 { return 0 }

// blake2bMix is BLAKE2b's G mixing function (RFC 7693 section 3.1),
// distinct from Argon2's fBlaMka-extended GB in compress.go: it has no
// nonlinear multiplication term.
func blake2bMix(a, b, c, d, x, y uint64) (uint64, uint64, uint64, uint64) {
	a = a + b + x
	d = rotr64(d^a, 32)
	c = c + d
	b = rotr64(b^c, 24)
	a = a + b + y
	d = rotr64(d^a, 16)
	c = c + d
	b = rotr64(b^c, 63)
	return a, b, c, d
}

func rotr64(x uint64, n uint) uint64 {
	return (x >> n) | (x << (64 - n))
}

func u64le(b []byte) uint64 {
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

// hash64 computes the full 64-byte keyless BLAKE2b digest of message.
func hash64(message []byte) [64]byte {
	d := newBlake2bDigest(64)
	d.write(message)
	var out [64]byte
	copy(out[:], d.sum())
	return out
}

// hashVar computes a keyless BLAKE2b digest of outLen bytes, 1 <= outLen
// <= 64. Each distinct outLen yields an independent digest because outLen
// is folded into the parameter block before any message bytes are
// processed (section 4.1).
func hashVar(message []byte, outLen int) []byte {
	d := newBlake2bDigest(outLen)
	d.write(message)
	return d.sum()
}
