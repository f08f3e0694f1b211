package argon2

// G is the Argon2 block compression function (section 4.5):
//
//	G(X, Y) = P(X XOR Y) XOR X XOR Y
//
// computed by XORing the two input blocks, applying the permutation P
// row-wise then column-wise over the result, and feeding the original XOR
// back in. dst may alias neither x nor y; it may alias the block that
// will later be XORed in by the caller for pass > 0 (fill.go handles that
// XOR itself, after this function returns).
//
// Grounded on internal/argon2d/compression.go and internal/argon2d/g.go,
// corrected to perform both the row permutation AND the missing column
// permutation the teacher's applyBlake2bRound only approximated (it called
// the row step eight times instead of eight row + eight column
// invocations), using the column index pattern RFC 9106 section 3.4 and
// the reference implementation define: column i takes the two words at
// offsets (2i, 2i+1) from each of the 8 sixteen-word rows.
func g(dst, x, y *Block) {
	var r Block
	r.XORBlocks(x, y)

	q := r // Q: the pre-permutation XOR, fed forward at the end.

	permute(&r)

	dst.XORBlocks(&r, &q)
}

// permute applies P — eight row-wise invocations of the round function
// followed by eight column-wise invocations — to the 128-word block in
// place (section 4.5, section 4.1's G-round structure reused as the
// building block, but without BLAKE2b's message injection: P has no
// message words, only the four-word-group quarter-round GB).
func permute(r *Block) {
	for row := 0; row < 8; row++ {
		base := row * 16
		round(
			&r[base], &r[base+1], &r[base+2], &r[base+3],
			&r[base+4], &r[base+5], &r[base+6], &r[base+7],
			&r[base+8], &r[base+9], &r[base+10], &r[base+11],
			&r[base+12], &r[base+13], &r[base+14], &r[base+15],
		)
	}

	for col := 0; col < 8; col++ {
		c := col * 2
		round(
			&r[c], &r[c+1], &r[c+16], &r[c+17],
			&r[c+32], &r[c+33], &r[c+48], &r[c+49],
			&r[c+64], &r[c+65], &r[c+80], &r[c+81],
			&r[c+96], &r[c+97], &r[c+112], &r[c+113],
		)
	}
}

// round applies the four column quarter-rounds followed by the four
// diagonal quarter-rounds of one 16-word BLAKE2b-style group (section
// 4.5's description of P's internal structure).
func round(v0, v1, v2, v3, v4, v5, v6, v7, v8, v9, v10, v11, v12, v13, v14, v15 *uint64) {
	*v0, *v4, *v8, *v12 = gb(*v0, *v4, *v8, *v12)
	*v1, *v5, *v9, *v13 = gb(*v1, *v5, *v9, *v13)
	*v2, *v6, *v10, *v14 = gb(*v2, *v6, *v10, *v14)
	*v3, *v7, *v11, *v15 = gb(*v3, *v7, *v11, *v15)

	*v0, *v5, *v10, *v15 = gb(*v0, *v5, *v10, *v15)
	*v1, *v6, *v11, *v12 = gb(*v1, *v6, *v11, *v12)
	*v2, *v7, *v8, *v13 = gb(*v2, *v7, *v8, *v13)
	*v3, *v4, *v9, *v14 = gb(*v3, *v4, *v9, *v14)
}

// gb is Argon2's quarter-round (section 4.5): BLAKE2b's G extended with
// the fBlaMka nonlinear term 2*uint32(a)*uint32(b), which keeps an
// all-zero state from propagating through the compression function the
// way plain BLAKE2b mixing would. All arithmetic wraps modulo 2^64 by
// Go's defined unsigned-integer semantics; no overflow check is needed
// because uint32(a)*uint32(b) always fits in 64 bits before doubling.
func gb(a, b, c, d uint64) (uint64, uint64, uint64, uint64) {
	a = a + b + 2*uint64(uint32(a))*uint64(uint32(b))
	d = rotr64(d^a, 32)
	c = c + d + 2*uint64(uint32(c))*uint64(uint32(d))
	b = rotr64(b^c, 24)

	a = a + b + 2*uint64(uint32(a))*uint64(uint32(b))
	d = rotr64(d^a, 16)
	c = c + d + 2*uint64(uint32(c))*uint64(uint32(d))
	b = rotr64(b^c, 63)

	return a, b, c, d
}
