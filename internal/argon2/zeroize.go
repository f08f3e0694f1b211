package argon2

import "runtime"

// zeroize overwrites data with zero bytes such that the store cannot be
// optimized away as dead code. Go's compiler is conservative about eliding
// writes through a slice that escapes to another function, but a plain
// `for i := range data { data[i] = 0 }` on a buffer whose last use is the
// zeroing loop itself is exactly the pattern an aggressive inliner could, in
// principle, discard. runtime.KeepAlive pins the backing array as live
// until after the loop completes, which is the idiomatic Go equivalent of
// the volatile-store / memory-fence primitives RFC 9106 implementations in
// other languages rely on (spec section 4.9, section 9 "Zeroization").
//
// Applied to every transient secret buffer described in section 4.9: the H0
// preimage and digest, the scratch blocks used inside H', InitialBlocks, G,
// and Index, the final XORed block C and its byte serialization, and the
// entire memory matrix before it is released.
func zeroize(data []byte) {
	if len(data) == 0 {
		return
	}
	for i := range data {
		data[i] = 0
	}
	runtime.KeepAlive(data)
}

// zeroizeBlock overwrites a single Block in place with the same guarantee
// as zeroize.
func zeroizeBlock(b *Block) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
