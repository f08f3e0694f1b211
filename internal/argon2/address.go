package argon2

// addressGenerator produces the Argon2i pseudo-random stream used when a
// position is data-independent (section 3 "Address generator state",
// section 4.6). It holds:
//
//   - the input block: word 0 = pass, word 1 = lane, word 2 = slice,
//     word 3 = m' (total memory blocks), word 4 = iterations, word 5 = 2
//     (the Argon2 type constant), word 6 = counter, words 7..127 = 0;
//   - the most recently derived 128-word address block.
//
// A new address block is generated every 128 columns of a segment, and
// once pre-emptively at the very start of the first segment of the first
// pass (section 4.7 fill_segment step 1). Each generation increments the
// counter before recomputing address = G(Zero, G(Zero, input)).
//
// Grounded on the address-block construction sketched by
// other_examples/fd7c4fb6_duggavo-argon3's processSegment (the `in` /
// `addresses` locals and the `in[6]++` counter bump before the double G
// call), adapted into a small stateful type so fill.go can drive the
// "every 128 columns" timing explicitly.
type addressGenerator struct {
	input   Block
	address Block
}

// newAddressGenerator creates the generator for one (pass, lane, slice)
// segment. memBlocks is m' and iterations is t from the parameters
// record.
func newAddressGenerator(pass, lane, slice, memBlocks, iterations uint32) *addressGenerator {
	ag := &addressGenerator{}
	ag.input[0] = uint64(pass)
	ag.input[1] = uint64(lane)
	ag.input[2] = uint64(slice)
	ag.input[3] = uint64(memBlocks)
	ag.input[4] = uint64(iterations)
	ag.input[5] = 2
	return ag
}

// regenerate increments the counter (input word 6) and recomputes the
// 128-word address block.
func (ag *addressGenerator) regenerate() {
	ag.input[6]++
	var inner Block
	g(&inner, &zeroBlock, &ag.input)
	g(&ag.address, &zeroBlock, &inner)
	zeroizeBlock(&inner)
}

// value returns the pseudo-random 64-bit word for column offset idx
// (idx = column mod 128) within the current address block.
func (ag *addressGenerator) value(idx int) uint64 {
	return ag.address[idx]
}

// zero wipes the generator's input and address blocks once the segment
// that owns it is done (section 4.9).
func (ag *addressGenerator) zero() {
	zeroizeBlock(&ag.input)
	zeroizeBlock(&ag.address)
}
