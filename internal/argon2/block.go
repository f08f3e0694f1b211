// Package argon2 implements the from-scratch Argon2id memory-hard key
// derivation function described by RFC 9106 (version 0x13). It covers the
// keyless BLAKE2b primitive, the H' variable-length expansion, the H0 seed,
// per-lane initial block generation, the G compression function and its
// fBlaMka quarter-round, the hybrid Argon2i/Argon2d reference-index
// selection, the pass/slice/lane/column fill state machine, and the final
// cross-lane XOR. The intermediate secret buffers this package allocates
// are zeroized before their storage is released (see zeroize.go); the
// running state and output slices inside blake2b.go's hashing functions are
// the exception and are not wiped.
//
// This package has no public API of its own — callers use the argon2id
// package at the repository root, which validates parameters and calls
// this package's Derive from DeriveEx.
package argon2

import (
	"encoding/binary"
)

// Block size constants from the Argon2 specification (RFC 9106 section 3.2).
const (
	// BlockSize is the size of an Argon2 memory block in bytes.
	BlockSize = 1024

	// QWordsInBlock is the number of 64-bit words in a block (1024 / 8).
	QWordsInBlock = 128
)

// Block is a 1024-byte Argon2 memory block, held as 128 little-endian
// uint64 words. All compression, XOR, and addressing operations work on
// this representation directly; conversion to and from raw bytes only
// happens at the H0/InitialBlocks/Finalize boundaries.
type Block [QWordsInBlock]uint64

// zeroBlock is the all-zero constant block used as the first operand of G
// when generating Argon2i address blocks (spec section 3 "Address
// generator state").
var zeroBlock Block

// XOR performs an in-place word-wise XOR of this block with other.
func (b *Block) XOR(other *Block) {
	for i := range b {
		b[i] ^= other[i]
	}
}

// XORBlocks sets b to the word-wise XOR of x and y. b may alias neither
// x nor y.
func (b *Block) XORBlocks(x, y *Block) {
	for i := range b {
		b[i] = x[i] ^ y[i]
	}
}

// Copy overwrites b with the contents of other.
func (b *Block) Copy(other *Block) {
	copy(b[:], other[:])
}

// Zero overwrites every word of the block with zero. Used on all paths
// described in section 4.9 — this call alone does not guarantee the
// compiler won't elide the stores for a block that is never read again;
// callers that need that guarantee go through zeroizeBlock instead (see
// zeroize.go), which this method defers to.
func (b *Block) Zero() {
	zeroizeBlock(b)
}

// FromBytes loads a block from exactly BlockSize bytes, interpreted as 128
// little-endian uint64 words (RFC 9106 section 3.2).
func (b *Block) FromBytes(data []byte) error {
	if len(data) != BlockSize {
		return &InvalidBlockSizeError{got: len(data), want: BlockSize}
	}
	for i := 0; i < QWordsInBlock; i++ {
		b[i] = binary.LittleEndian.Uint64(data[i*8 : (i+1)*8])
	}
	return nil
}

// ToBytes serializes the block to a new BlockSize-byte little-endian
// buffer.
func (b *Block) ToBytes() []byte {
	data := make([]byte, BlockSize)
	for i := 0; i < QWordsInBlock; i++ {
		binary.LittleEndian.PutUint64(data[i*8:(i+1)*8], b[i])
	}
	return data
}

// InvalidBlockSizeError is returned when a byte slice handed to FromBytes
// is not exactly BlockSize bytes long.
type InvalidBlockSizeError struct {
	got  int
	want int
}

func (e *InvalidBlockSizeError) Error() string {
	return "argon2: invalid block size: got " + itoa(e.got) + " bytes, want " + itoa(e.want) + " bytes"
}

// itoa avoids pulling in fmt for a single error-formatting call site.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	negative := n < 0
	if negative {
		n = -n
	}
	buf := make([]byte, 0, 12)
	for n > 0 {
		buf = append(buf, byte('0'+n%10))
		n /= 10
	}
	if negative {
		buf = append(buf, '-')
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// matrix is the Argon2 memory matrix M: p lanes of q blocks each, stored
// as one contiguous slice with lane-major, column-minor addressing. It is
// exclusively owned by a single Derive invocation (section 3, "Ownership").
type matrix struct {
	blocks     []Block
	lanes      uint32
	laneLength uint32 // q
}

// newMatrix allocates a zeroed memory matrix of lanes*laneLength blocks.
func newMatrix(lanes, laneLength uint32) *matrix {
	return &matrix{
		blocks:     make([]Block, uint64(lanes)*uint64(laneLength)),
		lanes:      lanes,
		laneLength: laneLength,
	}
}

// at returns a pointer to the block at (lane, column).
func (m *matrix) at(lane, column uint32) *Block {
	return &m.blocks[uint64(lane)*uint64(m.laneLength)+uint64(column)]
}

// zeroize overwrites every block in the matrix with zero (section 4.9:
// "the entire memory matrix M before its storage is released").
func (m *matrix) zeroize() {
	for i := range m.blocks {
		zeroizeBlock(&m.blocks[i])
	}
}
