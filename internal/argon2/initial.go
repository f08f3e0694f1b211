package argon2

import "encoding/binary"

// initializeMemory fills the first two blocks of every lane from H0, per
// section 4.4:
//
//	B[l][0] = bytes-to-block( H'( H0 || LE32(0) || LE32(l), 1024 ) )
//	B[l][1] = bytes-to-block( H'( H0 || LE32(1) || LE32(l), 1024 ) )
//
// Grounded on internal/argon2d/argon2d.go's initializeMemory, generalized
// to an arbitrary lane count and routed through the package's own
// expandHash instead of golang.org/x/crypto/blake2b.
func initializeMemory(m *matrix, h0 [64]byte) {
	seed := make([]byte, 64+4+4)
	defer zeroize(seed)
	copy(seed[:64], h0[:])

	for lane := uint32(0); lane < m.lanes; lane++ {
		binary.LittleEndian.PutUint32(seed[68:], lane)

		binary.LittleEndian.PutUint32(seed[64:], 0)
		block0 := expandHash(seed, BlockSize)
		m.at(lane, 0).FromBytes(block0)
		zeroize(block0)

		binary.LittleEndian.PutUint32(seed[64:], 1)
		block1 := expandHash(seed, BlockSize)
		m.at(lane, 1).FromBytes(block1)
		zeroize(block1)
	}
}
