package argon2

// finalize computes the output tag (section 4.8 Finalize):
//
//	C = B[0][q-1] XOR B[1][q-1] XOR ... XOR B[p-1][q-1]
//	tag = H'(C, tagLength)
//
// the XOR of every lane's last block, expanded to tagLength bytes through
// the same variable-length hash used throughout (section 4.2).
//
// Grounded on internal/argon2d/argon2d.go's finalizeHash, generalized from
// the teacher's single-lane case to XOR across all p lanes.
func finalize(m *matrix, tagLength uint32) []byte {
	var c Block
	last := m.laneLength - 1
	for lane := uint32(0); lane < m.lanes; lane++ {
		c.XOR(m.at(lane, last))
	}
	defer zeroizeBlock(&c)

	cBytes := c.ToBytes()
	defer zeroize(cBytes)

	return expandHash(cBytes, int(tagLength))
}
