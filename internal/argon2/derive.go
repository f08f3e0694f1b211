package argon2

// Derive runs the complete algorithm (sections 4.3 through 4.8) and returns
// a freshly allocated tag of tagLength bytes. lanes is p; memory is m', the
// memory cost in KiB already adjusted by the caller so that
// memory mod (4*lanes) == 0 (section 3's definition of m'); timeCost is t.
//
// Callers (the argon2id root package) own parameter validation; this
// function trusts its arguments and only orchestrates the leaf pieces in
// dependency order (section 2's "Dependency order: Zeroize; BLAKE2b; H';
// {H0, InitialBlocks, G, Finalize}; Index; Fill; Derive").
func Derive(password, salt, secret, associatedData []byte, lanes, tagLength, memory, timeCost uint32) []byte {
	h0 := initialHash(lanes, tagLength, memory, timeCost, password, salt, secret, associatedData)
	defer zeroize(h0[:])

	laneLength := memory / lanes

	m := newMatrix(lanes, laneLength)
	defer m.zeroize()

	initializeMemory(m, h0)
	fillMemory(m, timeCost)

	return finalize(m, tagLength)
}
