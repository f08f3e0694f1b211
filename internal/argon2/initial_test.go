package argon2

import "testing"

func TestInitializeMemoryFillsFirstTwoColumnsPerLane(t *testing.T) {
	const lanes, laneLength = 2, 16
	m := newMatrix(lanes, laneLength)
	h0 := initialHash(lanes, 32, lanes*8, 1, []byte("password"), []byte("somesalt"), nil, nil)

	initializeMemory(m, h0)

	for lane := uint32(0); lane < lanes; lane++ {
		if *m.at(lane, 0) == zeroBlock {
			t.Errorf("lane %d column 0 was not written", lane)
		}
		if *m.at(lane, 1) == zeroBlock {
			t.Errorf("lane %d column 1 was not written", lane)
		}
		if *m.at(lane, 0) == *m.at(lane, 1) {
			t.Errorf("lane %d columns 0 and 1 are identical", lane)
		}
	}
}

func TestInitializeMemoryDiffersAcrossLanes(t *testing.T) {
	const lanes, laneLength = 2, 16
	m := newMatrix(lanes, laneLength)
	h0 := initialHash(lanes, 32, lanes*8, 1, []byte("password"), []byte("somesalt"), nil, nil)

	initializeMemory(m, h0)

	if *m.at(0, 0) == *m.at(1, 0) {
		t.Error("lane 0 and lane 1 got the same column-0 block")
	}
}

func TestInitializeMemoryDeterministic(t *testing.T) {
	const lanes, laneLength = 1, 8
	h0 := initialHash(lanes, 32, 8, 1, []byte("password"), []byte("somesalt"), nil, nil)

	m1 := newMatrix(lanes, laneLength)
	initializeMemory(m1, h0)
	m2 := newMatrix(lanes, laneLength)
	initializeMemory(m2, h0)

	if *m1.at(0, 0) != *m2.at(0, 0) || *m1.at(0, 1) != *m2.at(0, 1) {
		t.Error("initializeMemory is not deterministic for identical H0")
	}
}
