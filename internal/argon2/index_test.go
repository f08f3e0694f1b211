package argon2

import "testing"

func TestIsDataIndependent(t *testing.T) {
	tests := []struct {
		pass, slice uint32
		want        bool
	}{
		{0, 0, true},
		{0, 1, true},
		{0, 2, false},
		{0, 3, false},
		{1, 0, false},
		{1, 1, false},
	}
	for _, tt := range tests {
		pos := position{pass: tt.pass, slice: tt.slice}
		if got := pos.isDataIndependent(); got != tt.want {
			t.Errorf("isDataIndependent(pass=%d, slice=%d) = %v, want %v", tt.pass, tt.slice, got, tt.want)
		}
	}
}

// computeReference must always return an in-bounds index that is never
// the position currently being written (spec section 8's ref-selection
// invariant: "0 <= ref_index < q, and ref_index != j when ref_lane = l").
func TestComputeReferenceStaysInBoundsAndNeverSelf(t *testing.T) {
	const lanes, laneLength, segmentLength = 4, 64, 16

	for pass := uint32(0); pass < 2; pass++ {
		for slice := uint32(0); slice < 4; slice++ {
			for lane := uint32(0); lane < lanes; lane++ {
				start := uint32(0)
				if pass == 0 && slice == 0 {
					start = 2
				}
				for c := start; c < segmentLength; c++ {
					j := slice*segmentLength + c
					pos := position{
						pass: pass, slice: slice, lane: lane, index: c,
						segmentLength: segmentLength, laneLength: laneLength, lanes: lanes,
					}

					for _, pr := range []uint64{0, 1, 0xFFFFFFFFFFFFFFFF, 0x0102030405060708} {
						refLane, refIndex := computeReference(pos, pr)

						if refIndex >= laneLength {
							t.Fatalf("pass=%d slice=%d lane=%d c=%d pr=%#x: ref_index %d out of bounds [0,%d)", pass, slice, lane, c, pr, refIndex, laneLength)
						}
						if refLane == lane && refIndex == j {
							t.Fatalf("pass=%d slice=%d lane=%d c=%d pr=%#x: ref_index equals own column j=%d", pass, slice, lane, c, pr, j)
						}
					}
				}
			}
		}
	}
}

func TestComputeReferencePassZeroSliceZeroStaysInSameLane(t *testing.T) {
	const lanes, laneLength, segmentLength = 4, 64, 16
	pos := position{pass: 0, slice: 0, lane: 2, index: 5, segmentLength: segmentLength, laneLength: laneLength, lanes: lanes}
	refLane, _ := computeReference(pos, 0xABCDEF0123456789)
	if refLane != pos.lane {
		t.Errorf("pass=0 slice=0 must only reference its own lane; got refLane=%d, lane=%d", refLane, pos.lane)
	}
}

func TestComputeReferenceDeterministic(t *testing.T) {
	pos := position{pass: 1, slice: 2, lane: 1, index: 7, segmentLength: 16, laneLength: 64, lanes: 4}
	l1, i1 := computeReference(pos, 0x1122334455667788)
	l2, i2 := computeReference(pos, 0x1122334455667788)
	if l1 != l2 || i1 != i2 {
		t.Error("computeReference is not deterministic for identical inputs")
	}
}
