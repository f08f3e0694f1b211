package argon2

import "sync"

// syncPoints is the number of slices each pass over memory is divided
// into (section 3 "Segment": "each slice s in 0..3").
const syncPoints = 4

// fillMemory drives the Fill state machine of section 4.7: t passes, each
// split into 4 slices, each slice's p lane segments computed concurrently
// with a barrier before the next slice begins (section 5). timeCost is t;
// m already carries lanes (p) and laneLength (q).
//
// Grounded on internal/argon2d/core.go's fillMemory/fillSegment for the
// outer loop shape, and on other_examples' duggavo-argon3 processBlocks
// for the goroutine-per-lane / sync.WaitGroup-per-slice concurrency
// pattern that is the real golang.org/x/crypto/argon2 algorithm's
// approach to section 5's "p segments... may be computed in parallel
// threads; ... barrier ... between slices".
func fillMemory(m *matrix, timeCost uint32) {
	segmentLength := m.laneLength / syncPoints
	memBlocks := m.lanes * m.laneLength

	for pass := uint32(0); pass < timeCost; pass++ {
		for slice := uint32(0); slice < syncPoints; slice++ {
			var wg sync.WaitGroup
			wg.Add(int(m.lanes))
			for lane := uint32(0); lane < m.lanes; lane++ {
				go func(lane uint32) {
					defer wg.Done()
					fillSegment(m, pass, slice, lane, segmentLength, memBlocks, timeCost)
				}(lane)
			}
			wg.Wait()
		}
	}
}

// fillSegment fills one (pass, slice, lane) segment in strictly ascending
// column order (section 4.7 fill_segment). It owns lane's columns
// exclusively for the duration of the call; every other block it reads
// was written in a strictly earlier step of the canonical ordering
// (section 5's happens-before guarantee, enforced by the barrier in
// fillMemory).
func fillSegment(m *matrix, pass, slice, lane, segmentLength, memBlocks, timeCost uint32) {
	pos := position{
		pass:          pass,
		slice:         slice,
		lane:          lane,
		segmentLength: segmentLength,
		laneLength:    m.laneLength,
		lanes:         m.lanes,
	}

	dataIndependent := pos.isDataIndependent()

	var ag *addressGenerator
	if dataIndependent {
		ag = newAddressGenerator(pass, lane, slice, memBlocks, timeCost)
		if pass == 0 && slice == 0 {
			// Pre-pass generation: column 2 needs an address value
			// before the loop's own c%128==0 check would ever fire.
			ag.regenerate()
		}
		defer ag.zero()
	}

	cStart := uint32(0)
	if pass == 0 && slice == 0 {
		cStart = 2 // columns 0 and 1 came from InitialBlocks.
	}

	var scratch Block
	defer zeroizeBlock(&scratch)

	for c := cStart; c < segmentLength; c++ {
		if dataIndependent && c%128 == 0 {
			ag.regenerate()
		}

		pos.index = c
		j := slice*segmentLength + c

		prevJ := j - 1
		if j == 0 {
			prevJ = m.laneLength - 1
		}
		prevBlock := m.at(lane, prevJ)

		var pr uint64
		if dataIndependent {
			pr = ag.value(int(c % 128))
		} else {
			pr = prevBlock[0]
		}

		refLane, refIndex := computeReference(pos, pr)
		refBlock := m.at(refLane, refIndex)

		g(&scratch, prevBlock, refBlock)

		cur := m.at(lane, j)
		if pass > 0 {
			cur.XOR(&scratch)
		} else {
			cur.Copy(&scratch)
		}
	}
}
