package argon2

// position identifies a single memory-fill step: which pass, lane, slice,
// and index-within-segment is being written. It's threaded through
// indexAlpha and the address generator so neither has to recompute its
// caller's place in the pass/slice/lane/index loop.
type position struct {
	pass  uint32
	lane  uint32
	slice uint32
	index uint32
}

// refLane picks the lane a reference block is drawn from: the upper 32
// bits of J modulo lanes, forced to the current lane during pass 0 slice 0
// since no other lane has produced any data yet.
func refLane(pos position, j uint64, lanes uint32) uint32 {
	if pos.pass == 0 && pos.slice == 0 {
		return pos.lane
	}
	return uint32(j>>32) % lanes
}

// indexAlpha computes the reference block's position within its lane
// (RFC 9106 Section 3.4's index_alpha). sameLane reports whether the
// reference lane equals the lane being written; the reference-area-size
// and start-position formulas both branch on it.
//
// referenceAreaSize is computed in uint32 with the "other lane, index == 0"
// decrement applied unguarded, as in the reference implementation. The
// value being decremented there is slice*segmentLength (slice >= 1) or
// laneLength - segmentLength, and segmentLength is at least 2, so it never
// wraps around zero.
func indexAlpha(pos position, j uint64, sameLane bool, segmentLength, laneLength uint32) uint32 {
	var referenceAreaSize uint32

	switch {
	case pos.pass == 0 && pos.slice == 0:
		// Same-lane only (refLane forces this). The area is blocks
		// 0..index-2 of this lane, bootstrap blocks included; filling
		// starts at index 2, so the size is at least 1.
		referenceAreaSize = pos.index - 1

	case pos.pass == 0 && sameLane:
		referenceAreaSize = pos.slice*segmentLength + pos.index - 1

	case pos.pass == 0 && !sameLane:
		referenceAreaSize = pos.slice * segmentLength
		if pos.index == 0 {
			referenceAreaSize--
		}

	case sameLane:
		referenceAreaSize = laneLength - segmentLength + pos.index - 1

	default: // pos.pass >= 1, other lane
		referenceAreaSize = laneLength - segmentLength
		if pos.index == 0 {
			referenceAreaSize--
		}
	}

	jLo := uint64(uint32(j))
	x := (jLo * jLo) >> 32
	relative := uint64(referenceAreaSize) - 1 - ((uint64(referenceAreaSize) * x) >> 32)

	var startPosition uint32
	if pos.pass != 0 {
		if pos.slice != syncPoints-1 {
			startPosition = (pos.slice + 1) * segmentLength
		}
	}

	return uint32((uint64(startPosition) + relative) % uint64(laneLength))
}

// addressGenerator produces the data-independent pseudo-random words used
// by Argon2i (and by Argon2id during pass 0, slices 0-1): the
// index_block/address_block construction of RFC 9106 Section 3.4, a fixed
// input block seeded with {pass, lane, slice, memoryBlocks, time, variant}
// and a counter that advances every 128 words.
//
// Words are drawn by absolute segment position i, not by a sequential
// consumption count: the RFC defines J as address_block.v[i mod 128], so
// next(i) must index by i itself rather than by how many words it has
// handed out so far — the two only coincide when i happens to start at
// zero and every value gets consumed exactly once in order. For pass 0,
// slice 0 the fill loop starts at i == 2 (the first two blocks of the
// lane are already bootstrapped), so newAddressGenerator pregenerates the
// address block once up front rather than waiting for i mod 128 == 0,
// which wouldn't fire again until i == 128; next(i) then only ever has to
// handle the steady-state regeneration at that boundary.
type addressGenerator struct {
	input     block
	addresses block
	zero      block
}

func newAddressGenerator(pos position, memoryBlocks, time uint32, variant Variant) *addressGenerator {
	ag := &addressGenerator{}
	ag.input[0] = uint64(pos.pass)
	ag.input[1] = uint64(pos.lane)
	ag.input[2] = uint64(pos.slice)
	ag.input[3] = uint64(memoryBlocks)
	ag.input[4] = uint64(time)
	ag.input[5] = uint64(variant)

	if pos.pass == 0 && pos.slice == 0 {
		ag.input[6]++
		compress(&ag.addresses, &ag.zero, &ag.input, false)
		compress(&ag.addresses, &ag.zero, &ag.addresses, false)
	}
	return ag
}

// next returns the pseudo-random 64-bit word for absolute segment position
// i, refreshing the address block whenever i lands on a 128-word boundary.
func (ag *addressGenerator) next(i uint32) uint64 {
	if i%blockWords == 0 {
		ag.input[6]++
		compress(&ag.addresses, &ag.zero, &ag.input, false)
		compress(&ag.addresses, &ag.zero, &ag.addresses, false)
	}
	return ag.addresses[i%blockWords]
}
