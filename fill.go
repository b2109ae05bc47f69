package argon2

import "golang.org/x/sync/errgroup"

// usesDataIndependent reports whether position pos, for the given variant,
// draws its pseudo-random word from the address generator (Argon2i, or
// Argon2id during the first half of pass 0) rather than from the previous
// block's first word (Argon2d, or Argon2id everywhere else).
func usesDataIndependent(variant Variant, pos position) bool {
	switch variant {
	case VariantI:
		return true
	case VariantID:
		return pos.pass == 0 && pos.slice < syncPoints/2
	default: // VariantD
		return false
	}
}

// fillSegment fills one (lane, slice) segment for one pass — the unit of
// parallel work described in RFC 9106 Section 3.4. It owns exclusive write
// access to this segment and only reads blocks from earlier slices (or
// earlier positions within its own lane), so segments from different
// lanes in the same slice never race with each other.
func fillSegment(m *matrix, cfg Config, pass, lane, slice uint32) {
	start := uint32(0)
	if pass == 0 && slice == 0 {
		start = 2
	}

	var ag *addressGenerator
	if usesDataIndependent(cfg.Variant, position{pass: pass, lane: lane, slice: slice}) {
		ag = newAddressGenerator(position{pass: pass, lane: lane, slice: slice}, m.lanes*m.laneLength, cfg.Time, cfg.Variant)
	}

	for i := start; i < m.segmentLength; i++ {
		curIndex := slice*m.segmentLength + i

		prevIndex := curIndex - 1
		if curIndex == 0 {
			prevIndex = m.laneLength - 1
		}
		prev := m.at(lane, prevIndex)

		pos := position{pass: pass, lane: lane, slice: slice, index: i}

		var j uint64
		if ag != nil {
			j = ag.next(i)
		} else {
			j = prev[0]
		}

		rLane := refLane(pos, j, m.lanes)
		sameLane := rLane == lane
		rIndex := indexAlpha(pos, j, sameLane, m.segmentLength, m.laneLength)

		ref := m.at(rLane, rIndex)
		curr := m.at(lane, curIndex)
		compress(curr, prev, ref, pass > 0)
	}
}

// fillMemorySequential drives the pass/slice/lane/index loop of RFC 9106
// Section 3.4 with lanes processed strictly in order within each slice.
// This is the reference scheduling: any correct parallel scheduling must
// reproduce its output bit-for-bit.
func fillMemorySequential(m *matrix, cfg Config) {
	for pass := uint32(0); pass < cfg.Time; pass++ {
		for slice := uint32(0); slice < syncPoints; slice++ {
			for lane := uint32(0); lane < m.lanes; lane++ {
				fillSegment(m, cfg, pass, lane, slice)
			}
		}
	}
}

// fillMemoryConcurrent fills the same matrix using up to cfg.Threads
// goroutines per slice, one per lane, barriered with errgroup.Group so a
// future per-lane failure path has somewhere idiomatic to report through.
// Each goroutine owns one lane's segment exclusively for the duration of
// the slice; the barrier at g.Wait() is the only synchronization needed.
func fillMemoryConcurrent(m *matrix, cfg Config) {
	for pass := uint32(0); pass < cfg.Time; pass++ {
		for slice := uint32(0); slice < syncPoints; slice++ {
			var g errgroup.Group
			g.SetLimit(int(cfg.Threads))
			for lane := uint32(0); lane < m.lanes; lane++ {
				lane := lane
				g.Go(func() error {
					fillSegment(m, cfg, pass, lane, slice)
					return nil
				})
			}
			_ = g.Wait() // fillSegment never returns an error
		}
	}
}

// fillMemory picks the scheduling discipline: concurrent when the caller
// asked for more than one thread over more than one lane, sequential
// otherwise. Both paths are required to (and do) produce identical
// output, since fillSegment's read set for a given (lane, slice) is
// confined to strictly earlier slices and earlier indices within its own
// lane, so segments processed concurrently within a slice never overlap
// in what they read or write.
func fillMemory(m *matrix, cfg Config) {
	if cfg.Threads > 1 && m.lanes > 1 {
		fillMemoryConcurrent(m, cfg)
		return
	}
	fillMemorySequential(m, cfg)
}
