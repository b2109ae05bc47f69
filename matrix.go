package argon2

// matrix is Argon2's working memory: a contiguous array of memoryBlocks
// blocks, conceptually indexed as lanes x laneLength, where
// laneLength = segmentLength * syncPoints.
// A matrix belongs exclusively to one Derive call; it is allocated fresh,
// mutated for the duration of filling, and discarded at the end — nothing
// in this package lets a caller observe it.
type matrix struct {
	blocks        []block
	lanes         uint32
	segmentLength uint32
	laneLength    uint32
}

func newMatrix(lanes, segmentLength uint32) *matrix {
	laneLength := segmentLength * syncPoints
	return &matrix{
		blocks:        make([]block, uint64(lanes)*uint64(laneLength)),
		lanes:         lanes,
		segmentLength: segmentLength,
		laneLength:    laneLength,
	}
}

// at returns the block at position idx (0..laneLength) within lane.
func (m *matrix) at(lane, idx uint32) *block {
	return &m.blocks[uint64(lane)*uint64(m.laneLength)+uint64(idx)]
}

// last returns the final block of a lane, used both for the "wrap to end
// of lane" previous-block rule and for finalization's cross-lane XOR.
func (m *matrix) last(lane uint32) *block {
	return m.at(lane, m.laneLength-1)
}
