package argon2

import "github.com/dchest/blake2b"

// initialHash computes H0 per RFC 9106 Section 3.2:
//
//	H0 = Blake2b(p ‖ τ ‖ m ‖ t ‖ v ‖ y ‖ |P| ‖ P ‖ |S| ‖ S ‖ |K| ‖ K ‖ |X| ‖ X, 64)
//
// Every field is fed through the streaming hash in declaration order so
// that byte-equivalent input produces an identical digest regardless of
// how a caller might chunk it — the streaming interface itself is never
// exposed past this function, only H0's 64-byte result is.
//
// Every length prefix is a full little-endian uint32, matching the RFC's
// layout and this package's documented secret-length limit of 2^32-1
// bytes; a narrower length prefix would silently cap secrets well short of
// that limit.
func initialHash(cfg Config, password, salt []byte) [blake2b.Size]byte {
	h := blake2b.New512()

	writeLen(h, cfg.Lanes)
	writeLen(h, cfg.KeyLen)
	writeLen(h, effectiveMemoryForHash(cfg))
	writeLen(h, cfg.Time)
	writeLen(h, Version)
	writeLen(h, uint32(cfg.Variant))

	writeLen(h, uint32(len(password)))
	h.Write(password)

	writeLen(h, uint32(len(salt)))
	h.Write(salt)

	writeLen(h, uint32(len(cfg.Secret)))
	h.Write(cfg.Secret)

	writeLen(h, uint32(len(cfg.AssociatedData)))
	h.Write(cfg.AssociatedData)

	var out [blake2b.Size]byte
	h.Sum(out[:0])
	return out
}

// effectiveMemoryForHash returns the memory cost value that participates in
// H0: the RFC hashes the *requested* m_cost, not the rounded-down block
// count used to size the matrix, so this is a thin, clarifying alias over
// cfg.Memory kept separate from effectiveMemory's blocks/segment math.
func effectiveMemoryForHash(cfg Config) uint32 {
	return cfg.Memory
}

// bootstrapLanes fills the first two blocks of every lane from H0, per
// RFC 9106 Section 3.2:
//
//	B[l][0] = H'(H0 ‖ LE32(0) ‖ LE32(l), 1024)
//	B[l][1] = H'(H0 ‖ LE32(1) ‖ LE32(l), 1024)
//
// The H0‖counter‖lane input is carried in one 72-byte buffer whose last
// eight bytes are overwritten between calls, avoiding a fresh allocation
// per block.
func bootstrapLanes(m *matrix, h0 [blake2b.Size]byte) {
	var buf [72]byte
	copy(buf[:blake2b.Size], h0[:])

	var blockBytes [BlockSize]byte

	for lane := uint32(0); lane < m.lanes; lane++ {
		putLE32(buf[68:72], lane)

		putLE32(buf[64:68], 0)
		blakeLong(blockBytes[:], buf[:72])
		m.at(lane, 0).fromBytes(&blockBytes)

		putLE32(buf[64:68], 1)
		blakeLong(blockBytes[:], buf[:72])
		m.at(lane, 1).fromBytes(&blockBytes)
	}
}
