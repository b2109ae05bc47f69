package argon2

// blamka is the fBlaMka mixing primitive used by Argon2's compression
// function, RFC 9106 Section 3.4:
//
//	f(x, y) = x + y + 2*(x_lo * y_lo)
//
// where x_lo/y_lo are the low 32 bits of x/y widened back to uint64. It
// replaces the "a += b + m" step of a plain Blake2b G quarter-round inside
// Argon2's compression function; everything else (the rotation amounts
// 32/24/16/63) is unchanged from RFC 7693.
func blamka(x, y uint64) uint64 {
	const mask32 = 0xFFFFFFFF
	return x + y + 2*(x&mask32)*(y&mask32)
}

// gQuarter is one Blake2b-style quarter-round using blamka in place of the
// message-word addition — Argon2's "Blake2 round without message
// injection" (RFC 9106 Section 3.4).
func gQuarter(a, b, c, d uint64) (uint64, uint64, uint64, uint64) {
	a = blamka(a, b)
	d = rotr64(d^a, 32)
	c = blamka(c, d)
	b = rotr64(b^c, 24)

	a = blamka(a, b)
	d = rotr64(d^a, 16)
	c = blamka(c, d)
	b = rotr64(b^c, 63)

	return a, b, c, d
}

// gRound applies gQuarter to the four columns, then the four diagonals, of
// a 4x4 grid of 16 words — the same shape as a full Blake2b round applied
// with no message input. Using plain addition here instead of blamka would
// make the compression function diverge from every published Argon2 test
// vector; blamka is the whole point of the BlaMka construction.
func gRound(v *[16]uint64) {
	v[0], v[4], v[8], v[12] = gQuarter(v[0], v[4], v[8], v[12])
	v[1], v[5], v[9], v[13] = gQuarter(v[1], v[5], v[9], v[13])
	v[2], v[6], v[10], v[14] = gQuarter(v[2], v[6], v[10], v[14])
	v[3], v[7], v[11], v[15] = gQuarter(v[3], v[7], v[11], v[15])

	v[0], v[5], v[10], v[15] = gQuarter(v[0], v[5], v[10], v[15])
	v[1], v[6], v[11], v[12] = gQuarter(v[1], v[6], v[11], v[12])
	v[2], v[7], v[8], v[13] = gQuarter(v[2], v[7], v[8], v[13])
	v[3], v[4], v[9], v[14] = gQuarter(v[3], v[4], v[9], v[14])
}

// compress is the block compression function G, RFC 9106 Section 3.4. It
// mixes prev and ref into curr, optionally XORing curr's existing content
// in (used for every pass after the first).
func compress(curr, prev, ref *block, withXor bool) {
	var r, z block
	r = *prev
	r.xor(ref)
	z = r

	// Eight contiguous 16-word groups: column mixing within each.
	for i := 0; i < blockWords; i += 16 {
		var v [16]uint64
		copy(v[:], r[i:i+16])
		gRound(&v)
		copy(r[i:i+16], v[:])
	}

	// Eight strided 16-word groups, assembled from pairs of adjacent
	// words 16 apart: the row mixing step (2i, 2i+1, 2i+16, 2i+17, ...,
	// 2i+112, 2i+113), per RFC 9106 Section 3.4.
	for i := 0; i < 8; i++ {
		var v [16]uint64
		for j := 0; j < 8; j++ {
			v[2*j] = r[2*i+16*j]
			v[2*j+1] = r[2*i+16*j+1]
		}
		gRound(&v)
		for j := 0; j < 8; j++ {
			r[2*i+16*j] = v[2*j]
			r[2*i+16*j+1] = v[2*j+1]
		}
	}

	if withXor {
		curr.xor(&z)
		curr.xor(&r)
	} else {
		*curr = z
		curr.xor(&r)
	}
}
