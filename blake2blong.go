package argon2

import (
	"encoding/binary"
	"io"

	"github.com/dchest/blake2b"
)

// blake2bSum writes Blake2b(data) into out, where len(out) is the requested
// digest size (1..blake2b.Size).
func blake2bSum(out, data []byte) {
	if len(out) == blake2b.Size {
		h := blake2b.New512()
		h.Write(data)
		h.Sum(out[:0])
		return
	}
	h, err := blake2b.New(&blake2b.Config{Size: uint8(len(out))})
	if err != nil {
		// Only reachable for len(out) == 0 or > 64; no caller in this
		// package passes either.
		panic("argon2: blake2b: " + err.Error())
	}
	h.Write(data)
	h.Sum(out[:0])
}

// writeLen writes v as the little-endian uint32 length prefix RFC 9106
// requires before every length-prefixed field.
func writeLen(h io.Writer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	h.Write(b[:])
}

// blakeLong is H', the variable-length hash built on Blake2b described in
// RFC 9106 Section 3.2. It squeezes an arbitrary-length digest from x by
// chaining 64-byte Blake2b outputs V1, V2, ..., each contributing its first
// 32 bytes to the result, until the remaining length drops to 64 bytes or
// less. The final chunk Vr is then produced by a Blake2b call actually
// parameterized to that remaining length (T - 32*(r-1)), not a 64-byte call
// truncated down: Blake2b's output length is part of its parameter block
// and changes the digest, not just how much of it gets kept. For T <= 64,
// H' collapses to a single Blake2b call parameterized to T. The output
// length is folded into the hashed input as a little-endian uint32 prefix.
func blakeLong(out []byte, x []byte) {
	t := uint32(len(out))

	if len(out) <= blake2b.Size {
		h, err := blake2b.New(&blake2b.Config{Size: uint8(len(out))})
		if err != nil {
			panic("argon2: blake2b: " + err.Error())
		}
		writeLen(h, t)
		h.Write(x)
		h.Sum(out[:0])
		return
	}

	var buf [blake2b.Size]byte
	h := blake2b.New512()
	writeLen(h, t)
	h.Write(x)
	h.Sum(buf[:0])
	copy(out, buf[:32])

	n := 32
	for ; len(out)-n > blake2b.Size; n += 32 {
		h.Reset()
		h.Write(buf[:])
		h.Sum(buf[:0])
		copy(out[n:], buf[:32])
	}

	tailLen := len(out) - n
	tail, err := blake2b.New(&blake2b.Config{Size: uint8(tailLen)})
	if err != nil {
		panic("argon2: blake2b: " + err.Error())
	}
	tail.Write(buf[:])
	tail.Sum(out[:n])
}
