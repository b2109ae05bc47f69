package argon2

// Derive runs a full Argon2 key derivation as specified by cfg, returning
// a freshly allocated digest of cfg.KeyLen bytes (after defaulting). It is
// the single orchestration point for the algorithm described in RFC 9106
// Section 3: H0, lane bootstrap, the pass/slice/lane/index fill loop, and
// finalization.
//
// Derive validates every input before touching memory and never partially
// populates its output on failure — on error the returned slice is nil.
func Derive(cfg Config, password, salt []byte) ([]byte, error) {
	cfg = cfg.withDefaults()
	if err := validate(cfg, len(password), len(salt)); err != nil {
		return nil, err
	}

	segmentLength, _ := effectiveMemory(cfg.Memory, cfg.Lanes)
	m := newMatrix(cfg.Lanes, segmentLength)

	h0 := initialHash(cfg, password, salt)
	bootstrapLanes(m, h0)
	fillMemory(m, cfg)

	out := make([]byte, cfg.KeyLen)
	finalize(out, m)

	if cfg.ClearPassword {
		wipe(password)
	}
	if cfg.ClearSecret {
		wipe(cfg.Secret)
	}

	return out, nil
}

// finalize computes F, the XOR of the last block of every lane, and
// squeezes it through H' to the caller's requested output length, per
// RFC 9106 Section 3.2.
func finalize(out []byte, m *matrix) {
	var f block
	f = *m.last(0)
	for lane := uint32(1); lane < m.lanes; lane++ {
		f.xor(m.last(lane))
	}

	var fBytes [BlockSize]byte
	f.toBytes(&fBytes)
	blakeLong(out, fBytes[:])
}

// wipe best-effort overwrites b with zeros. It is advisory only: Go's
// compiler is free to optimize away a write to memory that's about to go
// out of scope, so this does not substitute for not retaining secrets
// longer than necessary. Looping rather than using a single clear call,
// and doing it byte by byte, gives the compiler less of an obviously-dead-
// store pattern to eliminate.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Hash2d derives a raw Argon2d digest.
func Hash2d(password, salt []byte, time, memory, parallelism, keyLen uint32) ([]byte, error) {
	return Derive(Config{Variant: VariantD, Time: time, Memory: memory, Lanes: parallelism, KeyLen: keyLen}, password, salt)
}

// Hash2i derives a raw Argon2i digest.
func Hash2i(password, salt []byte, time, memory, parallelism, keyLen uint32) ([]byte, error) {
	return Derive(Config{Variant: VariantI, Time: time, Memory: memory, Lanes: parallelism, KeyLen: keyLen}, password, salt)
}

// Hash2id derives a raw Argon2id digest.
func Hash2id(password, salt []byte, time, memory, parallelism, keyLen uint32) ([]byte, error) {
	return Derive(Config{Variant: VariantID, Time: time, Memory: memory, Lanes: parallelism, KeyLen: keyLen}, password, salt)
}

// Hash2dString derives an Argon2d digest and returns it PHC-encoded.
func Hash2dString(password, salt []byte, time, memory, parallelism, keyLen uint32) (string, error) {
	return hashString(VariantD, password, salt, time, memory, parallelism, keyLen)
}

// Hash2iString derives an Argon2i digest and returns it PHC-encoded.
func Hash2iString(password, salt []byte, time, memory, parallelism, keyLen uint32) (string, error) {
	return hashString(VariantI, password, salt, time, memory, parallelism, keyLen)
}

// Hash2idString derives an Argon2id digest and returns it PHC-encoded.
func Hash2idString(password, salt []byte, time, memory, parallelism, keyLen uint32) (string, error) {
	return hashString(VariantID, password, salt, time, memory, parallelism, keyLen)
}

func hashString(v Variant, password, salt []byte, time, memory, parallelism, keyLen uint32) (string, error) {
	cfg := Config{Variant: v, Time: time, Memory: memory, Lanes: parallelism, KeyLen: keyLen}.withDefaults()
	hash, err := Derive(cfg, password, salt)
	if err != nil {
		return "", err
	}
	return Encode(Params{
		Variant:     v,
		Version:     Version,
		Memory:      cfg.Memory,
		Time:        cfg.Time,
		Parallelism: cfg.Lanes,
		Salt:        salt,
		Hash:        hash,
	}), nil
}

// Hash derives an Argon2id digest with the RFC's general-purpose defaults
// (time=3, memory=65536 KiB, parallelism=4, keyLen=32), requiring a salt of
// at least 16 bytes.
func Hash(password, salt []byte) (string, error) {
	if len(salt) < 16 {
		return "", newErr(KindSaltTooShort, "salt", "Hash requires a salt of at least 16 bytes")
	}
	return Hash2idString(password, salt, DefaultTime, DefaultMemory, DefaultParallelism, DefaultKeyLen)
}

// HashWithParams derives an Argon2id digest with caller-supplied
// parameters and returns it PHC-encoded; an alias for Hash2idString.
func HashWithParams(password, salt []byte, time, memory, parallelism, keyLen uint32) (string, error) {
	return Hash2idString(password, salt, time, memory, parallelism, keyLen)
}
