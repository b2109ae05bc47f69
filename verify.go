package argon2

import "crypto/subtle"

// VerifyVariant re-derives the digest for encoded using password and
// compares it in constant time against the decoded hash. It returns nil
// on a match, ErrVerifyMismatch on a byte difference, or a
// KindDecodingFail *Error if encoded is malformed.
func VerifyVariant(encoded string, password []byte) error {
	p, err := Decode(encoded)
	if err != nil {
		return err
	}
	return verifyParams(p, password)
}

// VerifyExpect is argon2_verify: like VerifyVariant, but first rejects with
// ErrIncorrectType if encoded's variant differs from expected.
func VerifyExpect(encoded string, password []byte, expected Variant) error {
	p, err := Decode(encoded)
	if err != nil {
		return err
	}
	if p.Variant != expected {
		return ErrIncorrectType
	}
	return verifyParams(p, password)
}

// Verify auto-detects the variant from encoded and reports whether
// password matches, collapsing every failure mode (decode error or digest
// mismatch) to false; callers that need to distinguish "malformed string"
// from "wrong password" should use VerifyVariant instead.
func Verify(encoded string, password []byte) bool {
	return VerifyVariant(encoded, password) == nil
}

func verifyParams(p Params, password []byte) error {
	cfg := Config{
		Variant: p.Variant,
		Time:    p.Time,
		Memory:  p.Memory,
		Lanes:   p.Parallelism,
		KeyLen:  uint32(len(p.Hash)),
	}
	got, err := Derive(cfg, password, p.Salt)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare(got, p.Hash) != 1 {
		return ErrVerifyMismatch
	}
	return nil
}
