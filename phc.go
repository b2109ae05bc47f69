package argon2

import (
	"encoding/base64"
	"strconv"
	"strings"
)

// Params is the PHC parameter record: everything needed to reproduce or
// describe an encoded hash, with Salt and Hash carried as exact decoded
// bytes rather than re-validated against current policy.
type Params struct {
	Variant     Variant
	Version     uint32
	Memory      uint32
	Time        uint32
	Parallelism uint32
	Salt        []byte
	Hash        []byte
}

var b64 = base64.RawStdEncoding

// Encode renders p as a PHC string:
//
//	$argon2{d,i,id}$v=19$m=<m>,t=<t>,p=<p>$<salt>$<hash>
//
// Parameter order is fixed at m,t,p, matching every PHC-string Argon2
// encoder in the wild.
func Encode(p Params) string {
	var b strings.Builder
	b.WriteByte('$')
	b.WriteString(p.Variant.String())
	b.WriteString("$v=")
	b.WriteString(strconv.FormatUint(uint64(p.Version), 10))
	b.WriteString("$m=")
	b.WriteString(strconv.FormatUint(uint64(p.Memory), 10))
	b.WriteString(",t=")
	b.WriteString(strconv.FormatUint(uint64(p.Time), 10))
	b.WriteString(",p=")
	b.WriteString(strconv.FormatUint(uint64(p.Parallelism), 10))
	b.WriteByte('$')
	b.WriteString(b64.EncodeToString(p.Salt))
	b.WriteByte('$')
	b.WriteString(b64.EncodeToString(p.Hash))
	return b.String()
}

// Decode parses a PHC string produced by Encode (or any RFC 9106-conformant
// encoder). It rejects malformed input with a single
// *Error of KindDecodingFail: wrong segment count, unknown variant token,
// a version segment that isn't "v=<uint32>", missing/unknown parameter
// keys, or malformed base64.
func Decode(s string) (Params, error) {
	if !strings.HasPrefix(s, "$") {
		return Params{}, newErr(KindDecodingFail, "", "PHC string must start with '$'")
	}
	segments := strings.Split(s[1:], "$")
	if len(segments) != 5 {
		return Params{}, newErr(KindDecodingFail, "", "expected 5 '$'-separated segments")
	}

	var p Params
	switch segments[0] {
	case "argon2d":
		p.Variant = VariantD
	case "argon2i":
		p.Variant = VariantI
	case "argon2id":
		p.Variant = VariantID
	default:
		return Params{}, newErr(KindDecodingFail, "variant", "unknown variant token "+segments[0])
	}

	vTok, ok := strings.CutPrefix(segments[1], "v=")
	if !ok {
		return Params{}, newErr(KindDecodingFail, "version", "expected 'v=<number>'")
	}
	version, err := strconv.ParseUint(vTok, 10, 32)
	if err != nil {
		return Params{}, newErr(KindDecodingFail, "version", "non-numeric version")
	}
	p.Version = uint32(version)

	if err := decodeParams(&p, segments[2]); err != nil {
		return Params{}, err
	}

	salt, err := decodeBase64(segments[3])
	if err != nil {
		return Params{}, newErr(KindDecodingFail, "salt", "malformed base64")
	}
	p.Salt = salt

	hash, err := decodeBase64(segments[4])
	if err != nil {
		return Params{}, newErr(KindDecodingFail, "hash", "malformed base64")
	}
	p.Hash = hash

	return p, nil
}

// decodeParams parses the comma-separated "m=...,t=...,p=..." segment,
// requiring all three keys and rejecting any other. The encoder always
// emits them in m,t,p order, but the decoder does not require that order.
func decodeParams(p *Params, seg string) error {
	var haveM, haveT, haveP bool
	for _, kv := range strings.Split(seg, ",") {
		key, val, ok := strings.Cut(kv, "=")
		if !ok {
			return newErr(KindDecodingFail, "params", "malformed key=value pair")
		}
		n, err := strconv.ParseUint(val, 10, 32)
		if err != nil {
			return newErr(KindDecodingFail, "params", "non-numeric value for "+key)
		}
		switch key {
		case "m":
			p.Memory, haveM = uint32(n), true
		case "t":
			p.Time, haveT = uint32(n), true
		case "p":
			p.Parallelism, haveP = uint32(n), true
		default:
			return newErr(KindDecodingFail, "params", "unknown parameter key "+key)
		}
	}
	if !haveM || !haveT || !haveP {
		return newErr(KindDecodingFail, "params", "missing one of m, t, p")
	}
	return nil
}

// decodeBase64 right-pads s to a multiple of four with '=' before decoding
// with the standard alphabet. base64.RawStdEncoding already decodes
// unpadded input directly, so this only exists to accept
// PHC strings produced by encoders that do pad (some third-party Argon2
// tools emit padded salts/hashes even though the RFC examples do not).
func decodeBase64(s string) ([]byte, error) {
	if n := len(s) % 4; n != 0 {
		s += strings.Repeat("=", 4-n)
	}
	return base64.StdEncoding.DecodeString(s)
}
