package argon2

import (
	"encoding/hex"
	"testing"
)

// TestVectors checks the digests and PHC strings against known-answer
// vectors produced by the reference argon2 implementation.
func TestVectors(t *testing.T) {
	cases := []struct {
		name        string
		variant     Variant
		time        uint32
		memory      uint32
		parallelism uint32
		password    string
		salt        string
		keyLen      uint32
		want        string
		encoded     string
	}{
		{
			name: "argon2i/65536/2/1", variant: VariantI,
			time: 2, memory: 65536, parallelism: 1,
			password: "password", salt: "somesalt", keyLen: 32,
			want:    "c1628832147d9720c5bd1cfd61367078729f6dfb6f8fea9ff98158e0d7816ed0",
			encoded: "$argon2i$v=19$m=65536,t=2,p=1$c29tZXNhbHQ$wWKIMhR9lyDFvRz9YTZweHKfbftvj+qf+YFY4NeBbtA",
		},
		{
			name: "argon2id/65536/2/1", variant: VariantID,
			time: 2, memory: 65536, parallelism: 1,
			password: "password", salt: "somesalt", keyLen: 32,
			want: "09316115d5cf24ed5a15a31a3ba326e5cf32edc24702987c02b6566f61913cf7",
		},
		{
			name: "argon2i/16/2/2/lorem", variant: VariantI,
			time: 2, memory: 16, parallelism: 2,
			password: "Lorem ipsum", salt: "q7isXKjZJVfKRmSe", keyLen: 16,
			want:    "c2e1b651dde4f514eb7d226c36f54ce6",
			encoded: "$argon2i$v=19$m=16,t=2,p=2$cTdpc1hLalpKVmZLUm1TZQ$wuG2Ud3k9RTrfSJsNvVM5g",
		},
		{
			name: "argon2i/256/2/2", variant: VariantI,
			time: 2, memory: 256, parallelism: 2,
			password: "password", salt: "somesalt", keyLen: 32,
			want: "4ff5ce2769a1d7f4c8a491df09d41a9fbe90e5eb02155a13e4c01e20cd4eab61",
		},
		{
			name: "argon2id/65536/4/1", variant: VariantID,
			time: 4, memory: 65536, parallelism: 1,
			password: "password", salt: "somesalt", keyLen: 32,
			want: "9025d48e68ef7395cca9079da4c4ec3affb3c8911fe4f86d1a2520856f63172c",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Derive(Config{
				Variant: c.variant,
				Time:    c.time,
				Memory:  c.memory,
				Lanes:   c.parallelism,
				KeyLen:  c.keyLen,
			}, []byte(c.password), []byte(c.salt))
			if err != nil {
				t.Fatalf("Derive: %v", err)
			}
			if hex.EncodeToString(got) != c.want {
				t.Fatalf("digest = %x, want %s", got, c.want)
			}

			if c.encoded != "" {
				enc := Encode(Params{
					Variant:     c.variant,
					Version:     Version,
					Memory:      c.memory,
					Time:        c.time,
					Parallelism: c.parallelism,
					Salt:        []byte(c.salt),
					Hash:        got,
				})
				if enc != c.encoded {
					t.Fatalf("encoded = %s, want %s", enc, c.encoded)
				}
			}
		})
	}
}

// TestVariantSensitivity checks that the three variants diverge for
// identical parameters.
func TestVariantSensitivity(t *testing.T) {
	cfg := func(v Variant) Config {
		return Config{Variant: v, Time: 2, Memory: 256, Lanes: 1, KeyLen: 32}
	}
	d, err := Derive(cfg(VariantD), []byte("password"), []byte("somesalt"))
	if err != nil {
		t.Fatal(err)
	}
	i, err := Derive(cfg(VariantI), []byte("password"), []byte("somesalt"))
	if err != nil {
		t.Fatal(err)
	}
	id, err := Derive(cfg(VariantID), []byte("password"), []byte("somesalt"))
	if err != nil {
		t.Fatal(err)
	}
	if hex.EncodeToString(d) == hex.EncodeToString(i) ||
		hex.EncodeToString(i) == hex.EncodeToString(id) ||
		hex.EncodeToString(d) == hex.EncodeToString(id) {
		t.Fatal("variants produced identical digests")
	}
}

// TestDeterminism checks that repeated calls and both scheduling paths
// (sequential vs. concurrent) produce the identical digest.
func TestDeterminism(t *testing.T) {
	cfg := Config{Variant: VariantID, Time: 2, Memory: 256, Lanes: 4, Threads: 1, KeyLen: 32}
	seq, err := Derive(cfg, []byte("password"), []byte("somesalt1234567890"))
	if err != nil {
		t.Fatal(err)
	}

	cfg.Threads = 4
	par, err := Derive(cfg, []byte("password"), []byte("somesalt1234567890"))
	if err != nil {
		t.Fatal(err)
	}

	if hex.EncodeToString(seq) != hex.EncodeToString(par) {
		t.Fatalf("sequential and concurrent scheduling diverged: %x != %x", seq, par)
	}
}

// TestSaltSensitivity checks that flipping any byte of salt changes the
// digest.
func TestSaltSensitivity(t *testing.T) {
	cfg := Config{Variant: VariantID, Time: 2, Memory: 256, Lanes: 1, KeyLen: 32}
	a, err := Derive(cfg, []byte("password"), []byte("saltsalt"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Derive(cfg, []byte("password"), []byte("saltsalU"))
	if err != nil {
		t.Fatal(err)
	}
	if hex.EncodeToString(a) == hex.EncodeToString(b) {
		t.Fatal("changing a salt byte did not change the digest")
	}
}

// TestParameterSensitivity checks that t, m, and output length each
// independently change the digest.
func TestParameterSensitivity(t *testing.T) {
	base := Config{Variant: VariantID, Time: 2, Memory: 256, Lanes: 1, KeyLen: 32}
	baseHash, err := Derive(base, []byte("password"), []byte("somesalt"))
	if err != nil {
		t.Fatal(err)
	}

	variants := []Config{
		{Variant: VariantID, Time: 3, Memory: 256, Lanes: 1, KeyLen: 32},
		{Variant: VariantID, Time: 2, Memory: 512, Lanes: 1, KeyLen: 32},
		{Variant: VariantID, Time: 2, Memory: 256, Lanes: 1, KeyLen: 16},
	}
	for i, c := range variants {
		got, err := Derive(c, []byte("password"), []byte("somesalt"))
		if err != nil {
			t.Fatal(err)
		}
		if hex.EncodeToString(got[:16]) == hex.EncodeToString(baseHash[:16]) {
			t.Fatalf("case %d: changing a parameter did not change the digest", i)
		}
	}
}

// TestNegativeCases checks that out-of-range parameters fail with the
// expected error Kind rather than panicking or silently clamping.
func TestNegativeCases(t *testing.T) {
	_, err := Derive(Config{Variant: VariantID, Time: 2, Memory: 256, Lanes: 1, KeyLen: 32}, []byte("pw"), []byte("abcde"))
	requireKind(t, err, KindSaltTooShort)

	_, err = Derive(Config{Variant: VariantID, Time: 2, Memory: 1, Lanes: 1, KeyLen: 32}, []byte("pw"), []byte("somesaltsomesalt"))
	requireKind(t, err, KindMemoryTooLittle)
}

func requireKind(t *testing.T, err error, want Kind) {
	t.Helper()
	ae, ok := err.(*Error)
	if !ok {
		t.Fatalf("got error %v (%T), want *Error with Kind %s", err, err, want)
	}
	if ae.Kind != want {
		t.Fatalf("got Kind %s, want %s", ae.Kind, want)
	}
}
