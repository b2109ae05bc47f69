package argon2

import "testing"

func TestPHCRoundTrip(t *testing.T) {
	canonical := "$argon2i$v=19$m=65536,t=2,p=1$c29tZXNhbHQ$wWKIMhR9lyDFvRz9YTZweHKfbftvj+qf+YFY4NeBbtA"
	p, err := Decode(canonical)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if p.Variant != VariantI || p.Version != 19 || p.Memory != 65536 || p.Time != 2 || p.Parallelism != 1 {
		t.Fatalf("decoded params wrong: %+v", p)
	}
	if string(p.Salt) != "somesalt" {
		t.Fatalf("decoded salt = %q, want %q", p.Salt, "somesalt")
	}

	re := Encode(p)
	if re != canonical {
		t.Fatalf("re-encoded = %s, want %s", re, canonical)
	}
}

func TestPHCDecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"missing-dollar-before-salt", "$argon2id$v=19$m=65536,t=2,p=1c29tZXNhbHQ$wWKIMhR9lyDFvRz9YTZweHKfbftvj+qf+YFY4NeBbtA"},
		{"no-leading-dollar", "argon2id$v=19$m=65536,t=2,p=1$c29tZXNhbHQ$wWKIMhR9lyDFvRz9YTZweHKfbftvj+qf+YFY4NeBbtA"},
		{"unknown-variant", "$argon2x$v=19$m=65536,t=2,p=1$c29tZXNhbHQ$wWKIMhR9lyDFvRz9YTZweHKfbftvj+qf+YFY4NeBbtA"},
		{"unknown-key", "$argon2id$v=19$m=65536,t=2,p=1,z=9$c29tZXNhbHQ$wWKIMhR9lyDFvRz9YTZweHKfbftvj+qf+YFY4NeBbtA"},
		{"missing-param", "$argon2id$v=19$m=65536,t=2$c29tZXNhbHQ$wWKIMhR9lyDFvRz9YTZweHKfbftvj+qf+YFY4NeBbtA"},
		{"bad-base64", "$argon2id$v=19$m=65536,t=2,p=1$not!base64$wWKIMhR9lyDFvRz9YTZweHKfbftvj+qf+YFY4NeBbtA"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Decode(c.in)
			requireKind(t, err, KindDecodingFail)
		})
	}
}

func TestPHCEncodeParamOrder(t *testing.T) {
	enc := Encode(Params{
		Variant: VariantID, Version: 19, Memory: 1024, Time: 3, Parallelism: 2,
		Salt: []byte("0123456789abcdef"), Hash: []byte("0123456789abcdef0123456789abcdef"),
	})
	want := "$argon2id$v=19$m=1024,t=3,p=2$"
	if len(enc) < len(want) || enc[:len(want)] != want {
		t.Fatalf("encoded params out of order: %s", enc)
	}
}
