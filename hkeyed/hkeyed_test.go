package hkeyed

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/karu-codes/passmaker/digest"
)

// RFC 2202 (MD5, SHA-1) and RFC 2286 (RIPEMD-160) vectors pin the keyed
// construction to the standard definition.
func TestSumReferenceVectors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		alg     string
		key     string
		message string
		want    string
	}{
		{"md5", "key", "The quick brown fox jumps over the lazy dog", "80070713463e7749b90c2dc24911e275"},
		{"md5", "Jefe", "what do ya want for nothing?", "750c783e6ab0b503eaa86e310a5db738"},
		{"sha1", "Jefe", "what do ya want for nothing?", "effcdf6ae5eb2fa2d27416d5f184df9c259a7c79"},
		{"ripemd160", "Jefe", "what do ya want for nothing?", "dda6c0213a485a9e24f4742064a7f033b43c4069"},
		{"sha256", "Jefe", "what do ya want for nothing?", "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843"},
	}
	for _, tc := range cases {
		b, err := digest.Parse(tc.alg)
		if err != nil {
			t.Fatalf("Parse(%s): %v", tc.alg, err)
		}
		got := hex.EncodeToString(Sum(b, []byte(tc.key), []byte(tc.message)))
		if got != tc.want {
			t.Fatalf("keyed %s = %s, want %s", tc.alg, got, tc.want)
		}
	}
}

func TestStreamBlocks(t *testing.T) {
	t.Parallel()

	b := digest.MustParse("md5")
	s := NewStream(b, []byte("k"), []byte("m"))

	b0 := s.Next()
	b1 := s.Next()

	if got := hex.EncodeToString(b0); got != "ed7e724d3a91554aaa2043041d9c5305" {
		t.Fatalf("block 0 = %s", got)
	}
	if got := hex.EncodeToString(b1); got != "47474a14b38e2c4d6e7e7d143d5b066b" {
		t.Fatalf("block 1 = %s", got)
	}
	if bytes.Equal(b0, b1) {
		t.Fatal("successive blocks must differ")
	}
	if len(b0) != s.BlockLen() || s.BlockLen() != 16 {
		t.Fatalf("block length = %d, want 16", len(b0))
	}
}

func TestStreamDeterministic(t *testing.T) {
	t.Parallel()

	for _, alg := range digest.Algorithms() {
		b := digest.MustParse(string(alg))
		first := NewStream(b, []byte("master"), []byte("example.com"))
		second := NewStream(b, []byte("master"), []byte("example.com"))
		for i := 0; i < 5; i++ {
			if !bytes.Equal(first.Next(), second.Next()) {
				t.Fatalf("%s: block %d differs between identical streams", alg, i)
			}
		}
	}
}

func TestStreamFirstBlockMatchesSum(t *testing.T) {
	t.Parallel()

	b := digest.MustParse("sha256")
	s := NewStream(b, []byte("master"), []byte("example.com"))
	if !bytes.Equal(s.Next(), Sum(b, []byte("master"), []byte("example.com"))) {
		t.Fatal("stream block 0 must equal the unexpanded keyed digest")
	}
}
