// Package basen renders raw digest entropy into a string over an arbitrary
// alphabet of arbitrary length. The byte buffer is treated as one unsigned
// big-endian integer and repeatedly divided by the alphabet size; remainders
// index the alphabet from the least significant digit up.
package basen

import (
	"errors"
	"math/big"
	"strings"
)

// ErrEmptyAlphabet indicates an encode request over zero characters.
var ErrEmptyAlphabet = errors.New("basen: empty alphabet")

// Source yields the next entropy block on every call. Blocks must be
// deterministic in call order for the encoding to be reproducible.
type Source func() []byte

// Encode produces exactly length characters over alphabet, drawing entropy
// from next. The initial buffer is the fewest whole blocks covering
// alphabet^length; if the integer is exhausted before all positions are
// rendered, one more block is appended and rendering restarts from the full
// buffer, so every position always consumes real entropy.
//
// Alphabet characters need not be unique; every output character is a member
// of the alphabet by construction. A zero length yields the empty string
// without drawing entropy.
func Encode(alphabet string, length int, next Source) (string, error) {
	if length <= 0 {
		return "", nil
	}
	runes := []rune(alphabet)
	if len(runes) == 0 {
		return "", ErrEmptyAlphabet
	}
	if len(runes) == 1 {
		// Division by one never terminates; the single-character alphabet
		// has exactly one representable string.
		return strings.Repeat(string(runes[0]), length), nil
	}

	base := big.NewInt(int64(len(runes)))
	span := new(big.Int).Exp(base, big.NewInt(int64(length)), nil)
	needed := (span.BitLen() + 7) / 8

	var buf []byte
	for len(buf) < needed {
		buf = append(buf, next()...)
	}

	n := new(big.Int)
	rem := new(big.Int)
	for {
		n.SetBytes(buf)
		out := make([]rune, 0, length)
		short := false
		for i := 0; i < length; i++ {
			n.QuoRem(n, base, rem)
			out = append(out, runes[rem.Int64()])
			if n.Sign() == 0 && i < length-1 {
				short = true
				break
			}
		}
		if !short {
			reverse(out)
			return string(out), nil
		}
		buf = append(buf, next()...)
	}
}

func reverse(rs []rune) {
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
}
