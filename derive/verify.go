package derive

import (
	"github.com/karu-codes/passmaker/basen"
	"github.com/karu-codes/passmaker/digest"
	"github.com/karu-codes/passmaker/hkeyed"
)

// Verification checksum parameters. These are fixed and profile-independent:
// the short string only tells the user they typed the same master secret as
// before, it is not a password.
const (
	verifyAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	verifyLength   = 3
	verifyText     = " "
)

var verifyBackend = digest.MustParse("sha256")

// Verify derives the master-secret checksum. It uses the same construction
// as Generate with hardcoded parameters and cannot fail.
func Verify(master string) string {
	stream := hkeyed.NewStream(verifyBackend, []byte(master), []byte(verifyText))
	out, err := basen.Encode(verifyAlphabet, verifyLength, stream.Next)
	if err != nil {
		// Unreachable: the alphabet above is a non-empty constant.
		return ""
	}
	return out
}
