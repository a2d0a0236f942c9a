// Package hkeyed builds keyed digests over the supported hash backends and
// expands them into an arbitrarily long, reproducible byte stream.
//
// The construction is the standard outer/inner padded keyed hash:
//
//	digest = H((K ^ opad) || H((K ^ ipad) || M))
//
// with the 64-byte block size shared by all supported backends. Expansion
// repeats the construction with a counter joined to the message, so the same
// (backend, key, message) triple always yields the same byte sequence.
package hkeyed

import (
	"crypto/hmac"
	"strconv"

	"github.com/karu-codes/passmaker/digest"
)

// Stream yields successive keyed-digest blocks for one derivation. Block 0
// is the plain keyed digest of the message; block i appends "\n" and the
// decimal counter value, matching the reference algorithm's join. A Stream
// is not safe for concurrent use; each derivation call owns its own.
type Stream struct {
	backend digest.Backend
	key     []byte
	message []byte
	counter uint64
}

// NewStream prepares the expansion stream. The key and message slices are
// retained; callers must not mutate them while the stream is live.
func NewStream(b digest.Backend, key, message []byte) *Stream {
	return &Stream{backend: b, key: key, message: message}
}

// Next returns the next digest block and advances the counter. Every call
// allocates a fresh slice of exactly BlockLen bytes.
func (s *Stream) Next() []byte {
	mac := hmac.New(s.backend.New, s.key)
	mac.Write(s.message)
	if s.counter > 0 {
		mac.Write([]byte("\n"))
		mac.Write([]byte(strconv.FormatUint(s.counter, 10)))
	}
	s.counter++
	return mac.Sum(nil)
}

// BlockLen returns the size in bytes of each block Next produces.
func (s *Stream) BlockLen() int { return s.backend.Size() }

// Sum computes a single keyed digest without expansion.
func Sum(b digest.Backend, key, message []byte) []byte {
	return NewStream(b, key, message).Next()
}
