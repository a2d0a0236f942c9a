// Package digest exposes the closed set of hash algorithms the password
// derivation engine supports. The set is fixed for interoperability with the
// reference algorithm family: adding or removing an algorithm silently changes
// every password derived with it.
package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"errors"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/ripemd160"
)

// Algorithm identifies a hash algorithm by its canonical lowercase name.
type Algorithm string

const (
	AlgorithmMD4       Algorithm = "md4"
	AlgorithmMD5       Algorithm = "md5"
	AlgorithmSHA1      Algorithm = "sha1"
	AlgorithmSHA256    Algorithm = "sha256"
	AlgorithmRIPEMD160 Algorithm = "ripemd160"
)

// ErrUnknownAlgorithm indicates a name that resolves to no supported
// algorithm. Selection must never fall back to a default silently.
var ErrUnknownAlgorithm = errors.New("digest: unknown hash algorithm")

// Backend is one algorithm of the supported set, carrying its digest size and
// block size as fixed properties. The zero value is not usable; obtain a
// Backend through Parse or MustParse.
type Backend struct {
	alg  Algorithm
	size int
	ctor func() hash.Hash
}

// All five supported algorithms use a 64-byte input block, which the keyed
// construction relies on.
const blockSize = 64

var backends = map[Algorithm]Backend{
	AlgorithmMD4:       {alg: AlgorithmMD4, size: md4.Size, ctor: md4.New},
	AlgorithmMD5:       {alg: AlgorithmMD5, size: md5.Size, ctor: md5.New},
	AlgorithmSHA1:      {alg: AlgorithmSHA1, size: sha1.Size, ctor: sha1.New},
	AlgorithmSHA256:    {alg: AlgorithmSHA256, size: sha256.Size, ctor: sha256.New},
	AlgorithmRIPEMD160: {alg: AlgorithmRIPEMD160, size: ripemd160.Size, ctor: ripemd160.New},
}

// Parse resolves an algorithm name to its Backend. Matching is
// case-insensitive and ignores dashes, so "MD5", "Sha256" and "RIPEMD-160"
// all resolve. Unknown names return ErrUnknownAlgorithm.
func Parse(name string) (Backend, error) {
	normalized := strings.ToLower(strings.ReplaceAll(name, "-", ""))
	b, ok := backends[Algorithm(normalized)]
	if !ok {
		return Backend{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return b, nil
}

// MustParse is Parse for compile-time-known names. It panics on unknown
// names and is meant for package-level constants only.
func MustParse(name string) Backend {
	b, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return b
}

// Algorithm returns the canonical name of the backend.
func (b Backend) Algorithm() Algorithm { return b.alg }

// Size returns the digest size in bytes.
func (b Backend) Size() int { return b.size }

// BlockSize returns the input block size in bytes.
func (b Backend) BlockSize() int { return blockSize }

// New returns a fresh hash.Hash for the backend.
func (b Backend) New() hash.Hash { return b.ctor() }

// Sum computes the digest of data in one call.
func (b Backend) Sum(data []byte) []byte {
	h := b.ctor()
	h.Write(data)
	return h.Sum(nil)
}

// Algorithms lists the supported algorithms in their fixed display order.
func Algorithms() []Algorithm {
	return []Algorithm{
		AlgorithmMD4,
		AlgorithmMD5,
		AlgorithmSHA1,
		AlgorithmSHA256,
		AlgorithmRIPEMD160,
	}
}
