// Package hash provides the hash functions the rest of this module
// consumes (spec.md §4.H): SHA-512 (RFC 8032 signing), SHA3-256/512 and
// Keccak-256 (sigma-proof and legacy digest compatibility), each with a
// one-shot and a streaming (io.Writer/hash.Hash) form, plus an optional
// fixed-width N-way batch API.
//
// SHA-512 is backed by the standard library (RFC 8032 mandates the
// literal algorithm; there is no ecosystem substitute to reach for).
// SHA3-256, SHA3-512, and Keccak-256 are backed by golang.org/x/crypto/sha3,
// which is also where the legacy (non-NIST-padded) Keccak-256 variant
// lives — crypto/sha3's standard-library SHA-3 family deliberately does
// not expose it.
package hash

import (
	"crypto/sha512"
	"hash"

	"golang.org/x/crypto/sha3"
)

// SHA512 returns the SHA-512 digest of msg.
func SHA512(msg []byte) [64]byte {
	return sha512.Sum512(msg)
}

// NewSHA512 returns a streaming SHA-512 hash.Hash.
func NewSHA512() hash.Hash {
	return sha512.New()
}

// SHA3_256 returns the SHA3-256 digest of msg.
func SHA3_256(msg []byte) [32]byte {
	return sha3.Sum256(msg)
}

// NewSHA3_256 returns a streaming SHA3-256 hash.Hash.
func NewSHA3_256() hash.Hash {
	return sha3.New256()
}

// SHA3_512 returns the SHA3-512 digest of msg.
func SHA3_512(msg []byte) [64]byte {
	return sha3.Sum512(msg)
}

// NewSHA3_512 returns a streaming SHA3-512 hash.Hash.
func NewSHA3_512() hash.Hash {
	return sha3.New512()
}

// Keccak256 returns the Keccak-256 digest of msg (the pre-standardization
// Keccak padding, as used by Ethereum-style address/transaction hashing —
// distinct from NIST SHA3-256's domain separation suffix).
func Keccak256(msg []byte) [32]byte {
	h := sha3.NewLegacyKeccak256()
	_, _ = h.Write(msg)
	var out [32]byte
	h.Sum(out[:0])
	return out
}

// NewKeccak256 returns a streaming Keccak-256 hash.Hash.
func NewKeccak256() hash.Hash {
	return sha3.NewLegacyKeccak256()
}
