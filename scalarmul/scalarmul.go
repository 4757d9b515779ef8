// Package scalarmul implements scalar multiplication over
// group/edwards25519, in the four shapes spec.md calls for: a
// variable-time base-point multiplier using a precomputed odd-multiple
// table and signed width-w NAF, a variable-time generic double-and-add
// path (plus a combined double base multiplier for signature
// verification), a constant-time fixed-base multiplier that walks a
// two-dimensional table with constant-time selects instead of branching
// on scalar digits, and a Straus multi-scalar multiplication routine for
// batched verification (e.g. Bulletproofs).
//
// X25519's Montgomery ladder lives in montgomery.go; it operates
// directly on field.Elt u-coordinates rather than full Edwards points.
package scalarmul

import (
	"github.com/tos-network/toscrypto/group/edwards25519"
	"github.com/tos-network/toscrypto/scalar"
)

// scalarBytesLE returns s's 32-byte little-endian encoding, the form
// every digit-extraction routine below walks bit by bit.
func scalarBytesLE(s *scalar.Scalar) [32]byte {
	var out [32]byte
	copy(out[:], s.Bytes())
	return out
}

// bitAt returns bit i (0 = least significant) of a 32-byte little-endian
// scalar encoding.
func bitAt(b [32]byte, i int) int {
	return int((b[i/8] >> uint(i%8)) & 1)
}
