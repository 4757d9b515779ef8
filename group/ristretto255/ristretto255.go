// Package ristretto255 implements the Ristretto255 group: a
// prime-order group built as a quotient of the Ed25519 curve's
// cofactor-8 point group, hiding the cofactor from callers entirely.
//
// Points wrap an edwards25519.Point but are not interchangeable with
// it: Ristretto equality is not Edwards equality (two different
// Edwards representatives can be the same Ristretto element), so every
// operation here goes through this package's own Equal rather than the
// embedded point's.
//
// Structure (wrapper + map-to-curve helper) follows the
// Yawning-edwards25519-extra package split between its top-level
// elligator2/h2c wrappers and the lower-level montgomery/h2c helpers;
// the decode/encode recipe itself follows spec.md's Ristretto255
// section, which matches the upstream ristretto.group description.
package ristretto255

import (
	"github.com/tos-network/toscrypto/group/edwards25519"
)

// Element is a Ristretto255 group element.
type Element struct {
	p *edwards25519.Point
}

// Identity returns the group identity element.
func Identity() *Element {
	return &Element{p: edwards25519.Identity()}
}

// Generator returns the standard Ristretto255 base point.
func Generator() *Element {
	return &Element{p: edwards25519.Generator()}
}

// Add sets v = a + b and returns v.
func (v *Element) Add(a, b *Element) *Element {
	v.p = edwards25519.Add(a.p, b.p, edwards25519.AddOptions{})
	return v
}

// Subtract sets v = a - b and returns v.
func (v *Element) Subtract(a, b *Element) *Element {
	v.p = edwards25519.Add(a.p, edwards25519.Neg(b.p), edwards25519.AddOptions{})
	return v
}

// Negate sets v = -a and returns v.
func (v *Element) Negate(a *Element) *Element {
	v.p = edwards25519.Neg(a.p)
	return v
}

// Equal reports whether v and other represent the same Ristretto255
// element. This is the Ristretto equality test (x1*y2 == x2*y1 ||
// y1*y2 == x1*x2 wouldn't suffice on its own); it is implemented via
// the canonical-encoding comparison, which is defined to be correct
// for any pair of internal Edwards representatives of the same coset
// and is simpler to get right than a direct cross-multiplication test
// across every one of the four Ed25519-point representatives of a
// Ristretto element.
func (v *Element) Equal(other *Element) bool {
	a, aOK := v.Bytes()
	b, bOK := other.Bytes()
	if !aOK || !bOK {
		return false
	}
	if len(a) != len(b) {
		return false
	}
	eq := 1
	for i := range a {
		if a[i] != b[i] {
			eq = 0
		}
	}
	return eq == 1
}

// Inner exposes the wrapped Edwards point for scalarmul and transcript
// code.
func (v *Element) Inner() *edwards25519.Point {
	return v.p
}

// FromEdwards wraps an already-validated Edwards point as a Ristretto
// element. Callers must ensure p was produced by Ristretto-aware code
// (e.g. scalar multiplication of a Ristretto basis point); wrapping an
// arbitrary Edwards point that isn't such a representative breaks the
// one-representative-per-coset abstraction Ristretto provides.
func FromEdwards(p *edwards25519.Point) *Element {
	return &Element{p: p}
}

