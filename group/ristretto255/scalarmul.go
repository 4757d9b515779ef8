package ristretto255

import (
	"github.com/tos-network/toscrypto/group/edwards25519"
	"github.com/tos-network/toscrypto/scalar"
	"github.com/tos-network/toscrypto/scalarmul"
)

// ScalarBaseMult sets v = s*G for the standard generator G and returns
// v, using the constant-time fixed-base multiplier (suitable for
// secret scalars such as signing nonces and private keys).
func (v *Element) ScalarBaseMult(s *scalar.Scalar) *Element {
	v.p = scalarmul.MulBaseConstTime(s)
	return v
}

// ScalarMult sets v = s*a and returns v, variable-time. Only suitable
// when s is not secret (verification, public aggregation), matching
// scalarmul.MulVarTime's own contract.
func (v *Element) ScalarMult(s *scalar.Scalar, a *Element) *Element {
	v.p = scalarmul.MulVarTime(a.p, s)
	return v
}

// VarTimeMultiScalarMult returns sum(scalars[i]*points[i]), variable-
// time, via scalarmul.MultiScalarMul's Straus-windowed batch path.
func VarTimeMultiScalarMult(scalars []*scalar.Scalar, points []*Element) *Element {
	inner := make([]*edwards25519.Point, len(points))
	for i, p := range points {
		inner[i] = p.p
	}
	return &Element{p: scalarmul.MultiScalarMul(scalars, inner)}
}

// VarTimeDoubleScalarBaseMult returns a*A + b*G, variable-time, using
// scalarmul's combined double base-point multiplier (the same shape
// Ed25519 verification and Schnorr verification both use).
func VarTimeDoubleScalarBaseMult(a *scalar.Scalar, A *Element, b *scalar.Scalar) *Element {
	return &Element{p: scalarmul.DoubleScalarMulBase(a, A.p, b)}
}
