package ristretto255

import (
	"github.com/tos-network/toscrypto/field"
	"github.com/tos-network/toscrypto/group/edwards25519"
)

// Fixed constants used by the Elligator2-based map_to_curve recipe:
// oneMinusDSq = 1 - d^2, dMinusOneSq = (d-1)^2, sqrtADMinusOne =
// sqrt(a*d - 1) with a = -1.
var (
	oneMinusDSq    = fieldFromHex("76c15f94c1097ce20f355ecd38a1812ce4df70beddab9499d7e0b3b2a8729002")
	dMinusOneSq    = fieldFromHex("204ded44aa5aad3199191eb02c4a9ed2eb4e9b522fd3dc4c41226cf67ab36859")
	sqrtADMinusOne = fieldFromHex("1b2e7b49a0f6977ebd54781b0c8e9daffdd1f531c9fc3c0fac48832bbf316937")
)

// MapToCurve implements the Ristretto255 Elligator2 map, sending a
// field element t to a curve point.
func MapToCurve(t field.Elt) *edwards25519.Point {
	one := field.New().One()

	r := field.New().Multiply(sqrtM1, field.New().Square(t))

	u := field.New().Add(r, one)
	u.Multiply(u, oneMinusDSq)

	v := field.New().Multiply(r, dEd)
	v.Add(v, one)
	v = field.New().Negate(v)
	v.Multiply(v, field.New().Add(r, dEd))

	wasSquare, s := field.New().SqrtRatio(u, v)

	sT := field.New().Multiply(s, t)
	sPrime := field.New().Negate(field.New().Abs(sT))
	sFinal := field.New().Select(s, sPrime, wasSquare)
	c := field.New().Select(field.New().Negate(one), r, wasSquare)

	n := field.New().Multiply(c, field.New().Sub(r, one))
	n.Multiply(n, dMinusOneSq)
	n.Sub(n, v)

	sSq := field.New().Square(sFinal)
	w0 := field.New().Add(sFinal, sFinal)
	w0.Multiply(w0, v)
	w1 := field.New().Multiply(n, sqrtADMinusOne)
	w2 := field.New().Sub(one, sSq)
	w3 := field.New().Add(one, sSq)

	return &edwards25519.Point{
		X: field.New().Multiply(w0, w3),
		Y: field.New().Multiply(w2, w1),
		Z: field.New().Multiply(w1, w3),
		T: field.New().Multiply(w0, w2),
	}
}

// HashToCurve maps a 64-byte uniformly-random input to a Ristretto255
// element by splitting it into two field elements, applying MapToCurve
// to each, and summing the results (the standard Ristretto
// hash-to-group construction).
func HashToCurve(input []byte) *Element {
	if len(input) != 64 {
		panic("ristretto255: HashToCurve requires a 64-byte input")
	}
	t0 := field.New().SetBytes(clampTop(input[:32]))
	t1 := field.New().SetBytes(clampTop(input[32:]))

	p0 := MapToCurve(t0)
	p1 := MapToCurve(t1)

	sum := edwards25519.Add(p0, p1, edwards25519.AddOptions{})
	return &Element{p: sum}
}

func clampTop(b []byte) []byte {
	out := make([]byte, 32)
	copy(out, b)
	out[31] &= 0x7f
	return out
}
