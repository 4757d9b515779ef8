package ristretto255

import (
	"github.com/tos-network/toscrypto/field"
	"github.com/tos-network/toscrypto/group/edwards25519"
)

// sqrtM1 = sqrt(-1) mod p, shared with the decode recipe below.
var sqrtM1 = fieldFromHex("b0a00e4a271beec478e42fad0618432fa7d7fb3d99004d2b0bdfc14f8024832b")

// dEd = the Edwards curve's d parameter, needed by the decode formula's
// v term (v = -d*u1^2 - u2^2).
var dEd = fieldFromHex("a3785913ca4deb75abd841414d0a700098e879777940c78c73fe6f2bee6c0352")

func fieldFromHex(hexLE string) field.Elt {
	b := make([]byte, len(hexLE)/2)
	for i := range b {
		b[i] = hexNibble(hexLE[2*i])<<4 | hexNibble(hexLE[2*i+1])
	}
	return field.New().SetBytes(b)
}

func hexNibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}

// Bytes encodes v as the canonical 32-byte Ristretto255 representative.
//
// Recipe (spec.md §4.R / ristretto.group): apply the two-torsion
// rotation based on sgn(t*zInv), then the sign flip based on
// sgn(x*zInv), and emit |den_inv*(z-y)|.
func (v *Element) Bytes() ([]byte, bool) {
	p := v.p
	u1 := field.New().Add(p.Z, p.Y)
	u1.Multiply(u1, field.New().Sub(p.Z, p.Y))

	u2 := field.New().Multiply(p.X, p.Y)

	invSqrt := field.New().Multiply(u1, field.New().Square(u2))
	_, invSqrt = field.New().SqrtRatio(field.New().One(), invSqrt)

	den1 := field.New().Multiply(invSqrt, u1)
	den2 := field.New().Multiply(invSqrt, u2)
	zInv := field.New().Multiply(den1, den2)
	zInv.Multiply(zInv, p.T)

	ix := field.New().Multiply(p.X, sqrtM1)
	iy := field.New().Multiply(p.Y, sqrtM1)
	enchantedDenom := field.New().Multiply(den1, invSqrtDConstMinusOne())

	rotateT := field.New().Multiply(p.T, zInv)
	rotate := rotateT.Sign() == 1

	x := field.New().Set(p.X)
	y := field.New().Set(p.Y)
	denInv := den2

	x = field.New().Select(iy, x, boolToCond(rotate))
	y = field.New().Select(ix, y, boolToCond(rotate))
	denInv = field.New().Select(enchantedDenom, denInv, boolToCond(rotate))

	xZ := field.New().Multiply(x, zInv)
	negY := field.New().Negate(y)
	y = field.New().Select(negY, y, boolToCond(xZ.Sign() == 1))

	s := field.New().Multiply(denInv, field.New().Sub(p.Z, y))
	s = field.New().Abs(s)
	return s.Bytes(), true
}

func boolToCond(b bool) int {
	if b {
		return 1
	}
	return 0
}

// invSqrtDConstMinusOne is 1/sqrt(-1 - d), a fixed constant used by the
// "enchanted" denominator branch of the encode recipe.
func invSqrtDConstMinusOne() field.Elt {
	negOneMinusD := field.New().Negate(field.New().Add(field.New().One(), dEd))
	_, r := field.New().SqrtRatio(field.New().One(), negOneMinusD)
	return r
}

// SetBytes decodes a 32-byte Ristretto255 encoding into v, reporting
// false if the encoding is not canonical, carries the sign bit set, or
// does not otherwise correspond to a valid representative.
func (v *Element) SetBytes(buf []byte) (*Element, bool) {
	if len(buf) != 32 {
		return v, false
	}

	s := field.New().SetBytes(buf)
	// Reject non-canonical encodings: s must round-trip byte-for-byte.
	if !bytesEqual(s.Bytes(), buf) {
		return v, false
	}
	if s.Sign() == 1 {
		return v, false
	}

	one := field.New().One()
	ss := field.New().Square(s)
	u1 := field.New().Sub(one, ss)
	u2 := field.New().Add(one, ss)
	u2Sq := field.New().Square(u2)

	vNum := field.New().Multiply(dEd, field.New().Square(u1))
	vNum = field.New().Negate(vNum)
	vNum = field.New().Sub(vNum, u2Sq)

	vu2Sq := field.New().Multiply(vNum, u2Sq)
	wasSquare, invSqrtV := field.New().SqrtRatio(one, vu2Sq)
	if wasSquare != 1 {
		return v, false
	}

	denX := field.New().Multiply(invSqrtV, u2)
	denY := field.New().Multiply(invSqrtV, denX)
	denY.Multiply(denY, vNum)

	x := field.New().Multiply(field.New().Add(s, s), denX)
	x = field.New().Abs(x)

	y := field.New().Multiply(u1, denY)

	t := field.New().Multiply(x, y)

	if t.Sign() == 1 || y.IsZero() == 1 {
		return v, false
	}

	p := &edwards25519.Point{
		X: x,
		Y: y,
		Z: one,
		T: t,
	}
	v.p = p
	return v, true
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
