package edwards25519

import "github.com/tos-network/toscrypto/field"

// Bytes encodes p as 32 bytes: the little-endian encoding of y = Y/Z,
// with the sign of x = X/Z xored into the top bit.
func (p *Point) Bytes() []byte {
	zInv := field.New().Invert(p.Z)
	x := field.New().Multiply(p.X, zInv)
	y := field.New().Multiply(p.Y, zInv)

	out := y.Bytes()
	out[31] |= byte(x.Sign()) << 7
	return out
}

// SetBytes decodes a 32-byte Ed25519 point encoding into p, computing
// x^2 = (y^2-1)/(d*y^2+1) via sqrt_ratio and choosing the root whose
// sign matches the encoded sign bit. It reports false if the encoding
// does not correspond to a point on the curve (x^2 was not square).
//
// Per RFC 8032 §5.1.7's documented deviation, this accepts non-canonical
// y encodings (y >= p) rather than rejecting them outright; callers that
// need to reject low-order points use IsSmallOrder explicitly.
func (p *Point) SetBytes(buf []byte) (*Point, bool) {
	if len(buf) != 32 {
		return p, false
	}
	sign := int(buf[31] >> 7)

	yBytes := make([]byte, 32)
	copy(yBytes, buf)
	yBytes[31] &= 0x7f

	y := field.New().SetBytes(yBytes)

	ySq := field.New().Square(y)
	numerator := field.New().Sub(ySq, field.New().One())
	denominator := field.New().Multiply(dConst, ySq)
	denominator.Add(denominator, field.New().One())

	wasSquare, x := field.New().SqrtRatio(numerator, denominator)
	if wasSquare != 1 {
		return p, false
	}
	if x.IsZero() == 1 && sign == 1 {
		return p, false
	}
	if x.Sign() != sign {
		x = field.New().Negate(x)
	}

	p.X = x
	p.Y = y
	p.Z = field.New().One()
	p.T = field.New().Multiply(x, y)
	return p, true
}

// SetBytes2x decodes a and b in one call. The spec frames this as a
// pipelining opportunity (the two sqrt_ratio calls could run in SIMD
// lanes); field.Elt's current backends are not lane-parallel (see
// DESIGN.md), so this performs the two decodes sequentially and exists
// to keep that call-site shape available to a future SIMD backend
// without an API break.
func SetBytes2x(bufA, bufB []byte) (a, b *Point, ok bool) {
	a = new(Point)
	b = new(Point)
	var okA, okB bool
	a, okA = a.SetBytes(bufA)
	b, okB = b.SetBytes(bufB)
	return a, b, okA && okB
}
