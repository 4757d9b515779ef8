// Package edwards25519 implements the twisted Edwards curve
//
//	-x^2 + y^2 = 1 + d*x^2*y^2  (mod 2^255-19)
//
// underlying Ed25519 and Ristretto255, in extended (X:Y:Z:T) projective
// coordinates with X/Z = x, Y/Z = y, X*Y = Z*T.
//
// The addition law is the 4-way parallel Hisil-Wong-Carter-Dawson
// formula (Hisil, Wong, Carter, Dawson, "Twisted Edwards Curves
// Revisited", 2008/522, §4.2), computed by one core routine (addCore)
// that Add, AddCached and Double share rather than a family of
// near-duplicate functions. The options a caller sets are plain struct
// fields of AddOptions; of these, only BZIsOne changes the arithmetic.
package edwards25519

import "github.com/tos-network/toscrypto/field"

// d = -121665/121666 mod p, the curve equation parameter.
var dConst = mustFieldElement("a3785913ca4deb75abd841414d0a700098e879777940c78c73fe6f2bee6c0352")

// k = 2*d mod p, used by the addition formula's C term.
var kConst = mustFieldElement("59f1b226949bd6eb56b183829a14e00030d1f3eef2808e19e7fcdf56dcd90624")

func mustFieldElement(hexLE string) field.Elt {
	b := make([]byte, len(hexLE)/2)
	for i := range b {
		hi := fromHexNibble(hexLE[2*i])
		lo := fromHexNibble(hexLE[2*i+1])
		b[i] = hi<<4 | lo
	}
	return field.New().SetBytes(b)
}

func fromHexNibble(c byte) byte {
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

// Point is a point on the curve in extended projective coordinates.
type Point struct {
	X, Y, Z, T field.Elt
}

// Identity returns the neutral element (0:1:1:0).
func Identity() *Point {
	return &Point{
		X: field.New().Zero(),
		Y: field.New().One(),
		Z: field.New().One(),
		T: field.New().Zero(),
	}
}

// Cached holds a precomputed form of a point: (Y-X, Y+X, k*T, Z), used
// as the b-operand of AddCached, eliding two additions and the
// k-scaling multiply inside the addition formula.
type Cached struct {
	YplusX, YminusX, kT, Z field.Elt
}

// Precompute fills c with p's cached form.
func (c *Cached) Precompute(p *Point) *Cached {
	c.YplusX = field.New().Add(p.Y, p.X)
	c.YminusX = field.New().Sub(p.Y, p.X)
	c.kT = field.New().Multiply(p.T, kConst)
	c.Z = field.New().Set(p.Z)
	return c
}

// AddOptions carries the caller's options for the addition formula.
// The zero value performs the full, general-case addition.
type AddOptions struct {
	// BZIsOne skips the a.Z*b.Z multiply when b.Z is known to be 1
	// (e.g. b was just decoded, or is the fixed base point).
	BZIsOne bool
	// BIsPrecomputed is set by AddCached, whose b operand is already in
	// Cached form. addCore does not read it; setting it on a call to Add
	// has no effect.
	BIsPrecomputed bool
	// SkipLastMul is not read by addCore: Add and AddCached always
	// perform the final multiply and return a complete Point. No
	// partial-result form is exported.
	SkipLastMul bool
}

// partial holds the four intermediate products of the HWCD addition
// formula before the final multiply that produces (X:Y:Z:T).
type partial struct {
	r1, r2, r3, r4 field.Elt
}

// addCore computes the HWCD §4.2 intermediate terms for a+b, where b is
// given either as a full Point (general case) or a Cached precomputation.
func addCore(a *Point, bYplusX, bYminusX, bKT, bZ field.Elt, opts AddOptions) *partial {
	// A = (Y1-X1)*(Y2-X2), B = (Y1+X1)*(Y2+X2)
	yMinusX := field.New().Sub(a.Y, a.X)
	yPlusX := field.New().Add(a.Y, a.X)

	A := field.New().Multiply(yMinusX, bYminusX)
	B := field.New().Multiply(yPlusX, bYplusX)

	// C = T1 * k*T2 (k*T2 is precomputed in bKT either way)
	C := field.New().Multiply(a.T, bKT)

	// D = 2*Z1*Z2 (or 2*Z1 if b.Z == 1)
	var D field.Elt
	if opts.BZIsOne {
		D = field.New().Add(a.Z, a.Z)
	} else {
		D = field.New().Multiply(a.Z, bZ)
		D.Add(D, D)
	}

	r1 := field.New().Sub(B, A)
	r2 := field.New().Add(B, A)
	r3 := field.New().Add(D, C)
	r4 := field.New().Sub(D, C)

	return &partial{r1: r1, r2: r2, r3: r3, r4: r4}
}

// finalMul produces the extended-coordinate point from a partial result:
// X = r1*r4, Y = r2*r3, Z = r3*r4, T = r1*r2.
func (p *partial) finalMul() *Point {
	return &Point{
		X: field.New().Multiply(p.r1, p.r4),
		Y: field.New().Multiply(p.r2, p.r3),
		Z: field.New().Multiply(p.r3, p.r4),
		T: field.New().Multiply(p.r1, p.r2),
	}
}

// Add returns a + b as a new, fully computed Point, using the options
// in opts. Only opts.BZIsOne affects the computation.
func Add(a *Point, b *Point, opts AddOptions) *Point {
	var c Cached
	c.Precompute(b)
	part := addCore(a, c.YplusX, c.YminusX, c.kT, c.Z, opts)
	return part.finalMul()
}

// AddCached sets v = a + b, where b is given in precomputed Cached form
// (opts.BIsPrecomputed is implied).
func AddCached(a *Point, b *Cached, opts AddOptions) *Point {
	opts.BIsPrecomputed = true
	part := addCore(a, b.YplusX, b.YminusX, b.kT, b.Z, opts)
	return part.finalMul()
}

// Neg sets v = -a: flips X and T, leaves Y and Z.
func Neg(a *Point) *Point {
	return &Point{
		X: field.New().Negate(a.X),
		Y: field.New().Set(a.Y),
		Z: field.New().Set(a.Z),
		T: field.New().Negate(a.T),
	}
}

// Eq reports whether a and b represent the same curve point, using the
// projective cross-product test (a.X*b.Z == b.X*a.Z and a.Y*b.Z ==
// b.Y*a.Z), which is correct even when Z != 1.
func Eq(a, b *Point) bool {
	x1z2 := field.New().Multiply(a.X, b.Z)
	x2z1 := field.New().Multiply(b.X, a.Z)
	y1z2 := field.New().Multiply(a.Y, b.Z)
	y2z1 := field.New().Multiply(b.Y, a.Z)
	return x1z2.Equal(x2z1) == 1 && y1z2.Equal(y2z1) == 1
}

// EqZ1 shortcuts Eq for the common case where b.Z == 1 (b was just
// decoded or is a table entry): a.X == b.X*a.Z and a.Y == b.Y*a.Z.
func EqZ1(a, b *Point) bool {
	x2z1 := field.New().Multiply(b.X, a.Z)
	y2z1 := field.New().Multiply(b.Y, a.Z)
	return a.X.Equal(x2z1) == 1 && a.Y.Equal(y2z1) == 1
}

// IsSmallOrder reports whether p is one of the eight points of order
// dividing 8 (the curve's cofactor subgroup), by checking that 8*P is
// the identity. Used to reject low-order public keys per RFC 8032's
// recommended (not mandatory) check.
func IsSmallOrder(p *Point) bool {
	r := Double(p)
	r = Double(r)
	r = Double(r)
	return r.X.IsZero() == 1 && r.Y.Equal(r.Z) == 1
}
