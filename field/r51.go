package field

import "math/bits"

// Elt51 is the radix 2^51 field representation: value = l0 + l1*2^51 +
// l2*2^102 + l3*2^153 + l4*2^204. It is the reference backend: New
// returns it on hosts without AVX2 or AVX-512 IFMA, and Elt255 and Elt43
// route their arithmetic through it.
//
// Limbs are not required to be individually carried between operations;
// every method reduces its operands into the 51-bit-per-limb safe range
// internally before doing arithmetic that depends on that bound (products
// and the ×19 wraparound), so the output of any method here is always a
// valid input to any other. This trades the spec's "_nr" fine-grained
// bound tracking for a simpler, always-safe contract (see DESIGN.md).
type Elt51 struct {
	l0, l1, l2, l3, l4 uint64
}

const maskLow51 = (uint64(1) << 51) - 1

// 16*(2^255-19) field-prime limbs, used to offset subtraction so it never
// underflows a uint64. p0 = 2^51-19, p1..p4 = 2^51-1.
const (
	sub16p0 = 16 * ((uint64(1) << 51) - 19)
	sub16p  = 16 * ((uint64(1) << 51) - 1)
)

func newElt51FromLimbs(l0, l1, l2, l3, l4 uint64) *Elt51 {
	v := &Elt51{l0, l1, l2, l3, l4}
	return v.carry()
}

// NewElt51 returns a new zero-valued Elt51.
func NewElt51() *Elt51 { return new(Elt51) }

func (v *Elt51) Zero() Elt { *v = Elt51{}; return v }

func (v *Elt51) One() Elt { *v = Elt51{l0: 1}; return v }

func (v *Elt51) Set(a Elt) Elt { *v = *a.(*Elt51); return v }

func (v *Elt51) Clone() Elt {
	n := *v
	return &n
}

func (v *Elt51) Add(a, b Elt) Elt {
	x, y := a.(*Elt51), b.(*Elt51)
	v.l0 = x.l0 + y.l0
	v.l1 = x.l1 + y.l1
	v.l2 = x.l2 + y.l2
	v.l3 = x.l3 + y.l3
	v.l4 = x.l4 + y.l4
	return v.carry()
}

func (v *Elt51) Sub(a, b Elt) Elt {
	x, y := a.(*Elt51), b.(*Elt51)
	v.l0 = (x.l0 + sub16p0) - y.l0
	v.l1 = (x.l1 + sub16p) - y.l1
	v.l2 = (x.l2 + sub16p) - y.l2
	v.l3 = (x.l3 + sub16p) - y.l3
	v.l4 = (x.l4 + sub16p) - y.l4
	return v.carry()
}

func (v *Elt51) Negate(a Elt) Elt {
	var zero Elt51
	return v.Sub(&zero, a)
}

// carry propagates limbs into the 51-bit safe range, wrapping the top
// limb's overflow back into l0 scaled by 19 (since 2^255 ≡ 19 mod p).
func (v *Elt51) carry() *Elt51 {
	c0 := v.l0 >> 51
	v.l0 &= maskLow51
	v.l1 += c0
	c1 := v.l1 >> 51
	v.l1 &= maskLow51
	v.l2 += c1
	c2 := v.l2 >> 51
	v.l2 &= maskLow51
	v.l3 += c2
	c3 := v.l3 >> 51
	v.l3 &= maskLow51
	v.l4 += c3
	c4 := v.l4 >> 51
	v.l4 &= maskLow51
	v.l0 += c4 * 19
	c0b := v.l0 >> 51
	v.l0 &= maskLow51
	v.l1 += c0b
	return v
}

func (v *Elt51) Carry() Elt { return v.carry() }

// mulAdd accumulates x*y into the 128-bit (hi, lo) pair.
func mulAdd(hi, lo *uint64, x, y uint64) {
	h, l := bits.Mul64(x, y)
	var c uint64
	*lo, c = bits.Add64(*lo, l, 0)
	*hi, _ = bits.Add64(*hi, h, 0)
	*hi += c
}

// reduceWide carries five 128-bit (hi,lo) accumulators representing the
// coefficients of 2^(51*i) into a fully carried Elt51.
func reduceWide(h0, l0, h1, l1, h2, l2, h3, l3, h4, l4 uint64) *Elt51 {
	shiftDown := func(hi, lo uint64) uint64 { return (hi << 13) | (lo >> 51) }

	c0 := shiftDown(h0, l0)
	l0 &= maskLow51
	var carry uint64
	l1, carry = bits.Add64(l1, c0, 0)
	h1 += carry

	c1 := shiftDown(h1, l1)
	l1 &= maskLow51
	l2, carry = bits.Add64(l2, c1, 0)
	h2 += carry

	c2 := shiftDown(h2, l2)
	l2 &= maskLow51
	l3, carry = bits.Add64(l3, c2, 0)
	h3 += carry

	c3 := shiftDown(h3, l3)
	l3 &= maskLow51
	l4, carry = bits.Add64(l4, c3, 0)
	h4 += carry

	c4 := shiftDown(h4, l4)
	l4 &= maskLow51
	l0 += c4 * 19

	// One more partial carry: l0 may now exceed 51 bits.
	c0b := l0 >> 51
	l0 &= maskLow51
	l1 += c0b

	return &Elt51{l0, l1, l2, l3, l4}
}

func (v *Elt51) Multiply(a, b Elt) Elt {
	x, y := a.(*Elt51).carry(), b.(*Elt51).carry()

	var h0, l0, h1, l1, h2, l2, h3, l3, h4, l4 uint64

	// 19x-scaled operands used for the wraparound cross terms.
	y1_19 := y.l1 * 19
	y2_19 := y.l2 * 19
	y3_19 := y.l3 * 19
	y4_19 := y.l4 * 19

	mulAdd(&h0, &l0, x.l0, y.l0)
	mulAdd(&h0, &l0, x.l1, y4_19)
	mulAdd(&h0, &l0, x.l2, y3_19)
	mulAdd(&h0, &l0, x.l3, y2_19)
	mulAdd(&h0, &l0, x.l4, y1_19)

	mulAdd(&h1, &l1, x.l0, y.l1)
	mulAdd(&h1, &l1, x.l1, y.l0)
	mulAdd(&h1, &l1, x.l2, y4_19)
	mulAdd(&h1, &l1, x.l3, y3_19)
	mulAdd(&h1, &l1, x.l4, y2_19)

	mulAdd(&h2, &l2, x.l0, y.l2)
	mulAdd(&h2, &l2, x.l1, y.l1)
	mulAdd(&h2, &l2, x.l2, y.l0)
	mulAdd(&h2, &l2, x.l3, y4_19)
	mulAdd(&h2, &l2, x.l4, y3_19)

	mulAdd(&h3, &l3, x.l0, y.l3)
	mulAdd(&h3, &l3, x.l1, y.l2)
	mulAdd(&h3, &l3, x.l2, y.l1)
	mulAdd(&h3, &l3, x.l3, y.l0)
	mulAdd(&h3, &l3, x.l4, y4_19)

	mulAdd(&h4, &l4, x.l0, y.l4)
	mulAdd(&h4, &l4, x.l1, y.l3)
	mulAdd(&h4, &l4, x.l2, y.l2)
	mulAdd(&h4, &l4, x.l3, y.l1)
	mulAdd(&h4, &l4, x.l4, y.l0)

	*v = *reduceWide(h0, l0, h1, l1, h2, l2, h3, l3, h4, l4)
	return v
}

func (v *Elt51) Square(a Elt) Elt {
	return v.Multiply(a, a)
}

func (v *Elt51) Mul121666(a Elt) Elt {
	x := a.(*Elt51).carry()
	var h0, l0, h1, l1, h2, l2, h3, l3, h4, l4 uint64
	mulAdd(&h0, &l0, x.l0, 121666)
	mulAdd(&h1, &l1, x.l1, 121666)
	mulAdd(&h2, &l2, x.l2, 121666)
	mulAdd(&h3, &l3, x.l3, 121666)
	mulAdd(&h4, &l4, x.l4, 121666)
	*v = *reduceWide(h0, l0, h1, l1, h2, l2, h3, l3, h4, l4)
	return v
}

// Invert computes v = a^(p-2) via the standard 254-squaring, 11-multiply
// addition chain (identical exponent sequence used by every Curve25519
// implementation in the pack, e.g. FiloSottile-edwards25519/field/fe.go).
func (v *Elt51) Invert(a Elt) Elt {
	var z2, z9, z11, z2_5_0, z2_10_0, z2_20_0, z2_50_0, z2_100_0, t Elt51

	z2.Square(a)
	t.Square(&z2)
	t.Square(&t)
	z9.Multiply(&t, a)
	z11.Multiply(&z9, &z2)
	t.Square(&z11)
	z2_5_0.Multiply(&t, &z9)

	t.Square(&z2_5_0)
	for range 4 {
		t.Square(&t)
	}
	z2_10_0.Multiply(&t, &z2_5_0)

	t.Square(&z2_10_0)
	for range 9 {
		t.Square(&t)
	}
	z2_20_0.Multiply(&t, &z2_10_0)

	t.Square(&z2_20_0)
	for range 19 {
		t.Square(&t)
	}
	t.Multiply(&t, &z2_20_0)

	t.Square(&t)
	for range 9 {
		t.Square(&t)
	}
	z2_50_0.Multiply(&t, &z2_10_0)

	t.Square(&z2_50_0)
	for range 49 {
		t.Square(&t)
	}
	z2_100_0.Multiply(&t, &z2_50_0)

	t.Square(&z2_100_0)
	for range 99 {
		t.Square(&t)
	}
	t.Multiply(&t, &z2_100_0)

	t.Square(&t)
	for range 49 {
		t.Square(&t)
	}
	t.Multiply(&t, &z2_50_0)

	for range 5 {
		t.Square(&t)
	}

	v.Multiply(&t, &z11)
	return v
}

// Pow22523 computes v = a^((p-5)/8), used by SqrtRatio.
func (v *Elt51) Pow22523(a Elt) Elt {
	var z2, z9, z11, z2_5_0, z2_10_0, z2_20_0, z2_50_0, z2_100_0, t Elt51

	z2.Square(a)
	t.Square(&z2)
	t.Square(&t)
	z9.Multiply(&t, a)
	z11.Multiply(&z9, &z2)
	t.Square(&z11)
	z2_5_0.Multiply(&t, &z9)

	t.Square(&z2_5_0)
	for range 4 {
		t.Square(&t)
	}
	z2_10_0.Multiply(&t, &z2_5_0)

	t.Square(&z2_10_0)
	for range 9 {
		t.Square(&t)
	}
	z2_20_0.Multiply(&t, &z2_10_0)

	t.Square(&z2_20_0)
	for range 19 {
		t.Square(&t)
	}
	t.Multiply(&t, &z2_20_0)

	t.Square(&t)
	for range 9 {
		t.Square(&t)
	}
	z2_50_0.Multiply(&t, &z2_10_0)

	t.Square(&z2_50_0)
	for range 49 {
		t.Square(&t)
	}
	z2_100_0.Multiply(&t, &z2_50_0)

	t.Square(&z2_100_0)
	for range 99 {
		t.Square(&t)
	}
	t.Multiply(&t, &z2_100_0)

	t.Square(&t)
	for range 49 {
		t.Square(&t)
	}
	t.Multiply(&t, &z2_50_0)

	t.Square(&t)
	t.Square(&t)

	v.Multiply(&t, a)
	return v
}

// sqrtM1 is a fixed square root of -1 mod p, used by SqrtRatio.
var sqrtM1 = mustEltFromHex(sqrtM1Hex)

// sqrtM1Hex is the little-endian hex encoding of a square root of -1 mod p
// (2^((p-1)/4) mod p), i.e. SQRT_M1 from the Ristretto255/Ed25519 spec.
const sqrtM1Hex = "b0a00e4a271beec478e42fad0618432fa7d7fb3d99004d2b0bdfc14f8024832b"

func mustEltFromHex(hexLE string) *Elt51 {
	b := make([]byte, 32)
	for i := 0; i < 32; i++ {
		var hi, lo byte
		hi = fromHexNibble(hexLE[i*2])
		lo = fromHexNibble(hexLE[i*2+1])
		b[i] = hi<<4 | lo
	}
	v := new(Elt51)
	v.SetBytes(b)
	return v
}

func fromHexNibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// SqrtRatio sets v to a square root of u/v per the Ristretto255 decode
// recipe (spec.md §4.F): it returns (1, sqrt(u/v)) if u/v is square, and
// (0, sqrt(SQRT_M1*u/v)) otherwise, with the result's sign normalized to
// even (Sign()==0).
func (out *Elt51) SqrtRatio(u, vv Elt) (int, Elt) {
	uu, vvv := u.(*Elt51), vv.(*Elt51)

	var v3, v7, r, check, correctSignSqrt, flippedSignSqrt, flippedSignSqrtI Elt51
	v3.Square(vvv)
	v3.Multiply(&v3, vvv) // v^3
	v7.Square(&v3)
	v7.Multiply(&v7, vvv) // v^7

	var uv7 Elt51
	uv7.Multiply(uu, &v7)

	var r0 Elt51
	r0.Pow22523(&uv7)
	r.Multiply(&r0, &v3)
	r.Multiply(&r, uu) // r = u * v3 * (uv7)^((p-5)/8)

	check.Square(&r)
	check.Multiply(&check, vvv) // check = r^2 * v

	correctSignSqrt.Sub(&check, uu)
	isCorrect := correctSignSqrt.IsZero()

	var negU Elt51
	negU.Negate(uu)
	flippedSignSqrt.Sub(&check, &negU)
	isFlipped := flippedSignSqrt.IsZero()

	var negUTimesSqrtM1 Elt51
	negUTimesSqrtM1.Multiply(&negU, sqrtM1)
	flippedSignSqrtI.Sub(&check, &negUTimesSqrtM1)
	isFlippedI := flippedSignSqrtI.IsZero()

	var rPrime Elt51
	rPrime.Multiply(&r, sqrtM1)
	// Select r' over r when the sign was flipped by i.
	r.Select(&rPrime, &r, isFlipped|isFlippedI)

	// Normalize to the nonnegative square root.
	var negR Elt51
	negR.Negate(&r)
	r.Select(&negR, &r, r.Sign())

	wasSquare := isCorrect | isFlipped
	out.Set(&r)
	return wasSquare, out
}

func (v *Elt51) IsZero() int {
	b := v.Bytes()
	var acc byte
	for _, bb := range b {
		acc |= bb
	}
	if acc == 0 {
		return 1
	}
	return 0
}

func (v *Elt51) Equal(a Elt) int {
	var d Elt51
	d.Sub(v, a.(*Elt51))
	return d.IsZero()
}

func (v *Elt51) Sign() int {
	return int(v.Bytes()[0] & 1)
}

func (v *Elt51) Abs(a Elt) Elt {
	var neg Elt51
	x := a.(*Elt51)
	neg.Negate(x)
	v.Select(&neg, x, x.Sign())
	return v
}

func (v *Elt51) Select(a, b Elt, cond int) Elt {
	x, y := a.(*Elt51), b.(*Elt51)
	mask := uint64(cond) * ^uint64(0)
	v.l0 = (x.l0 & mask) | (y.l0 &^ mask)
	v.l1 = (x.l1 & mask) | (y.l1 &^ mask)
	v.l2 = (x.l2 & mask) | (y.l2 &^ mask)
	v.l3 = (x.l3 & mask) | (y.l3 &^ mask)
	v.l4 = (x.l4 & mask) | (y.l4 &^ mask)
	return v
}

// SetBytes decodes a 32-byte little-endian encoding, clearing bit 255.
func (v *Elt51) SetBytes(x []byte) Elt {
	var b [32]byte
	copy(b[:], x)
	b[31] &= 0x7f

	load64 := func(b []byte) uint64 {
		var x uint64
		for i := 7; i >= 0; i-- {
			x = x<<8 | uint64(b[i])
		}
		return x
	}

	v.l0 = load64(b[0:8]) & maskLow51
	v.l1 = (load64(b[6:14]) >> 3) & maskLow51
	v.l2 = (load64(b[12:20]) >> 6) & maskLow51
	v.l3 = (load64(b[19:27]) >> 1) & maskLow51
	v.l4 = (load64(b[24:32]) >> 12) & maskLow51
	return v
}

// Bytes returns the canonical 32-byte little-endian encoding, reducing
// fully into [0, p) first.
func (v *Elt51) Bytes() []byte {
	t := *v
	t.carry()

	// q is 1 iff t >= p = 2^255-19, computed by propagating the carry of
	// t+19 all the way through; otherwise q is 0 and t is already canonical.
	q := (t.l0 + 19) >> 51
	q = (t.l1 + q) >> 51
	q = (t.l2 + q) >> 51
	q = (t.l3 + q) >> 51
	q = (t.l4 + q) >> 51

	t.l0 += 19 * q
	t.l1 += t.l0 >> 51
	t.l0 &= maskLow51
	t.l2 += t.l1 >> 51
	t.l1 &= maskLow51
	t.l3 += t.l2 >> 51
	t.l2 &= maskLow51
	t.l4 += t.l3 >> 51
	t.l3 &= maskLow51
	t.l4 &= maskLow51

	out := make([]byte, 32)
	var buf [40]byte
	store64 := func(dst []byte, x uint64) {
		for i := 0; i < 8; i++ {
			dst[i] = byte(x)
			x >>= 8
		}
	}

	acc := t.l0 | (t.l1 << 51)
	store64(buf[0:8], acc)
	acc = (t.l1 >> 13) | (t.l2 << 38)
	store64(buf[8:16], acc)
	acc = (t.l2 >> 26) | (t.l3 << 25)
	store64(buf[16:24], acc)
	acc = (t.l3 >> 39) | (t.l4 << 12)
	store64(buf[24:32], acc)

	copy(out, buf[:32])
	out[31] &= 0x7f
	return out
}
