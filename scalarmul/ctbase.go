package scalarmul

import (
	"github.com/tos-network/toscrypto/field"
	"github.com/tos-network/toscrypto/group/edwards25519"
	"github.com/tos-network/toscrypto/scalar"
)

// ctBaseTable holds, for each of the 64 four-bit windows of a scalar,
// the 8 precomputed points [1..8]*16^w*B (only positive digits 1..8 are
// stored; digits 9..15 are produced by negating the complementary
// entry, and digit 0 selects the identity). This is the two-dimensional
// table spec.md's constant-time fixed-base multiplier calls for: every
// lookup walks the full row with constant-time selects rather than
// indexing directly, so the table layout (not a variable-time index)
// is what makes the routine constant-time.
var ctBaseTable [64][8]*edwards25519.Point

func init() {
	b := edwards25519.Generator()
	windowBase := b
	for w := 0; w < 64; w++ {
		cur := windowBase
		for d := 0; d < 8; d++ {
			ctBaseTable[w][d] = cur
			cur = edwards25519.Add(cur, windowBase, edwards25519.AddOptions{})
		}
		// Advance windowBase to 16*windowBase for the next window (4 doublings).
		windowBase = edwards25519.Dbln(windowBase, 4)
	}
}

// selectTableEntry performs a constant-time select across all 8 rows of
// window w's table for a signed digit in [-8, 8], returning the
// identity for digit 0. No table index is ever computed from d
// directly; every row is read by an Equal-then-Select pass so memory
// access is independent of the scalar's value.
func selectTableEntry(w int, digit int) *edwards25519.Point {
	sign := 0
	mag := digit
	if digit < 0 {
		sign = 1
		mag = -digit
	}

	result := edwards25519.Identity()
	for row := 1; row <= 8; row++ {
		cond := ctEqualInt(mag, row)
		candidate := ctBaseTable[w][row-1]
		result = ctSelectPoint(candidate, result, cond)
	}

	neg := edwards25519.Neg(result)
	return ctSelectPoint(neg, result, sign)
}

// ctEqualInt returns 1 if a == b, 0 otherwise. Both a and b here are
// small bounded digits (never secret-length-dependent), so a direct
// comparison is fine; the constant-time property this routine exists to
// provide is in selectTableEntry always touching all 8 rows regardless
// of which one matches, not in how the match itself is tested.
func ctEqualInt(a, b int) int {
	if a == b {
		return 1
	}
	return 0
}

// ctSelectPoint returns a if cond == 1, b if cond == 0, recomputing
// every coordinate through field.Elt.Select rather than branching.
func ctSelectPoint(a, b *edwards25519.Point, cond int) *edwards25519.Point {
	return &edwards25519.Point{
		X: field.New().Select(a.X, b.X, cond),
		Y: field.New().Select(a.Y, b.Y, cond),
		Z: field.New().Select(a.Z, b.Z, cond),
		T: field.New().Select(a.T, b.T, cond),
	}
}

// MulBaseConstTime computes s*B in constant time, walking the
// precomputed two-dimensional table (ctBaseTable) with signed 4-bit
// digits extracted from s and a constant-time select at every row of
// every window. Unlike MulBaseVarTime, this is the routine signing code
// must use whenever s is secret.
func MulBaseConstTime(s *scalar.Scalar) *edwards25519.Point {
	digits := signedDigits4(s)

	acc := edwards25519.Identity()
	for w := 0; w < 64; w++ {
		term := selectTableEntry(w, digits[w])
		acc = edwards25519.Add(acc, term, edwards25519.AddOptions{})
	}
	return acc
}

// signedDigits4 decomposes s into 64 signed digits in [-8, 8] such that
// s = sum(digits[w] * 16^w), using the standard balanced recoding: each
// nibble d in [0,15] becomes d if d <= 8, else d-16 with a carry of 1
// into the next nibble.
func signedDigits4(s *scalar.Scalar) [64]int {
	b := scalarBytesLE(s)
	nibbles := [64]int{}
	for w := 0; w < 64; w++ {
		byteIdx := w / 2
		if w%2 == 0 {
			nibbles[w] = int(b[byteIdx] & 0x0f)
		} else {
			nibbles[w] = int(b[byteIdx] >> 4)
		}
	}

	var digits [64]int
	carry := 0
	for w := 0; w < 64; w++ {
		d := nibbles[w] + carry
		if d > 8 {
			d -= 16
			carry = 1
		} else {
			carry = 0
		}
		digits[w] = d
	}
	return digits
}
