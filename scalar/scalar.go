// Package scalar implements arithmetic modulo the order of the
// Curve25519/Ed25519 group,
//
//	l = 2^252 + 27742317777372353535851937790883648493
//
// Scalar is backed internally by [math/big.Int], reduced mod l after
// every operation, rather than a hand-rolled fixed-width limb
// representation. See DESIGN.md for why: this mirrors the reference
// (non-SIMD) path of a classic Go Ed25519 implementation, which also
// leans on math/big for every modular step instead of a bespoke 4x64
// schoolbook-plus-Barrett reduction.
package scalar

import "math/big"

var l *big.Int

func init() {
	l, _ = new(big.Int).SetString("27742317777372353535851937790883648493", 10)
	l.Add(l, new(big.Int).Lsh(big.NewInt(1), 252))
}

// Scalar is an integer modulo l. The zero value is 0.
type Scalar struct {
	n big.Int
}

// Zero returns the scalar 0.
func Zero() *Scalar { return new(Scalar) }

// One returns the scalar 1.
func One() *Scalar {
	s := new(Scalar)
	s.n.SetInt64(1)
	return s
}

// Set sets s = a and returns s.
func (s *Scalar) Set(a *Scalar) *Scalar {
	s.n.Set(&a.n)
	return s
}

// reverse returns a big-endian copy of a little-endian byte slice, the
// conversion math/big needs since it only parses big-endian magnitudes.
func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}

// SetCanonicalBytes decodes a 32-byte little-endian encoding. It returns
// nil and reports an error if x does not represent an integer in
// [0, l).
func (s *Scalar) SetCanonicalBytes(x []byte) (*Scalar, error) {
	if len(x) != 32 {
		return nil, errInvalidLength
	}
	n := new(big.Int).SetBytes(reverse(x))
	if n.Cmp(l) >= 0 {
		return nil, errNonCanonical
	}
	s.n.Set(n)
	return s, nil
}

// SetUniformBytes reduces a 64-byte little-endian integer modulo l, as
// required when deriving a scalar from a wide hash output (RFC 8032's
// H(dom || prefix || M) and transcript challenges alike).
func (s *Scalar) SetUniformBytes(x []byte) (*Scalar, error) {
	if len(x) != 64 {
		return nil, errInvalidLength
	}
	n := new(big.Int).SetBytes(reverse(x))
	n.Mod(n, l)
	s.n.Set(n)
	return s, nil
}

// SetBytesWithClamping applies the X25519/Ed25519 scalar clamping
// recipe (RFC 7748 §5) to a 32-byte input and sets s to the clamped
// integer, taken mod l for arithmetic purposes (Montgomery ladder
// scalar multiplication instead reads the clamped bytes directly; this
// constructor exists for callers that need the clamped value as a
// Scalar, e.g. deriving a VerifyingKey-shaped scalar for tests).
func (s *Scalar) SetBytesWithClamping(x []byte) (*Scalar, error) {
	if len(x) != 32 {
		return nil, errInvalidLength
	}
	var buf [32]byte
	copy(buf[:], x)
	buf[0] &= 248
	buf[31] &= 127
	buf[31] |= 64
	n := new(big.Int).SetBytes(reverse(buf[:]))
	n.Mod(n, l)
	s.n.Set(n)
	return s, nil
}

// Bytes returns the canonical 32-byte little-endian encoding of s.
func (s *Scalar) Bytes() []byte {
	out := make([]byte, 32)
	b := s.n.Bytes() // big-endian, no leading zeros
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}

// Add sets s = a + b and returns s.
func (s *Scalar) Add(a, b *Scalar) *Scalar {
	s.n.Add(&a.n, &b.n)
	s.n.Mod(&s.n, l)
	return s
}

// Subtract sets s = a - b and returns s.
func (s *Scalar) Subtract(a, b *Scalar) *Scalar {
	s.n.Sub(&a.n, &b.n)
	s.n.Mod(&s.n, l)
	return s
}

// Negate sets s = -a and returns s.
func (s *Scalar) Negate(a *Scalar) *Scalar {
	s.n.Neg(&a.n)
	s.n.Mod(&s.n, l)
	return s
}

// Multiply sets s = a * b and returns s.
func (s *Scalar) Multiply(a, b *Scalar) *Scalar {
	s.n.Mul(&a.n, &b.n)
	s.n.Mod(&s.n, l)
	return s
}

// MultiplyAdd sets s = a*b + c and returns s.
func (s *Scalar) MultiplyAdd(a, b, c *Scalar) *Scalar {
	var t big.Int
	t.Mul(&a.n, &b.n)
	t.Add(&t, &c.n)
	s.n.Mod(&t, l)
	return s
}

// Invert sets s = 1/a mod l via Fermat's little theorem (a^(l-2)) and
// returns s. The caller must ensure a is nonzero; Invert(0) returns 0.
func (s *Scalar) Invert(a *Scalar) *Scalar {
	if a.n.Sign() == 0 {
		s.n.SetInt64(0)
		return s
	}
	exp := new(big.Int).Sub(l, big.NewInt(2))
	s.n.Exp(&a.n, exp, l)
	return s
}

// Equal reports whether s == a. Unlike a field element's Equal, this is
// not constant-time: math/big's comparisons are not designed for
// secret-dependent timing guarantees, so scalar equality here is
// reserved for non-secret contexts (proof verification challenges,
// test assertions). See DESIGN.md.
func (s *Scalar) Equal(a *Scalar) bool {
	return s.n.Cmp(&a.n) == 0
}

// IsZero reports whether s == 0.
func (s *Scalar) IsZero() bool {
	return s.n.Sign() == 0
}

// Order returns a copy of l, the group order.
func Order() *big.Int {
	return new(big.Int).Set(l)
}

// BigInt returns a copy of s's value as a non-negative big.Int in
// [0, l). Exposed for callers (scalar multiplication digit extraction)
// that need arbitrary-precision integer operations math/big supports
// directly, rather than duplicating them against the byte encoding.
func (s *Scalar) BigInt() *big.Int {
	return new(big.Int).Set(&s.n)
}
