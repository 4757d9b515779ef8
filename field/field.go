// Package field implements arithmetic modulo p = 2^255-19, the base field
// underlying Curve25519, Ed25519, and Ristretto255.
//
// Several interoperable limb representations coexist behind the single
// [Elt] contract: [Elt51] (radix 2^51, 5 limbs) is the reference
// representation; [New] selects the backend per host; [Elt255] (radix 2^25.5, 10 limbs) and [Elt43] (radix
// 2^43, 6 limbs) are alternate storage layouts intended as the landing
// spot for 4/8-way SIMD and AVX-512 IFMA kernels respectively. All three
// agree bit-for-bit on Bytes after any sequence of operations; see
// DESIGN.md for how that invariant is maintained without three
// independently verified multiply kernels.
//
// Elements may be left unreduced (in [0, 2p) or wider, depending on the
// operation) between calls; Bytes always performs a full reduction before
// encoding. Callers that hold secrets in a field element are responsible
// for wiping it via Zero once it is no longer needed.
package field

// Elt is the representation-independent contract every field backend
// satisfies. Edwards, Ristretto, and scalar-multiplication code is written
// against this interface so the production backend can change without
// touching call sites (see DESIGN NOTES §9 of spec.md).
type Elt interface {
	// Zero sets v = 0 and returns v.
	Zero() Elt
	// One sets v = 1 and returns v.
	One() Elt
	// Set sets v = a and returns v.
	Set(a Elt) Elt
	// Clone returns a new element, of the same backend, holding a's value.
	Clone() Elt
	// Add sets v = a + b and returns v.
	Add(a, b Elt) Elt
	// Sub sets v = a - b and returns v.
	Sub(a, b Elt) Elt
	// Negate sets v = -a and returns v.
	Negate(a Elt) Elt
	// Multiply sets v = a * b and returns v.
	Multiply(a, b Elt) Elt
	// Square sets v = a * a and returns v.
	Square(a Elt) Elt
	// Mul121666 sets v = a * 121666 and returns v (the X25519 curve constant).
	Mul121666(a Elt) Elt
	// Carry folds v into its backend's safe input range and returns v.
	Carry() Elt
	// Invert sets v = 1/a (0 if a == 0) via exponentiation by p-2, and returns v.
	Invert(a Elt) Elt
	// Pow22523 sets v = a^((p-5)/8) and returns v.
	Pow22523(a Elt) Elt
	// SqrtRatio sets v to a square root of u/v per the Ristretto recipe,
	// returning 1 if u/v was square and 0 otherwise. On failure v holds
	// sqrt(SQRT_M1 * u/v) instead, as required by Ristretto255 decode.
	SqrtRatio(u, v Elt) (wasSquare int, result Elt)
	// IsZero returns 1 if v == 0, 0 otherwise.
	IsZero() int
	// Equal returns 1 if v == a, 0 otherwise.
	Equal(a Elt) int
	// Sign returns the low bit of v's canonical byte encoding.
	Sign() int
	// Abs sets v = CT_ABS(a) (a if Sign(a)==0, else -a) and returns v.
	Abs(a Elt) Elt
	// Select sets v = a if cond == 1, v = b if cond == 0, and returns v.
	// cond must be 0 or 1; behavior is constant-time in cond.
	Select(a, b Elt, cond int) Elt
	// SetBytes decodes a canonical or non-canonical 32-byte little-endian
	// encoding (bit 255 of the input is cleared before decoding) into v
	// and returns v. SetBytes never fails; callers that must reject
	// non-canonical input do so explicitly by round-tripping Bytes.
	SetBytes(x []byte) Elt
	// Bytes returns the canonical 32-byte little-endian encoding of v,
	// with the top bit cleared.
	Bytes() []byte
}

// Backend identifies which [Elt] implementation New constructs.
type Backend int

const (
	// BackendR51 is the radix 2^51, 5-limb reference/production backend.
	BackendR51 Backend = iota
	// BackendR255 is the radix 2^25.5, 10-limb backend (4/8-way SIMD shape).
	BackendR255
	// BackendR43 is the radix 2^43, 6-limb backend (AVX-512 IFMA shape).
	BackendR43
)

func (b Backend) String() string {
	switch b {
	case BackendR51:
		return "r51"
	case BackendR255:
		return "r255"
	case BackendR43:
		return "r43"
	default:
		return "unknown"
	}
}
