// Package ed25519 implements Ed25519 signing and verification (RFC 8032)
// over group/edwards25519, the standards-compatible half of spec.md's
// §4.G signature surface (the other half, the Ristretto255+SHA3-512
// Schnorr variant, lives in sig/schnorr).
package ed25519

import (
	"errors"

	"github.com/tos-network/toscrypto/errs"
	"github.com/tos-network/toscrypto/group/edwards25519"
	"github.com/tos-network/toscrypto/hazmat/hash"
	"github.com/tos-network/toscrypto/scalar"
	"github.com/tos-network/toscrypto/scalarmul"
)

const (
	// SeedSize is the size, in bytes, of an Ed25519 private key seed.
	SeedSize = 32
	// PublicKeySize is the size, in bytes, of an Ed25519 public key.
	PublicKeySize = 32
	// PrivateKeySize is the size, in bytes, of an Ed25519 private key:
	// the 32-byte seed followed by its 32-byte derived public key, the
	// same seed||pub layout the standard library's crypto/ed25519 uses.
	PrivateKeySize = 64
	// SignatureSize is the size, in bytes, of an Ed25519 signature.
	SignatureSize = 64
)

// PublicKey is an Ed25519 public key.
type PublicKey []byte

// PrivateKey is an Ed25519 private key: 32-byte seed || 32-byte public key.
type PrivateKey []byte

// Public returns priv's public key.
func (priv PrivateKey) Public() PublicKey {
	pub := make([]byte, PublicKeySize)
	copy(pub, priv[SeedSize:])
	return PublicKey(pub)
}

// Seed returns priv's seed.
func (priv PrivateKey) Seed() []byte {
	seed := make([]byte, SeedSize)
	copy(seed, priv[:SeedSize])
	return seed
}

// expandSeed computes the SHA-512 key-expansion RFC 8032 §5.1.5 requires:
// a clamped scalar a and a nonce-derivation prefix, both derived from
// hashing the 32-byte seed.
func expandSeed(seed []byte) (a *scalar.Scalar, prefix [32]byte) {
	h := hash.SHA512(seed)

	a, err := new(scalar.Scalar).SetBytesWithClamping(h[:32])
	if err != nil {
		panic("ed25519: unreachable: " + err.Error())
	}
	copy(prefix[:], h[32:])
	return a, prefix
}

// NewKeyFromSeed derives an Ed25519 private key from a 32-byte seed, by
// computing the public key A = a*B and appending it to the seed.
func NewKeyFromSeed(seed []byte) (PrivateKey, error) {
	if len(seed) != SeedSize {
		return nil, errors.New("ed25519: bad seed length")
	}
	a, _ := expandSeed(seed)
	pub := scalarmul.MulBaseConstTime(a).Bytes()

	priv := make([]byte, PrivateKeySize)
	copy(priv, seed)
	copy(priv[SeedSize:], pub)
	return PrivateKey(priv), nil
}

// Sign computes a deterministic Ed25519 signature over message.
//
// r = SHA-512(prefix || message) mod l; R = r*B; k = SHA-512(R || A ||
// message) mod l; s = r + k*a mod l. The signature is R || s. Every
// secret-dependent scalar multiplication here (R = r*B) uses the
// constant-time fixed-base multiplier, since r is derived from the
// private key's expansion.
func Sign(priv PrivateKey, message []byte) ([]byte, error) {
	if len(priv) != PrivateKeySize {
		return nil, errors.New("ed25519: bad private key length")
	}
	seed := priv[:SeedSize]
	a, prefix := expandSeed(seed)

	rh := hash.SHA512(append(append([]byte{}, prefix[:]...), message...))
	r, err := new(scalar.Scalar).SetUniformBytes(rh[:])
	if err != nil {
		panic("ed25519: unreachable: " + err.Error())
	}

	R := scalarmul.MulBaseConstTime(r)
	Rbytes := R.Bytes()
	A := priv[SeedSize:]

	kh := hash.SHA512(concat(Rbytes, A, message))
	k, err := new(scalar.Scalar).SetUniformBytes(kh[:])
	if err != nil {
		panic("ed25519: unreachable: " + err.Error())
	}

	s := new(scalar.Scalar).MultiplyAdd(k, a, r)

	sig := make([]byte, SignatureSize)
	copy(sig[:32], Rbytes)
	copy(sig[32:], s.Bytes())
	return sig, nil
}

// Verify reports whether sig is a valid Ed25519 signature of message
// under pub.
//
// Per spec.md §9's documented deviation from a strict RFC 8032 §5.1.7
// reading, non-canonical encodings of A and R are accepted by decode
// (group/edwards25519.Point.SetBytes already does this); safety against
// a low-order A is instead provided by the explicit IsSmallOrder check
// below, matching the existing accepting surface spec.md calls out.
func Verify(pub PublicKey, message, sig []byte) bool {
	if len(pub) != PublicKeySize || len(sig) != SignatureSize {
		return false
	}

	A := new(edwards25519.Point)
	A, ok := A.SetBytes(pub)
	if !ok {
		return false
	}
	if edwards25519.IsSmallOrder(A) {
		return false
	}

	R := new(edwards25519.Point)
	R, ok = R.SetBytes(sig[:32])
	if !ok {
		return false
	}

	s, err := new(scalar.Scalar).SetCanonicalBytes(sig[32:])
	if err != nil {
		return false
	}

	kh := hash.SHA512(concat(sig[:32], pub, message))
	k, err := new(scalar.Scalar).SetUniformBytes(kh[:])
	if err != nil {
		panic("ed25519: unreachable: " + err.Error())
	}

	negK := new(scalar.Scalar).Negate(k)
	sBminuskA := scalarmul.DoubleScalarMulBase(negK, A, s)

	return edwards25519.Eq(sBminuskA, R)
}

func concat(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// VerifyErr is Verify, returning errs.ErrSignatureInvalid on failure
// instead of a bool, for call sites that propagate errors.
func VerifyErr(pub PublicKey, message, sig []byte) error {
	if !Verify(pub, message, sig) {
		return errs.ErrSignatureInvalid
	}
	return nil
}
