// Package schnorr implements the non-standard Schnorr signature
// variant spec.md §4.G describes: keys and signing operate over
// Ristretto255 and SHA3-512 rather than Ed25519's curve and SHA-512,
// and the public key is PK = priv^-1 * H for the shared Pedersen
// blinding generator H (proofs/generators.H) rather than priv*G.
//
// Structurally this follows the teacher's own EdDSA-style Ristretto255
// Schnorr scheme (schemes/complex/sig in the source tree this module
// was built from): a commitment point, a transcript-derived challenge,
// and a verify step that recomputes the commitment from the public
// key and compares challenges rather than points. The nonce-hedging
// Fork/prover-verifier transcript split that scheme used is replaced
// here with spec.md's fixed three-field challenge hash, since this
// variant's contract is plain randomized Schnorr, not a misuse-
// resistant hedged construction.
package schnorr

import (
	"crypto/rand"

	"github.com/tos-network/toscrypto/errs"
	"github.com/tos-network/toscrypto/group/ristretto255"
	"github.com/tos-network/toscrypto/hazmat/hash"
	"github.com/tos-network/toscrypto/proofs/generators"
	"github.com/tos-network/toscrypto/scalar"
)

// SignatureSize is the size, in bytes, of a signature: s || e.
const SignatureSize = 64

// PublicKeySize is the size, in bytes, of a compressed public key.
const PublicKeySize = 32

// PrivateKey is a Schnorr signing key.
type PrivateKey struct {
	s *scalar.Scalar
}

// NewPrivateKey wraps a scalar as a signing key. The scalar must be
// nonzero, since Public and Sign each compute priv^-1.
func NewPrivateKey(s *scalar.Scalar) (*PrivateKey, error) {
	if s.IsZero() {
		return nil, errs.ErrInvalidEncoding
	}
	return &PrivateKey{s: s}, nil
}

// GenerateKey produces a new private key from crypto/rand.
func GenerateKey() (*PrivateKey, error) {
	var buf [64]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return nil, err
	}
	s, err := new(scalar.Scalar).SetUniformBytes(buf[:])
	if err != nil {
		return nil, err
	}
	if s.IsZero() {
		return GenerateKey()
	}
	return &PrivateKey{s: s}, nil
}

// Public returns priv's public key, PK = priv^-1 * H.
func (priv *PrivateKey) Public() *ristretto255.Element {
	inv := new(scalar.Scalar).Invert(priv.s)
	return new(ristretto255.Element).ScalarMult(inv, generators.H())
}

// randomNonzeroScalar draws a uniformly random nonzero scalar from
// crypto/rand, matching spec.md's "random k in [1, l)" nonce.
func randomNonzeroScalar() (*scalar.Scalar, error) {
	var buf [64]byte
	for {
		if _, err := rand.Read(buf[:]); err != nil {
			return nil, err
		}
		k, err := new(scalar.Scalar).SetUniformBytes(buf[:])
		if err != nil {
			return nil, err
		}
		if !k.IsZero() {
			return k, nil
		}
	}
}

func challenge(pk []byte, message, r []byte) *scalar.Scalar {
	digest := hash.SHA3_512(concat(pk, message, r))
	e, err := new(scalar.Scalar).SetUniformBytes(digest[:])
	if err != nil {
		panic("schnorr: unreachable: " + err.Error())
	}
	return e
}

// Sign produces a signature over message under priv.
//
// r = k*H for a fresh random nonce k; e = SHA3-512(PK || message || r)
// mod l; s = priv^-1*e + k. The signature is s || e.
func Sign(priv *PrivateKey, message []byte) ([]byte, error) {
	pk, ok := priv.Public().Bytes()
	if !ok {
		return nil, errs.ErrInvalidEncoding
	}

	k, err := randomNonzeroScalar()
	if err != nil {
		return nil, err
	}
	r := new(ristretto255.Element).ScalarMult(k, generators.H())
	rBytes, ok := r.Bytes()
	if !ok {
		return nil, errs.ErrInvalidEncoding
	}

	e := challenge(pk, message, rBytes)

	inv := new(scalar.Scalar).Invert(priv.s)
	s := new(scalar.Scalar).MultiplyAdd(inv, e, k)

	sig := make([]byte, SignatureSize)
	copy(sig[:32], s.Bytes())
	copy(sig[32:], e.Bytes())
	return sig, nil
}

// Verify reports whether sig is a valid signature of message under the
// compressed public key pk.
//
// r = s*H - e*PK, computed as the sum of two variable-time scalar
// multiplications;
// the signature is accepted iff recomputing e from (PK, message, r)
// reproduces the signature's own e, compared in constant time.
func Verify(pk []byte, message, sig []byte) bool {
	if len(pk) != PublicKeySize || len(sig) != SignatureSize {
		return false
	}

	PK, ok := new(ristretto255.Element).SetBytes(pk)
	if !ok {
		return false
	}

	s, err := new(scalar.Scalar).SetCanonicalBytes(sig[:32])
	if err != nil {
		return false
	}
	e, err := new(scalar.Scalar).SetCanonicalBytes(sig[32:])
	if err != nil {
		return false
	}

	negE := new(scalar.Scalar).Negate(e)
	r := new(ristretto255.Element).Add(
		new(ristretto255.Element).ScalarMult(s, generators.H()),
		new(ristretto255.Element).ScalarMult(negE, PK),
	)
	rBytes, ok := r.Bytes()
	if !ok {
		return false
	}

	ePrime := challenge(pk, message, rBytes)
	return ctEqualScalarBytes(e.Bytes(), ePrime.Bytes())
}

// ctEqualScalarBytes compares two equal-length byte slices in constant
// time, matching spec.md's "accept iff e == e' (constant-time compare)".
func ctEqualScalarBytes(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}

// VerifyErr is Verify, returning errs.ErrSignatureInvalid on failure.
func VerifyErr(pk []byte, message, sig []byte) error {
	if !Verify(pk, message, sig) {
		return errs.ErrSignatureInvalid
	}
	return nil
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
