// Package elgamal implements the Pedersen commitment and twisted
// ElGamal ciphertext types spec.md §3/§6 describe: a commitment
// C = v*G + r*H, and a ciphertext that pairs C with a decryption
// handle D = r*P for a recipient public key P.
//
// Key pairs use PublicKey = secret*H (proofs/generators.H is the same
// shared blinding generator sig/schnorr draws from, though the two
// packages' key pairs are otherwise unrelated): decryption recovers
// v*G by subtracting secret^-1*D from C, since secret^-1*D =
// secret^-1*r*secret*H = r*H cancels the commitment's blinding term.
package elgamal

import (
	"github.com/tos-network/toscrypto/errs"
	"github.com/tos-network/toscrypto/group/ristretto255"
	"github.com/tos-network/toscrypto/proofs/generators"
	"github.com/tos-network/toscrypto/scalar"
)

// CommitmentSize is the compressed wire size of a Pedersen commitment.
const CommitmentSize = 32

// CiphertextSize is the compressed wire size of an ElGamal ciphertext
// (commitment || handle).
const CiphertextSize = 64

// Commitment is a Pedersen commitment C = v*G + r*H to a value v under
// blinding factor r.
type Commitment struct {
	P *ristretto255.Element
}

// NewCommitment computes C = v*G + r*H.
func NewCommitment(v, r *scalar.Scalar) *Commitment {
	vg := new(ristretto255.Element).ScalarBaseMult(v)
	rh := new(ristretto255.Element).ScalarMult(r, generators.H())
	return &Commitment{P: new(ristretto255.Element).Add(vg, rh)}
}

// Bytes returns c's compressed 32-byte encoding.
func (c *Commitment) Bytes() ([]byte, bool) {
	return c.P.Bytes()
}

// CommitmentFromBytes decodes a compressed commitment, rejecting
// non-canonical or otherwise invalid encodings.
func CommitmentFromBytes(buf []byte) (*Commitment, error) {
	if len(buf) != CommitmentSize {
		return nil, errs.ErrInvalidEncoding
	}
	e, ok := new(ristretto255.Element).SetBytes(buf)
	if !ok {
		return nil, errs.ErrInvalidEncoding
	}
	return &Commitment{P: e}, nil
}

// Add returns c + other, homomorphically combining the committed
// values and blinding factors: Commit(v1,r1) + Commit(v2,r2) =
// Commit(v1+v2, r1+r2).
func (c *Commitment) Add(other *Commitment) *Commitment {
	return &Commitment{P: new(ristretto255.Element).Add(c.P, other.P)}
}

// Subtract returns c - other.
func (c *Commitment) Subtract(other *Commitment) *Commitment {
	return &Commitment{P: new(ristretto255.Element).Subtract(c.P, other.P)}
}

// KeyPair is an ElGamal decryption key pair: PublicKey = secret*H.
type KeyPair struct {
	Secret    *scalar.Scalar
	PublicKey *ristretto255.Element
}

// NewKeyPair derives the public key matching secret: PublicKey =
// secret*H. (This is the inverse convention from sig/schnorr's
// priv^-1*H public keys; the two key pairs are unrelated and this
// package's decryption algebra is cleanest with a direct multiple.)
func NewKeyPair(secret *scalar.Scalar) *KeyPair {
	pub := new(ristretto255.Element).ScalarMult(secret, generators.H())
	return &KeyPair{Secret: secret, PublicKey: pub}
}

// Ciphertext is a twisted ElGamal ciphertext: a Pedersen commitment to
// v paired with a decryption handle D = r*PublicKey bound to the same
// blinding factor r used in the commitment.
type Ciphertext struct {
	Commitment
	D *ristretto255.Element
}

// Encrypt encrypts value v under blinding factor r to recipient pub.
func Encrypt(v, r *scalar.Scalar, pub *ristretto255.Element) *Ciphertext {
	c := NewCommitment(v, r)
	d := new(ristretto255.Element).ScalarMult(r, pub)
	return &Ciphertext{Commitment: *c, D: d}
}

// Bytes returns ct's compressed 64-byte encoding, commitment || handle.
func (ct *Ciphertext) Bytes() ([]byte, bool) {
	c, ok := ct.Commitment.Bytes()
	if !ok {
		return nil, false
	}
	d, ok := ct.D.Bytes()
	if !ok {
		return nil, false
	}
	return append(c, d...), true
}

// CiphertextFromBytes decodes a compressed ciphertext.
func CiphertextFromBytes(buf []byte) (*Ciphertext, error) {
	if len(buf) != CiphertextSize {
		return nil, errs.ErrInvalidEncoding
	}
	c, err := CommitmentFromBytes(buf[:32])
	if err != nil {
		return nil, err
	}
	d, ok := new(ristretto255.Element).SetBytes(buf[32:])
	if !ok {
		return nil, errs.ErrInvalidEncoding
	}
	return &Ciphertext{Commitment: *c, D: d}, nil
}

// Add returns ct + other: the commitments and handles are combined
// independently, yielding a ciphertext for v1+v2 under r1+r2 provided
// both ciphertexts were encrypted to the same public key.
func (ct *Ciphertext) Add(other *Ciphertext) *Ciphertext {
	return &Ciphertext{
		Commitment: *ct.Commitment.Add(&other.Commitment),
		D:          new(ristretto255.Element).Add(ct.D, other.D),
	}
}

// Subtract returns ct - other.
func (ct *Ciphertext) Subtract(other *Ciphertext) *Ciphertext {
	return &Ciphertext{
		Commitment: *ct.Commitment.Subtract(&other.Commitment),
		D:          new(ristretto255.Element).Subtract(ct.D, other.D),
	}
}

// DecryptToPoint recovers v*G from ct under secret, without solving
// for v itself: v*G = C - secret^-1*D.
func (ct *Ciphertext) DecryptToPoint(secret *scalar.Scalar) *ristretto255.Element {
	inv := new(scalar.Scalar).Invert(secret)
	sd := new(ristretto255.Element).ScalarMult(inv, ct.D)
	return new(ristretto255.Element).Subtract(ct.Commitment.P, sd)
}

// Decrypt recovers the plaintext value v from ct under secret, given
// an upper bound on v, via DiscreteLog. It reports false if no value
// in [0, maxValue] matches.
func (ct *Ciphertext) Decrypt(secret *scalar.Scalar, maxValue uint64) (uint64, bool) {
	return DiscreteLog(ct.DecryptToPoint(secret), maxValue)
}
