package proofs

import (
	"github.com/tos-network/toscrypto/errs"
	"github.com/tos-network/toscrypto/group/ristretto255"
	"github.com/tos-network/toscrypto/proofs/elgamal"
	"github.com/tos-network/toscrypto/scalar"
	"github.com/tos-network/toscrypto/transcript"
)

// ShieldCommitmentSize is the encoded size of a ShieldCommitmentProof:
// Y_H || Y_P || z.
const ShieldCommitmentSize = 96

// ShieldCommitmentProof proves knowledge of the blinding factor r
// shared by a commitment C = v*G + r*H (v public) and an ElGamal
// handle D = r*P, without revealing r.
type ShieldCommitmentProof struct {
	YH *ristretto255.Element
	YP *ristretto255.Element
	Z  *scalar.Scalar
}

// ProveShieldCommitment proves that commitment C = v*G + r*H and
// handle D = r*P share the blinding factor r, for the public value v
// and public key P.
func ProveShieldCommitment(tr *transcript.Transcript, v, r *scalar.Scalar, P *ristretto255.Element) (*ShieldCommitmentProof, error) {
	k, err := randomScalar()
	if err != nil {
		return nil, err
	}

	yH := new(ristretto255.Element).ScalarMult(k, h())
	yP := new(ristretto255.Element).ScalarMult(k, P)

	if err := appendPoint(tr, "Y_H", yH); err != nil {
		return nil, err
	}
	if err := appendPoint(tr, "Y_P", yP); err != nil {
		return nil, err
	}
	c := tr.ChallengeScalar("c")

	z := new(scalar.Scalar).MultiplyAdd(c, r, k)

	return &ShieldCommitmentProof{YH: yH, YP: yP, Z: z}, nil
}

// Verify checks that proof attests C = v*G + r*H and D = r*P for the
// same r, given the public value v, commitment C, handle D, and
// public key P.
func (proof *ShieldCommitmentProof) Verify(tr *transcript.Transcript, v *scalar.Scalar, C *elgamal.Commitment, D, P *ristretto255.Element) error {
	if err := appendPoint(tr, "Y_H", proof.YH); err != nil {
		return err
	}
	if err := appendPoint(tr, "Y_P", proof.YP); err != nil {
		return err
	}
	c := tr.ChallengeScalar("c")

	// rH = C - v*G
	vG := new(ristretto255.Element).ScalarBaseMult(v)
	rH := new(ristretto255.Element).Subtract(C.P, vG)

	lhsH := new(ristretto255.Element).ScalarMult(proof.Z, h())
	rhsH := new(ristretto255.Element).Add(proof.YH, new(ristretto255.Element).ScalarMult(c, rH))
	if !lhsH.Equal(rhsH) {
		return errs.ErrBadProof
	}

	lhsP := new(ristretto255.Element).ScalarMult(proof.Z, P)
	rhsP := new(ristretto255.Element).Add(proof.YP, new(ristretto255.Element).ScalarMult(c, D))
	if !lhsP.Equal(rhsP) {
		return errs.ErrBadProof
	}
	return nil
}

// PreVerify is Verify under the retained, not-yet-batching collector
// API (see Collector's doc comment).
func (proof *ShieldCommitmentProof) PreVerify(_ *Collector, tr *transcript.Transcript, v *scalar.Scalar, C *elgamal.Commitment, D, P *ristretto255.Element) error {
	return proof.Verify(tr, v, C, D, P)
}

// Bytes encodes proof as Y_H || Y_P || z.
func (proof *ShieldCommitmentProof) Bytes() ([]byte, bool) {
	yh, ok := proof.YH.Bytes()
	if !ok {
		return nil, false
	}
	yp, ok := proof.YP.Bytes()
	if !ok {
		return nil, false
	}
	out := make([]byte, 0, ShieldCommitmentSize)
	out = append(out, yh...)
	out = append(out, yp...)
	out = append(out, proof.Z.Bytes()...)
	return out, true
}

// ParseShieldCommitmentProof decodes a ShieldCommitmentProof from its
// 96-byte wire encoding.
func ParseShieldCommitmentProof(buf []byte) (*ShieldCommitmentProof, error) {
	if len(buf) != ShieldCommitmentSize {
		return nil, errs.ErrBadProof
	}
	yh, err := decodePoint(buf[0:32])
	if err != nil {
		return nil, err
	}
	yp, err := decodePoint(buf[32:64])
	if err != nil {
		return nil, err
	}
	z, err := decodeScalar(buf[64:96])
	if err != nil {
		return nil, err
	}
	return &ShieldCommitmentProof{YH: yh, YP: yp, Z: z}, nil
}
