package proofs

import (
	"github.com/tos-network/toscrypto/errs"
	"github.com/tos-network/toscrypto/group/ristretto255"
	"github.com/tos-network/toscrypto/proofs/elgamal"
	"github.com/tos-network/toscrypto/scalar"
	"github.com/tos-network/toscrypto/transcript"
)

// CommitmentEqSize is the encoded size of a CommitmentEqProof: Y_0 ||
// Y_1 || Y_2 || z_s || z_x || z_r.
const CommitmentEqSize = 192

// CommitmentEqProof proves that a source ElGamal ciphertext
// (Csrc = x*G + r*H, Dsrc = r*Psrc) and a destination Pedersen
// commitment (Cdst = x*G + s*H) commit to the same value x, without
// revealing x, r, or s.
type CommitmentEqProof struct {
	Y0, Y1, Y2 *ristretto255.Element
	Zs, Zx, Zr *scalar.Scalar
}

// ProveCommitmentEq proves that Csrc = x*G + r*H, Dsrc = r*Psrc, and
// Cdst = x*G + s*H all share the same x.
func ProveCommitmentEq(tr *transcript.Transcript, x, r, s *scalar.Scalar, Psrc *ristretto255.Element) (*CommitmentEqProof, error) {
	kx, err := randomScalar()
	if err != nil {
		return nil, err
	}
	kr, err := randomScalar()
	if err != nil {
		return nil, err
	}
	ks, err := randomScalar()
	if err != nil {
		return nil, err
	}

	y0 := new(ristretto255.Element).Add(
		new(ristretto255.Element).ScalarBaseMult(kx),
		new(ristretto255.Element).ScalarMult(kr, h()),
	)
	y1 := new(ristretto255.Element).ScalarMult(kr, Psrc)
	y2 := new(ristretto255.Element).Add(
		new(ristretto255.Element).ScalarBaseMult(kx),
		new(ristretto255.Element).ScalarMult(ks, h()),
	)

	if err := appendPoint(tr, "Y_0", y0); err != nil {
		return nil, err
	}
	if err := appendPoint(tr, "Y_1", y1); err != nil {
		return nil, err
	}
	if err := appendPoint(tr, "Y_2", y2); err != nil {
		return nil, err
	}
	c := tr.ChallengeScalar("c")

	zx := new(scalar.Scalar).MultiplyAdd(c, x, kx)
	zr := new(scalar.Scalar).MultiplyAdd(c, r, kr)
	zs := new(scalar.Scalar).MultiplyAdd(c, s, ks)

	return &CommitmentEqProof{Y0: y0, Y1: y1, Y2: y2, Zs: zs, Zx: zx, Zr: zr}, nil
}

// Verify checks that Csrc, Dsrc (under Psrc), and Cdst all commit to
// the same value, for the claimed proof.
func (proof *CommitmentEqProof) Verify(tr *transcript.Transcript, Csrc *elgamal.Commitment, Dsrc, Psrc *ristretto255.Element, Cdst *elgamal.Commitment) error {
	if err := appendPoint(tr, "Y_0", proof.Y0); err != nil {
		return err
	}
	if err := appendPoint(tr, "Y_1", proof.Y1); err != nil {
		return err
	}
	if err := appendPoint(tr, "Y_2", proof.Y2); err != nil {
		return err
	}
	c := tr.ChallengeScalar("c")

	lhs0 := new(ristretto255.Element).Add(
		new(ristretto255.Element).ScalarBaseMult(proof.Zx),
		new(ristretto255.Element).ScalarMult(proof.Zr, h()),
	)
	rhs0 := new(ristretto255.Element).Add(proof.Y0, new(ristretto255.Element).ScalarMult(c, Csrc.P))
	if !lhs0.Equal(rhs0) {
		return errs.ErrBadProof
	}

	lhs1 := new(ristretto255.Element).ScalarMult(proof.Zr, Psrc)
	rhs1 := new(ristretto255.Element).Add(proof.Y1, new(ristretto255.Element).ScalarMult(c, Dsrc))
	if !lhs1.Equal(rhs1) {
		return errs.ErrBadProof
	}

	lhs2 := new(ristretto255.Element).Add(
		new(ristretto255.Element).ScalarBaseMult(proof.Zx),
		new(ristretto255.Element).ScalarMult(proof.Zs, h()),
	)
	rhs2 := new(ristretto255.Element).Add(proof.Y2, new(ristretto255.Element).ScalarMult(c, Cdst.P))
	if !lhs2.Equal(rhs2) {
		return errs.ErrBadProof
	}
	return nil
}

// PreVerify is Verify under the retained, not-yet-batching collector
// API (see Collector's doc comment).
func (proof *CommitmentEqProof) PreVerify(_ *Collector, tr *transcript.Transcript, Csrc *elgamal.Commitment, Dsrc, Psrc *ristretto255.Element, Cdst *elgamal.Commitment) error {
	return proof.Verify(tr, Csrc, Dsrc, Psrc, Cdst)
}

// Bytes encodes proof as Y_0 || Y_1 || Y_2 || z_s || z_x || z_r.
func (proof *CommitmentEqProof) Bytes() ([]byte, bool) {
	y0, ok := proof.Y0.Bytes()
	if !ok {
		return nil, false
	}
	y1, ok := proof.Y1.Bytes()
	if !ok {
		return nil, false
	}
	y2, ok := proof.Y2.Bytes()
	if !ok {
		return nil, false
	}
	out := make([]byte, 0, CommitmentEqSize)
	out = append(out, y0...)
	out = append(out, y1...)
	out = append(out, y2...)
	out = append(out, proof.Zs.Bytes()...)
	out = append(out, proof.Zx.Bytes()...)
	out = append(out, proof.Zr.Bytes()...)
	return out, true
}

// ParseCommitmentEqProof decodes a CommitmentEqProof from its 192-byte
// wire encoding.
func ParseCommitmentEqProof(buf []byte) (*CommitmentEqProof, error) {
	if len(buf) != CommitmentEqSize {
		return nil, errs.ErrBadProof
	}
	y0, err := decodePoint(buf[0:32])
	if err != nil {
		return nil, err
	}
	y1, err := decodePoint(buf[32:64])
	if err != nil {
		return nil, err
	}
	y2, err := decodePoint(buf[64:96])
	if err != nil {
		return nil, err
	}
	zs, err := decodeScalar(buf[96:128])
	if err != nil {
		return nil, err
	}
	zx, err := decodeScalar(buf[128:160])
	if err != nil {
		return nil, err
	}
	zr, err := decodeScalar(buf[160:192])
	if err != nil {
		return nil, err
	}
	return &CommitmentEqProof{Y0: y0, Y1: y1, Y2: y2, Zs: zs, Zx: zx, Zr: zr}, nil
}
