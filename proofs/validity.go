package proofs

import (
	"github.com/tos-network/toscrypto/errs"
	"github.com/tos-network/toscrypto/group/ristretto255"
	"github.com/tos-network/toscrypto/proofs/elgamal"
	"github.com/tos-network/toscrypto/scalar"
	"github.com/tos-network/toscrypto/transcript"
)

// CiphertextValiditySizeSingle is the encoded size of a
// CiphertextValidityProof with one handle: Y_0 || Y_1 || z_r || z_x.
const CiphertextValiditySizeSingle = 128

// CiphertextValiditySizeDouble is the encoded size of a
// CiphertextValidityProof with two handles: Y_0 || Y_1 || Y_2 || z_r
// || z_x.
const CiphertextValiditySizeDouble = 160

// CiphertextValidityProof proves that a commitment C = x*G + r*H and
// one or two ElGamal handles (D1 = r*P1, and optionally D2 = r*P2)
// share the blinding factor r, without revealing x or r. The two-
// handle form additionally binds the sender's own handle (D2) to the
// same r, so a shielded transfer's sender and receiver handles are
// both proven consistent with the transferred commitment in one
// proof.
type CiphertextValidityProof struct {
	Y0, Y1 *ristretto255.Element
	Y2     *ristretto255.Element // nil for the single-handle form
	Zr, Zx *scalar.Scalar
}

// ProveCiphertextValidity proves that C = x*G + r*H and D1 = r*P1
// (and, if P2 is non-nil, D2 = r*P2) all share r.
func ProveCiphertextValidity(tr *transcript.Transcript, x, r *scalar.Scalar, P1, P2 *ristretto255.Element) (*CiphertextValidityProof, error) {
	kx, err := randomScalar()
	if err != nil {
		return nil, err
	}
	kr, err := randomScalar()
	if err != nil {
		return nil, err
	}

	y0 := new(ristretto255.Element).Add(
		new(ristretto255.Element).ScalarBaseMult(kx),
		new(ristretto255.Element).ScalarMult(kr, h()),
	)
	y1 := new(ristretto255.Element).ScalarMult(kr, P1)

	if err := appendPoint(tr, "Y_0", y0); err != nil {
		return nil, err
	}
	if err := appendPoint(tr, "Y_1", y1); err != nil {
		return nil, err
	}

	var y2 *ristretto255.Element
	if P2 != nil {
		y2 = new(ristretto255.Element).ScalarMult(kr, P2)
		if err := appendPoint(tr, "Y_2", y2); err != nil {
			return nil, err
		}
	}

	c := tr.ChallengeScalar("c")
	zx := new(scalar.Scalar).MultiplyAdd(c, x, kx)
	zr := new(scalar.Scalar).MultiplyAdd(c, r, kr)

	return &CiphertextValidityProof{Y0: y0, Y1: y1, Y2: y2, Zr: zr, Zx: zx}, nil
}

// Verify checks that C = x*G + r*H, D1 = r*P1, and (if the proof
// carries Y2) D2 = r*P2, for a single unknown (x, r), given the
// public commitment C and handle(s).
func (proof *CiphertextValidityProof) Verify(tr *transcript.Transcript, C *elgamal.Commitment, D1, P1, D2, P2 *ristretto255.Element) error {
	if err := appendPoint(tr, "Y_0", proof.Y0); err != nil {
		return err
	}
	if err := appendPoint(tr, "Y_1", proof.Y1); err != nil {
		return err
	}
	if (proof.Y2 == nil) != (D2 == nil || P2 == nil) {
		return errs.ErrBadProof
	}
	if proof.Y2 != nil {
		if err := appendPoint(tr, "Y_2", proof.Y2); err != nil {
			return err
		}
	}
	c := tr.ChallengeScalar("c")

	lhs0 := new(ristretto255.Element).Add(
		new(ristretto255.Element).ScalarBaseMult(proof.Zx),
		new(ristretto255.Element).ScalarMult(proof.Zr, h()),
	)
	rhs0 := new(ristretto255.Element).Add(proof.Y0, new(ristretto255.Element).ScalarMult(c, C.P))
	if !lhs0.Equal(rhs0) {
		return errs.ErrBadProof
	}

	lhs1 := new(ristretto255.Element).ScalarMult(proof.Zr, P1)
	rhs1 := new(ristretto255.Element).Add(proof.Y1, new(ristretto255.Element).ScalarMult(c, D1))
	if !lhs1.Equal(rhs1) {
		return errs.ErrBadProof
	}

	if proof.Y2 != nil {
		lhs2 := new(ristretto255.Element).ScalarMult(proof.Zr, P2)
		rhs2 := new(ristretto255.Element).Add(proof.Y2, new(ristretto255.Element).ScalarMult(c, D2))
		if !lhs2.Equal(rhs2) {
			return errs.ErrBadProof
		}
	}
	return nil
}

// PreVerify is Verify under the retained, not-yet-batching collector
// API (see Collector's doc comment).
func (proof *CiphertextValidityProof) PreVerify(_ *Collector, tr *transcript.Transcript, C *elgamal.Commitment, D1, P1, D2, P2 *ristretto255.Element) error {
	return proof.Verify(tr, C, D1, P1, D2, P2)
}

// Bytes encodes proof as Y_0 || Y_1 [|| Y_2] || z_r || z_x.
func (proof *CiphertextValidityProof) Bytes() ([]byte, bool) {
	y0, ok := proof.Y0.Bytes()
	if !ok {
		return nil, false
	}
	y1, ok := proof.Y1.Bytes()
	if !ok {
		return nil, false
	}
	size := CiphertextValiditySizeSingle
	if proof.Y2 != nil {
		size = CiphertextValiditySizeDouble
	}
	out := make([]byte, 0, size)
	out = append(out, y0...)
	out = append(out, y1...)
	if proof.Y2 != nil {
		y2, ok := proof.Y2.Bytes()
		if !ok {
			return nil, false
		}
		out = append(out, y2...)
	}
	out = append(out, proof.Zr.Bytes()...)
	out = append(out, proof.Zx.Bytes()...)
	return out, true
}

// ParseCiphertextValidityProof decodes a CiphertextValidityProof from
// its 128- or 160-byte wire encoding.
func ParseCiphertextValidityProof(buf []byte) (*CiphertextValidityProof, error) {
	var hasY2 bool
	switch len(buf) {
	case CiphertextValiditySizeSingle:
		hasY2 = false
	case CiphertextValiditySizeDouble:
		hasY2 = true
	default:
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

	off := 64
	var y2 *ristretto255.Element
	if hasY2 {
		y2, err = decodePoint(buf[off : off+32])
		if err != nil {
			return nil, err
		}
		off += 32
	}

	zr, err := decodeScalar(buf[off : off+32])
	if err != nil {
		return nil, err
	}
	zx, err := decodeScalar(buf[off+32 : off+64])
	if err != nil {
		return nil, err
	}
	return &CiphertextValidityProof{Y0: y0, Y1: y1, Y2: y2, Zr: zr, Zx: zx}, nil
}
