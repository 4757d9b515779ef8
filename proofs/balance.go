package proofs

import (
	"encoding/binary"

	"github.com/tos-network/toscrypto/errs"
	"github.com/tos-network/toscrypto/group/ristretto255"
	"github.com/tos-network/toscrypto/proofs/elgamal"
	"github.com/tos-network/toscrypto/scalar"
	"github.com/tos-network/toscrypto/transcript"
)

// BalanceSize is the encoded size of a BalanceProof: amount (8 bytes,
// little-endian) || CommitmentEqProof (192 bytes).
const BalanceSize = 8 + CommitmentEqSize

// BalanceProof publishes a plaintext account balance and proves that
// it is the same value a source ElGamal ciphertext holds: it is a
// CommitmentEqProof against a destination commitment that is public,
// unblinded commitment to Amount (s = 0), so no separate destination
// blinding factor needs to be managed by the caller.
type BalanceProof struct {
	Amount uint64
	Eq     *CommitmentEqProof
}

// publicCommitment returns an unblinded commitment to amount,
// amount*G + 0*H, which both sides of a BalanceProof can recompute
// from the public amount alone.
func publicCommitment(amount uint64) *elgamal.Commitment {
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[:8], amount)
	s, err := new(scalar.Scalar).SetCanonicalBytes(buf[:])
	if err != nil {
		panic("proofs: unreachable: " + err.Error())
	}
	return &elgamal.Commitment{P: new(ristretto255.Element).ScalarBaseMult(s)}
}

// ProveBalance proves that amount equals the value x held by a source
// ElGamal ciphertext (Csrc = x*G + r*H, Dsrc = r*Psrc), revealing
// amount in the clear.
func ProveBalance(tr *transcript.Transcript, amount uint64, x, r *scalar.Scalar, Psrc *ristretto255.Element) (*BalanceProof, error) {
	tr.AppendMessage("amount", amountBytes(amount))
	eq, err := ProveCommitmentEq(tr, x, r, scalar.Zero(), Psrc)
	if err != nil {
		return nil, err
	}
	return &BalanceProof{Amount: amount, Eq: eq}, nil
}

// Verify checks that proof.Amount is the plaintext value held by the
// source ciphertext (Csrc, Dsrc under Psrc).
func (proof *BalanceProof) Verify(tr *transcript.Transcript, Csrc *elgamal.Commitment, Dsrc, Psrc *ristretto255.Element) error {
	tr.AppendMessage("amount", amountBytes(proof.Amount))
	Cdst := publicCommitment(proof.Amount)
	return proof.Eq.Verify(tr, Csrc, Dsrc, Psrc, Cdst)
}

// PreVerify is Verify under the retained, not-yet-batching collector
// API (see Collector's doc comment).
func (proof *BalanceProof) PreVerify(_ *Collector, tr *transcript.Transcript, Csrc *elgamal.Commitment, Dsrc, Psrc *ristretto255.Element) error {
	return proof.Verify(tr, Csrc, Dsrc, Psrc)
}

func amountBytes(amount uint64) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], amount)
	return buf[:]
}

// Bytes encodes proof as amount(8 LE) || CommitmentEqProof.
func (proof *BalanceProof) Bytes() ([]byte, bool) {
	eq, ok := proof.Eq.Bytes()
	if !ok {
		return nil, false
	}
	out := make([]byte, 0, BalanceSize)
	out = append(out, amountBytes(proof.Amount)...)
	out = append(out, eq...)
	return out, true
}

// ParseBalanceProof decodes a BalanceProof from its 200-byte wire
// encoding.
func ParseBalanceProof(buf []byte) (*BalanceProof, error) {
	if len(buf) != BalanceSize {
		return nil, errs.ErrBadProof
	}
	amount := binary.LittleEndian.Uint64(buf[:8])
	eq, err := ParseCommitmentEqProof(buf[8:])
	if err != nil {
		return nil, err
	}
	return &BalanceProof{Amount: amount, Eq: eq}, nil
}
