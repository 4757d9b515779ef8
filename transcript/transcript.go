// Package transcript implements a Merlin-style duplex transcript
// (spec.md §4.T): an opaque sponge that absorbs labeled messages and
// squeezes labeled pseudorandom challenges, giving every Fiat-Shamir
// protocol in proofs/ and sig/schnorr a chained, bit-exact-ordered view
// of everything committed so far.
//
// The duplex core is built directly on the teacher's thyrse protocol
// engine primitives (hazmat/turboshake, hazmat/kt128): the same
// op||length_encode(label)||length_encode(data) framing discipline
// thyrse.Protocol.Mix/Derive use, narrowed down to exactly the two
// Merlin operations spec.md §4.T names (AppendMessage, ChallengeBytes)
// plus the point/scalar helpers the proof protocols layer on top.
//
// The sponge (TurboSHAKE128) and the byte framing are this package's
// own, not Merlin's STROBE construction, so its challenges are not
// byte-compatible with Merlin transcripts given the same labels and
// messages.
package transcript

import (
	"io"

	"github.com/tos-network/toscrypto/errs"
	"github.com/tos-network/toscrypto/group/ristretto255"
	"github.com/tos-network/toscrypto/hazmat/kt128"
	"github.com/tos-network/toscrypto/hazmat/turboshake"
	"github.com/tos-network/toscrypto/scalar"
)

// chainValueSize is the size, in bytes, of the value carried from one
// finalization to the next to keep the transcript chained.
const chainValueSize = 64

// TurboSHAKE128 domain-separation bytes, distinguishing the transcript's
// own chaining squeeze from the squeeze that produces caller-visible
// challenge output.
const (
	dsChain     = 0x20
	dsChallenge = 0x21
)

// Operation bytes distinguish an AppendMessage frame from a
// ChallengeBytes frame so the two can never be confused even when they
// share a label: without this, an attacker-chosen message equal to a
// challenge frame's bytes could otherwise desynchronize a verifier's
// transcript from a prover's.
const (
	opAppend    = 0x01
	opChallenge = 0x02
)

// Transcript is a single-owner duplex Fiat-Shamir transcript. Its zero
// value is not usable; construct one with New. Methods mutate the
// transcript in place: callers that need two independent continuations
// of the same prefix should call Clone first (mirroring the linear,
// move-only discipline spec.md's DESIGN NOTES §9 calls for — a Clone is
// an explicit, visible fork rather than an implicit aliasing of shared
// state).
type Transcript struct {
	h turboshake.Hasher
}

// New creates a transcript initialized with a fixed domain-separation
// label (e.g. "ShieldCommitmentProof" or one of the protocol labels
// spec.md §4.T lists). Two transcripts built from the same label with
// identical append sequences produce identical challenges.
func New(label string) *Transcript {
	var t Transcript
	t.h = turboshake.New(dsChain)
	t.writeFrame([]byte("dom-sep"), []byte(label))
	return &t
}

// Clone returns an independent copy of t; t and the clone evolve
// separately from this point on.
func (t *Transcript) Clone() *Transcript {
	c := *t
	return &c
}

// AppendMessage commits label and data, in that order, to the
// transcript. Ordering of all AppendMessage/ChallengeBytes calls is
// part of the transcript's contract: swapping two appends produces an
// unrelated set of challenges.
func (t *Transcript) AppendMessage(label string, data []byte) {
	t.writeOp(opAppend)
	t.writeFrame([]byte(label), data)
}

// AppendStream commits label and the digest of r's entire contents,
// absorbing r through KT128 rather than buffering it whole. This is the
// large-message absorb path spec.md's §4.T leaves implicit for
// AppendMessage: data too large to hold in memory (e.g. a block body
// being committed to) is pre-hashed and only the digest enters the
// duplex, the same role KT128 plays in thyrse.Protocol.MixStream.
func (t *Transcript) AppendStream(label string, r io.Reader) error {
	kh := kt128.New()
	if _, err := io.Copy(kh, r); err != nil {
		return err
	}
	var digest [chainValueSize]byte
	_, _ = kh.Read(digest[:])
	t.writeOp(opAppend)
	t.writeFrame([]byte(label), digest[:])
	return nil
}

// ValidateAndAppendPoint decodes buf as a canonical Ristretto255
// encoding and, only if it decodes successfully, appends label and buf
// to the transcript. On failure it returns errs.ErrInvalidEncoding
// without mutating the transcript state, so a rejected point never
// desynchronizes the prover and verifier's views of the transcript.
func (t *Transcript) ValidateAndAppendPoint(label string, buf []byte) error {
	var e ristretto255.Element
	if _, ok := e.SetBytes(buf); !ok {
		return errs.ErrInvalidEncoding
	}
	t.AppendMessage(label, buf)
	return nil
}

// ChallengeBytes squeezes len(out) pseudorandom bytes, deterministic in
// the full sequence of appends (and prior challenges) so far, into out.
// The transcript is re-chained afterward so a following append or
// challenge reflects that this challenge was drawn.
func (t *Transcript) ChallengeBytes(label string, out []byte) {
	t.writeOp(opChallenge)
	t.writeFrame([]byte(label), nil)

	oh := t.h
	turboshake.Chain(&t.h, &oh, dsChallenge)

	var cv [chainValueSize]byte
	_, _ = t.h.Read(cv[:])
	if len(out) > 0 {
		_, _ = oh.Read(out)
	}

	t.h = turboshake.New(dsChain)
	t.writeFrame([]byte("chain"), cv[:])
}

// ChallengeScalar draws 64 challenge bytes labeled label and reduces
// them modulo l, the standard way every sigma proof in proofs/ and
// sig/schnorr derives a Fiat-Shamir challenge scalar.
func (t *Transcript) ChallengeScalar(label string) *scalar.Scalar {
	var wide [64]byte
	t.ChallengeBytes(label, wide[:])
	s, err := new(scalar.Scalar).SetUniformBytes(wide[:])
	if err != nil {
		// SetUniformBytes only fails on a wrong-length input, which
		// wide[:] never is.
		panic("transcript: unreachable: " + err.Error())
	}
	return s
}

// AppendScalar appends label and the canonical 32-byte encoding of s.
func (t *Transcript) AppendScalar(label string, s *scalar.Scalar) {
	t.AppendMessage(label, s.Bytes())
}

// writeOp writes the one-byte operation code op into the duplex.
func (t *Transcript) writeOp(op byte) {
	_, _ = t.h.Write([]byte{op})
}

// writeFrame writes left_encode(len(label)) || label ||
// left_encode(len(data)) || data into the duplex, the length-framing
// discipline (NIST SP 800-185 left_encode) that makes the transcript's
// encoding unambiguous and injective over the sequence of (label, data)
// pairs appended so far.
func (t *Transcript) writeFrame(label, data []byte) {
	t.writeLengthEncode(label)
	t.writeLengthEncode(data)
}

func (t *Transcript) writeLengthEncode(data []byte) {
	t.writeLeftEncode(uint64(len(data)))
	if len(data) > 0 {
		_, _ = t.h.Write(data)
	}
}

// writeLeftEncode writes left_encode(x) as defined in NIST SP 800-185:
// the minimal big-endian encoding of x, prefixed by its own byte length.
func (t *Transcript) writeLeftEncode(x uint64) {
	var buf [9]byte
	if x == 0 {
		buf[0] = 1
		_, _ = t.h.Write(buf[:2])
		return
	}
	i := 8
	v := x
	for v > 0 {
		buf[i] = byte(v)
		v >>= 8
		i--
	}
	buf[i] = byte(8 - i)
	_, _ = t.h.Write(buf[i:9])
}
