package proofs

import (
	"testing"

	"github.com/tos-network/toscrypto/group/ristretto255"
	"github.com/tos-network/toscrypto/proofs/elgamal"
	"github.com/tos-network/toscrypto/scalar"
	"github.com/tos-network/toscrypto/transcript"
)

func scalarFromInt(n int64) *scalar.Scalar {
	var buf [32]byte
	v := uint64(n)
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * i))
	}
	s, err := new(scalar.Scalar).SetCanonicalBytes(buf[:])
	if err != nil {
		panic(err)
	}
	return s
}

func TestShieldCommitmentProofRoundTrip(t *testing.T) {
	v := scalarFromInt(100)
	r := scalarFromInt(7)
	kp := elgamal.NewKeyPair(scalarFromInt(321))
	C := elgamal.NewCommitment(v, r)
	D := new(ristretto255.Element).ScalarMult(r, kp.PublicKey)

	proverTr := transcript.New("shield-commitment-proof")
	proof, err := ProveShieldCommitment(proverTr, v, r, kp.PublicKey)
	if err != nil {
		t.Fatalf("ProveShieldCommitment: %v", err)
	}

	verifierTr := transcript.New("shield-commitment-proof")
	if err := proof.Verify(verifierTr, v, C, D, kp.PublicKey); err != nil {
		t.Fatalf("Verify rejected a valid proof: %v", err)
	}

	buf, ok := proof.Bytes()
	if !ok || len(buf) != ShieldCommitmentSize {
		t.Fatalf("Bytes: ok=%v len=%d", ok, len(buf))
	}
	parsed, err := ParseShieldCommitmentProof(buf)
	if err != nil {
		t.Fatalf("ParseShieldCommitmentProof: %v", err)
	}
	if err := parsed.Verify(transcript.New("shield-commitment-proof"), v, C, D, kp.PublicKey); err != nil {
		t.Fatalf("Verify rejected the parsed proof: %v", err)
	}
}

func TestShieldCommitmentProofRejectsWrongValue(t *testing.T) {
	v := scalarFromInt(100)
	r := scalarFromInt(7)
	kp := elgamal.NewKeyPair(scalarFromInt(321))
	C := elgamal.NewCommitment(v, r)
	D := new(ristretto255.Element).ScalarMult(r, kp.PublicKey)

	proof, _ := ProveShieldCommitment(transcript.New("shield-commitment-proof"), v, r, kp.PublicKey)

	wrongV := scalarFromInt(101)
	if err := proof.Verify(transcript.New("shield-commitment-proof"), wrongV, C, D, kp.PublicKey); err == nil {
		t.Fatal("Verify accepted a proof against the wrong public value")
	}
}

func TestCiphertextValidityProofSingleHandle(t *testing.T) {
	x := scalarFromInt(55)
	r := scalarFromInt(9)
	P1 := elgamal.NewKeyPair(scalarFromInt(11)).PublicKey

	C := elgamal.NewCommitment(x, r)
	D1 := new(ristretto255.Element).ScalarMult(r, P1)

	proof, err := ProveCiphertextValidity(transcript.New("validity-proof"), x, r, P1, nil)
	if err != nil {
		t.Fatalf("ProveCiphertextValidity: %v", err)
	}
	if proof.Y2 != nil {
		t.Fatal("single-handle proof should not carry Y2")
	}

	if err := proof.Verify(transcript.New("validity-proof"), C, D1, P1, nil, nil); err != nil {
		t.Fatalf("Verify rejected a valid single-handle proof: %v", err)
	}

	buf, ok := proof.Bytes()
	if !ok || len(buf) != CiphertextValiditySizeSingle {
		t.Fatalf("Bytes: ok=%v len=%d", ok, len(buf))
	}
}

func TestCiphertextValidityProofDoubleHandle(t *testing.T) {
	x := scalarFromInt(55)
	r := scalarFromInt(9)
	P1 := elgamal.NewKeyPair(scalarFromInt(11)).PublicKey
	P2 := elgamal.NewKeyPair(scalarFromInt(22)).PublicKey

	C := elgamal.NewCommitment(x, r)
	D1 := new(ristretto255.Element).ScalarMult(r, P1)
	D2 := new(ristretto255.Element).ScalarMult(r, P2)

	proof, err := ProveCiphertextValidity(transcript.New("validity-proof"), x, r, P1, P2)
	if err != nil {
		t.Fatalf("ProveCiphertextValidity: %v", err)
	}
	if proof.Y2 == nil {
		t.Fatal("double-handle proof should carry Y2")
	}

	if err := proof.Verify(transcript.New("validity-proof"), C, D1, P1, D2, P2); err != nil {
		t.Fatalf("Verify rejected a valid double-handle proof: %v", err)
	}

	buf, ok := proof.Bytes()
	if !ok || len(buf) != CiphertextValiditySizeDouble {
		t.Fatalf("Bytes: ok=%v len=%d", ok, len(buf))
	}

	parsed, err := ParseCiphertextValidityProof(buf)
	if err != nil {
		t.Fatalf("ParseCiphertextValidityProof: %v", err)
	}
	if err := parsed.Verify(transcript.New("validity-proof"), C, D1, P1, D2, P2); err != nil {
		t.Fatalf("Verify rejected the parsed double-handle proof: %v", err)
	}
}

func TestCiphertextValidityProofRejectsMismatchedR(t *testing.T) {
	x := scalarFromInt(1)
	r := scalarFromInt(2)
	P1 := elgamal.NewKeyPair(scalarFromInt(3)).PublicKey
	C := elgamal.NewCommitment(x, r)

	otherR := scalarFromInt(999)
	D1 := new(ristretto255.Element).ScalarMult(otherR, P1)

	proof, _ := ProveCiphertextValidity(transcript.New("validity-proof"), x, r, P1, nil)
	if err := proof.Verify(transcript.New("validity-proof"), C, D1, P1, nil, nil); err == nil {
		t.Fatal("Verify accepted a handle with a mismatched blinding factor")
	}
}

func TestCommitmentEqProofRoundTrip(t *testing.T) {
	x := scalarFromInt(77)
	r := scalarFromInt(4)
	s := scalarFromInt(13)
	Psrc := elgamal.NewKeyPair(scalarFromInt(5)).PublicKey

	Csrc := elgamal.NewCommitment(x, r)
	Dsrc := new(ristretto255.Element).ScalarMult(r, Psrc)
	Cdst := elgamal.NewCommitment(x, s)

	proof, err := ProveCommitmentEq(transcript.New("equality-proof"), x, r, s, Psrc)
	if err != nil {
		t.Fatalf("ProveCommitmentEq: %v", err)
	}
	if err := proof.Verify(transcript.New("equality-proof"), Csrc, Dsrc, Psrc, Cdst); err != nil {
		t.Fatalf("Verify rejected a valid equality proof: %v", err)
	}

	buf, ok := proof.Bytes()
	if !ok || len(buf) != CommitmentEqSize {
		t.Fatalf("Bytes: ok=%v len=%d", ok, len(buf))
	}
	parsed, err := ParseCommitmentEqProof(buf)
	if err != nil {
		t.Fatalf("ParseCommitmentEqProof: %v", err)
	}
	if err := parsed.Verify(transcript.New("equality-proof"), Csrc, Dsrc, Psrc, Cdst); err != nil {
		t.Fatalf("Verify rejected the parsed equality proof: %v", err)
	}
}

func TestCommitmentEqProofRejectsDifferentValues(t *testing.T) {
	x := scalarFromInt(77)
	r := scalarFromInt(4)
	s := scalarFromInt(13)
	Psrc := elgamal.NewKeyPair(scalarFromInt(5)).PublicKey

	Csrc := elgamal.NewCommitment(x, r)
	Dsrc := new(ristretto255.Element).ScalarMult(r, Psrc)
	Cdst := elgamal.NewCommitment(scalarFromInt(78), s)

	proof, _ := ProveCommitmentEq(transcript.New("equality-proof"), x, r, s, Psrc)
	if err := proof.Verify(transcript.New("equality-proof"), Csrc, Dsrc, Psrc, Cdst); err == nil {
		t.Fatal("Verify accepted an equality proof for mismatched values")
	}
}

func TestBalanceProofRoundTrip(t *testing.T) {
	amount := uint64(4242)
	x := scalarFromInt(4242)
	r := scalarFromInt(17)
	Psrc := elgamal.NewKeyPair(scalarFromInt(19)).PublicKey

	Csrc := elgamal.NewCommitment(x, r)
	Dsrc := new(ristretto255.Element).ScalarMult(r, Psrc)

	proof, err := ProveBalance(transcript.New("balance-proof"), amount, x, r, Psrc)
	if err != nil {
		t.Fatalf("ProveBalance: %v", err)
	}
	if err := proof.Verify(transcript.New("balance-proof"), Csrc, Dsrc, Psrc); err != nil {
		t.Fatalf("Verify rejected a valid balance proof: %v", err)
	}

	buf, ok := proof.Bytes()
	if !ok || len(buf) != BalanceSize {
		t.Fatalf("Bytes: ok=%v len=%d", ok, len(buf))
	}
	parsed, err := ParseBalanceProof(buf)
	if err != nil {
		t.Fatalf("ParseBalanceProof: %v", err)
	}
	if parsed.Amount != amount {
		t.Fatalf("parsed amount = %d, want %d", parsed.Amount, amount)
	}
	if err := parsed.Verify(transcript.New("balance-proof"), Csrc, Dsrc, Psrc); err != nil {
		t.Fatalf("Verify rejected the parsed balance proof: %v", err)
	}
}

func TestBalanceProofRejectsWrongAmount(t *testing.T) {
	x := scalarFromInt(4242)
	r := scalarFromInt(17)
	Psrc := elgamal.NewKeyPair(scalarFromInt(19)).PublicKey
	Csrc := elgamal.NewCommitment(x, r)
	Dsrc := new(ristretto255.Element).ScalarMult(r, Psrc)

	proof, _ := ProveBalance(transcript.New("balance-proof"), 4242, x, r, Psrc)
	proof.Amount = 4243

	if err := proof.Verify(transcript.New("balance-proof"), Csrc, Dsrc, Psrc); err == nil {
		t.Fatal("Verify accepted a balance proof with a tampered amount")
	}
}
