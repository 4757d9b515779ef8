package transcript

import (
	"bytes"
	"testing"

	"github.com/tos-network/toscrypto/group/ristretto255"
	"github.com/tos-network/toscrypto/internal/testdata"
)

func TestChallengeDeterministicInAppendSequence(t *testing.T) {
	mk := func() []byte {
		tr := New("test-protocol")
		tr.AppendMessage("A", []byte("hello"))
		tr.AppendMessage("B", []byte("world"))
		out := make([]byte, 32)
		tr.ChallengeBytes("c", out)
		return out
	}

	a, b := mk(), mk()
	if !bytes.Equal(a, b) {
		t.Fatal("identical append sequences produced different challenges")
	}
}

func TestChallengeSensitiveToOrder(t *testing.T) {
	tr1 := New("test-protocol")
	tr1.AppendMessage("A", []byte("hello"))
	tr1.AppendMessage("B", []byte("world"))
	c1 := make([]byte, 32)
	tr1.ChallengeBytes("c", c1)

	tr2 := New("test-protocol")
	tr2.AppendMessage("B", []byte("world"))
	tr2.AppendMessage("A", []byte("hello"))
	c2 := make([]byte, 32)
	tr2.ChallengeBytes("c", c2)

	if bytes.Equal(c1, c2) {
		t.Fatal("swapping append order did not change the challenge")
	}
}

func TestChallengeSensitiveToLabel(t *testing.T) {
	tr1 := New("p")
	tr1.AppendMessage("A", []byte("x"))
	c1 := make([]byte, 32)
	tr1.ChallengeBytes("c1", c1)

	tr2 := New("p")
	tr2.AppendMessage("A", []byte("x"))
	c2 := make([]byte, 32)
	tr2.ChallengeBytes("c2", c2)

	if bytes.Equal(c1, c2) {
		t.Fatal("different challenge labels produced identical output")
	}
}

func TestCloneEvolvesIndependently(t *testing.T) {
	tr := New("p")
	tr.AppendMessage("A", []byte("shared prefix"))

	left := tr.Clone()
	right := tr.Clone()

	left.AppendMessage("branch", []byte("left"))
	right.AppendMessage("branch", []byte("right"))

	cl := make([]byte, 32)
	left.ChallengeBytes("c", cl)
	cr := make([]byte, 32)
	right.ChallengeBytes("c", cr)

	if bytes.Equal(cl, cr) {
		t.Fatal("clones with different branch data produced identical challenges")
	}
}

func TestValidateAndAppendPointRejectsWithoutMutating(t *testing.T) {
	tr := New("p")
	tr.AppendMessage("A", []byte("x"))
	before := tr.Clone()

	bad := make([]byte, 32)
	for i := range bad {
		bad[i] = 0xff
	}
	if err := tr.ValidateAndAppendPoint("bad", bad); err == nil {
		t.Fatal("expected non-canonical point to be rejected")
	}

	cBefore := make([]byte, 32)
	before.ChallengeBytes("c", cBefore)
	cAfter := make([]byte, 32)
	tr.ChallengeBytes("c", cAfter)
	if !bytes.Equal(cBefore, cAfter) {
		t.Fatal("rejected point append mutated transcript state")
	}
}

func TestValidateAndAppendPointAcceptsGenerator(t *testing.T) {
	g, _ := ristretto255.Generator().Bytes()
	tr := New("p")
	if err := tr.ValidateAndAppendPoint("g", g); err != nil {
		t.Fatalf("expected generator encoding to be accepted: %v", err)
	}
}

func TestChallengeScalarIsCanonical(t *testing.T) {
	tr := New("p")
	tr.AppendMessage("A", []byte("x"))
	s := tr.ChallengeScalar("c")
	if len(s.Bytes()) != 32 {
		t.Fatalf("expected 32-byte scalar encoding, got %d", len(s.Bytes()))
	}
}

func FuzzValidateAndAppendPoint(f *testing.F) {
	g, _ := ristretto255.Generator().Bytes()
	f.Add(g)
	f.Add(make([]byte, 32))
	garbage := testdata.New("FuzzValidateAndAppendPoint").Data(32)
	f.Add(garbage)
	f.Fuzz(func(t *testing.T, buf []byte) {
		tr := New("fuzz")
		_ = tr.ValidateAndAppendPoint("p", buf) // must never panic
	})
}
