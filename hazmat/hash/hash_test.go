package hash

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func TestSHA512EmptyVector(t *testing.T) {
	want := mustHex("cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e")
	got := SHA512(nil)
	if !bytes.Equal(got[:], want) {
		t.Fatalf("SHA512(\"\") = %x, want %x", got, want)
	}
}

func TestSHA3_256EmptyVector(t *testing.T) {
	want := mustHex("a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a")
	got := SHA3_256(nil)
	if !bytes.Equal(got[:], want) {
		t.Fatalf("SHA3-256(\"\") = %x, want %x", got, want)
	}
}

func TestSHA3_512EmptyVector(t *testing.T) {
	want := mustHex("a69f73cca23a9ac5c8b567dc185a756e97c982164fe25859e0d1dcc1475c80a615b2123af1f5f94c11e3e9402c3ac558f500199d95b6d3e301758586281dcd26")
	got := SHA3_512(nil)
	if !bytes.Equal(got[:], want) {
		t.Fatalf("SHA3-512(\"\") = %x, want %x", got, want)
	}
}

func TestKeccak256EmptyVector(t *testing.T) {
	want := mustHex("c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")
	got := Keccak256(nil)
	if !bytes.Equal(got[:], want) {
		t.Fatalf("Keccak256(\"\") = %x, want %x", got, want)
	}
}

func TestStreamingMatchesOneShot(t *testing.T) {
	msg := []byte("the quick brown fox jumps over the lazy dog")

	h := NewSHA512()
	_, _ = h.Write(msg[:10])
	_, _ = h.Write(msg[10:])
	oneShot := SHA512(msg)
	if !bytes.Equal(h.Sum(nil), oneShot[:]) {
		t.Fatal("streaming SHA-512 disagrees with one-shot")
	}
}

func TestBatchFiniMatchesSequentialOneShot(t *testing.T) {
	msgs := [][]byte{[]byte("a"), []byte("bb"), []byte("ccc")}

	b := NewBatch(4, NewSHA3_256)
	for _, m := range msgs {
		b.Add(m)
	}
	got := b.Fini()
	if len(got) != len(msgs) {
		t.Fatalf("got %d digests, want %d", len(got), len(msgs))
	}
	for i, m := range msgs {
		want := SHA3_256(m)
		if !bytes.Equal(got[i], want[:]) {
			t.Fatalf("lane %d: batch digest disagrees with one-shot", i)
		}
	}
	if b.Len() != 0 {
		t.Fatal("Fini did not reset the batch")
	}
}

func TestBatchAbortDiscards(t *testing.T) {
	b := NewBatch(2, NewSHA512)
	b.Add([]byte("x"))
	b.Abort()
	if b.Len() != 0 {
		t.Fatal("Abort did not clear the batch")
	}
}

func TestBatchAddPastWidthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic adding past batch width")
		}
	}()
	b := NewBatch(1, NewSHA512)
	b.Add([]byte("a"))
	b.Add([]byte("b"))
}
