package field

import (
	"bytes"
	"crypto/rand"
	"testing"
)

func randElt(t *testing.T, b Backend) Elt {
	t.Helper()
	var buf [32]byte
	if _, err := rand.Read(buf[:]); err != nil {
		t.Fatal(err)
	}
	buf[31] &= 0x7f
	return NewNamed(b).SetBytes(buf[:])
}

func TestIdentities(t *testing.T) {
	for _, b := range []Backend{BackendR51, BackendR255, BackendR43} {
		t.Run(b.String(), func(t *testing.T) {
			a := randElt(t, b)

			one := NewNamed(b).One()
			got := NewNamed(b).Multiply(a, one)
			if got.Equal(a) != 1 {
				t.Errorf("a*1 != a")
			}

			neg := NewNamed(b).Negate(a)
			sum := NewNamed(b).Add(a, neg)
			if sum.IsZero() != 1 {
				t.Errorf("a+(-a) != 0")
			}

			rt := NewNamed(b).SetBytes(a.Bytes())
			if rt.Equal(a) != 1 {
				t.Errorf("from_bytes(to_bytes(a)) != a")
			}
		})
	}
}

func TestCommutativeAssociativeDistributive(t *testing.T) {
	for _, back := range []Backend{BackendR51, BackendR255, BackendR43} {
		t.Run(back.String(), func(t *testing.T) {
			a := randElt(t, back)
			b := randElt(t, back)
			c := randElt(t, back)

			ab := NewNamed(back).Add(a, b)
			ba := NewNamed(back).Add(b, a)
			if ab.Equal(ba) != 1 {
				t.Errorf("a+b != b+a")
			}

			abC := NewNamed(back).Add(NewNamed(back).Add(a, b), c)
			aBC := NewNamed(back).Add(a, NewNamed(back).Add(b, c))
			if abC.Equal(aBC) != 1 {
				t.Errorf("(a+b)+c != a+(b+c)")
			}

			lhs := NewNamed(back).Multiply(a, NewNamed(back).Add(b, c))
			rhs := NewNamed(back).Add(NewNamed(back).Multiply(a, b), NewNamed(back).Multiply(a, c))
			if lhs.Equal(rhs) != 1 {
				t.Errorf("a*(b+c) != a*b+a*c")
			}
		})
	}
}

func TestInvert(t *testing.T) {
	for _, b := range []Backend{BackendR51, BackendR255, BackendR43} {
		t.Run(b.String(), func(t *testing.T) {
			a := randElt(t, b)
			inv := NewNamed(b).Invert(a)
			prod := NewNamed(b).Multiply(a, inv)
			if prod.Equal(NewNamed(b).One()) != 1 {
				t.Errorf("a * a^-1 != 1")
			}

			z := NewNamed(b).Zero()
			invZero := NewNamed(b).Invert(z)
			if invZero.IsZero() != 1 {
				t.Errorf("invert(0) should be 0, not error")
			}
		})
	}
}

// TestCrossRepresentationAgreement checks the invariant every backend must
// satisfy: identical logical values produce identical canonical encodings
// regardless of storage layout.
func TestCrossRepresentationAgreement(t *testing.T) {
	var seed [32]byte
	if _, err := rand.Read(seed[:]); err != nil {
		t.Fatal(err)
	}
	seed[31] &= 0x7f

	r51 := NewNamed(BackendR51).SetBytes(seed[:])
	r255 := NewNamed(BackendR255).SetBytes(seed[:])
	r43 := NewNamed(BackendR43).SetBytes(seed[:])

	if !bytes.Equal(r51.Bytes(), r255.Bytes()) {
		t.Errorf("r51 and r255 disagree on Bytes()")
	}
	if !bytes.Equal(r51.Bytes(), r43.Bytes()) {
		t.Errorf("r51 and r43 disagree on Bytes()")
	}

	var seed2 [32]byte
	if _, err := rand.Read(seed2[:]); err != nil {
		t.Fatal(err)
	}
	seed2[31] &= 0x7f

	a51, b51 := NewNamed(BackendR51).SetBytes(seed[:]), NewNamed(BackendR51).SetBytes(seed2[:])
	a255, b255 := NewNamed(BackendR255).SetBytes(seed[:]), NewNamed(BackendR255).SetBytes(seed2[:])

	sum51 := NewNamed(BackendR51).Add(a51, b51)
	sum255 := NewNamed(BackendR255).Add(a255, b255)
	if !bytes.Equal(sum51.Bytes(), sum255.Bytes()) {
		t.Errorf("r51 and r255 disagree on Add()")
	}

	prod51 := NewNamed(BackendR51).Multiply(a51, b51)
	prod255 := NewNamed(BackendR255).Multiply(a255, b255)
	if !bytes.Equal(prod51.Bytes(), prod255.Bytes()) {
		t.Errorf("r51 and r255 disagree on Multiply()")
	}
}

func TestSelectAndSwap(t *testing.T) {
	a := NewNamed(BackendR51).SetBytes(bytes.Repeat([]byte{0x01}, 32))
	b := NewNamed(BackendR51).SetBytes(bytes.Repeat([]byte{0x02}, 32))

	chosen := NewNamed(BackendR51).Select(a, b, 1)
	if chosen.Equal(a) != 1 {
		t.Errorf("Select(a, b, 1) != a")
	}
	chosen = NewNamed(BackendR51).Select(a, b, 0)
	if chosen.Equal(b) != 1 {
		t.Errorf("Select(a, b, 0) != b")
	}

	x, y := NewNamed(BackendR51), NewNamed(BackendR51)
	x.Set(a)
	y.Set(b)
	Swap(x, y, 1)
	if x.Equal(b) != 1 || y.Equal(a) != 1 {
		t.Errorf("Swap(x, y, 1) did not exchange values")
	}

	Swap(x, y, 0)
	if x.Equal(b) != 1 || y.Equal(a) != 1 {
		t.Errorf("Swap(x, y, 0) should be a no-op")
	}
}

func TestSqrtRatio(t *testing.T) {
	one := NewNamed(BackendR51).One()
	four := NewNamed(BackendR51).Add(one, one)
	four.Add(four, four)

	wasSquare, r := NewNamed(BackendR51).SqrtRatio(four, one)
	if wasSquare != 1 {
		t.Fatalf("sqrt_ratio(4, 1) should be square")
	}
	sq := NewNamed(BackendR51).Square(r)
	if sq.Equal(four) != 1 {
		t.Errorf("sqrt_ratio(4,1)^2 != 4")
	}
}

func TestAbsSign(t *testing.T) {
	a := randElt(t, BackendR51)
	abs := NewNamed(BackendR51).Abs(a)
	if abs.Sign() != 0 {
		t.Errorf("Abs result should have even sign")
	}
}

func FuzzSetBytesRoundTrip(f *testing.F) {
	f.Add(make([]byte, 32))
	seed := bytes.Repeat([]byte{0xff}, 32)
	seed[31] = 0x7f
	f.Add(seed)

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) != 32 {
			t.Skip()
		}
		in := make([]byte, 32)
		copy(in, data)
		in[31] &= 0x7f

		e := NewNamed(BackendR51).SetBytes(in)
		out := e.Bytes()

		e2 := NewNamed(BackendR51).SetBytes(out)
		if !bytes.Equal(out, e2.Bytes()) {
			t.Errorf("Bytes() is not idempotent for input %x", in)
		}
	})
}
