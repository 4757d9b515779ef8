package scalarmul

import "github.com/tos-network/toscrypto/field"

// X25519 implements the Curve25519 Diffie-Hellman function: a
// constant-time Montgomery ladder over 255 bits, operating on u
// coordinates directly rather than full Edwards points (the two curves
// are birationally equivalent but X25519 never needs y).
//
// scalar is clamped per RFC 7748 §5 (byte 0 &= 0xF8, byte 31 &= 0x7F,
// byte 31 |= 0x40); u is reduced mod p on input. The output is x2/z2
// after the ladder; callers must reject an all-zero result (it
// indicates a small-subgroup input that collapsed the computation).
// Every secret-bearing local is wiped before returning.
func X25519(scalarIn, uIn []byte) (shared [32]byte, ok bool) {
	if len(scalarIn) != 32 || len(uIn) != 32 {
		return shared, false
	}

	var k [32]byte
	copy(k[:], scalarIn)
	k[0] &= 248
	k[31] &= 127
	k[31] |= 64

	u := field.New().SetBytes(uIn)

	x1 := u
	x2 := field.New().One()
	z2 := field.New().Zero()
	x3 := field.New().Set(u)
	z3 := field.New().One()

	swap := 0

	for pos := 254; pos >= 0; pos-- {
		bit := int((k[pos/8] >> uint(pos%8)) & 1)
		swap ^= bit
		field.Swap(x2, x3, swap)
		field.Swap(z2, z3, swap)
		swap = bit

		a := field.New().Add(x2, z2)
		aa := field.New().Square(a)
		b := field.New().Sub(x2, z2)
		bb := field.New().Square(b)
		e := field.New().Sub(aa, bb)
		c := field.New().Add(x3, z3)
		d := field.New().Sub(x3, z3)
		da := field.New().Multiply(d, a)
		cb := field.New().Multiply(c, b)

		x3 = field.New().Add(da, cb)
		x3 = field.New().Square(x3)

		z3 = field.New().Sub(da, cb)
		z3 = field.New().Square(z3)
		z3 = field.New().Multiply(z3, x1)

		x2 = field.New().Multiply(aa, bb)

		e121666 := field.New().Mul121666(e)
		z2Term := field.New().Add(aa, e121666)
		z2 = field.New().Multiply(e, z2Term)
	}
	field.Swap(x2, x3, swap)
	field.Swap(z2, z3, swap)

	zInv := field.New().Invert(z2)
	out := field.New().Multiply(x2, zInv)

	copy(shared[:], out.Bytes())

	allZero := true
	for _, b := range shared {
		if b != 0 {
			allZero = false
			break
		}
	}

	field.Wipe(x1)
	field.Wipe(x2)
	field.Wipe(z2)
	field.Wipe(x3)
	field.Wipe(z3)
	for i := range k {
		k[i] = 0
	}

	if allZero {
		return shared, false
	}
	return shared, true
}
