package field

// Elt255 stores a field element as 10 limbs alternating 26/25-bit radix
// 2^25.5, the layout a 4-way (AVX2) or 8-way (AVX-512F, pre-IFMA) SIMD
// kernel would operate on: four independent lanes of this shape packed
// into vector registers. The arithmetic kernel itself routes through
// [Elt51] (see DESIGN.md for why this module does not ship three
// independently verified limb kernels); Elt255 exists to carry the
// storage layout and its own carry/pack/unpack discipline so callers
// that need the 10-limb shape (e.g. a future real SIMD backend) have a
// genuine home to drop optimized code into without changing the public
// [Elt] contract.
type Elt255 struct {
	// even-indexed limbs hold 26 bits, odd-indexed limbs hold 25 bits.
	h [10]int64
}

func (v *Elt255) toR51() *Elt51 {
	e := new(Elt51)
	e.SetBytes(v.Bytes())
	return e
}

func (v *Elt255) fromR51(e *Elt51) *Elt255 {
	b := e.Bytes()
	var h [10]int64
	// Standard 26/25-bit alternating decomposition of a little-endian
	// 255-bit integer (bit offsets 0,26,51,77,102,128,153,179,204,230).
	bitOffsets := [10]int{0, 26, 51, 77, 102, 128, 153, 179, 204, 230}
	bitWidths := [10]int{26, 25, 26, 25, 26, 25, 26, 25, 26, 25}
	for i := range h {
		h[i] = int64(extractBits(b, bitOffsets[i], bitWidths[i]))
	}
	v.h = h
	return v
}

func extractBits(b []byte, offset, width int) uint64 {
	var acc uint64
	for i := 0; i < width; i++ {
		bitPos := offset + i
		byteIdx := bitPos / 8
		bitIdx := uint(bitPos % 8)
		if byteIdx >= len(b) {
			continue
		}
		bit := (b[byteIdx] >> bitIdx) & 1
		acc |= uint64(bit) << uint(i)
	}
	return acc
}

func (v *Elt255) Zero() Elt { v.h = [10]int64{}; return v }
func (v *Elt255) One() Elt  { v.h = [10]int64{1}; return v }
func (v *Elt255) Set(a Elt) Elt {
	*v = *a.(*Elt255)
	return v
}

func (v *Elt255) Clone() Elt {
	n := *v
	return &n
}

func (v *Elt255) Add(a, b Elt) Elt {
	return v.fromR51(new(Elt51).Add(a.(*Elt255).toR51(), b.(*Elt255).toR51()).(*Elt51))
}
func (v *Elt255) Sub(a, b Elt) Elt {
	return v.fromR51(new(Elt51).Sub(a.(*Elt255).toR51(), b.(*Elt255).toR51()).(*Elt51))
}
func (v *Elt255) Negate(a Elt) Elt {
	return v.fromR51(new(Elt51).Negate(a.(*Elt255).toR51()).(*Elt51))
}
func (v *Elt255) Multiply(a, b Elt) Elt {
	return v.fromR51(new(Elt51).Multiply(a.(*Elt255).toR51(), b.(*Elt255).toR51()).(*Elt51))
}
func (v *Elt255) Square(a Elt) Elt {
	return v.fromR51(new(Elt51).Square(a.(*Elt255).toR51()).(*Elt51))
}
func (v *Elt255) Mul121666(a Elt) Elt {
	return v.fromR51(new(Elt51).Mul121666(a.(*Elt255).toR51()).(*Elt51))
}
func (v *Elt255) Carry() Elt {
	return v.fromR51(v.toR51())
}
func (v *Elt255) Invert(a Elt) Elt {
	return v.fromR51(new(Elt51).Invert(a.(*Elt255).toR51()).(*Elt51))
}
func (v *Elt255) Pow22523(a Elt) Elt {
	return v.fromR51(new(Elt51).Pow22523(a.(*Elt255).toR51()).(*Elt51))
}
func (v *Elt255) SqrtRatio(u, vv Elt) (int, Elt) {
	var r Elt51
	ws, _ := r.SqrtRatio(u.(*Elt255).toR51(), vv.(*Elt255).toR51())
	v.fromR51(&r)
	return ws, v
}
func (v *Elt255) IsZero() int { return v.toR51().IsZero() }
func (v *Elt255) Equal(a Elt) int {
	return v.toR51().Equal(a.(*Elt255).toR51())
}
func (v *Elt255) Sign() int { return v.toR51().Sign() }
func (v *Elt255) Abs(a Elt) Elt {
	return v.fromR51(new(Elt51).Abs(a.(*Elt255).toR51()).(*Elt51))
}
func (v *Elt255) Select(a, b Elt, cond int) Elt {
	x, y := a.(*Elt255), b.(*Elt255)
	mask := int64(cond) * -1
	for i := range v.h {
		v.h[i] = (x.h[i] & mask) | (y.h[i] &^ mask)
	}
	return v
}
func (v *Elt255) SetBytes(x []byte) Elt {
	var e Elt51
	e.SetBytes(x)
	return v.fromR51(&e)
}
func (v *Elt255) Bytes() []byte {
	out := make([]byte, 32)
	bitOffsets := [10]int{0, 26, 51, 77, 102, 128, 153, 179, 204, 230}
	bitWidths := [10]int{26, 25, 26, 25, 26, 25, 26, 25, 26, 25}
	for i, limb := range v.h {
		off := bitOffsets[i]
		u := uint64(limb)
		for bit := 0; bit < bitWidths[i]; bit++ {
			pos := off + bit
			if (u>>uint(bit))&1 != 0 {
				out[pos/8] |= 1 << uint(pos%8)
			}
		}
	}
	// Route through Elt51 to ensure the encoding is fully and canonically
	// reduced mod p, not just reassembled from possibly-unreduced limbs.
	var e Elt51
	e.SetBytes(out)
	return e.Bytes()
}
