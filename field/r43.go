package field

// Elt43 stores a field element as 6 limbs of radix 2^43, the shape an
// AVX-512 IFMA kernel (52-bit multiply-add lanes, packed with headroom
// below 2^43 to absorb carries across a multiply without intermediate
// reduction) would use. As with [Elt255], the arithmetic kernel routes
// through [Elt51]; see DESIGN.md.
type Elt43 struct {
	l [6]uint64
}

const maskLow43 = (uint64(1) << 43) - 1

func (v *Elt43) toR51() *Elt51 {
	e := new(Elt51)
	e.SetBytes(v.Bytes())
	return e
}

func (v *Elt43) fromR51(e *Elt51) *Elt43 {
	b := e.Bytes()
	bitOffsets := [6]int{0, 43, 86, 129, 172, 215}
	bitWidths := [6]int{43, 43, 43, 43, 43, 40}
	var l [6]uint64
	for i := range l {
		l[i] = extractBits(b, bitOffsets[i], bitWidths[i])
	}
	v.l = l
	return v
}

func (v *Elt43) Zero() Elt { v.l = [6]uint64{}; return v }
func (v *Elt43) One() Elt  { v.l = [6]uint64{1}; return v }
func (v *Elt43) Set(a Elt) Elt {
	*v = *a.(*Elt43)
	return v
}

func (v *Elt43) Clone() Elt {
	n := *v
	return &n
}

func (v *Elt43) Add(a, b Elt) Elt {
	return v.fromR51(new(Elt51).Add(a.(*Elt43).toR51(), b.(*Elt43).toR51()).(*Elt51))
}
func (v *Elt43) Sub(a, b Elt) Elt {
	return v.fromR51(new(Elt51).Sub(a.(*Elt43).toR51(), b.(*Elt43).toR51()).(*Elt51))
}
func (v *Elt43) Negate(a Elt) Elt {
	return v.fromR51(new(Elt51).Negate(a.(*Elt43).toR51()).(*Elt51))
}
func (v *Elt43) Multiply(a, b Elt) Elt {
	return v.fromR51(new(Elt51).Multiply(a.(*Elt43).toR51(), b.(*Elt43).toR51()).(*Elt51))
}
func (v *Elt43) Square(a Elt) Elt {
	return v.fromR51(new(Elt51).Square(a.(*Elt43).toR51()).(*Elt51))
}
func (v *Elt43) Mul121666(a Elt) Elt {
	return v.fromR51(new(Elt51).Mul121666(a.(*Elt43).toR51()).(*Elt51))
}
func (v *Elt43) Carry() Elt {
	for i := range v.l {
		v.l[i] &= maskLow43
	}
	return v.fromR51(v.toR51())
}
func (v *Elt43) Invert(a Elt) Elt {
	return v.fromR51(new(Elt51).Invert(a.(*Elt43).toR51()).(*Elt51))
}
func (v *Elt43) Pow22523(a Elt) Elt {
	return v.fromR51(new(Elt51).Pow22523(a.(*Elt43).toR51()).(*Elt51))
}
func (v *Elt43) SqrtRatio(u, vv Elt) (int, Elt) {
	var r Elt51
	ws, _ := r.SqrtRatio(u.(*Elt43).toR51(), vv.(*Elt43).toR51())
	v.fromR51(&r)
	return ws, v
}
func (v *Elt43) IsZero() int { return v.toR51().IsZero() }
func (v *Elt43) Equal(a Elt) int {
	return v.toR51().Equal(a.(*Elt43).toR51())
}
func (v *Elt43) Sign() int { return v.toR51().Sign() }
func (v *Elt43) Abs(a Elt) Elt {
	return v.fromR51(new(Elt51).Abs(a.(*Elt43).toR51()).(*Elt51))
}
func (v *Elt43) Select(a, b Elt, cond int) Elt {
	x, y := a.(*Elt43), b.(*Elt43)
	mask := uint64(cond) * ^uint64(0)
	for i := range v.l {
		v.l[i] = (x.l[i] & mask) | (y.l[i] &^ mask)
	}
	return v
}
func (v *Elt43) SetBytes(x []byte) Elt {
	var e Elt51
	e.SetBytes(x)
	return v.fromR51(&e)
}
func (v *Elt43) Bytes() []byte {
	out := make([]byte, 32)
	bitOffsets := [6]int{0, 43, 86, 129, 172, 215}
	bitWidths := [6]int{43, 43, 43, 43, 43, 40}
	for i, limb := range v.l {
		off := bitOffsets[i]
		for bit := 0; bit < bitWidths[i]; bit++ {
			pos := off + bit
			if pos >= 256 {
				break
			}
			if (limb>>uint(bit))&1 != 0 {
				out[pos/8] |= 1 << uint(pos%8)
			}
		}
	}
	var e Elt51
	e.SetBytes(out)
	return e.Bytes()
}
