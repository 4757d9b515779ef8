package field

// Swap conditionally exchanges a and b in constant time: if cond == 1,
// a and b are swapped; if cond == 0, both are left unchanged. cond must
// be 0 or 1. Grounded on the same constant-time-swap discipline
// internal/mem applies at the byte-slice level (XORAndCopy et al.),
// lifted to the field-element level via each backend's own Select.
func Swap(a, b Elt, cond int) {
	ta, tb := a.Clone(), b.Clone()
	a.Select(tb, a, cond)
	b.Select(ta, b, cond)
}

// Wipe overwrites v with zeros. It does not guarantee the compiler
// won't elide the write if v is never read again; callers handling
// long-lived secrets should prefer allocating fresh elements over
// relying solely on Wipe.
func Wipe(v Elt) {
	v.Zero()
}

// CondNegate sets v = a if cond == 0, v = -a if cond == 1, in constant time.
func CondNegate(v, a Elt, cond int) Elt {
	neg := a.Clone()
	neg.Negate(a)
	return v.Select(neg, a, cond)
}
