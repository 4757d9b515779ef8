package scalar

// BatchInvert sets each element of out to the multiplicative inverse of
// the corresponding element of in, using Montgomery's trick: one
// inversion and 3n-3 multiplications instead of n inversions. Elements
// of in must all be nonzero.
func BatchInvert(out, in []*Scalar) {
	n := len(in)
	if n == 0 {
		return
	}
	if n == 1 {
		out[0] = new(Scalar).Invert(in[0])
		return
	}

	// prefix[i] = in[0] * in[1] * ... * in[i]
	prefix := make([]*Scalar, n)
	prefix[0] = new(Scalar).Set(in[0])
	for i := 1; i < n; i++ {
		prefix[i] = new(Scalar).Multiply(prefix[i-1], in[i])
	}

	// allInv = 1 / (in[0] * ... * in[n-1])
	allInv := new(Scalar).Invert(prefix[n-1])

	for i := n - 1; i > 0; i-- {
		out[i] = new(Scalar).Multiply(allInv, prefix[i-1])
		allInv.Multiply(allInv, in[i])
	}
	out[0] = new(Scalar).Set(allInv)
}
