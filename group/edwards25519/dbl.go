package edwards25519

// Double returns 2*a as a new Point. It runs the general addition
// formula (addCore, then finalMul, in edwards25519.go) with a as the
// first operand and a's Cached form as the second; that formula is
// correct for P == Q. No separate squaring-based doubling formula is
// used, so a doubling costs the same field multiplies as an addition
// and always returns a fully computed Point.
func Double(a *Point) *Point {
	var c Cached
	c.Precompute(a)
	part := addCore(a, c.YplusX, c.YminusX, c.kT, c.Z, AddOptions{BZIsOne: false})
	return part.finalMul()
}

// Dbln applies Double n times in a row.
func Dbln(a *Point, n int) *Point {
	r := a
	for i := 0; i < n; i++ {
		r = Double(r)
	}
	return r
}
