package field

// Mul2 computes c[i] = a[i] * b[i] for two independent lanes. It must not
// change observable results versus calling Multiply twice; a SIMD backend
// replaces the loop body with two genuinely parallel lanes without
// changing this signature.
func Mul2(c, a, b [2]Elt) {
	for i := range c {
		c[i].Multiply(a[i], b[i])
	}
}

// Mul3 computes c[i] = a[i] * b[i] for three independent lanes.
func Mul3(c, a, b [3]Elt) {
	for i := range c {
		c[i].Multiply(a[i], b[i])
	}
}

// Mul4 computes c[i] = a[i] * b[i] for four independent lanes.
func Mul4(c, a, b [4]Elt) {
	for i := range c {
		c[i].Multiply(a[i], b[i])
	}
}

// Mul8 computes c[i] = a[i] * b[i] for eight independent lanes.
func Mul8(c, a, b [8]Elt) {
	for i := range c {
		c[i].Multiply(a[i], b[i])
	}
}

// Sqr2 computes c[i] = a[i] * a[i] for two independent lanes.
func Sqr2(c, a [2]Elt) {
	for i := range c {
		c[i].Square(a[i])
	}
}

// Sqr4 computes c[i] = a[i] * a[i] for four independent lanes.
func Sqr4(c, a [4]Elt) {
	for i := range c {
		c[i].Square(a[i])
	}
}

// Sqr8 computes c[i] = a[i] * a[i] for eight independent lanes.
func Sqr8(c, a [8]Elt) {
	for i := range c {
		c[i].Square(a[i])
	}
}
