package scalarmul

import (
	"github.com/tos-network/toscrypto/group/edwards25519"
	"github.com/tos-network/toscrypto/scalar"
)

// MaxBatchSize is the largest batch Straus handles via its windowed
// multi-scalar-multiplication table before falling back to sequential
// scalar multiplications (spec's STRAUS_MAX_BATCH_SZ).
const MaxBatchSize = 32

// MultiScalarMul computes sum(scalars[i] * points[i]).
//
// For n == 0 it returns the identity; for n == 1 it falls back to the
// variable-time generic multiplier (no batching benefit at n=1); for
// 2 <= n <= MaxBatchSize it uses Straus's method: a per-point table of
// j*P for j in [0,16), 64 four-bit windows walked high to low with four
// doublings between windows; for n > MaxBatchSize it falls back to
// summing n sequential scalar multiplications.
func MultiScalarMul(scalars []*scalar.Scalar, points []*edwards25519.Point) *edwards25519.Point {
	n := len(points)
	if n != len(scalars) {
		panic("scalarmul: MultiScalarMul requires matching scalar and point counts")
	}
	switch {
	case n == 0:
		return edwards25519.Identity()
	case n == 1:
		return MulVarTime(points[0], scalars[0])
	case n > MaxBatchSize:
		acc := edwards25519.Identity()
		for i := range points {
			acc = edwards25519.Add(acc, MulVarTime(points[i], scalars[i]), edwards25519.AddOptions{})
		}
		return acc
	}

	tables := make([][16]*edwards25519.Point, n)
	for i, p := range points {
		tables[i][0] = edwards25519.Identity()
		tables[i][1] = p
		for j := 2; j < 16; j++ {
			tables[i][j] = edwards25519.Add(tables[i][j-1], p, edwards25519.AddOptions{})
		}
	}

	digits := make([][64]int, n)
	for i, s := range scalars {
		b := scalarBytesLE(s)
		for w := 0; w < 64; w++ {
			byteIdx := w / 2
			if w%2 == 0 {
				digits[i][w] = int(b[byteIdx] & 0x0f)
			} else {
				digits[i][w] = int(b[byteIdx] >> 4)
			}
		}
	}

	acc := edwards25519.Identity()
	for w := 63; w >= 0; w-- {
		acc = edwards25519.Dbln(acc, 4)
		for i := 0; i < n; i++ {
			d := digits[i][w]
			if d == 0 {
				continue
			}
			acc = edwards25519.Add(acc, tables[i][d], edwards25519.AddOptions{})
		}
	}
	return acc
}
