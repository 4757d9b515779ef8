package elgamal

import (
	"math"

	"github.com/tos-network/toscrypto/group/ristretto255"
	"github.com/tos-network/toscrypto/scalar"
)

// DiscreteLog finds m in [0, maxValue] such that m*G == point, using
// baby-step giant-step: O(sqrt(maxValue)) time and space. It reports
// false if no such m exists in range.
//
// Grounded on the same two-phase table-then-probe structure a Go
// confidential-balance decryption helper elsewhere in this ecosystem
// uses for the identical problem (recovering a bounded plaintext
// amount from an ElGamal-style commitment to m*G), adapted here to
// operate on ristretto255.Element directly rather than wire bytes.
func DiscreteLog(point *ristretto255.Element, maxValue uint64) (uint64, bool) {
	n := uint64(math.Ceil(math.Sqrt(float64(maxValue) + 1)))
	if n == 0 {
		n = 1
	}

	g := ristretto255.Generator()

	table := make(map[[32]byte]uint64, n+1)
	babyStep := ristretto255.Identity()
	key, ok := babyStep.Bytes()
	if !ok {
		panic("elgamal: unreachable: identity element failed to encode")
	}
	table[[32]byte(key)] = 0
	for i := uint64(1); i <= n; i++ {
		babyStep = new(ristretto255.Element).Add(babyStep, g)
		key, ok = babyStep.Bytes()
		if !ok {
			panic("elgamal: unreachable: valid element failed to encode")
		}
		table[[32]byte(key)] = i
	}

	nG := new(ristretto255.Element).ScalarBaseMult(scalarFromUint64(n))
	giantStride := new(ristretto255.Element).Negate(nG)

	maxJ := maxValue/n + 1
	giantStep := point
	for j := uint64(0); j <= maxJ; j++ {
		gk, ok := giantStep.Bytes()
		if !ok {
			panic("elgamal: unreachable: valid element failed to encode")
		}
		if babyI, found := table[[32]byte(gk)]; found {
			if result := j*n + babyI; result <= maxValue {
				return result, true
			}
		}
		if j < maxJ {
			giantStep = new(ristretto255.Element).Add(giantStep, giantStride)
		}
	}
	return 0, false
}

func scalarFromUint64(v uint64) *scalar.Scalar {
	var buf [32]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * i))
	}
	s, err := new(scalar.Scalar).SetCanonicalBytes(buf[:])
	if err != nil {
		panic("elgamal: unreachable: " + err.Error())
	}
	return s
}
