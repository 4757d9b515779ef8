package edwards25519

// basePointBytes is the standard Ed25519 base point encoding (RFC 8032
// §5.1), little-endian y with sign bit 0 (x is even).
var basePointBytes = [32]byte{
	0x58, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
	0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
	0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
	0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
}

var basePoint *Point

func init() {
	p := new(Point)
	p, ok := p.SetBytes(basePointBytes[:])
	if !ok {
		panic("edwards25519: base point does not decode")
	}
	basePoint = p
}

// Generator returns the standard Ed25519 base point B.
func Generator() *Point {
	g := *basePoint
	return &g
}
