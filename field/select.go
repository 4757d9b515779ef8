package field

import "github.com/klauspost/cpuid/v2"

// active is the backend New and NewNamed construct by default, chosen once
// at init time by runtime capability detection, mirroring
// hazmat/keccak's cpuid.CPU.Has(...) gating of its Lanes global.
var active = BackendR51

func init() {
	switch {
	case cpuid.CPU.Has(cpuid.AVX512F) && cpuid.CPU.Has(cpuid.AVX512IFMA):
		active = BackendR43
	case cpuid.CPU.Has(cpuid.AVX2):
		active = BackendR255
	default:
		active = BackendR51
	}
}

// Backend reports the representation New constructs on this host.
func Backend() Backend { return active }

// New returns a zero-valued element using the host's preferred backend.
func New() Elt {
	return NewNamed(active)
}

// NewNamed returns a zero-valued element using the requested backend,
// regardless of what the host prefers. Used by cross-representation
// equivalence tests and by code that must pin a specific layout.
func NewNamed(b Backend) Elt {
	switch b {
	case BackendR255:
		return new(Elt255).Zero().(*Elt255)
	case BackendR43:
		return new(Elt43).Zero().(*Elt43)
	default:
		return new(Elt51)
	}
}
