package feature

import "strconv"

// VirtualHydrogen records the implicit hydrogen count written inside a
// bracket atom. A bare "H" and an explicit "H1" both mean one hydrogen but
// are rendered differently, so the explicit-digit flag is carried alongside
// the count rather than normalizing it away.
type VirtualHydrogen struct {
	Count    uint8
	Explicit bool
}

// BareH is the value produced by an "H" with no following digit.
var BareH = VirtualHydrogen{Count: 1, Explicit: false}

// NewVirtualHydrogen builds the explicit H1..H9 form.
func NewVirtualHydrogen(n uint8) (VirtualHydrogen, bool) {
	if n < 1 || n > 9 {
		return VirtualHydrogen{}, false
	}
	return VirtualHydrogen{Count: n, Explicit: true}, true
}

func (h VirtualHydrogen) String() string {
	if !h.Explicit {
		return "H"
	}
	return "H" + strconv.Itoa(int(h.Count))
}
