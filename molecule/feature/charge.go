package feature

import "strconv"

// Charge records a bracket atom's formal charge. A bare "+"/"-" and an
// explicit "+1"/"-1" both mean one unit of charge but render differently,
// mirroring VirtualHydrogen's bare/explicit distinction.
type Charge struct {
	Magnitude int8 // 1..9
	Negative  bool
	Explicit  bool
}

// BarePlus and BareMinus are the values produced by a lone "+" or "-".
var (
	BarePlus  = Charge{Magnitude: 1, Negative: false, Explicit: false}
	BareMinus = Charge{Magnitude: 1, Negative: true, Explicit: false}
)

// NewCharge builds the explicit +1..+9 / -1..-9 form.
func NewCharge(magnitude int8, negative bool) (Charge, bool) {
	if magnitude < 1 || magnitude > 9 {
		return Charge{}, false
	}
	return Charge{Magnitude: magnitude, Negative: negative, Explicit: true}, true
}

// Value returns the signed charge as an integer.
func (c Charge) Value() int {
	v := int(c.Magnitude)
	if c.Negative {
		return -v
	}
	return v
}

func (c Charge) String() string {
	sign := "+"
	if c.Negative {
		sign = "-"
	}
	if !c.Explicit {
		return sign
	}
	return sign + strconv.Itoa(int(c.Magnitude))
}
