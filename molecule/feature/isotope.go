package feature

import "strconv"

// Isotope is a mass number written before an element symbol inside a
// bracket. Valid values are 1..999.
type Isotope uint16

// NewIsotope validates n and returns the corresponding Isotope.
func NewIsotope(n int) (Isotope, bool) {
	if n < 1 || n > 999 {
		return 0, false
	}
	return Isotope(n), true
}

func (i Isotope) String() string {
	return strconv.Itoa(int(i))
}
