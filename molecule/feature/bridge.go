package feature

import "strconv"

// Bridge is a ring-closure numeral. Valid numerals run 1..99; 1-9 render
// as a bare digit, 10-99 render with the "%" escape.
type Bridge uint8

// NewBridge validates n and returns the corresponding Bridge.
func NewBridge(n int) (Bridge, bool) {
	if n < 1 || n > 99 {
		return 0, false
	}
	return Bridge(n), true
}

func (b Bridge) String() string {
	if b < 10 {
		return strconv.Itoa(int(b))
	}
	return "%" + strconv.Itoa(int(b))
}
