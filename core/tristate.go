package core

// Bit reads n's observed state as a tri-state outcome: ok is false unless
// the node reads exactly Low or High. Floating and Conflict are both
// "no value", a normal, recoverable outcome for the caller -- never an
// error (see SPEC_FULL.md §7).
func Bit(c *NodeCollection, n NodeIndex) (value bool, ok bool) {
	switch c.Read(n) {
	case Low:
		return false, true
	case High:
		return true, true
	default:
		return false, false
	}
}

// Word reads bits LSB-first (bits[0] is bit 0) into a uint64, tri-state:
// ok is false if any bit is non-binary.
func Word(c *NodeCollection, bits []NodeIndex) (value uint64, ok bool) {
	var accum uint64
	for i, n := range bits {
		bit, bok := Bit(c, n)
		if !bok {
			return 0, false
		}
		if bit {
			accum |= 1 << uint(i)
		}
	}
	return accum, true
}
