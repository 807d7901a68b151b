package golay

import "math/bits"

// Parity of all 6-bit values.
var parityTable = [64]uint8{
	0, 1, 1, 0, 1, 0, 0, 1,
	1, 0, 0, 1, 0, 1, 1, 0,
	1, 0, 0, 1, 0, 1, 1, 0,
	0, 1, 1, 0, 1, 0, 0, 1,
	1, 0, 0, 1, 0, 1, 1, 0,
	0, 1, 1, 0, 1, 0, 0, 1,
	0, 1, 1, 0, 1, 0, 0, 1,
	1, 0, 0, 1, 0, 1, 1, 0,
}

// parity12Table returns 1 if the low 12 bits of x contain an odd number of
// ones. The upper 6 bits are folded onto the lower 6 before the table lookup.
func parity12Table(x uint16) uint16 {
	x &= 0x0fff
	x ^= x >> 6
	return uint16(parityTable[x&0x3f])
}

// parity12Builtin is parity12Table using the population count instruction.
func parity12Builtin(x uint16) uint16 {
	return uint16(bits.OnesCount16(x&0x0fff) & 1)
}

// popcountSWAR counts the ones in x, see "Counting bits set, in parallel" in
// http://graphics.stanford.edu/~seander/bithacks.html
func popcountSWAR(x uint32) int {
	x = x - ((x >> 1) & 0x55555555)
	x = (x & 0x33333333) + ((x >> 2) & 0x33333333)
	return int((((x + (x >> 4)) & 0x0f0f0f0f) * 0x01010101) >> 24)
}

func popcountBuiltin(x uint32) int {
	return bits.OnesCount32(x)
}
