//go:build arm

package golay

// On 32-bit ARM there is no population count instruction; math/bits falls
// back to a generic routine that is slower than the table and the SWAR count.

func parity12(x uint16) uint16 { return parity12Table(x) }

func popcount(x uint32) int { return popcountSWAR(x) }
