//go:build !arm

package golay

func parity12(x uint16) uint16 { return parity12Builtin(x) }

func popcount(x uint32) int { return popcountBuiltin(x) }
