package golay

// Generator matrix of the systematic Golay(24, 12, 8) code, one row per
// element, most significant column first:
//
//	1 0 0 1 1 1 1 1 0 0 0 1
//	0 1 0 0 1 1 1 1 1 0 1 0
//	0 0 1 0 0 1 1 1 1 1 0 1
//	1 0 0 1 0 0 1 1 1 1 1 0
//	1 1 0 0 1 0 0 1 1 1 0 1
//	1 1 1 0 0 1 0 0 1 1 1 0
//	1 1 1 1 0 0 1 0 0 1 0 1
//	1 1 1 1 1 0 0 1 0 0 1 0
//	0 1 1 1 1 1 0 0 1 0 0 1
//	0 0 1 1 1 1 1 0 0 1 1 0
//	0 1 0 1 0 1 0 1 0 1 1 1
//	1 0 1 0 1 0 1 0 1 0 1 1
//
// The matrix is symmetric, so rows and columns are interchangeable, and it is
// its own inverse.
var golayMatrix = [12]uint16{
	0x9f1, 0x4fa, 0x27d, 0x93e, 0xc9d, 0xe4e, 0xf25, 0xf92, 0x7c9, 0x3e6, 0x557, 0xaab,
}

// matrixMultiply multiplies the 12-bit vector x with the generator matrix.
func matrixMultiply(x uint16) uint16 {
	var result uint16
	for i, row := range golayMatrix {
		result |= parity12(x&row) << (11 - uint(i))
	}
	return result
}
