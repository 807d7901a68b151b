// Package golay implements the systematic Golay(24, 12, 8) code.
//
// A 12-bit message is stored unchanged in the upper half of a 24-bit codeword,
// the lower half carries 12 parity bits. Up to 3 bit errors anywhere in the
// codeword are corrected, 4 bit errors are detected.
package golay

import (
	"github.com/pkg/errors"
)

const (
	// ErrorResult is returned by Decode if the codeword could not be corrected.
	ErrorResult uint16 = 0xffff

	// MessageMask covers the 12 significant bits of a message.
	MessageMask = 0x0fff

	// CodewordMask covers the 24 significant bits of a codeword.
	CodewordMask = 0x00ffffff
)

// ErrUncorrectable is returned by DecodeChecked for codewords with more errors
// than the code can repair.
var ErrUncorrectable = errors.New("golay: uncorrectable codeword")

// Encode a 12-bit message to a systematic Golay(24, 12, 8) codeword.
func Encode(message uint16) uint32 {
	message &= MessageMask
	return uint32(matrixMultiply(message)) | uint32(message)<<12
}

// Decode a Golay(24, 12, 8) codeword. If the codeword contains at most 3 bit
// errors they are corrected and the message is returned. Codewords with 4 bit
// errors yield ErrorResult. Beyond that the outcome is undefined.
func Decode(codeword uint32) uint16 {
	// The generator matrix is its own inverse and its own transpose, so a
	// single bit error shows up in the syndrome as the matrix column of that
	// bit, and the data half can be recomputed from the parity half with the
	// same multiplication. Codewords are at least 8 bits apart.
	codeword &= CodewordMask
	var (
		d = uint16(codeword >> 12)
		p = uint16(codeword & MessageMask)
	)

	// Data intact, parity has at most 3 errors.
	p2 := matrixMultiply(d)
	if p2 == p || popcount(uint32(p^p2)) <= 3 {
		return d
	}

	// Parity intact, data has at most 3 errors.
	d2 := matrixMultiply(p)
	if popcount(uint32(d2^d)) <= 3 {
		return d2
	}

	// One data bit error, 1 or 2 parity bit errors.
	for i, column := range golayMatrix {
		p3 := p2 ^ column
		if popcount(uint32(p3^p)) <= 2 {
			return d ^ (1 << (11 - uint(i)))
		}
	}

	// One parity bit error, 1 or 2 data bit errors.
	for _, column := range golayMatrix {
		d3 := d2 ^ column
		if popcount(uint32(d3^d)) <= 2 {
			return d3
		}
	}

	return ErrorResult
}

// DecodeChecked is like Decode, but reports uncorrectable codewords as
// ErrUncorrectable instead of returning ErrorResult.
func DecodeChecked(codeword uint32) (uint16, error) {
	message := Decode(codeword)
	if message == ErrorResult {
		return 0, errors.Wrapf(ErrUncorrectable, "codeword %#06x", codeword&CodewordMask)
	}
	return message, nil
}

// Syndrome returns the difference between the received parity bits and the
// parity bits computed from the received data bits. It is zero for every
// valid codeword.
func Syndrome(codeword uint32) uint16 {
	codeword &= CodewordMask
	return uint16(codeword&MessageMask) ^ matrixMultiply(uint16(codeword>>12))
}

// Check if the codeword is a valid codeword, without attempting correction.
func Check(codeword uint32) error {
	if codeword&^CodewordMask != 0 {
		return errors.Errorf("golay: expected 24 bits, got %#x", codeword)
	}
	if s := Syndrome(codeword); s != 0 {
		return errors.Errorf("golay: parity error, syndrome %012b (%d bits)", s, popcount(uint32(s)))
	}
	return nil
}

// Codec wraps Encode and Decode for callers that take an encoder/decoder value.
type Codec struct{}

// Encode calls Encode.
func (Codec) Encode(message uint16) uint32 { return Encode(message) }

// Decode calls Decode.
func (Codec) Decode(codeword uint32) uint16 { return Decode(codeword) }
