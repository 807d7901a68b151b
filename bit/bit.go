// Package bit contains helpers for looking at codewords one bit at a time.
package bit

import "strings"

type Bit byte

func (b *Bit) Flip() {
	(*b) ^= 0x01
}

// Bits holds one bit per element, most significant bit first.
type Bits []Bit

func toBits(b byte) Bits {
	var o = make(Bits, 8)
	for bit, mask := 0, byte(128); bit < 8; bit, mask = bit+1, mask>>1 {
		if b&mask != 0 {
			o[bit] = 1
		}
	}
	return o
}

func NewBits(bytes []byte) Bits {
	var o = make(Bits, 0, len(bytes)*8)
	for _, b := range bytes {
		o = append(o, toBits(b)...)
	}
	return o
}

// FromWord returns the lower width bits of word, most significant bit first.
func FromWord(word uint32, width int) Bits {
	switch {
	case width < 0:
		width = 0
	case width > 32:
		width = 32
	}
	var o = make(Bits, width)
	for i := range o {
		o[i] = Bit(word>>uint(width-1-i)) & 0x01
	}
	return o
}

// Word packs the bits back into an integer; bits beyond 32 are dropped from
// the most significant end.
func (bits Bits) Word() uint32 {
	var word uint32
	for _, b := range bits {
		word = word<<1 | uint32(b&0x01)
	}
	return word
}

func (bits Bits) Bytes() []byte {
	var o = make([]byte, (len(bits)+7)/8)
	for i, b := range bits {
		if b == 0x01 {
			o[i/8] |= (1 << byte(7-(i%8)))
		}
	}
	return o
}

func (bits Bits) String() string {
	var s strings.Builder
	s.Grow(len(bits))
	for _, b := range bits {
		if b == 0x01 {
			s.WriteByte('1')
		} else {
			s.WriteByte('0')
		}
	}
	return s.String()
}

// Format renders the lower width bits of word in binary, inserting sep
// between every group of 8 bits counted from the most significant bit.
func Format(word uint32, width int, sep string) string {
	var (
		s    strings.Builder
		bits = FromWord(word, width)
	)
	for i, b := range bits {
		if i != 0 && i%8 == 0 {
			s.WriteString(sep)
		}
		if b == 0x01 {
			s.WriteByte('1')
		} else {
			s.WriteByte('0')
		}
	}
	return s.String()
}
