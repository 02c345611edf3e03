// Package bcd converts decimal time fields into binary-coded-decimal
// nibbles, one 4-bit nibble per decimal digit.
package bcd

import "fmt"

// NibbleBits is the number of bits in one BCD nibble. The tens digit of a
// time field never needs more than 3 bits, but a uniform 4-bit column keeps
// the clock face symmetric.
const NibbleBits = 4

// Nibble is the 4-bit encoding of a single decimal digit, most significant
// bit first: Nibble[0] carries the value 8, Nibble[3] the value 1.
type Nibble [NibbleBits]bool

// EncodeDigit encodes a single decimal digit.
func EncodeDigit(d int) (Nibble, error) {
	if d < 0 || d > 9 {
		return Nibble{}, fmt.Errorf("bcd: digit %d out of range [0,9]", d)
	}
	var n Nibble
	for i := 0; i < NibbleBits; i++ {
		n[NibbleBits-1-i] = d&(1<<i) != 0
	}
	return n, nil
}

// EncodeField splits a two-digit field (0-99) into its tens and ones
// nibbles. Time fields (hours, minutes, seconds) all fit this shape.
func EncodeField(v int) (tens, ones Nibble, err error) {
	if v < 0 || v > 99 {
		return Nibble{}, Nibble{}, fmt.Errorf("bcd: field %d out of range [0,99]", v)
	}
	tens, err = EncodeDigit(v / 10)
	if err != nil {
		return Nibble{}, Nibble{}, err
	}
	ones, err = EncodeDigit(v % 10)
	if err != nil {
		return Nibble{}, Nibble{}, err
	}
	return tens, ones, nil
}

// DecodeNibble is the inverse of EncodeDigit. Encoding is reversible for
// every digit, so a rendered bit pattern always identifies its source.
func DecodeNibble(n Nibble) int {
	v := 0
	for i, lit := range n {
		if lit {
			v += 1 << (NibbleBits - 1 - i)
		}
	}
	return v
}

// EncodeBinary encodes a whole field value as plain binary, most
// significant bit first, padded to width bits. Used by the BINARY display
// mode where each time field gets a single column instead of two nibbles.
func EncodeBinary(v, width int) ([]bool, error) {
	if v < 0 {
		return nil, fmt.Errorf("bcd: value %d is negative", v)
	}
	if v >= 1<<width {
		return nil, fmt.Errorf("bcd: value %d does not fit in %d bits", v, width)
	}
	bits := make([]bool, width)
	for i := 0; i < width; i++ {
		bits[width-1-i] = v&(1<<i) != 0
	}
	return bits, nil
}

// DecodeBinary is the inverse of EncodeBinary.
func DecodeBinary(bits []bool) int {
	v := 0
	for _, lit := range bits {
		v <<= 1
		if lit {
			v++
		}
	}
	return v
}
