// Package bitcodec converts text to and from the bit sequences that get
// spread over pixel parities, and frames a message with its length header.
package bitcodec

import (
	"errors"
	"fmt"
	"strings"
)

const BitsPerChar = 8

var (
	ErrUnencodable = errors.New("character outside the 0-255 range")
	ErrBitCount    = errors.New("character group must be exactly 8 bits")
)

// Bits is a sequence of 0/1 values, most significant bit of each character first.
type Bits []int

func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, bit := range b {
		if bit == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// ParseBits reads a '0'/'1' string back into Bits.
func ParseBits(s string) (Bits, error) {
	bits := make(Bits, 0, len(s))
	for i, c := range s {
		switch c {
		case '0':
			bits = append(bits, 0)
		case '1':
			bits = append(bits, 1)
		default:
			return nil, fmt.Errorf("invalid bit %q at position %d", c, i)
		}
	}
	return bits, nil
}

// TextToBits emits every character's ordinal as 8 bits, MSB first.
// Characters are runes; anything above 255 cannot be represented.
func TextToBits(text string) (Bits, error) {
	bits := make(Bits, 0, len(text)*BitsPerChar)
	for i, r := range text {
		if r < 0 || r > 0xff {
			return nil, fmt.Errorf("%w: %q at byte %d", ErrUnencodable, r, i)
		}
		for j := BitsPerChar - 1; j >= 0; j-- {
			bits = append(bits, int((r>>j)&1))
		}
	}
	return bits, nil
}

// BitsToChar interprets exactly eight bits as one character ordinal.
func BitsToChar(bits Bits) (rune, error) {
	if len(bits) != BitsPerChar {
		return 0, fmt.Errorf("%w: got %d", ErrBitCount, len(bits))
	}
	var r rune
	for _, bit := range bits {
		r <<= 1
		if bit == 1 {
			r |= 1
		}
	}
	return r, nil
}

// BitsToText decodes consecutive 8-bit groups. A trailing partial group is an error.
func BitsToText(bits Bits) (string, error) {
	if len(bits)%BitsPerChar != 0 {
		return "", fmt.Errorf("%w: %d bits do not split into characters", ErrBitCount, len(bits))
	}
	var sb strings.Builder
	for i := 0; i < len(bits); i += BitsPerChar {
		r, err := BitsToChar(bits[i : i+BitsPerChar])
		if err != nil {
			return "", err
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}
