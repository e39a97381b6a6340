package bitcodec

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

const (
	// HeaderDigits is the fixed width of the decimal length prefix.
	HeaderDigits = 3
	HeaderBits   = HeaderDigits * BitsPerChar
	MaxMessage   = 999
)

var (
	ErrMessageTooLong  = errors.New("message longer than 999 characters")
	ErrMalformedHeader = errors.New("malformed length header")
)

// MakeHeader returns the message prefixed with its zero-padded three digit
// character count. An empty message yields just "000".
func MakeHeader(message string) (string, error) {
	n := utf8.RuneCountInString(message)
	if n > MaxMessage {
		return "", fmt.Errorf("%w: %d characters", ErrMessageTooLong, n)
	}
	return fmt.Sprintf("%0*d", HeaderDigits, n) + message, nil
}

// ReadHeaderLength decodes the first 24 bits as three ASCII digits and
// returns the payload character count.
func ReadHeaderLength(bits Bits) (int, error) {
	if len(bits) < HeaderBits {
		return 0, fmt.Errorf("%w: need %d bits, have %d", ErrMalformedHeader, HeaderBits, len(bits))
	}
	n := 0
	for i := 0; i < HeaderBits; i += BitsPerChar {
		r, err := BitsToChar(bits[i : i+BitsPerChar])
		if err != nil {
			return 0, err
		}
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: byte %#02x is not a digit", ErrMalformedHeader, r)
		}
		n = n*10 + int(r-'0')
	}
	return n, nil
}
