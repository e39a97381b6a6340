// Package stego hides a length-prefixed text message in the parity of one
// colour channel of a pixel grid, and reads it back.
package stego

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"lsbstego/internal/bitcodec"
	"lsbstego/internal/pixel"
)

var ErrCapacityExceeded = errors.New("message does not fit in image")

// Codec embeds into a single channel. New returns the green channel codec.
type Codec struct {
	Channel pixel.Channel
	Logger  zerolog.Logger
}

// New returns a green-channel codec that logs nowhere.
func New() *Codec {
	return &Codec{
		Channel: pixel.Green,
		Logger:  zerolog.Nop(),
	}
}

// Capacity is the longest message, in characters, that fits in g.
func Capacity(g *pixel.Grid) int {
	n := (g.Len() - bitcodec.HeaderBits) / bitcodec.BitsPerChar
	if n < 0 {
		return 0
	}
	return min(n, bitcodec.MaxMessage)
}

// Hide writes the framed message into the codec's channel of g. Nothing is
// modified when the message is too long or the grid too small. Pixels past
// the end of the payload are left exactly as they were.
func (c *Codec) Hide(g *pixel.Grid, message string) error {
	if !c.Channel.Valid() {
		return fmt.Errorf("invalid channel %v", c.Channel)
	}

	framed, err := bitcodec.MakeHeader(message)
	if err != nil {
		return err
	}
	bits, err := bitcodec.TextToBits(framed)
	if err != nil {
		return err
	}
	if len(bits) > g.Len() {
		return fmt.Errorf("%w: need %d pixels, %dx%d image has %d",
			ErrCapacityExceeded, len(bits), g.Width(), g.Height(), g.Len())
	}

	values := pixel.ExtractChannel(g, c.Channel)
	changed := 0
	for i, bit := range bits {
		v := EmbedBit(values[i], bit)
		if v != values[i] {
			changed++
		}
		values[i] = v
	}

	c.Logger.Debug().
		Stringer("channel", c.Channel).
		Int("bits", len(bits)).
		Int("changed", changed).
		Int("pixels", g.Len()).
		Msg("embedding message")

	return pixel.WriteChannel(g, c.Channel, values)
}

// Reveal reads a message hidden by Hide. A zero length header, or a header
// promising more characters than the image can hold, yields an empty
// message; the two cases cannot be told apart from "nothing hidden".
func (c *Codec) Reveal(g *pixel.Grid) (string, error) {
	if !c.Channel.Valid() {
		return "", fmt.Errorf("invalid channel %v", c.Channel)
	}

	values := pixel.ExtractChannel(g, c.Channel)
	if len(values) < bitcodec.HeaderBits {
		return "", fmt.Errorf("%w: image has only %d pixels", bitcodec.ErrMalformedHeader, len(values))
	}

	n, err := bitcodec.ReadHeaderLength(readBits(values[:bitcodec.HeaderBits]))
	if err != nil {
		return "", err
	}

	end := bitcodec.HeaderBits + n*bitcodec.BitsPerChar
	if n == 0 || end > len(values) {
		c.Logger.Debug().Int("length", n).Int("pixels", len(values)).Msg("no payload")
		return "", nil
	}

	c.Logger.Debug().Stringer("channel", c.Channel).Int("length", n).Msg("reading payload")
	return bitcodec.BitsToText(readBits(values[bitcodec.HeaderBits:end]))
}

func readBits(values []uint8) bitcodec.Bits {
	bits := make(bitcodec.Bits, len(values))
	for i, v := range values {
		bits[i] = ReadBit(v)
	}
	return bits
}

// Hide embeds message into the green channel of g.
func Hide(g *pixel.Grid, message string) error {
	return New().Hide(g, message)
}

// Reveal reads a message from the green channel of g.
func Reveal(g *pixel.Grid) (string, error) {
	return New().Reveal(g)
}
