package stego

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lsbstego/internal/bitcodec"
	"lsbstego/internal/pixel"
)

func noisyGrid(t *testing.T, w, h int, seed int64) *pixel.Grid {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	g := pixel.NewGrid(w, h)
	g.ApplyFilter(func(_, _ int, _ pixel.Pixel) pixel.Pixel {
		return pixel.Pixel{R: uint8(r.Intn(256)), G: uint8(r.Intn(256)), B: uint8(r.Intn(256)), A: 255}
	})
	return g
}

func randomMessage(r *rand.Rand, n int) string {
	runes := make([]rune, n)
	for i := range runes {
		runes[i] = rune(r.Intn(256))
	}
	return string(runes)
}

func TestHideReveal_RoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for _, n := range []int{0, 1, 2, 17, 255, 500, bitcodec.MaxMessage} {
		g := noisyGrid(t, 100, 90, int64(n))
		msg := randomMessage(r, n)

		require.NoError(t, Hide(g, msg), "length %d", n)
		got, err := Reveal(g)
		require.NoError(t, err, "length %d", n)
		assert.Equal(t, msg, got, "length %d", n)
	}
}

func TestHideReveal_ExactFit(t *testing.T) {
	// 24 header bits + 2 chars * 8 = 40 pixels
	g := noisyGrid(t, 8, 5, 7)
	require.NoError(t, Hide(g, "Hi"))

	got, err := Reveal(g)
	require.NoError(t, err)
	assert.Equal(t, "Hi", got)
}

func TestHide_WorkedExample(t *testing.T) {
	g := noisyGrid(t, 10, 10, 1)
	before := g.Clone()
	require.NoError(t, Hide(g, "Hi"))

	// "002" as ASCII digits, then "H" and "i"
	want := "00110000" + "00110000" + "00110010" + "01001000" + "01101001"
	values := pixel.ExtractChannel(g, pixel.Green)
	var sb strings.Builder
	for _, v := range values[:40] {
		sb.WriteByte(byte('0' + ReadBit(v)))
	}
	assert.Equal(t, want, sb.String())

	// everything past the payload is untouched
	orig := pixel.ExtractChannel(before, pixel.Green)
	assert.Equal(t, orig[40:], values[40:])
}

func TestHide_ChannelIsolation(t *testing.T) {
	g := noisyGrid(t, 40, 40, 3)
	before := g.Clone()
	require.NoError(t, Hide(g, "channel isolation"))

	if diff := cmp.Diff(pixel.ExtractChannel(before, pixel.Red), pixel.ExtractChannel(g, pixel.Red)); diff != "" {
		t.Errorf("red channel changed (-before +after):\n%s", diff)
	}
	if diff := cmp.Diff(pixel.ExtractChannel(before, pixel.Blue), pixel.ExtractChannel(g, pixel.Blue)); diff != "" {
		t.Errorf("blue channel changed (-before +after):\n%s", diff)
	}
	assert.Equal(t, before.Width(), g.Width())
	assert.Equal(t, before.Height(), g.Height())
}

func TestHide_Deterministic(t *testing.T) {
	a := noisyGrid(t, 30, 30, 9)
	b := a.Clone()
	require.NoError(t, Hide(a, "same input"))
	require.NoError(t, Hide(b, "same input"))
	assert.Equal(t, a.Img.Pix, b.Img.Pix)
}

func TestHide_EmptyMessage(t *testing.T) {
	g := noisyGrid(t, 5, 5, 11)
	require.NoError(t, Hide(g, ""))

	got, err := Reveal(g)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestHide_CapacityExceeded(t *testing.T) {
	g := noisyGrid(t, 8, 5, 5)
	before := g.Clone()

	err := Hide(g, "Hi!")
	require.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, before.Img.Pix, g.Img.Pix, "a failed hide must not touch the grid")
}

func TestHide_TooLongForHeader(t *testing.T) {
	g := noisyGrid(t, 100, 100, 5)
	before := g.Clone()

	err := Hide(g, strings.Repeat("a", 1000))
	require.ErrorIs(t, err, bitcodec.ErrMessageTooLong)
	assert.Equal(t, before.Img.Pix, g.Img.Pix)
}

func TestHide_Unencodable(t *testing.T) {
	g := noisyGrid(t, 20, 20, 5)
	err := Hide(g, "€")
	require.ErrorIs(t, err, bitcodec.ErrUnencodable)
}

func TestReveal_TooSmallForHeader(t *testing.T) {
	g := noisyGrid(t, 4, 5, 5)
	_, err := Reveal(g)
	require.ErrorIs(t, err, bitcodec.ErrMalformedHeader)
}

func TestReveal_ZeroHeader(t *testing.T) {
	// an all-even green channel reads as "\x00\x00\x00", which is not a digit
	g := pixel.NewGrid(10, 10)
	_, err := Reveal(g)
	require.ErrorIs(t, err, bitcodec.ErrMalformedHeader)
}

func TestReveal_PayloadPastEnd(t *testing.T) {
	// header claims 9 characters but only 40 pixels exist
	g := noisyGrid(t, 8, 5, 2)
	bits, err := bitcodec.TextToBits("009")
	require.NoError(t, err)

	values := pixel.ExtractChannel(g, pixel.Green)
	for i, bit := range bits {
		values[i] = EmbedBit(values[i], bit)
	}
	require.NoError(t, pixel.WriteChannel(g, pixel.Green, values))

	got, err := Reveal(g)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestCodec_OtherChannel(t *testing.T) {
	g := noisyGrid(t, 20, 20, 8)
	c := &Codec{Channel: pixel.Blue, Logger: zerolog.Nop()}

	require.NoError(t, c.Hide(g, "blue"))
	got, err := c.Reveal(g)
	require.NoError(t, err)
	assert.Equal(t, "blue", got)

	err = (&Codec{Channel: pixel.Channel(7)}).Hide(g, "x")
	assert.Error(t, err)
}

func TestCapacity(t *testing.T) {
	assert.Equal(t, 0, Capacity(pixel.NewGrid(1, 1)))
	assert.Equal(t, 0, Capacity(pixel.NewGrid(4, 6)))
	assert.Equal(t, 2, Capacity(pixel.NewGrid(8, 5)))
	assert.Equal(t, bitcodec.MaxMessage, Capacity(pixel.NewGrid(100, 100)))
}
