package imageio

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lsbstego/internal/pixel"
	"lsbstego/internal/stego"
)

func testGrid() *pixel.Grid {
	g := pixel.NewGrid(20, 12)
	g.ApplyFilter(func(x, y int, _ pixel.Pixel) pixel.Pixel {
		return pixel.Pixel{R: uint8(x * 12), G: uint8(x*7 + y*11), B: uint8(y * 20), A: 255}
	})
	return g
}

func TestEncodeDecode_Lossless(t *testing.T) {
	for _, f := range []Format{PNG, BMP, TIFF} {
		t.Run(string(f), func(t *testing.T) {
			g := testGrid()
			require.NoError(t, stego.Hide(g, "lossless"))

			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, g, f))

			back, format, err := Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, string(f), format)
			if diff := cmp.Diff(g.Img.Pix, back.Img.Pix); diff != "" {
				t.Fatalf("pixels changed (-want +got):\n%s", diff)
			}

			msg, err := stego.Reveal(back)
			require.NoError(t, err)
			assert.Equal(t, "lossless", msg)
		})
	}
}

func TestDecode_JPEGIsLossy(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	src.Set(0, 0, color.RGBA{R: 1, G: 2, B: 3, A: 255})

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, src, nil))

	g, format, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.True(t, Lossy(format))
	assert.False(t, Lossy("png"))
	assert.Equal(t, 8, g.Width())
}

func TestDecode_Garbage(t *testing.T) {
	_, _, err := Decode(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")

	g := testGrid()
	require.NoError(t, Save(path, g, PNG))

	back, format, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, g.Img.Pix, back.Img.Pix)

	_, _, err = Load(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": PNG, "PNG": PNG, "bmp": BMP, "tif": TIFF, "tiff": TIFF} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("jpeg")
	assert.Error(t, err)
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, filepath.Join("pics", "1_cat.png"), OutputName(filepath.Join("pics", "cat.jpg"), "", "1_", PNG))
	assert.Equal(t, filepath.Join("out", "cat.bmp"), OutputName("cat.png", "out", "", BMP))
}
