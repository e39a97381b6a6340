// Package imageio moves pixel grids between files and memory. Any format
// the standard library or x/image can decode is accepted; output is always
// lossless so hidden parities survive.
package imageio

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"lsbstego/internal/pixel"
)

// Format is an output encoding.
type Format string

const (
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "":
		return PNG, nil
	case PNG, BMP, TIFF:
		return f, nil
	case "tif":
		return TIFF, nil
	}
	return "", fmt.Errorf("unsupported output format %q (want png, bmp or tiff)", s)
}

// Lossy reports whether a decoded format name loses data on re-encode.
// Messages read from such files were likely destroyed by the encoder.
func Lossy(format string) bool {
	return format == "jpeg" || format == "webp"
}

// Decode reads an image of any registered format into a Grid.
func Decode(r io.Reader) (*pixel.Grid, string, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return pixel.FromImage(src), format, nil
}

// Encode writes g to w in format f.
func Encode(w io.Writer, g *pixel.Grid, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, g.Img)
	case BMP:
		return bmp.Encode(w, g.Img)
	case TIFF:
		return tiff.Encode(w, g.Img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("unsupported output format %q", f)
}

func Load(filename string) (*pixel.Grid, string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	return Decode(file)
}

func Save(filename string, g *pixel.Grid, f Format) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	return Encode(file, g, f)
}

// OutputName builds <dir>/<prefix><base>.<format> from the input path.
// An empty dir keeps the output next to the input.
func OutputName(input, dir, prefix string, f Format) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, prefix+base+"."+string(f))
}
