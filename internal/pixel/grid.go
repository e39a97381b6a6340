// Package pixel holds the in-memory pixel grid the codec and reflector
// operate on, and the single raster order both encode and decode walk.
package pixel

import (
	"fmt"
	"image"
	"image/color"
)

// Pixel is one grid cell. Only R, G and B carry data; A is preserved as-is.
type Pixel struct {
	R, G, B, A uint8
}

// Channel selects one 8-bit colour component.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

func (c Channel) Valid() bool {
	return c >= Red && c <= Blue
}

// Get returns the channel's value in p.
func (p Pixel) Get(c Channel) uint8 {
	switch c {
	case Red:
		return p.R
	case Green:
		return p.G
	default:
		return p.B
	}
}

// Set returns p with channel c replaced by v.
func (p Pixel) Set(c Channel, v uint8) Pixel {
	switch c {
	case Red:
		p.R = v
	case Green:
		p.G = v
	default:
		p.B = v
	}
	return p
}

// Grid is a width x height pixel buffer anchored at (0, 0). It is backed by
// non-premultiplied storage so values survive a PNG round trip untouched.
type Grid struct {
	Img *image.NRGBA
}

func NewGrid(width, height int) *Grid {
	return &Grid{Img: image.NewNRGBA(image.Rect(0, 0, width, height))}
}

// FromImage copies any decoded image into a fresh Grid.
func FromImage(src image.Image) *Grid {
	b := src.Bounds()
	g := NewGrid(b.Dx(), b.Dy())

	if n, ok := src.(*image.NRGBA); ok {
		rowLen := b.Dx() * 4
		for y := 0; y < b.Dy(); y++ {
			row := n.Pix[n.PixOffset(b.Min.X, b.Min.Y+y):][:rowLen]
			copy(g.Img.Pix[y*g.Img.Stride:][:rowLen], row)
		}
		return g
	}

	g.Raster(func(x, y int) {
		c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
		g.SetPixel(x, y, Pixel{R: c.R, G: c.G, B: c.B, A: c.A})
	})
	return g
}

func (g *Grid) GetPixel(x, y int) Pixel {
	idx := g.Img.PixOffset(x, y)

	return Pixel{
		R: g.Img.Pix[idx+0],
		G: g.Img.Pix[idx+1],
		B: g.Img.Pix[idx+2],
		A: g.Img.Pix[idx+3],
	}
}

func (g *Grid) SetPixel(x, y int, p Pixel) {
	idx := g.Img.PixOffset(x, y)

	g.Img.Pix[idx+0] = p.R
	g.Img.Pix[idx+1] = p.G
	g.Img.Pix[idx+2] = p.B
	g.Img.Pix[idx+3] = p.A
}

func (g *Grid) Width() int {
	return g.Img.Bounds().Dx()
}

func (g *Grid) Height() int {
	return g.Img.Bounds().Dy()
}

// Len is the number of pixels, which is also the length of any channel sequence.
func (g *Grid) Len() int {
	return g.Width() * g.Height()
}

func (g *Grid) Clone() *Grid {
	c := NewGrid(g.Width(), g.Height())
	copy(c.Img.Pix, g.Img.Pix)
	return c
}

// Raster visits every pixel in the canonical order: rows top to bottom,
// each row left to right. Channel extraction and write-back both go
// through here and nowhere else.
func (g *Grid) Raster(visit func(x, y int)) {
	width := g.Width()
	height := g.Height()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			visit(x, y)
		}
	}
}

// ApplyFilter replaces every pixel with modifier's result, in raster order.
func (g *Grid) ApplyFilter(modifier func(x, y int, p Pixel) Pixel) {
	g.Raster(func(x, y int) {
		g.SetPixel(x, y, modifier(x, y, g.GetPixel(x, y)))
	})
}
