// Package flip reflects a pixel grid in place.
//
// Horizontal reflects across the horizontal axis (row y goes to
// height-y-1); Vertical reflects across the vertical axis (column x goes to
// width-x-1). Dimensions never change.
package flip

import (
	"fmt"

	"lsbstego/internal/pixel"
)

// Mode picks between a true reflection and the legacy directional copy.
type Mode int

const (
	// Mirror swaps every symmetric pair. Applying it twice restores the grid.
	Mirror Mode = iota
	// Copy overwrites the second half with the mirrored first half. The first
	// half and any middle row or column are left as they were, so the result
	// is symmetric and applying it again changes nothing.
	Copy
)

func (m Mode) String() string {
	switch m {
	case Mirror:
		return "mirror"
	case Copy:
		return "copy"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "mirror":
		return Mirror, nil
	case "copy":
		return Copy, nil
	}
	return Mirror, fmt.Errorf("unknown flip mode %q (want mirror or copy)", s)
}

// Horizontal reflects g top to bottom and returns it.
func Horizontal(g *pixel.Grid, mode Mode) *pixel.Grid {
	width, height := g.Width(), g.Height()

	// only the top half is visited, so no pixel is read after its mirror
	// has been written in this pass
	for y := 0; y < height/2; y++ {
		my := height - y - 1
		for x := 0; x < width; x++ {
			reflect(g, mode, x, y, x, my)
		}
	}
	return g
}

// Vertical reflects g left to right and returns it.
func Vertical(g *pixel.Grid, mode Mode) *pixel.Grid {
	width, height := g.Width(), g.Height()

	for x := 0; x < width/2; x++ {
		mx := width - x - 1
		for y := 0; y < height; y++ {
			reflect(g, mode, x, y, mx, y)
		}
	}
	return g
}

func reflect(g *pixel.Grid, mode Mode, x, y, mx, my int) {
	src := g.GetPixel(x, y)
	if mode == Mirror {
		g.SetPixel(x, y, g.GetPixel(mx, my))
	}
	g.SetPixel(mx, my, src)
}
