package pixel

import "fmt"

// ExtractChannel collects channel c of every pixel in raster order.
func ExtractChannel(g *Grid, c Channel) []uint8 {
	values := make([]uint8, 0, g.Len())
	g.Raster(func(x, y int) {
		values = append(values, g.GetPixel(x, y).Get(c))
	})
	return values
}

// WriteChannel stores values into channel c in raster order, leaving the
// other channels alone. values must hold exactly one entry per pixel.
func WriteChannel(g *Grid, c Channel, values []uint8) error {
	if len(values) != g.Len() {
		return fmt.Errorf("channel write of %d values into %dx%d grid", len(values), g.Width(), g.Height())
	}
	i := 0
	g.ApplyFilter(func(_, _ int, p Pixel) Pixel {
		p = p.Set(c, values[i])
		i++
		return p
	})
	return nil
}
