package chr

import (
	"image"
	"image/color"
)

// Grid holds one 2-bit palette index per pixel, row-major with a stride of
// Width pixels
type Grid struct {
	Pix [numPixels]uint8
}

// At returns the palette index of the pixel at (x, y)
func (g *Grid) At(x, y int) uint8 {
	return g.Pix[y*pixelX+x]
}

// TileOrigin returns the position of the top-left pixel of tile i, where
// tiles 0-255 are on the left page and 256-511 on the right page
func TileOrigin(i int) (int, int) {
	page, t := i/pageTiles, i%pageTiles
	return page*pageWidth + (t%tileX)*tileWidth, (t / tileX) * tileHeight
}

// TileAt returns the index of the tile covering pixel (x, y)
func TileAt(x, y int) int {
	page := x / pageWidth
	return page*pageTiles + (y/tileHeight)*tileX + (x%pageWidth)/tileWidth
}

// Tile returns the 64 palette indices of tile i in row-major order
func (g *Grid) Tile(i int) [tilePixels]uint8 {
	var t [tilePixels]uint8
	dx, dy := TileOrigin(i)
	for y := 0; y < tileHeight; y++ {
		copy(t[y*tileWidth:][:tileWidth], g.Pix[(dy+y)*pixelX+dx:])
	}
	return t
}

// Texture returns the grid as a single channel 256 by 128 texture with each
// index scaled into the 0-255 range
func (g *Grid) Texture() []byte {
	b := make([]byte, numPixels)
	for i, p := range g.Pix {
		b[i] = uint8(float32(p) * textureStep)
	}
	return b
}

// Grayscale returns a palette matching the levels used by Texture
func Grayscale() color.Palette {
	p := make(color.Palette, numColors)
	for i := range p {
		y := uint8(float32(i) * textureStep)
		p[i] = color.RGBA{y, y, y, 0xff}
	}
	return p
}

// Image returns the grid as an image using the first four colors of p. If p
// is nil the levels from Grayscale are used.
func (g *Grid) Image(p color.Palette) *image.Paletted {
	if len(p) < numColors {
		p = Grayscale()
	}
	m := image.NewPaletted(image.Rect(0, 0, pixelX, pixelY), p[:numColors])
	copy(m.Pix, g.Pix[:])
	return m
}
