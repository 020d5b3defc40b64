package chr

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTileOrigin(t *testing.T) {
	tables := []struct {
		tile int
		x, y int
	}{
		{0, 0, 0},
		{1, 8, 0},
		{15, 120, 0},
		{16, 0, 8},
		{255, 120, 120},
		{256, 128, 0},
		{511, 248, 120},
	}

	for _, table := range tables {
		x, y := TileOrigin(table.tile)
		assert.Equal(t, table.x, x, "tile %d", table.tile)
		assert.Equal(t, table.y, y, "tile %d", table.tile)
		assert.Equal(t, table.tile, TileAt(x, y))
		assert.Equal(t, table.tile, TileAt(x+7, y+7))
	}
}

func TestTile(t *testing.T) {
	s := new(Sheet)
	// Tile 17 on the second page, every row has its leftmost pixel set in
	// the high plane
	offset := pageBytes + 17*tileBytes
	for y := 0; y < tileHeight; y++ {
		s[offset+planeBytes+y] = 0x80
	}

	tile := Decode(s).Tile(pageTiles + 17)
	for y := 0; y < tileHeight; y++ {
		assert.Equal(t, uint8(2), tile[y*tileWidth])
		for x := 1; x < tileWidth; x++ {
			assert.Equal(t, uint8(0), tile[y*tileWidth+x])
		}
	}
}

func TestTexture(t *testing.T) {
	g := new(Grid)
	g.Pix[0], g.Pix[1], g.Pix[2], g.Pix[3] = 0, 1, 2, 3

	b := g.Texture()
	assert.Len(t, b, numPixels)
	assert.Equal(t, []byte{0, 63, 127, 191}, b[:4])
}

func TestImage(t *testing.T) {
	s := new(Sheet)
	s[0] = 0xc0
	s[planeBytes] = 0x80
	g := Decode(s)

	m := g.Image(nil)
	assert.Equal(t, Width, m.Bounds().Dx())
	assert.Equal(t, Height, m.Bounds().Dy())
	assert.Equal(t, uint8(3), m.ColorIndexAt(0, 0))
	assert.Equal(t, color.RGBA{191, 191, 191, 0xff}, m.At(0, 0))

	p := color.Palette{
		color.RGBA{0, 0, 0, 0xff},
		color.RGBA{0xff, 0, 0, 0xff},
		color.RGBA{0, 0xff, 0, 0xff},
		color.RGBA{0, 0, 0xff, 0xff},
		color.RGBA{0xff, 0xff, 0xff, 0xff},
	}
	m = g.Image(p)
	assert.Len(t, m.Palette, numColors)
	assert.Equal(t, p[1], m.At(1, 0))
}
