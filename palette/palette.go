/*
Package palette implements the fixed 64 color NES palette and the editable
set of sample swatches that reference it.

The palette is laid out as four rows of sixteen colors. The last three
entries of every row are unused by the hardware and are kept as black, apart
from entry 13 of the last two rows.
*/
package palette

import (
	"errors"
	"image/color"
)

const (
	// Size is the number of entries in the palette
	Size    = 64
	rowSize = 16
	rows    = Size / rowSize
)

// ErrIndexOutOfRange is returned for a palette index or sample slot outside
// of the valid range
var ErrIndexOutOfRange = errors.New("palette: index out of range")

// RGB is a single palette entry. It implements the color.Color interface.
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{c.R, c.G, c.B, 0xff}.RGBA()
}

var table = [Size]RGB{
	{101, 101, 101}, {3, 47, 103}, {21, 35, 125}, {60, 26, 122},
	{95, 18, 97}, {114, 14, 55}, {112, 16, 13}, {89, 26, 5},
	{52, 40, 3}, {13, 51, 3}, {3, 59, 4}, {4, 60, 19},
	{3, 56, 63}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0},

	{174, 174, 174}, {15, 99, 179}, {64, 81, 208}, {120, 65, 204},
	{167, 54, 169}, {192, 52, 112}, {189, 60, 48}, {159, 74, 0},
	{109, 92, 0}, {54, 109, 0}, {7, 119, 4}, {0, 121, 61},
	{0, 114, 125}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0},

	{254, 254, 255}, {93, 179, 255}, {143, 161, 255}, {200, 144, 255},
	{247, 133, 250}, {255, 131, 192}, {255, 138, 127}, {239, 154, 73},
	{189, 172, 44}, {133, 188, 47}, {85, 199, 83}, {60, 201, 140},
	{62, 194, 205}, {78, 78, 78}, {0, 0, 0}, {0, 0, 0},

	{254, 254, 255}, {188, 223, 255}, {209, 216, 255}, {232, 209, 255},
	{251, 205, 253}, {255, 204, 229}, {255, 207, 202}, {248, 213, 180},
	{228, 220, 168}, {204, 227, 169}, {185, 232, 184}, {174, 232, 208},
	{175, 229, 234}, {182, 182, 182}, {0, 0, 0}, {0, 0, 0},
}

// Lookup returns the color for palette index i
func Lookup(i int) (RGB, error) {
	if i < 0 || i >= Size {
		return RGB{}, ErrIndexOutOfRange
	}
	return table[i], nil
}

// Table returns a copy of the full palette
func Table() [Size]RGB {
	return table
}

// Bytes returns the palette packed as consecutive RGB triples
func Bytes() []byte {
	b := make([]byte, 0, Size*3)
	for _, c := range table {
		b = append(b, c.R, c.G, c.B)
	}
	return b
}

// Palette returns the palette as a color.Palette
func Palette() color.Palette {
	p := make(color.Palette, Size)
	for i, c := range table {
		p[i] = c
	}
	return p
}

// Texture returns the palette as a 16 by 4 RGBA texture
func Texture() []byte {
	b := make([]byte, 0, Size*4)
	for _, c := range table {
		b = append(b, c.R, c.G, c.B, 0xff)
	}
	return b
}

// Dimensions returns the palette layout in columns and rows
func Dimensions() (int, int) {
	return rowSize, rows
}

// Copied from color.sqDiff
func sqDiff(x, y uint32) uint32 {
	d := x - y
	return (d * d) >> 2
}

// Nearest returns the palette index closest to c. The unused black entries
// are never returned, index 13 of the first row is preferred for black.
func Nearest(c color.Color) uint8 {
	r1, g1, b1, _ := c.RGBA()

	best, bestSum := 0, uint32(1<<32-1)
	for i, p := range table {
		if unused(i) {
			continue
		}
		r2, g2, b2, _ := p.RGBA()
		sum := sqDiff(r1, r2) + sqDiff(g1, g2) + sqDiff(b1, b2)
		if sum < bestSum {
			best, bestSum = i, sum
			if sum == 0 {
				break
			}
		}
	}
	return uint8(best)
}

// Entries 14 and 15 of every row are duplicates of black as is entry 13 of
// the first two rows. Keep entry 13 of row 0 as the canonical black.
func unused(i int) bool {
	switch col := i % rowSize; {
	case col >= 14:
		return true
	case col == 13:
		return i/rowSize == 1
	}
	return false
}
