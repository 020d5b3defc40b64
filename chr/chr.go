/*
Package chr implements an NES pattern table (CHR) decoder.

The format is defined as 8192 bytes exactly which is split into two 4096 byte
pages of 256 tiles each. A tile is 16 bytes; the first 8 bytes are the low
bit plane and the following 8 bytes are the high bit plane, one byte per row
with the most significant bit being the leftmost pixel. Combining the two
planes gives a 2-bit palette index per pixel.

The decoded pages are placed side by side giving a 256 by 128 pixel grid
where each page is a 16 by 16 grid of 8 by 8 tiles.
*/
package chr

const (
	tileWidth   = 8
	tileHeight  = tileWidth
	tilePixels  = tileWidth * tileHeight
	tileBytes   = 16
	planeBytes  = tileBytes >> 1
	tileX       = 16
	tileY       = 16
	pageTiles   = tileX * tileY
	pageBytes   = pageTiles * tileBytes
	numPages    = 2
	pageWidth   = tileWidth * tileX
	pageHeight  = tileHeight * tileY
	numColors   = 4
	pixelX      = pageWidth * numPages
	pixelY      = pageHeight
	numPixels   = pixelX * pixelY
	numTiles    = pageTiles * numPages
	sheetBytes  = pageBytes * numPages
	textureStep = 255.0 / numColors
)

// Size is the exact size in bytes of a CHR sheet
const Size = sheetBytes

// Grid dimensions in pixels and tiles
const (
	Width  = pixelX
	Height = pixelY
	Tiles  = numTiles
)
