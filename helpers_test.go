package nestool

import (
	"bytes"

	"github.com/bodgit/nestool/chr"
	"github.com/bodgit/nestool/view"
	"github.com/go-gl/mathgl/mgl32"
)

// Builds a minimal iNES image with one 16 KiB PRG bank and one CHR bank
func rom(s *chr.Sheet) []byte {
	return romFlags(s, 0)
}

// As rom but with the given flags 6 byte. A trainer is filled with 0xee.
func romFlags(s *chr.Sheet, flags byte) []byte {
	b := new(bytes.Buffer)
	b.Write([]byte{'N', 'E', 'S', 0x1a, 1, 1, flags})
	b.Write(make([]byte, 9))
	if flags&0x04 != 0 {
		b.Write(bytes.Repeat([]byte{0xee}, 512))
	}
	b.Write(bytes.Repeat([]byte{0xaa}, 16<<10))
	b.Write(s[:])
	return b.Bytes()
}

// Returns the window pixel position that maps onto the world position p,
// where p uses the same y-up convention as surface positions
func screen(v *view.View, p mgl32.Vec2) (float32, float32) {
	w, h := float32(v.WindowDimensions[0]), float32(v.WindowDimensions[1])
	pd := v.ProjectionDimensions
	aspect := v.Aspect()

	x := (p.X() + pd.X()*aspect/2) / (pd.X() * aspect) * w
	y := (-p.Y() + pd.Y()/2) / pd.Y() * h
	return x, y
}
