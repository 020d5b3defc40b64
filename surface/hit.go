package surface

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Outside is returned by PointOnSurface for a point not on the surface
var Outside = mgl32.Vec2{-1, -1}

func abs(f float32) float32 {
	return float32(math.Abs(float64(f)))
}

// PointOnSurface returns the position of the world space point p relative to
// the surface s, with (0, 0) being the top left corner. Points on or beyond
// the edges are not on the surface and return Outside and false.
func PointOnSurface(p mgl32.Vec2, s Surface) (mgl32.Vec2, bool) {
	mp := mgl32.Vec2{p.X(), -p.Y()}
	sp := s.Position.Vec2()
	sd := s.Dimensions

	if abs(mp.X()-sp.X()) < sd.X()/2 && abs(mp.Y()-sp.Y()) < sd.Y()/2 {
		u := abs(mp.X()-(sp.X()-sd.X()/2)) / sd.X()
		v := abs(mp.Y()-(sp.Y()-sd.Y()/2)) / sd.Y()
		return mgl32.Vec2{u, 1 - v}, true
	}

	return Outside, false
}

// Click reports whether p is on the surface s
func Click(p mgl32.Vec2, s Surface) bool {
	_, ok := PointOnSurface(p, s)
	return ok
}

// Cell returns the row-major index of the cell containing uv when the
// surface is divided into a grid of cols by rows cells
func Cell(uv mgl32.Vec2, cols, rows int) (int, bool) {
	if uv.X() < 0 || uv.X() >= 1 || uv.Y() < 0 || uv.Y() >= 1 {
		return 0, false
	}
	x := int(uv.X() * float32(cols))
	y := int(uv.Y() * float32(rows))
	if x >= cols {
		x = cols - 1
	}
	if y >= rows {
		y = rows - 1
	}
	return y*cols + x, true
}
