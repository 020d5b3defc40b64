/*
Package surface implements the axis-aligned panels the editor is laid out
with and the hit-testing used to find which part of a panel is under the
cursor.
*/
package surface

import "github.com/go-gl/mathgl/mgl32"

// Surface is a rectangle in world space centered on Position
type Surface struct {
	Position   mgl32.Vec3
	Dimensions mgl32.Vec2
}

// Vertex is a corner of a surface quad in local space
type Vertex struct {
	Position mgl32.Vec3
	UV       mgl32.Vec2
}

// Indices draws a surface quad as two triangles
var Indices = [6]uint32{0, 1, 2, 2, 3, 0}

// New returns a surface of the given dimensions at position
func New(position mgl32.Vec3, dimensions mgl32.Vec2) Surface {
	return Surface{
		Position:   position,
		Dimensions: dimensions,
	}
}

// PatternTable returns the surface used to display both pages of a CHR sheet
func PatternTable() Surface {
	return New(mgl32.Vec3{}, mgl32.Vec2{200, 100})
}

// Palette returns the surface used to display the 16 by 4 palette
func Palette() Surface {
	return New(mgl32.Vec3{}, mgl32.Vec2{64, 16})
}

// Samples returns the surface used to display the 13 by 2 sample swatches
func Samples() Surface {
	return New(mgl32.Vec3{0, 0, 2}, mgl32.Vec2{52, 8})
}

// SetPosition moves the surface, the dimensions are unchanged
func (s *Surface) SetPosition(position mgl32.Vec3) {
	s.Position = position
}

// Scaled returns a copy of the surface with its dimensions multiplied by
// zoom, matching how it's drawn with the model matrix from Model
func (s Surface) Scaled(zoom float32) Surface {
	s.Dimensions = s.Dimensions.Mul(zoom)
	return s
}

// Model returns the model matrix that places the surface in the world
func (s Surface) Model(zoom float32) mgl32.Mat4 {
	p := s.Position
	return mgl32.Translate3D(p.X(), p.Y(), p.Z()).Mul4(mgl32.Scale3D(zoom, zoom, zoom))
}

// Vertices returns the four corners of the surface quad, counter-clockwise
// from the top left
func (s Surface) Vertices() [4]Vertex {
	w, h := s.Dimensions.X()/2, s.Dimensions.Y()/2
	return [4]Vertex{
		{mgl32.Vec3{-w, h, 1}, mgl32.Vec2{0, 0}},
		{mgl32.Vec3{-w, -h, 1}, mgl32.Vec2{0, 1}},
		{mgl32.Vec3{w, -h, 1}, mgl32.Vec2{1, 1}},
		{mgl32.Vec3{w, h, 1}, mgl32.Vec2{1, 0}},
	}
}
