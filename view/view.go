/*
Package view implements the editor camera: an orthographic projection sized
to the window, a zoom factor and the mapping from window pixels back into
world space.
*/
package view

import "github.com/go-gl/mathgl/mgl32"

const (
	minZoom = 1.0
	maxZoom = 4.0

	// World units visible along each axis before aspect correction
	extent = 200.0

	near = -100.0
	far  = 100.0
)

// View holds the camera state for a window
type View struct {
	// Window size in pixels
	WindowDimensions [2]int
	// World units covered by the projection before aspect correction
	ProjectionDimensions mgl32.Vec2
	Zoom                 float32

	view       mgl32.Mat4
	projection mgl32.Mat4
}

// New returns a camera for a window of the given pixel size
func New(width, height int) *View {
	v := &View{
		WindowDimensions:     [2]int{width, height},
		ProjectionDimensions: mgl32.Vec2{extent, extent},
		Zoom:                 minZoom,
		// Look down the z axis with y growing downwards like screen space
		view: mgl32.LookAtV(
			mgl32.Vec3{0, 0, -1},
			mgl32.Vec3{0, 0, 0},
			mgl32.Vec3{0, -1, 0},
		),
	}
	v.UpdateProjection()
	return v
}

// Aspect returns the window width divided by its height
func (v *View) Aspect() float32 {
	if v.WindowDimensions[1] == 0 {
		return 1
	}
	return float32(v.WindowDimensions[0]) / float32(v.WindowDimensions[1])
}

// UpdateProjection recomputes the aspect corrected projection and must be
// called whenever the window dimensions change
func (v *View) UpdateProjection() {
	aspect := v.Aspect()
	pd := v.ProjectionDimensions
	v.projection = mgl32.Ortho(
		-(pd.X()/2)*aspect, pd.X()/2*aspect,
		-(pd.Y() / 2), pd.Y()/2,
		near, far,
	)
}

// Resize sets the window dimensions and updates the projection
func (v *View) Resize(width, height int) {
	v.WindowDimensions = [2]int{width, height}
	v.UpdateProjection()
}

// Projection returns the projection matrix
func (v *View) Projection() mgl32.Mat4 {
	return v.projection
}

// View returns the view matrix
func (v *View) View() mgl32.Mat4 {
	return v.view
}

// MVP returns projection * view * model
func (v *View) MVP(model mgl32.Mat4) mgl32.Mat4 {
	return v.projection.Mul4(v.view).Mul4(model)
}

// ZoomBy changes the zoom by delta, clamped between 1 and 4
func (v *View) ZoomBy(delta float32) {
	v.Zoom = mgl32.Clamp(v.Zoom+delta, minZoom, maxZoom)
}

// ScreenToWorld maps a cursor position in window pixels into world space
func (v *View) ScreenToWorld(x, y float32) mgl32.Vec2 {
	wd := mgl32.Vec2{float32(v.WindowDimensions[0]), float32(v.WindowDimensions[1])}
	pd := v.ProjectionDimensions
	aspect := v.Aspect()

	return mgl32.Vec2{
		x/wd.X()*pd.X()*aspect - pd.X()*aspect/2,
		y/wd.Y()*pd.Y() - pd.Y()/2,
	}
}
