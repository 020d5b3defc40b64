package nestool

import (
	"github.com/bodgit/nestool/palette"
	"github.com/bodgit/nestool/surface"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer draws a frame. It is implemented by the windowing layer.
type Renderer interface {
	Render(*Frame) error
}

// PanelFrame holds what is needed to draw one panel
type PanelFrame struct {
	Panel    Panel
	MVP      [16]float32 // column-major
	Vertices [4]surface.Vertex
	// Cursor position within the panel or surface.Outside
	Cursor mgl32.Vec2
}

// Frame is everything handed to a Renderer for a single frame
type Frame struct {
	// Pattern table as a single channel 256 by 128 texture
	Pattern []byte
	// Palette as a 16 by 4 RGBA texture
	Palette []byte
	// Samples as a 13 by 2 RGBA texture
	Samples []byte

	Panels [numPanels]PanelFrame

	// Cursor position in world space
	Cursor mgl32.Vec2
}

// Frame builds the frame for the current state
func (e *Editor) Frame() *Frame {
	f := &Frame{
		Pattern: e.grid.Texture(),
		Palette: palette.Texture(),
		Samples: e.samples.Texture(),
		Cursor:  e.mouse.Position,
	}

	for i, s := range e.surfaces {
		uv, _ := surface.PointOnSurface(e.mouse.Position, s.Scaled(e.view.Zoom))
		f.Panels[i] = PanelFrame{
			Panel:    Panel(i),
			MVP:      e.view.MVP(s.Model(e.view.Zoom)),
			Vertices: s.Vertices(),
			Cursor:   uv,
		}
	}

	return f
}

// Draw hands the current frame to r
func (e *Editor) Draw(r Renderer) error {
	return r.Render(e.Frame())
}
