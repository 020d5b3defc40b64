package nestool

import (
	"github.com/bodgit/nestool/chr"
	"github.com/bodgit/nestool/palette"
	"github.com/bodgit/nestool/surface"
	"github.com/go-gl/mathgl/mgl32"
)

// Panel identifies one of the surfaces of the editor
type Panel int

const (
	PanelPatternTable Panel = iota
	PanelPalette
	PanelSamples
	numPanels

	// PanelNone means the cursor isn't over any panel
	PanelNone Panel = -1
)

func (p Panel) String() string {
	switch p {
	case PanelPatternTable:
		return "pattern table"
	case PanelPalette:
		return "palette"
	case PanelSamples:
		return "samples"
	}
	return "none"
}

// Hit describes what is under the cursor
type Hit struct {
	Panel Panel
	// Position within the panel, (0, 0) being the top left
	UV mgl32.Vec2
	// Tile index for the pattern table, palette index for the palette and
	// slot for the samples
	Cell int
	// Pixel position within the pattern table
	X, Y int
}

// Panels are tested front to back
var hitOrder = [numPanels]Panel{PanelSamples, PanelPalette, PanelPatternTable}

func (e *Editor) hit(p mgl32.Vec2) Hit {
	for _, panel := range hitOrder {
		s := e.surfaces[panel].Scaled(e.view.Zoom)
		uv, ok := surface.PointOnSurface(p, s)
		if !ok {
			continue
		}

		h := Hit{Panel: panel, UV: uv}
		switch panel {
		case PanelPatternTable:
			i, ok := surface.Cell(uv, chr.Width, chr.Height)
			if !ok {
				continue
			}
			h.X, h.Y = i%chr.Width, i/chr.Width
			h.Cell = chr.TileAt(h.X, h.Y)
		case PanelPalette:
			cols, rows := palette.Dimensions()
			if h.Cell, ok = surface.Cell(uv, cols, rows); !ok {
				continue
			}
		case PanelSamples:
			cols, rows := palette.SampleDimensions()
			if h.Cell, ok = surface.Cell(uv, cols, rows); !ok {
				continue
			}
		}
		return h
	}
	return Hit{Panel: PanelNone, UV: surface.Outside}
}

// Hover returns what is under the cursor
func (e *Editor) Hover() Hit {
	return e.hit(e.mouse.Position)
}

// Resize handles a change of window size
func (e *Editor) Resize(width, height int) {
	e.view.Resize(width, height)
}

// Scroll handles a scroll wheel movement by changing the zoom
func (e *Editor) Scroll(delta float32) {
	e.view.ZoomBy(delta)
}

// CursorMoved handles the cursor moving to (x, y) in window pixels
func (e *Editor) CursorMoved(x, y float32) {
	e.mouse.Move(e.view.ScreenToWorld(x, y))
}

// Press handles a mouse button press. Clicking the palette selects a color,
// clicking a sample slot assigns the selected color to it and clicking the
// pattern table selects a tile.
func (e *Editor) Press() (Hit, error) {
	e.mouse.Press()

	h := e.Hover()
	switch h.Panel {
	case PanelPatternTable:
		e.tile = h.Cell
		e.logger.Printf("Selected tile %d\n", h.Cell)
	case PanelPalette:
		e.selected = h.Cell
		e.logger.Printf("Selected color $%02X\n", h.Cell)
	case PanelSamples:
		if err := e.samples.SetSlot(h.Cell, e.selected); err != nil {
			return h, err
		}
		e.logger.Printf("Set sample %d to color $%02X\n", h.Cell, e.selected)
	}
	return h, nil
}

// Release handles a mouse button release
func (e *Editor) Release() {
	e.mouse.Release()
}
