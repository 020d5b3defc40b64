/*
Package nestool is a library for inspecting and editing NES graphics assets.

An Editor owns a decoded CHR sheet, the sample swatches and the camera, and
turns window input into selections. Everything needed to draw a frame is
handed to a Renderer, which is implemented outside of this package.
*/
package nestool

import (
	"io"
	"log"
	"os"

	"github.com/bodgit/nestool/chr"
	"github.com/bodgit/nestool/palette"
	"github.com/bodgit/nestool/surface"
	"github.com/bodgit/nestool/view"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	defaultWidth  = 1600
	defaultHeight = 900
)

// Editor is a single editing session. It is not safe for concurrent use.
type Editor struct {
	logger *log.Logger

	sheet   *chr.Sheet
	grid    *chr.Grid
	samples *palette.Samples

	view  *view.View
	mouse view.Mouse

	surfaces [numPanels]surface.Surface

	selected int // palette index assigned to sample slots
	tile     int
}

// New returns an Editor with an empty sheet, the default sample set and a
// camera for a 1600 by 900 window
func New(logger *log.Logger) *Editor {
	e := &Editor{
		logger:  logger,
		sheet:   new(chr.Sheet),
		grid:    new(chr.Grid),
		samples: palette.NewSamples(),
		view:    view.New(defaultWidth, defaultHeight),
	}
	e.surfaces[PanelPatternTable] = surface.PatternTable()
	e.surfaces[PanelPalette] = surface.Palette()
	e.surfaces[PanelSamples] = surface.Samples()
	e.Layout()
	return e
}

// Layout positions the panels; the pattern table across the top with the
// palette and samples side by side below it
func (e *Editor) Layout() {
	e.surfaces[PanelPatternTable].SetPosition(mgl32.Vec3{0, 40, 0})
	e.surfaces[PanelPalette].SetPosition(mgl32.Vec3{-50, -40, 0})
	e.surfaces[PanelSamples].SetPosition(mgl32.Vec3{50, -40, 2})
}

// Load decodes a CHR sheet from r. On error the current sheet is kept.
func (e *Editor) Load(r io.Reader) error {
	s, err := chr.ReadSheet(r)
	if err != nil {
		return err
	}
	e.setSheet(s)
	return nil
}

// LoadFile decodes the named CHR file. On error the current sheet is kept.
func (e *Editor) LoadFile(file string) error {
	s, err := chr.LoadFile(file)
	if err != nil {
		return err
	}
	e.logger.Printf("Loaded \"%s\"\n", file)
	e.setSheet(s)
	return nil
}

// LoadROM decodes the first CHR bank of the named iNES file. On error the
// current sheet is kept.
func (e *Editor) LoadROM(file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	s, err := chr.FromROM(f)
	if err != nil {
		return err
	}
	e.logger.Printf("Loaded CHR bank from \"%s\"\n", file)
	e.setSheet(s)
	return nil
}

// LoadSamples replaces the sample set with the one in the named file
func (e *Editor) LoadSamples(file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	s, err := palette.ReadSamples(f)
	if err != nil {
		return err
	}
	e.samples = s
	return nil
}

func (e *Editor) setSheet(s *chr.Sheet) {
	e.sheet = s
	e.grid = chr.Decode(s)
}

// Sheet returns the raw sheet being edited
func (e *Editor) Sheet() *chr.Sheet {
	return e.sheet
}

// Grid returns the decoded sheet
func (e *Editor) Grid() *chr.Grid {
	return e.grid
}

// Samples returns the sample set
func (e *Editor) Samples() *palette.Samples {
	return e.samples
}

// SetSamples replaces the sample set
func (e *Editor) SetSamples(s *palette.Samples) {
	e.samples = s
}

// View returns the camera
func (e *Editor) View() *view.View {
	return e.view
}

// Mouse returns the cursor state
func (e *Editor) Mouse() view.Mouse {
	return e.mouse
}

// Surface returns the surface of panel p. It returns false if p is not one
// of the editor panels, such as PanelNone.
func (e *Editor) Surface(p Panel) (surface.Surface, bool) {
	if p < 0 || p >= numPanels {
		return surface.Surface{}, false
	}
	return e.surfaces[p], true
}

// Selected returns the palette index that will be assigned to the next
// sample slot clicked
func (e *Editor) Selected() int {
	return e.selected
}

// Tile returns the most recently clicked tile
func (e *Editor) Tile() int {
	return e.tile
}
