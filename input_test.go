package nestool

import (
	"testing"

	"github.com/bodgit/nestool/surface"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func moveTo(e *Editor, p mgl32.Vec2) {
	e.CursorMoved(screen(e.View(), p))
}

func TestPanelString(t *testing.T) {
	assert.Equal(t, "pattern table", PanelPatternTable.String())
	assert.Equal(t, "palette", PanelPalette.String())
	assert.Equal(t, "samples", PanelSamples.String())
	assert.Equal(t, "none", PanelNone.String())
}

func TestHoverPatternTable(t *testing.T) {
	e := New(discard())

	// Just inside the top left corner of pixel (128, 64)
	moveTo(e, mgl32.Vec2{0.4, 39.6})
	h := e.Hover()
	assert.Equal(t, PanelPatternTable, h.Panel)
	assert.InDelta(t, 0.5, h.UV.X(), 1e-2)
	assert.InDelta(t, 0.5, h.UV.Y(), 1e-2)
	assert.Equal(t, 128, h.X)
	assert.Equal(t, 64, h.Y)
	assert.Equal(t, 384, h.Cell)

	// Top left tile
	moveTo(e, mgl32.Vec2{-99, 89})
	h = e.Hover()
	assert.Equal(t, PanelPatternTable, h.Panel)
	assert.Equal(t, 0, h.Cell)
	assert.Equal(t, 1, h.X)
	assert.Equal(t, 1, h.Y)
}

func TestHoverNothing(t *testing.T) {
	e := New(discard())

	moveTo(e, mgl32.Vec2{150, -80})
	h := e.Hover()
	assert.Equal(t, PanelNone, h.Panel)
	assert.Equal(t, surface.Outside, h.UV)

	_, ok := e.Surface(h.Panel)
	assert.False(t, ok)
	_, ok = e.Surface(numPanels)
	assert.False(t, ok)
}

func TestHoverZoom(t *testing.T) {
	e := New(discard())

	moveTo(e, mgl32.Vec2{0, 95})
	assert.Equal(t, PanelNone, e.Hover().Panel)

	e.Scroll(1)
	assert.Equal(t, PanelPatternTable, e.Hover().Panel)

	e.Scroll(-10)
	assert.Equal(t, float32(1), e.View().Zoom)
	assert.Equal(t, PanelNone, e.Hover().Panel)
}

func TestPressAssignsSample(t *testing.T) {
	e := New(discard())

	// Palette index 17 is column 1 of row 1
	moveTo(e, mgl32.Vec2{-76, -38})
	h, err := e.Press()
	require.NoError(t, err)
	e.Release()
	assert.Equal(t, PanelPalette, h.Panel)
	assert.Equal(t, 17, h.Cell)
	assert.Equal(t, 17, e.Selected())

	// Sample slot 14 is column 1 of row 1
	moveTo(e, mgl32.Vec2{30, -42})
	h, err = e.Press()
	require.NoError(t, err)
	e.Release()
	assert.Equal(t, PanelSamples, h.Panel)
	assert.Equal(t, 14, h.Cell)

	i, err := e.Samples().Index(14)
	require.NoError(t, err)
	assert.Equal(t, uint8(17), i)

	// Neighbouring slots are unchanged
	i, _ = e.Samples().Index(13)
	assert.Equal(t, uint8(13), i)
}

func TestPressSelectsTile(t *testing.T) {
	e := New(discard())

	moveTo(e, mgl32.Vec2{0.4, 39.6})
	h, err := e.Press()
	require.NoError(t, err)
	assert.Equal(t, 384, h.Cell)
	assert.Equal(t, 384, e.Tile())
	assert.True(t, e.Mouse().Dragging)

	e.Release()
	assert.False(t, e.Mouse().Dragging)
}

func TestResizeKeepsHitTesting(t *testing.T) {
	e := New(discard())
	e.Resize(800, 800)

	moveTo(e, mgl32.Vec2{0, 40})
	h := e.Hover()
	assert.Equal(t, PanelPatternTable, h.Panel)
	assert.InDelta(t, 0.5, h.UV.X(), 1e-4)
	assert.InDelta(t, 0.5, h.UV.Y(), 1e-4)
}
