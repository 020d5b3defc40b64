package nestool

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

const maxScale = 16

var errBadScale = errors.New("nestool: invalid scale")

// ExportPNG writes the decoded sheet to w as a PNG image scaled up by scale
// using the first four colors of p, or grayscale if p is nil
func (e *Editor) ExportPNG(w io.Writer, scale int, p color.Palette) error {
	if scale < 1 || scale > maxScale {
		return errBadScale
	}

	m := e.grid.Image(p)
	if scale > 1 {
		b := m.Bounds()
		dst := image.NewPaletted(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale), m.Palette)
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), m, b, draw.Src, nil)
		m = dst
	}

	return png.Encode(w, m)
}
