package nestool

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/bodgit/nestool/chr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportPNG(t *testing.T) {
	e := New(discard())

	s := new(chr.Sheet)
	s[0] = 0xc0
	s[8] = 0x80
	require.NoError(t, e.Load(bytes.NewReader(s[:])))

	p := color.Palette{
		color.RGBA{0, 0, 0, 0xff},
		color.RGBA{0xff, 0, 0, 0xff},
		color.RGBA{0, 0xff, 0, 0xff},
		color.RGBA{0, 0, 0xff, 0xff},
	}

	b := new(bytes.Buffer)
	require.NoError(t, e.ExportPNG(b, 2, p))

	m, err := png.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, chr.Width*2, m.Bounds().Dx())
	assert.Equal(t, chr.Height*2, m.Bounds().Dy())

	r, g, bl, _ := m.At(1, 1).RGBA()
	assert.Equal(t, []uint32{0, 0, 0xffff}, []uint32{r, g, bl})
	r, g, bl, _ = m.At(2, 0).RGBA()
	assert.Equal(t, []uint32{0xffff, 0, 0}, []uint32{r, g, bl})
	r, g, bl, _ = m.At(4, 0).RGBA()
	assert.Equal(t, []uint32{0, 0, 0}, []uint32{r, g, bl})
}

func TestExportPNGGrayscale(t *testing.T) {
	e := New(discard())

	b := new(bytes.Buffer)
	require.NoError(t, e.ExportPNG(b, 1, nil))

	m, err := png.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, chr.Width, m.Bounds().Dx())
}

func TestExportPNGBadScale(t *testing.T) {
	e := New(discard())
	assert.Equal(t, errBadScale, e.ExportPNG(new(bytes.Buffer), 0, nil))
	assert.Equal(t, errBadScale, e.ExportPNG(new(bytes.Buffer), maxScale+1, nil))
}
