package palette

import (
	"errors"
	"image"
	"image/color"
	"io"

	"github.com/ericpauley/go-quantize/quantize"
)

const (
	// Slots is the number of sample swatches
	Slots       = 26
	samplesX    = 13
	samplesY    = Slots / samplesX
	sampleBytes = Slots
)

// ErrTruncated is returned when a samples file is too short
var ErrTruncated = errors.New("palette: not enough sample data")

// Samples is an editable set of swatches, each naming a palette entry
type Samples struct {
	indices [Slots]uint8
}

// NewSamples returns a sample set where slot i references palette index i
func NewSamples() *Samples {
	s := new(Samples)
	for i := range s.indices {
		s.indices[i] = uint8(i)
	}
	return s
}

// ReadSamples reads a sample set stored as one palette index per byte
func ReadSamples(r io.Reader) (*Samples, error) {
	var tmp [sampleBytes]byte
	if _, err := io.ReadFull(r, tmp[:]); err != nil {
		if err != io.EOF && err != io.ErrUnexpectedEOF {
			return nil, err
		}
		return nil, ErrTruncated
	}

	s := new(Samples)
	for i, b := range tmp {
		if err := s.SetSlot(i, int(b)); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// MarshalBinary returns the sample set as one palette index per byte
func (s *Samples) MarshalBinary() ([]byte, error) {
	b := make([]byte, sampleBytes)
	copy(b, s.indices[:])
	return b, nil
}

// UnmarshalBinary replaces the sample set with the palette indices in b
func (s *Samples) UnmarshalBinary(b []byte) error {
	if len(b) < sampleBytes {
		return ErrTruncated
	}
	var dup Samples
	for i := range dup.indices {
		if int(b[i]) >= Size {
			return ErrIndexOutOfRange
		}
		dup.indices[i] = b[i]
	}
	*s = dup
	return nil
}

// Index returns the palette index referenced by slot
func (s *Samples) Index(slot int) (uint8, error) {
	if slot < 0 || slot >= Slots {
		return 0, ErrIndexOutOfRange
	}
	return s.indices[slot], nil
}

// ColorOf returns the color of slot
func (s *Samples) ColorOf(slot int) (RGB, error) {
	i, err := s.Index(slot)
	if err != nil {
		return RGB{}, err
	}
	return Lookup(int(i))
}

// SetSlot replaces the palette index referenced by slot
func (s *Samples) SetSlot(slot, index int) error {
	if slot < 0 || slot >= Slots || index < 0 || index >= Size {
		return ErrIndexOutOfRange
	}
	s.indices[slot] = uint8(index)
	return nil
}

// Palette returns the colors of every slot in order
func (s *Samples) Palette() color.Palette {
	p := make(color.Palette, Slots)
	for i, index := range s.indices {
		p[i] = table[index]
	}
	return p
}

// Texture returns the samples as a 13 by 2 RGBA texture
func (s *Samples) Texture() []byte {
	b := make([]byte, 0, Slots*4)
	for _, index := range s.indices {
		c := table[index]
		b = append(b, c.R, c.G, c.B, 0xff)
	}
	return b
}

// SampleDimensions returns the sample layout in columns and rows
func SampleDimensions() (int, int) {
	return samplesX, samplesY
}

// Quantize reduces m to at most Slots colors and returns a sample set using
// the closest palette entry for each. Unused slots are left as black.
func Quantize(m image.Image) *Samples {
	q := quantize.MedianCutQuantizer{}
	p := q.Quantize(make(color.Palette, 0, Slots), m)

	s := new(Samples)
	for i := range s.indices {
		s.indices[i] = Nearest(color.Black)
	}
	for i, c := range p {
		if i >= Slots {
			break
		}
		s.indices[i] = Nearest(c)
	}
	return s
}
