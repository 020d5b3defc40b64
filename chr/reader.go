package chr

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
)

var (
	// ErrTruncated is returned when fewer than Size bytes are available
	ErrTruncated = errors.New("chr: not enough pattern data")
	// ErrTooMuch is returned when more than Size bytes are available
	ErrTooMuch = errors.New("chr: too much pattern data")
)

// Sheet is the raw content of a CHR file
type Sheet [sheetBytes]byte

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

// ReadSheet reads exactly Size bytes from r
func ReadSheet(r io.Reader) (*Sheet, error) {
	s := new(Sheet)
	if err := readFull(r, s[:]); err != nil {
		if err != io.ErrUnexpectedEOF {
			return nil, err
		}
		return nil, ErrTruncated
	}

	if n, err := io.CopyN(ioutil.Discard, r, 1); n != 0 {
		return nil, ErrTooMuch
	} else if err != io.EOF {
		return nil, err
	}

	return s, nil
}

// LoadFile reads a CHR sheet from the named file
func LoadFile(file string) (*Sheet, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := ReadSheet(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", file, err)
	}
	return s, nil
}

func pixel(low, high byte, x int) uint8 {
	mask := byte(0x80) >> uint(x)

	var index uint8
	if low&mask != 0 {
		index |= 1
	}
	if high&mask != 0 {
		index |= 2
	}
	return index
}

// Decode converts the bit planes of every tile in the sheet into a grid of
// palette indices
func Decode(s *Sheet) *Grid {
	g := new(Grid)

	for page := 0; page < numPages; page++ {
		for i := 0; i < pageTiles; i++ {
			tile := s[page*pageBytes+i*tileBytes:][:tileBytes]

			dx := page*pageWidth + (i%tileX)*tileWidth
			dy := (i / tileX) * tileHeight

			for y := 0; y < tileHeight; y++ {
				low, high := tile[y], tile[planeBytes+y]
				for x := 0; x < tileWidth; x++ {
					g.Pix[(dy+y)*pixelX+dx+x] = pixel(low, high, x)
				}
			}
		}
	}

	return g
}
