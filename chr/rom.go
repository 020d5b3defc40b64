package chr

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/retroenv/retrogolib/nes/cartridge"
)

const (
	headerSize  = 16
	trainerSize = 512

	flagsOffset = 6
	flagTrainer = 0x04
	flagFour    = 0x08
)

var (
	// ErrNotROM is returned when the iNES header magic is missing
	ErrNotROM = errors.New("chr: not an iNES image")
	// ErrNoCHR is returned when the image has no CHR ROM banks and so uses
	// CHR RAM instead
	ErrNoCHR = errors.New("chr: image uses CHR RAM")
)

var magic = []byte{'N', 'E', 'S', 0x1a}

// normalize strips any trainer from the image and clears the trainer and
// four-screen flags so the cartridge loader only sees PRG and CHR data
func normalize(b []byte) ([]byte, error) {
	flags := b[flagsOffset]
	if flags&(flagTrainer|flagFour) == 0 {
		return b, nil
	}

	n := make([]byte, 0, len(b))
	n = append(n, b[:headerSize]...)
	n[flagsOffset] &^= flagTrainer | flagFour

	body := b[headerSize:]
	if flags&flagTrainer != 0 {
		if len(body) < trainerSize {
			return nil, ErrTruncated
		}
		body = body[trainerSize:]
	}

	return append(n, body...), nil
}

// FromROM extracts the first CHR bank of an iNES image
func FromROM(r io.Reader) (*Sheet, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if len(b) < headerSize || !bytes.Equal(b[:len(magic)], magic) {
		return nil, ErrNotROM
	}

	if b[5] == 0 {
		return nil, ErrNoCHR
	}

	if b, err = normalize(b); err != nil {
		return nil, err
	}

	cart, err := cartridge.LoadFile(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotROM, err)
	}

	if len(cart.CHR) < Size {
		return nil, ErrTruncated
	}

	s := new(Sheet)
	copy(s[:], cart.CHR)

	return s, nil
}
