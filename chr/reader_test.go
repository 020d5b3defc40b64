package chr

import (
	"bytes"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomSheet(seed int64) *Sheet {
	s := new(Sheet)
	r := rand.New(rand.NewSource(seed))
	r.Read(s[:])
	return s
}

func TestReadSheet(t *testing.T) {
	tables := map[string]struct {
		size int
		err  error
	}{
		"empty":     {0, ErrTruncated},
		"short":     {Size - 1, ErrTruncated},
		"one page":  {pageBytes, ErrTruncated},
		"exact":     {Size, nil},
		"too large": {Size + 1, ErrTooMuch},
	}

	for name, table := range tables {
		t.Run(name, func(t *testing.T) {
			s, err := ReadSheet(bytes.NewReader(make([]byte, table.size)))
			if table.err != nil {
				assert.Equal(t, table.err, err)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, s)
		})
	}
}

// stallReader returns no data and no error on every other Read
type stallReader struct {
	r     *bytes.Reader
	stall bool
}

func (s *stallReader) Read(p []byte) (int, error) {
	s.stall = !s.stall
	if s.stall {
		return 0, nil
	}
	return s.r.Read(p)
}

func TestReadSheetStall(t *testing.T) {
	want := randomSheet(2)

	s, err := ReadSheet(&stallReader{r: bytes.NewReader(want[:])})
	require.NoError(t, err)
	assert.Equal(t, want, s)

	_, err = ReadSheet(&stallReader{r: bytes.NewReader(append(want[:], 0))})
	assert.Equal(t, ErrTooMuch, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	file := filepath.Join(dir, "short.chr")
	require.NoError(t, os.WriteFile(file, make([]byte, 100), 0o644))

	_, err := LoadFile(file)
	assert.True(t, errors.Is(err, ErrTruncated))

	_, err = LoadFile(filepath.Join(dir, "missing.chr"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	want := randomSheet(1)
	file = filepath.Join(dir, "ok.chr")
	require.NoError(t, os.WriteFile(file, want[:], 0o644))

	s, err := LoadFile(file)
	require.NoError(t, err)
	assert.Equal(t, want, s)
}

func TestDecodeKnownPattern(t *testing.T) {
	s := new(Sheet)
	s[0] = 0xc0          // low plane, row 0
	s[planeBytes] = 0x80 // high plane, row 0

	g := Decode(s)

	var row [tileWidth]uint8
	for x := range row {
		row[x] = g.At(x, 0)
	}
	assert.Equal(t, [tileWidth]uint8{3, 1, 0, 0, 0, 0, 0, 0}, row)
}

func TestDecodeTruthTable(t *testing.T) {
	s := new(Sheet)
	// Row 0 of the first tile on the second page: columns 0-3 cover every
	// combination of (low, high)
	offset := pageBytes
	s[offset] = 0x50            // 0101 0000
	s[offset+planeBytes] = 0x30 // 0011 0000

	g := Decode(s)

	assert.Equal(t, uint8(0), g.At(pageWidth+0, 0))
	assert.Equal(t, uint8(1), g.At(pageWidth+1, 0))
	assert.Equal(t, uint8(2), g.At(pageWidth+2, 0))
	assert.Equal(t, uint8(3), g.At(pageWidth+3, 0))
}

func TestDecodeRange(t *testing.T) {
	for seed := int64(0); seed < 8; seed++ {
		g := Decode(randomSheet(seed))
		assert.Len(t, g.Pix, Width*Height)
		for i, p := range g.Pix {
			if !assert.Less(t, p, uint8(numColors), "pixel %d", i) {
				break
			}
		}
	}
}

func TestDecodeIdempotent(t *testing.T) {
	s := randomSheet(42)
	assert.Equal(t, Decode(s), Decode(s))
}

func TestDecodeTilesDisjoint(t *testing.T) {
	seen := make(map[int]int, numPixels)

	for i := 0; i < numTiles; i++ {
		s := new(Sheet)
		page, tile := i/pageTiles, i%pageTiles
		for b := 0; b < tileBytes; b++ {
			s[page*pageBytes+tile*tileBytes+b] = 0xff
		}

		g := Decode(s)

		count := 0
		for p, v := range g.Pix {
			if v == 0 {
				continue
			}
			assert.Equal(t, uint8(3), v)
			if other, ok := seen[p]; ok {
				t.Fatalf("tile %d overlaps tile %d at pixel %d", i, other, p)
			}
			seen[p] = i
			count++
		}
		assert.Equal(t, tilePixels, count, "tile %d", i)

		x, y := TileOrigin(i)
		assert.Equal(t, uint8(3), g.At(x, y))
		assert.Equal(t, uint8(3), g.At(x+tileWidth-1, y+tileHeight-1))
	}

	assert.Len(t, seen, numPixels)
}
