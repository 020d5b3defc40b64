package nestool

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/nestool/chr"
)

var errUnknownType = errors.New("nestool: unknown file type")

// Library imports CHR sheets from disk into a SheetDB
type Library struct {
	db     *SheetDB
	logger *log.Logger
}

// NewLibrary returns a Library storing sheets in db
func NewLibrary(db *SheetDB, logger *log.Logger) *Library {
	return &Library{
		db:     db,
		logger: logger,
	}
}

// DB returns the underlying database
func (l *Library) DB() *SheetDB {
	return l.db
}

func readSheet(file string) (*chr.Sheet, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".chr":
		return chr.LoadFile(file)
	case ".nes":
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return chr.FromROM(f)
	default:
		return nil, errUnknownType
	}
}

// Import adds the sheet in file, either a raw .chr file or the first CHR
// bank of a .nes file, and returns its id
func (l *Library) Import(file string) (int64, error) {
	s, err := readSheet(file)
	if err != nil {
		return 0, err
	}

	name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	id, err := l.db.AddSheet(name, s)
	if err != nil {
		return 0, err
	}
	l.logger.Printf("Imported \"%s\" as %d\n", file, id)
	return id, nil
}
