package nestool

import (
	"bytes"
	"crypto/sha1"
	"database/sql"
	"fmt"

	"github.com/bodgit/nestool/chr"
	"github.com/bodgit/nestool/palette"
	_ "github.com/mattn/go-sqlite3"
)

// SheetDB is a library of CHR sheets and the sample sets used with them
type SheetDB struct {
	db *sql.DB
}

// SheetInfo describes a sheet stored in the library
type SheetInfo struct {
	ID   int64
	Name string
	SHA1 string
}

// NewSheetDB opens or creates the library in file
func NewSheetDB(file string) (*SheetDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS sheet (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, name TEXT NOT NULL, chr BLOB NOT NULL)"); err != nil {
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS samples (sheet_id INTEGER NOT NULL UNIQUE, slots BLOB NOT NULL, FOREIGN KEY(sheet_id) REFERENCES sheet(id))"); err != nil {
		return nil, err
	}

	return &SheetDB{
		db: db,
	}, nil
}

// Close closes the library
func (db *SheetDB) Close() error {
	return db.db.Close()
}

// Hash returns the key a sheet is stored under
func Hash(s *chr.Sheet) string {
	return fmt.Sprintf("%X", sha1.Sum(s[:]))
}

// AddSheet stores s under name and returns its id. If an identical sheet is
// already stored its id is returned instead.
func (db *SheetDB) AddSheet(name string, s *chr.Sheet) (int64, error) {
	sha := Hash(s)

	// Concurrent imports of the same sheet race on the unique constraint
	if _, err := db.db.Exec("INSERT OR IGNORE INTO sheet (sha1, name, chr) VALUES (?, ?, ?)", sha, name, s[:]); err != nil {
		return 0, err
	}

	var id int64
	if err := db.db.QueryRow("SELECT id FROM sheet WHERE sha1 = ?", sha).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func scanSheet(row *sql.Row) (*chr.Sheet, error) {
	var b []byte
	switch err := row.Scan(&b); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return chr.ReadSheet(bytes.NewReader(b))
	default:
		return nil, err
	}
}

// FindSheet returns the sheet with the given SHA-1, or nil if there is none
func (db *SheetDB) FindSheet(sha string) (*chr.Sheet, error) {
	return scanSheet(db.db.QueryRow("SELECT chr FROM sheet WHERE sha1 = ?", sha))
}

// Sheet returns the sheet with the given id, or nil if there is none
func (db *SheetDB) Sheet(id int64) (*chr.Sheet, error) {
	return scanSheet(db.db.QueryRow("SELECT chr FROM sheet WHERE id = ?", id))
}

// Sheets lists every sheet in the library ordered by name
func (db *SheetDB) Sheets() ([]SheetInfo, error) {
	rows, err := db.db.Query("SELECT id, name, sha1 FROM sheet ORDER BY name, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sheets []SheetInfo
	for rows.Next() {
		var s SheetInfo
		if err := rows.Scan(&s.ID, &s.Name, &s.SHA1); err != nil {
			return nil, err
		}
		sheets = append(sheets, s)
	}
	return sheets, rows.Err()
}

// SetSamples stores the sample set used with sheet id
func (db *SheetDB) SetSamples(id int64, s *palette.Samples) error {
	b, err := s.MarshalBinary()
	if err != nil {
		return err
	}
	if _, err := db.db.Exec("INSERT OR REPLACE INTO samples (sheet_id, slots) VALUES (?, ?)", id, b); err != nil {
		return err
	}
	return nil
}

// Samples returns the sample set stored for sheet id, or nil if there is none
func (db *SheetDB) Samples(id int64) (*palette.Samples, error) {
	var b []byte
	switch err := db.db.QueryRow("SELECT slots FROM samples WHERE sheet_id = ?", id).Scan(&b); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		s := new(palette.Samples)
		if err := s.UnmarshalBinary(b); err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, err
	}
}
