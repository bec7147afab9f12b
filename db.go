package bmp2mif

import (
	"database/sql"
	"fmt"

	"github.com/bodgit/bmp2mif/mif"
	_ "github.com/mattn/go-sqlite3"
)

// ConversionDB caches encoded MIF files keyed by the SHA1 of the source
// bitmap and the canvas it was converted for.
type ConversionDB struct {
	db *sql.DB
}

func NewConversionDB(file string) (*ConversionDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	// SQLite only has the one writer and ConvertDir runs several workers
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS conversion (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL, canvas_cols INTEGER NOT NULL, canvas_rows INTEGER NOT NULL, depth INTEGER NOT NULL, words INTEGER NOT NULL, mif BLOB NOT NULL, UNIQUE(sha1, canvas_cols, canvas_rows, depth))"); err != nil {
		db.Close()
		return nil, err
	}

	return &ConversionDB{
		db: db,
	}, nil
}

func (db *ConversionDB) Close() error {
	return db.db.Close()
}

// AddMIF stores the encoded MIF file b for the bitmap with the given SHA1.
// An existing entry for the same bitmap and canvas is kept.
func (db *ConversionDB) AddMIF(sha string, canvas mif.Canvas, words int, b []byte) (int64, error) {
	// Concurrent workers can race to add the same bitmap
	if _, err := db.db.Exec("INSERT OR IGNORE INTO conversion (sha1, canvas_cols, canvas_rows, depth, words, mif) VALUES (?, ?, ?, ?, ?, ?)", sha, canvas.Cols, canvas.Rows, canvas.Depth, words, b); err != nil {
		return 0, err
	}

	var id int64
	if err := db.db.QueryRow("SELECT id FROM conversion WHERE sha1 = ? AND canvas_cols = ? AND canvas_rows = ? AND depth = ?", sha, canvas.Cols, canvas.Rows, canvas.Depth).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// FindMIF returns the cached MIF file for the bitmap with the given SHA1, or
// nil if the bitmap hasn't been converted for canvas before.
func (db *ConversionDB) FindMIF(sha string, canvas mif.Canvas) ([]byte, error) {
	var b []byte
	switch err := db.db.QueryRow("SELECT mif FROM conversion WHERE sha1 = ? AND canvas_cols = ? AND canvas_rows = ? AND depth = ?", sha, canvas.Cols, canvas.Rows, canvas.Depth).Scan(&b); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return b, nil
	default:
		return nil, err
	}
}

// Count returns the number of cached conversions.
func (db *ConversionDB) Count() (int, error) {
	var n int
	if err := db.db.QueryRow("SELECT COUNT(*) FROM conversion").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
