package testcard

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Entry is one catalogued output file.
type Entry struct {
	Filename string
	Pattern  string
	Width    int
	Height   int
	Format   string
	Bytes    int64
	SHA1     string
}

// CatalogDB records every image the generator has written.
type CatalogDB struct {
	db *sql.DB
}

func NewCatalogDB(file string) (*CatalogDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS image (id INTEGER PRIMARY KEY NOT NULL, filename TEXT NOT NULL UNIQUE, pattern TEXT NOT NULL, width INTEGER NOT NULL, height INTEGER NOT NULL, format TEXT NOT NULL, bytes INTEGER NOT NULL, sha1 TEXT NOT NULL)"); err != nil {
		return nil, err
	}

	return &CatalogDB{
		db: db,
	}, nil
}

func (db *CatalogDB) Close() error {
	return db.db.Close()
}

func (db *CatalogDB) putEntry(e Entry) error {
	if _, err := db.db.Exec("INSERT OR REPLACE INTO image (filename, pattern, width, height, format, bytes, sha1) VALUES (?, ?, ?, ?, ?, ?, ?)",
		e.Filename, e.Pattern, e.Width, e.Height, e.Format, e.Bytes, e.SHA1); err != nil {
		return err
	}
	return nil
}

// FindSHA1 returns the recorded digest for a filename, or the empty
// string when the file has not been catalogued.
func (db *CatalogDB) FindSHA1(filename string) (string, error) {
	var sha string
	switch err := db.db.QueryRow("SELECT sha1 FROM image WHERE filename = ?", filename).Scan(&sha); err {
	case sql.ErrNoRows:
		return "", nil
	case nil:
		return sha, nil
	default:
		return "", err
	}
}

// Entries returns the catalogue ordered by filename.
func (db *CatalogDB) Entries() ([]Entry, error) {
	rows, err := db.db.Query("SELECT filename, pattern, width, height, format, bytes, sha1 FROM image ORDER BY filename")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Filename, &e.Pattern, &e.Width, &e.Height, &e.Format, &e.Bytes, &e.SHA1); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
