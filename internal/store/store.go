// Package store writes the song catalog to a SQLite database for ad-hoc SQL
// analysis outside the tool.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const createTables = `
CREATE TABLE IF NOT EXISTS Song (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  popularity INTEGER,
  danceability REAL,
  energy REAL,
  valence REAL,
  acousticness REAL,
  liveness REAL
);

CREATE TABLE IF NOT EXISTS Artist (
  name TEXT PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS SongArtist (
  song INTEGER,
  artist TEXT,
  position INTEGER,
  FOREIGN KEY (song) REFERENCES Song(id),
  FOREIGN KEY (artist) REFERENCES Artist(name),
  PRIMARY KEY (song, position)
);

CREATE TABLE IF NOT EXISTS Theme (
  name TEXT PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS SongTheme (
  song INTEGER,
  theme TEXT,
  value TEXT,
  FOREIGN KEY (song) REFERENCES Song(id),
  FOREIGN KEY (theme) REFERENCES Theme(name),
  PRIMARY KEY (song, theme)
);
`

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(createTables); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
