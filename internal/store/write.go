package store

import (
	"database/sql"
	"fmt"
	"math"

	"github.com/ademuri/bollywood-analytics/internal/dataset"
)

// ReplaceCatalog clears any previous export and inserts every song with its
// artists and themes in one transaction. progress, if non-nil, is called once
// per inserted song.
func (s *Store) ReplaceCatalog(table *dataset.Table, progress func()) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, t := range []string{"SongTheme", "SongArtist", "Song", "Artist", "Theme"} {
		if _, err := tx.Exec("DELETE FROM " + t); err != nil {
			return fmt.Errorf("clearing %s: %w", t, err)
		}
	}

	for _, theme := range table.ThemeColumns {
		if _, err := tx.Exec("INSERT OR IGNORE INTO Theme (name) VALUES (?)", theme); err != nil {
			return fmt.Errorf("inserting theme %q: %w", theme, err)
		}
	}

	for _, song := range table.Songs {
		if err := insertSong(tx, song); err != nil {
			return err
		}
		if progress != nil {
			progress()
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func insertSong(tx *sql.Tx, song dataset.Song) error {
	f := song.Features
	popularity := sql.NullInt64{Int64: int64(song.Popularity), Valid: !song.PopularityMissing}
	res, err := tx.Exec(`INSERT INTO Song (name, popularity, danceability, energy, valence, acousticness, liveness)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		song.Name, popularity, nullFloat(f.Danceability), nullFloat(f.Energy), nullFloat(f.Valence),
		nullFloat(f.Acousticness), nullFloat(f.Liveness))
	if err != nil {
		return fmt.Errorf("inserting song %q: %w", song.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("song id for %q: %w", song.Name, err)
	}

	for position, artist := range song.Artists {
		if _, err := tx.Exec("INSERT OR IGNORE INTO Artist (name) VALUES (?)", artist); err != nil {
			return fmt.Errorf("inserting artist %q: %w", artist, err)
		}
		if _, err := tx.Exec("INSERT INTO SongArtist (song, artist, position) VALUES (?, ?, ?)", id, artist, position); err != nil {
			return fmt.Errorf("linking artist %q to song %q: %w", artist, song.Name, err)
		}
	}

	for theme, value := range song.Themes {
		if _, err := tx.Exec("INSERT INTO SongTheme (song, theme, value) VALUES (?, ?, ?)", id, theme, value); err != nil {
			return fmt.Errorf("tagging song %q with %q: %w", song.Name, theme, err)
		}
	}
	return nil
}

// nullFloat stores a missing (NaN) feature as NULL.
func nullFloat(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: !math.IsNaN(v)}
}
