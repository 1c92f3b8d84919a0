package store

import "fmt"

type ArtistPopularity struct {
	Artist        string
	SongCount     int64
	AvgPopularity float64
}

func (s *Store) CountSongs() (int64, error) {
	var count int64
	if err := s.db.QueryRow("SELECT COUNT(*) FROM Song").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting songs: %w", err)
	}
	return count, nil
}

func (s *Store) CountArtistRows() (int64, error) {
	var count int64
	if err := s.db.QueryRow("SELECT COUNT(*) FROM SongArtist").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting song artists: %w", err)
	}
	return count, nil
}

// GetTopArtists ranks artists the same way as the in-memory artist stats:
// mean popularity, then song count, then name. Songs without a popularity are
// not counted, and artists with none are left out.
func (s *Store) GetTopArtists(limit int) ([]ArtistPopularity, error) {
	query := `
	SELECT sa.artist, COUNT(*), AVG(s.popularity)
	FROM SongArtist sa
	JOIN Song s ON s.id = sa.song
	WHERE s.popularity IS NOT NULL
	GROUP BY sa.artist
	ORDER BY AVG(s.popularity) DESC, COUNT(*) DESC, sa.artist ASC
	LIMIT ?
	`
	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying top artists: %w", err)
	}
	defer rows.Close()

	var results []ArtistPopularity
	for rows.Next() {
		var ap ArtistPopularity
		if err := rows.Scan(&ap.Artist, &ap.SongCount, &ap.AvgPopularity); err != nil {
			return nil, err
		}
		results = append(results, ap)
	}
	return results, rows.Err()
}

// GetSongsWithTheme returns the names of songs tagged with theme, in export
// order.
func (s *Store) GetSongsWithTheme(theme string) ([]string, error) {
	rows, err := s.db.Query(`
		SELECT s.name
		FROM SongTheme st
		JOIN Song s ON s.id = st.song
		WHERE st.theme = ?
		ORDER BY s.id ASC
	`, theme)
	if err != nil {
		return nil, fmt.Errorf("querying songs for theme %q: %w", theme, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
