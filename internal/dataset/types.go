package dataset

import "math"

// FeatureNames lists the audio features carried by every song, in the order
// they appear in tables and in the persisted blend document.
var FeatureNames = []string{"danceability", "energy", "valence", "acousticness", "liveness"}

// AudioFeatures holds the five Spotify-style descriptors of a song.
type AudioFeatures struct {
	Danceability float64 `json:"danceability" yaml:"danceability"`
	Energy       float64 `json:"energy" yaml:"energy"`
	Valence      float64 `json:"valence" yaml:"valence"`
	Acousticness float64 `json:"acousticness" yaml:"acousticness"`
	Liveness     float64 `json:"liveness" yaml:"liveness"`
}

// Values returns the features in FeatureNames order.
func (f AudioFeatures) Values() []float64 {
	return []float64{f.Danceability, f.Energy, f.Valence, f.Acousticness, f.Liveness}
}

// Finite reports whether every feature is a real number, i.e. none is missing
// (NaN) or infinite.
func (f AudioFeatures) Finite() bool {
	for _, v := range f.Values() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// FeatureMean averages audio features one feature at a time. Missing values
// (NaN) are skipped, so a feature's mean covers only the rows that have it.
type FeatureMean struct {
	sums   [5]float64
	counts [5]int
}

func (m *FeatureMean) Add(f AudioFeatures) {
	for i, v := range f.Values() {
		if math.IsNaN(v) {
			continue
		}
		m.sums[i] += v
		m.counts[i]++
	}
}

// Mean returns the per-feature means. A feature with no values is NaN.
func (m *FeatureMean) Mean() AudioFeatures {
	var means [5]float64
	for i := range means {
		if m.counts[i] == 0 {
			means[i] = math.NaN()
			continue
		}
		means[i] = m.sums[i] / float64(m.counts[i])
	}
	return AudioFeatures{
		Danceability: means[0],
		Energy:       means[1],
		Valence:      means[2],
		Acousticness: means[3],
		Liveness:     means[4],
	}
}

// Song is one row of the source dataset. A blank feature cell is NaN.
type Song struct {
	Name       string
	Artists    []string
	Popularity int
	// PopularityMissing is set when the Popularity cell was blank; Popularity
	// is then zero and must not be counted.
	PopularityMissing bool
	Features          AudioFeatures

	// Themes maps a theme/genre column to its cell value. Only columns with a
	// non-empty value are present.
	Themes map[string]string
}

// HasTheme reports whether the song is tagged with the given theme column.
func (s Song) HasTheme(theme string) bool {
	_, ok := s.Themes[theme]
	return ok
}

// ExplodedSong is a Song projected onto a single one of its artists.
type ExplodedSong struct {
	Name              string
	Artist            string
	Popularity        int
	PopularityMissing bool
	Features          AudioFeatures
	Themes            map[string]string
}

// Table is the song dataset with one row per song.
type Table struct {
	Columns      []string
	ThemeColumns []string
	Songs        []Song
}

// ExplodedTable has one row per (song, artist) pair.
type ExplodedTable struct {
	Rows []ExplodedSong
}

// Explode produces the per-artist view of the table. Scalar fields are copied
// from the parent song; a song with N artists yields N rows.
func (t *Table) Explode() *ExplodedTable {
	exploded := &ExplodedTable{}
	for _, song := range t.Songs {
		for _, artist := range song.Artists {
			exploded.Rows = append(exploded.Rows, ExplodedSong{
				Name:              song.Name,
				Artist:            artist,
				Popularity:        song.Popularity,
				PopularityMissing: song.PopularityMissing,
				Features:          song.Features,
				Themes:            song.Themes,
			})
		}
	}
	return exploded
}

// Artists returns the distinct artists in order of first appearance.
func (e *ExplodedTable) Artists() []string {
	seen := make(map[string]bool)
	var artists []string
	for _, row := range e.Rows {
		if seen[row.Artist] {
			continue
		}
		seen[row.Artist] = true
		artists = append(artists, row.Artist)
	}
	return artists
}
