package analysis

import (
	"errors"
	"fmt"

	"github.com/ademuri/bollywood-analytics/internal/dataset"
)

var ErrNoSongs = errors.New("no matching songs")

// Criteria selects exploded rows. Both ranges are inclusive; an empty Artist
// matches every artist.
type Criteria struct {
	Artist        string
	MinPopularity int
	MaxPopularity int
	MinEnergy     float64
	MaxEnergy     float64
}

// DefaultCriteria matches popular, energetic songs by any artist.
func DefaultCriteria() Criteria {
	return Criteria{
		MinPopularity: 50,
		MaxPopularity: 100,
		MinEnergy:     0.4,
		MaxEnergy:     1.0,
	}
}

func (c Criteria) Validate() error {
	if c.MinPopularity > c.MaxPopularity {
		return fmt.Errorf("popularity range %d..%d is empty", c.MinPopularity, c.MaxPopularity)
	}
	if c.MinEnergy > c.MaxEnergy {
		return fmt.Errorf("energy range %g..%g is empty", c.MinEnergy, c.MaxEnergy)
	}
	return nil
}

func (c Criteria) Match(row dataset.ExplodedSong) bool {
	if c.Artist != "" && row.Artist != c.Artist {
		return false
	}
	// A missing popularity never falls in range; a missing (NaN) energy fails
	// both comparisons.
	if row.PopularityMissing {
		return false
	}
	return row.Popularity >= c.MinPopularity && row.Popularity <= c.MaxPopularity &&
		row.Features.Energy >= c.MinEnergy && row.Features.Energy <= c.MaxEnergy
}

// Filter returns the rows matching c. No match is an empty result, not an
// error.
func Filter(exploded *dataset.ExplodedTable, c Criteria) []dataset.ExplodedSong {
	var rows []dataset.ExplodedSong
	for _, row := range exploded.Rows {
		if c.Match(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

// FeatureMeans averages the audio features of every exploded row whose song
// is in songs. A song credited to N artists contributes N rows, so it weighs
// N times as much as a single-artist song. Missing values are skipped per
// feature.
func FeatureMeans(exploded *dataset.ExplodedTable, songs []string) (dataset.AudioFeatures, error) {
	wanted := make(map[string]bool, len(songs))
	for _, s := range songs {
		wanted[s] = true
	}

	var mean dataset.FeatureMean
	n := 0
	for _, row := range exploded.Rows {
		if wanted[row.Name] {
			mean.Add(row.Features)
			n++
		}
	}
	if n == 0 {
		return dataset.AudioFeatures{}, ErrNoSongs
	}
	return mean.Mean(), nil
}

// MissingSongs returns the requested songs that have no row in the catalog.
func MissingSongs(exploded *dataset.ExplodedTable, songs []string) []string {
	known := make(map[string]bool)
	for _, row := range exploded.Rows {
		known[row.Name] = true
	}
	var missing []string
	for _, s := range songs {
		if !known[s] {
			missing = append(missing, s)
		}
	}
	return missing
}
