// Package analysis computes the aggregate views of the song catalog.
package analysis

import (
	"math"
	"sort"

	"github.com/ademuri/bollywood-analytics/internal/dataset"
)

const (
	// MaxCompareArtists caps how many artists a profile comparison shows.
	MaxCompareArtists = 5
	// DefaultCompareArtists is how many artists are compared when none are chosen.
	DefaultCompareArtists = 3
	// DefaultHeatmapArtists is the number of most frequent artists in a heatmap.
	DefaultHeatmapArtists = 15
)

type artistAccumulator struct {
	artist string
	count  int
	// rated counts the rows with a popularity value; popularity sums them.
	rated      int
	popularity int
	features   dataset.FeatureMean
}

func (a *artistAccumulator) add(row dataset.ExplodedSong) {
	a.count++
	if !row.PopularityMissing {
		a.rated++
		a.popularity += row.Popularity
	}
	a.features.Add(row.Features)
}

func (a *artistAccumulator) avgPopularity() float64 {
	if a.rated == 0 {
		return math.NaN()
	}
	return float64(a.popularity) / float64(a.rated)
}

// groupByArtist accumulates exploded rows per artist, in order of first
// appearance.
func groupByArtist(exploded *dataset.ExplodedTable) []*artistAccumulator {
	index := make(map[string]*artistAccumulator)
	var groups []*artistAccumulator
	for _, row := range exploded.Rows {
		acc, ok := index[row.Artist]
		if !ok {
			acc = &artistAccumulator{artist: row.Artist}
			index[row.Artist] = acc
			groups = append(groups, acc)
		}
		acc.add(row)
	}
	return groups
}

// ArtistStats returns per-artist song counts and mean popularity over the
// exploded view, most popular first. Both count only rows with a popularity
// value; an artist with none has a NaN mean and sorts last. Ties go to the
// artist with more songs, then to the alphabetically first name.
func ArtistStats(exploded *dataset.ExplodedTable) []ArtistStat {
	groups := groupByArtist(exploded)
	stats := make([]ArtistStat, 0, len(groups))
	for _, g := range groups {
		stats = append(stats, ArtistStat{
			Artist:        g.artist,
			SongCount:     g.rated,
			AvgPopularity: g.avgPopularity(),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		iNaN, jNaN := math.IsNaN(stats[i].AvgPopularity), math.IsNaN(stats[j].AvgPopularity)
		if iNaN != jNaN {
			return jNaN
		}
		if !iNaN && stats[i].AvgPopularity != stats[j].AvgPopularity {
			return stats[i].AvgPopularity > stats[j].AvgPopularity
		}
		if stats[i].SongCount != stats[j].SongCount {
			return stats[i].SongCount > stats[j].SongCount
		}
		return stats[i].Artist < stats[j].Artist
	})
	return stats
}

// ArtistProfiles returns the mean audio features of each requested artist, in
// request order. Artists without rows are skipped.
func ArtistProfiles(exploded *dataset.ExplodedTable, artists []string) []ArtistProfile {
	index := make(map[string]*artistAccumulator)
	for _, g := range groupByArtist(exploded) {
		index[g.artist] = g
	}

	var profiles []ArtistProfile
	seen := make(map[string]bool)
	for _, artist := range artists {
		g, ok := index[artist]
		if !ok || seen[artist] {
			continue
		}
		seen[artist] = true
		profiles = append(profiles, ArtistProfile{
			Artist:    artist,
			SongCount: g.count,
			Features:  g.features.Mean(),
		})
	}
	return profiles
}

// DefaultArtists picks the first n distinct artists of the exploded view.
func DefaultArtists(exploded *dataset.ExplodedTable, n int) []string {
	artists := exploded.Artists()
	if len(artists) > n {
		artists = artists[:n]
	}
	return artists
}

// Heatmap returns the feature profile of the n artists with the most rows in
// the exploded view, most frequent first. Equal counts keep first-appearance
// order.
func Heatmap(exploded *dataset.ExplodedTable, n int) []ArtistProfile {
	groups := groupByArtist(exploded)
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].count > groups[j].count
	})
	if n > 0 && len(groups) > n {
		groups = groups[:n]
	}

	profiles := make([]ArtistProfile, 0, len(groups))
	for _, g := range groups {
		profiles = append(profiles, ArtistProfile{
			Artist:    g.artist,
			SongCount: g.count,
			Features:  g.features.Mean(),
		})
	}
	return profiles
}

// ThemePopularity returns the mean popularity of songs tagged with each theme
// column, counting only songs with popularity above zero. Themes without such
// songs are omitted. Most popular first.
func ThemePopularity(table *dataset.Table) []ThemeStat {
	var stats []ThemeStat
	for _, theme := range table.ThemeColumns {
		count, total := 0, 0
		for _, song := range table.Songs {
			if !song.PopularityMissing && song.Popularity > 0 && song.HasTheme(theme) {
				count++
				total += song.Popularity
			}
		}
		if count == 0 {
			continue
		}
		stats = append(stats, ThemeStat{
			Theme:         theme,
			SongCount:     count,
			AvgPopularity: float64(total) / float64(count),
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].AvgPopularity > stats[j].AvgPopularity
	})
	return stats
}

// Summarize builds the catalog report. topArtists limits the artist list; zero
// keeps all of them.
func Summarize(table *dataset.Table, exploded *dataset.ExplodedTable, topArtists int) Summary {
	artists := ArtistStats(exploded)
	summary := Summary{
		Songs:      len(table.Songs),
		ArtistRows: len(exploded.Rows),
		Artists:    len(artists),
		Themes:     ThemePopularity(table),
	}
	if topArtists > 0 && len(artists) > topArtists {
		artists = artists[:topArtists]
	}
	summary.TopArtists = artists
	return summary
}
