package analysis

import "github.com/ademuri/bollywood-analytics/internal/dataset"

// Summary is the top-level structure of the catalog report.
type Summary struct {
	Songs      int             `yaml:"songs"`
	ArtistRows int             `yaml:"artist_rows"`
	Artists    int             `yaml:"artists"`
	TopArtists []ArtistStat    `yaml:"top_artists"`
	Themes     []ThemeStat     `yaml:"themes"`
	Blends     []BlendOverview `yaml:"blends,omitempty"`
}

type ArtistStat struct {
	Artist        string  `yaml:"artist"`
	SongCount     int     `yaml:"song_count"`
	AvgPopularity float64 `yaml:"avg_popularity"`
}

type ArtistProfile struct {
	Artist    string                `yaml:"artist"`
	SongCount int                   `yaml:"song_count"`
	Features  dataset.AudioFeatures `yaml:"features"`
}

type ThemeStat struct {
	Theme         string  `yaml:"theme"`
	SongCount     int     `yaml:"song_count"`
	AvgPopularity float64 `yaml:"avg_popularity"`
}

type BlendOverview struct {
	Name     string                `yaml:"name"`
	Songs    []string              `yaml:"songs"`
	Features dataset.AudioFeatures `yaml:"features"`
}
