package analysis

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/ademuri/bollywood-analytics/internal/dataset"
)

func features(d, e float64) dataset.AudioFeatures {
	return dataset.AudioFeatures{Danceability: d, Energy: e, Valence: 0.5, Acousticness: 0.2, Liveness: 0.1}
}

func setupTestTable() (*dataset.Table, *dataset.ExplodedTable) {
	table := &dataset.Table{
		ThemeColumns: []string{"Romantic", "Sufi", "Retro"},
		Songs: []dataset.Song{
			{Name: "Tum Hi Ho", Artists: []string{"Arijit Singh"}, Popularity: 80, Features: features(0.4, 0.3), Themes: map[string]string{"Romantic": "1"}},
			{Name: "Kesariya", Artists: []string{"Arijit Singh", "Pritam"}, Popularity: 90, Features: features(0.6, 0.5), Themes: map[string]string{"Romantic": "1"}},
			{Name: "Kun Faya Kun", Artists: []string{"A.R. Rahman", "Javed Ali"}, Popularity: 70, Features: features(0.5, 0.45), Themes: map[string]string{"Sufi": "1"}},
			{Name: "Badtameez Dil", Artists: []string{"Pritam"}, Popularity: 60, Features: features(0.8, 0.9)},
			{Name: "Forgotten", Artists: []string{"Unknown"}, Popularity: 0, Features: features(0.2, 0.1), Themes: map[string]string{"Retro": "1"}},
		},
	}
	return table, table.Explode()
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFeatureMeansOverweightsMultiArtistSongs(t *testing.T) {
	table := &dataset.Table{Songs: []dataset.Song{
		{Name: "S1", Artists: []string{"X"}, Features: dataset.AudioFeatures{Danceability: 0.8}},
		{Name: "S2", Artists: []string{"X", "Y"}, Features: dataset.AudioFeatures{Danceability: 0.4}},
	}}

	got, err := FeatureMeans(table.Explode(), []string{"S1", "S2"})
	if err != nil {
		t.Fatalf("FeatureMeans() error: %v", err)
	}

	want := (0.8 + 0.4 + 0.4) / 3
	if !approxEqual(got.Danceability, want) {
		t.Errorf("Danceability = %v, want %v", got.Danceability, want)
	}
	if approxEqual(got.Danceability, 0.6) {
		t.Errorf("Danceability must not be the per-song mean 0.6")
	}
}

func TestFeatureMeansNoMatch(t *testing.T) {
	_, exploded := setupTestTable()
	_, err := FeatureMeans(exploded, []string{"Nope", "Also Nope"})
	if !errors.Is(err, ErrNoSongs) {
		t.Fatalf("FeatureMeans() error = %v, want ErrNoSongs", err)
	}
}

func TestMissingSongs(t *testing.T) {
	_, exploded := setupTestTable()
	got := MissingSongs(exploded, []string{"Kesariya", "Nope"})
	if !reflect.DeepEqual(got, []string{"Nope"}) {
		t.Errorf("MissingSongs() = %v, want [Nope]", got)
	}
}

func TestArtistStats(t *testing.T) {
	_, exploded := setupTestTable()
	stats := ArtistStats(exploded)

	want := []ArtistStat{
		{Artist: "Arijit Singh", SongCount: 2, AvgPopularity: 85},
		{Artist: "Pritam", SongCount: 2, AvgPopularity: 75},
		{Artist: "A.R. Rahman", SongCount: 1, AvgPopularity: 70},
		{Artist: "Javed Ali", SongCount: 1, AvgPopularity: 70},
		{Artist: "Unknown", SongCount: 1, AvgPopularity: 0},
	}
	if !reflect.DeepEqual(stats, want) {
		t.Errorf("ArtistStats() =\n%+v\nwant\n%+v", stats, want)
	}
}

func TestArtistProfiles(t *testing.T) {
	_, exploded := setupTestTable()
	profiles := ArtistProfiles(exploded, []string{"Pritam", "Nobody", "Arijit Singh", "Pritam"})

	if len(profiles) != 2 {
		t.Fatalf("ArtistProfiles() returned %d profiles, want 2", len(profiles))
	}
	if profiles[0].Artist != "Pritam" || profiles[1].Artist != "Arijit Singh" {
		t.Errorf("ArtistProfiles() order = %s, %s", profiles[0].Artist, profiles[1].Artist)
	}
	if !approxEqual(profiles[0].Features.Energy, 0.7) {
		t.Errorf("Pritam energy = %v, want 0.7", profiles[0].Features.Energy)
	}
}

func TestDefaultArtists(t *testing.T) {
	_, exploded := setupTestTable()
	got := DefaultArtists(exploded, DefaultCompareArtists)
	want := []string{"Arijit Singh", "Pritam", "A.R. Rahman"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DefaultArtists() = %v, want %v", got, want)
	}
}

func TestHeatmap(t *testing.T) {
	_, exploded := setupTestTable()
	rows := Heatmap(exploded, 2)

	if len(rows) != 2 {
		t.Fatalf("Heatmap() returned %d rows, want 2", len(rows))
	}
	if rows[0].Artist != "Arijit Singh" || rows[1].Artist != "Pritam" {
		t.Errorf("Heatmap() artists = %s, %s", rows[0].Artist, rows[1].Artist)
	}
	if !approxEqual(rows[0].Features.Danceability, 0.5) {
		t.Errorf("Arijit Singh danceability = %v, want 0.5", rows[0].Features.Danceability)
	}
}

func TestThemePopularity(t *testing.T) {
	table, _ := setupTestTable()
	stats := ThemePopularity(table)

	// Retro only has a zero-popularity song.
	want := []ThemeStat{
		{Theme: "Romantic", SongCount: 2, AvgPopularity: 85},
		{Theme: "Sufi", SongCount: 1, AvgPopularity: 70},
	}
	if !reflect.DeepEqual(stats, want) {
		t.Errorf("ThemePopularity() = %+v, want %+v", stats, want)
	}
}

func TestFilter(t *testing.T) {
	_, exploded := setupTestTable()

	rows := Filter(exploded, DefaultCriteria())
	var names []string
	for _, r := range rows {
		names = append(names, r.Name+"/"+r.Artist)
	}
	want := []string{"Kesariya/Arijit Singh", "Kesariya/Pritam", "Kun Faya Kun/A.R. Rahman", "Kun Faya Kun/Javed Ali", "Badtameez Dil/Pritam"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("Filter(default) = %v, want %v", names, want)
	}

	c := DefaultCriteria()
	c.Artist = "Pritam"
	c.MinEnergy = 0.6
	rows = Filter(exploded, c)
	if len(rows) != 1 || rows[0].Name != "Badtameez Dil" {
		t.Errorf("Filter(Pritam, energy>=0.6) = %+v", rows)
	}

	c.Artist = "Nobody"
	if rows := Filter(exploded, c); len(rows) != 0 {
		t.Errorf("Filter(Nobody) = %+v, want empty", rows)
	}
}

func TestCriteriaValidate(t *testing.T) {
	c := DefaultCriteria()
	if err := c.Validate(); err != nil {
		t.Fatalf("DefaultCriteria().Validate() error: %v", err)
	}
	c.MinPopularity = 101
	if err := c.Validate(); err == nil {
		t.Errorf("Validate() should reject an empty popularity range")
	}
}

func TestSummarize(t *testing.T) {
	table, exploded := setupTestTable()
	s := Summarize(table, exploded, 2)

	if s.Songs != 5 || s.ArtistRows != 7 || s.Artists != 5 {
		t.Errorf("Summarize() counts = %d songs, %d rows, %d artists", s.Songs, s.ArtistRows, s.Artists)
	}
	if len(s.TopArtists) != 2 {
		t.Errorf("Summarize() kept %d top artists, want 2", len(s.TopArtists))
	}
	if len(s.Themes) != 2 {
		t.Errorf("Summarize() has %d themes, want 2", len(s.Themes))
	}
}

func setupMissingValuesTable() (*dataset.Table, *dataset.ExplodedTable) {
	nan := math.NaN()
	table := &dataset.Table{
		ThemeColumns: []string{"Romantic"},
		Songs: []dataset.Song{
			{Name: "Rated", Artists: []string{"A"}, Popularity: 80, Features: features(0.4, 0.6), Themes: map[string]string{"Romantic": "1"}},
			{Name: "Unrated", Artists: []string{"A"}, PopularityMissing: true, Features: features(0.8, 0.8), Themes: map[string]string{"Romantic": "1"}},
			{Name: "Silent", Artists: []string{"B"}, PopularityMissing: true, Features: features(nan, nan)},
			{Name: "NoEnergy", Artists: []string{"C"}, Popularity: 70, Features: features(0.5, nan)},
		},
	}
	return table, table.Explode()
}

func TestArtistStatsSkipsMissingPopularity(t *testing.T) {
	_, exploded := setupMissingValuesTable()
	stats := ArtistStats(exploded)

	if len(stats) != 3 {
		t.Fatalf("ArtistStats() returned %d artists, want 3", len(stats))
	}
	if stats[0].Artist != "A" || stats[0].SongCount != 1 || stats[0].AvgPopularity != 80 {
		t.Errorf("ArtistStats()[0] = %+v, want A with 1 rated song at 80", stats[0])
	}
	if stats[1].Artist != "C" {
		t.Errorf("ArtistStats()[1] = %+v, want C", stats[1])
	}
	if stats[2].Artist != "B" || stats[2].SongCount != 0 || !math.IsNaN(stats[2].AvgPopularity) {
		t.Errorf("ArtistStats()[2] = %+v, want B last with no popularity", stats[2])
	}
}

func TestThemePopularitySkipsMissingPopularity(t *testing.T) {
	table, _ := setupMissingValuesTable()
	stats := ThemePopularity(table)

	want := []ThemeStat{{Theme: "Romantic", SongCount: 1, AvgPopularity: 80}}
	if !reflect.DeepEqual(stats, want) {
		t.Errorf("ThemePopularity() = %+v, want %+v", stats, want)
	}
}

func TestFilterSkipsMissingValues(t *testing.T) {
	_, exploded := setupMissingValuesTable()
	c := Criteria{MinPopularity: 0, MaxPopularity: 100, MinEnergy: 0, MaxEnergy: 1}

	rows := Filter(exploded, c)
	if len(rows) != 1 || rows[0].Name != "Rated" {
		t.Errorf("Filter() = %+v, want only Rated", rows)
	}
}

func TestFeatureMeansSkipsMissingValues(t *testing.T) {
	_, exploded := setupMissingValuesTable()

	got, err := FeatureMeans(exploded, []string{"Rated", "NoEnergy"})
	if err != nil {
		t.Fatalf("FeatureMeans() error: %v", err)
	}
	if !approxEqual(got.Danceability, 0.45) {
		t.Errorf("Danceability = %v, want 0.45", got.Danceability)
	}
	if !approxEqual(got.Energy, 0.6) {
		t.Errorf("Energy = %v, want 0.6 from the one row that has it", got.Energy)
	}

	got, err = FeatureMeans(exploded, []string{"Silent"})
	if err != nil {
		t.Fatalf("FeatureMeans(Silent) error: %v", err)
	}
	if !math.IsNaN(got.Energy) {
		t.Errorf("Energy with no values = %v, want NaN", got.Energy)
	}
}
