// Package dataset loads the song catalog and derives the per-artist view that
// the analysis and blend features read from.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
)

// ArtistSeparator joins artist names inside the Artists column.
const ArtistSeparator = ", "

var (
	ErrMissingColumn = errors.New("missing required column")
	ErrNotFinite     = errors.New("value is not finite")
)

// DataSourceError reports an unreadable or malformed dataset.
type DataSourceError struct {
	Path string
	Err  error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("data source %q: %v", e.Path, e.Err)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}

// Options controls how columns are interpreted.
type Options struct {
	// ThemeOffset is the index of the first theme/genre column. Zero treats
	// every column that is not a required column as a theme.
	ThemeOffset int
}

var nameColumns = []string{"Name", "song_name"}

const (
	artistsColumn    = "Artists"
	popularityColumn = "Popularity"
)

// Load reads a CSV dataset from path and returns the song table and its
// exploded per-artist view.
func Load(path string, opts Options) (*Table, *ExplodedTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &DataSourceError{Path: path, Err: err}
	}
	defer f.Close()

	table, err := Parse(f, opts)
	if err != nil {
		return nil, nil, &DataSourceError{Path: path, Err: err}
	}
	exploded := table.Explode()
	slog.Debug("loaded dataset", "path", path, "songs", len(table.Songs), "artist_rows", len(exploded.Rows))
	return table, exploded, nil
}

type columnIndex struct {
	name       int
	artists    int
	popularity int
	features   []int
	themes     []int
}

// Parse reads CSV records with a header row. Value ranges are not validated.
// Blank or NA number cells load as missing values rather than failing the row.
func Parse(r io.Reader, opts Options) (*Table, error) {
	if opts.ThemeOffset < 0 {
		return nil, fmt.Errorf("negative theme offset %d", opts.ThemeOffset)
	}

	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("reading header: empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	idx, err := indexColumns(header, opts)
	if err != nil {
		return nil, err
	}

	table := &Table{Columns: header}
	for _, i := range idx.themes {
		table.ThemeColumns = append(table.ThemeColumns, header[i])
	}

	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		song, err := parseSong(record, header, idx)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		table.Songs = append(table.Songs, song)
	}

	return table, nil
}

func indexColumns(header []string, opts Options) (columnIndex, error) {
	positions := make(map[string]int, len(header))
	for i, col := range header {
		if _, dup := positions[col]; !dup {
			positions[col] = i
		}
	}

	idx := columnIndex{name: -1}
	for _, col := range nameColumns {
		if i, ok := positions[col]; ok {
			idx.name = i
			break
		}
	}
	if idx.name < 0 {
		return idx, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(nameColumns, " or "))
	}

	var ok bool
	if idx.artists, ok = positions[artistsColumn]; !ok {
		return idx, fmt.Errorf("%w: %s", ErrMissingColumn, artistsColumn)
	}
	if idx.popularity, ok = positions[popularityColumn]; !ok {
		return idx, fmt.Errorf("%w: %s", ErrMissingColumn, popularityColumn)
	}
	for _, feature := range FeatureNames {
		i, ok := positions[feature]
		if !ok {
			return idx, fmt.Errorf("%w: %s", ErrMissingColumn, feature)
		}
		idx.features = append(idx.features, i)
	}

	required := map[int]bool{idx.name: true, idx.artists: true, idx.popularity: true}
	for _, i := range idx.features {
		required[i] = true
	}
	for i := opts.ThemeOffset; i < len(header); i++ {
		if !required[i] {
			idx.themes = append(idx.themes, i)
		}
	}
	return idx, nil
}

func parseSong(record []string, header []string, idx columnIndex) (Song, error) {
	song := Song{
		Name:    record[idx.name],
		Artists: strings.Split(record[idx.artists], ArtistSeparator),
	}

	if isMissing(record[idx.popularity]) {
		song.PopularityMissing = true
	} else {
		popularity, err := parsePopularity(record[idx.popularity])
		if err != nil {
			return song, err
		}
		song.Popularity = popularity
	}

	values := make([]float64, len(idx.features))
	for n, i := range idx.features {
		v, err := parseFeature(record[i])
		if err != nil {
			return song, fmt.Errorf("parsing %s: %w", header[i], err)
		}
		values[n] = v
	}
	song.Features = AudioFeatures{
		Danceability: values[0],
		Energy:       values[1],
		Valence:      values[2],
		Acousticness: values[3],
		Liveness:     values[4],
	}

	for _, i := range idx.themes {
		if record[i] == "" {
			continue
		}
		if song.Themes == nil {
			song.Themes = make(map[string]string)
		}
		song.Themes[header[i]] = record[i]
	}
	return song, nil
}

// missingValues are the cell spellings read as "no value", in addition to a
// blank cell.
var missingValues = map[string]bool{
	"NA": true, "N/A": true, "n/a": true, "NaN": true, "nan": true, "-NaN": true, "-nan": true,
	"null": true, "NULL": true, "None": true, "<NA>": true, "#N/A": true,
}

func isMissing(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || missingValues[s]
}

// parseFeature returns NaN for a missing cell. Infinite values are rejected.
func parseFeature(s string) (float64, error) {
	if isMissing(s) {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrNotFinite, s)
	}
	return v, nil
}

// parsePopularity accepts integers and integral floats such as "65.0".
// Fractional and non-finite values are rejected.
func parsePopularity(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", popularityColumn, err)
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("parsing %s: %w: %q", popularityColumn, ErrNotFinite, s)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("parsing %s: %q is not a whole number", popularityColumn, s)
	}
	return int(f), nil
}
