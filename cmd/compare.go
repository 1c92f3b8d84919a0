/*
Copyright 2026 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ademuri/bollywood-analytics/internal/analysis"
	"github.com/ademuri/bollywood-analytics/internal/config"
	"github.com/ademuri/bollywood-analytics/internal/dataset"
)

var compareCmd = &cobra.Command{
	Use:   "compare [artist...]",
	Short: "Compares the audio feature profiles of artists",
	Long: fmt.Sprintf(`Averages danceability, energy, valence, acousticness and liveness per artist.
Up to %d artists can be given; without arguments the first %d artists in the catalog are compared.`,
		analysis.MaxCompareArtists, analysis.DefaultCompareArtists),
	Args: cobra.MaximumNArgs(analysis.MaxCompareArtists),
	Run: func(cmd *cobra.Command, args []string) {
		err := printCompare(os.Stdout, currentConfig(), args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func printCompare(out io.Writer, cfg config.Config, artists []string) error {
	_, exploded, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	a, err := compareAnalysis(exploded, artists)
	if err != nil {
		return err
	}
	fmt.Fprint(out, a)
	return nil
}

func compareAnalysis(exploded *dataset.ExplodedTable, artists []string) (Analysis, error) {
	if len(artists) > analysis.MaxCompareArtists {
		return Analysis{}, fmt.Errorf("at most %d artists can be compared, got %d", analysis.MaxCompareArtists, len(artists))
	}
	if len(artists) == 0 {
		artists = analysis.DefaultArtists(exploded, analysis.DefaultCompareArtists)
	}

	profiles := analysis.ArtistProfiles(exploded, artists)
	if len(profiles) == 0 {
		return Analysis{}, fmt.Errorf("no songs found for %s", strings.Join(artists, ", "))
	}

	a := newAnalysis(append([]string{"Artist", "Songs"}, dataset.FeatureNames...)...)
	found := make(map[string]bool)
	for _, p := range profiles {
		a.add(append([]string{p.Artist, strconv.Itoa(p.SongCount)}, formatFeatures(p.Features)...)...)
		found[p.Artist] = true
	}

	var missing []string
	for _, artist := range artists {
		if !found[artist] {
			missing = append(missing, artist)
		}
	}
	if len(missing) > 0 {
		a.summary = fmt.Sprintf("No songs found for: %s", strings.Join(missing, ", "))
	}
	return a, nil
}
