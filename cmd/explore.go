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

	"github.com/spf13/cobra"

	"github.com/ademuri/bollywood-analytics/internal/analysis"
	"github.com/ademuri/bollywood-analytics/internal/config"
	"github.com/ademuri/bollywood-analytics/internal/dataset"
)

var (
	exploreArtist     string
	explorePopularity []int
	exploreEnergy     []float64
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Filters songs by artist, popularity and intensity",
	Long: `Lists songs whose popularity and energy fall within the given inclusive ranges.

  Intensity (energy): how powerful and active the song sounds. High = loud, fast, strong beats.
  Dance Score (danceability): how suitable the track is for dancing. High = steady rhythm and beat.
  Mood Score (valence): the positivity of a track. High = cheerful; low = sad or serious.
  Popularity: Spotify's internal score (0-100) based on plays and recency.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		criteria, err := exploreCriteria(exploreArtist, explorePopularity, exploreEnergy)
		if err == nil {
			err = printExplore(os.Stdout, currentConfig(), criteria)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(exploreCmd)

	defaults := analysis.DefaultCriteria()
	exploreCmd.Flags().StringVarP(&exploreArtist, "artist", "a", "", "Only songs credited to this artist")
	exploreCmd.Flags().IntSliceVar(&explorePopularity, "popularity",
		[]int{defaults.MinPopularity, defaults.MaxPopularity}, "Popularity range as min,max")
	exploreCmd.Flags().Float64SliceVar(&exploreEnergy, "energy",
		[]float64{defaults.MinEnergy, defaults.MaxEnergy}, "Intensity (energy) range as min,max")
}

func exploreCriteria(artist string, popularity []int, energy []float64) (analysis.Criteria, error) {
	if len(popularity) != 2 {
		return analysis.Criteria{}, fmt.Errorf("--popularity takes min,max; got %v", popularity)
	}
	if len(energy) != 2 {
		return analysis.Criteria{}, fmt.Errorf("--energy takes min,max; got %v", energy)
	}
	c := analysis.Criteria{
		Artist:        artist,
		MinPopularity: popularity[0],
		MaxPopularity: popularity[1],
		MinEnergy:     energy[0],
		MaxEnergy:     energy[1],
	}
	return c, c.Validate()
}

func printExplore(out io.Writer, cfg config.Config, criteria analysis.Criteria) error {
	_, exploded, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(out, exploreAnalysis(exploded, criteria))
	return nil
}

func exploreAnalysis(exploded *dataset.ExplodedTable, criteria analysis.Criteria) Analysis {
	rows := analysis.Filter(exploded, criteria)

	a := newAnalysis("Name", "Artists", "Popularity", "Intensity", "Dance Score", "Mood Score")
	for _, r := range rows {
		a.add(r.Name, r.Artist, strconv.Itoa(r.Popularity),
			formatFeature(r.Features.Energy), formatFeature(r.Features.Danceability), formatFeature(r.Features.Valence))
	}
	a.summary = fmt.Sprintf("Found %d matching songs", len(rows))
	return a
}
