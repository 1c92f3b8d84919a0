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

var artistStatsNumber int
var artistStatsCmd = &cobra.Command{
	Use:   "artist-stats",
	Short: "Lists artists by average popularity",
	Long:  `Counts each artist's songs and averages their popularity. Songs credited to several artists count once per artist.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := printArtistStats(os.Stdout, currentConfig(), artistStatsNumber)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(artistStatsCmd)

	artistStatsCmd.Flags().IntVarP(&artistStatsNumber, "number", "n", 0, "number of results to return (0 for all)")
}

func printArtistStats(out io.Writer, cfg config.Config, numToReturn int) error {
	_, exploded, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(out, artistStatsAnalysis(exploded, numToReturn))
	return nil
}

func artistStatsAnalysis(exploded *dataset.ExplodedTable, numToReturn int) Analysis {
	stats := analysis.ArtistStats(exploded)

	a := newAnalysis("Artist", "Song Count", "Avg Popularity")
	for i, s := range stats {
		if numToReturn > 0 && i >= numToReturn {
			break
		}
		a.add(s.Artist, strconv.Itoa(s.SongCount), formatPopularity(s.AvgPopularity))
	}
	a.summary = fmt.Sprintf("Found %d artists across %d artist credits", len(stats), len(exploded.Rows))
	return a
}
