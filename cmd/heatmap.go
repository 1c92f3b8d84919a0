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

var heatmapNumber int
var heatmapCmd = &cobra.Command{
	Use:   "heatmap",
	Short: "Shows the audio features of the most prolific artists",
	Long:  `Takes the artists credited on the most songs and averages their audio features.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := printHeatmap(os.Stdout, currentConfig(), heatmapNumber)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(heatmapCmd)

	heatmapCmd.Flags().IntVarP(&heatmapNumber, "number", "n", analysis.DefaultHeatmapArtists, "number of artists to include")
}

func printHeatmap(out io.Writer, cfg config.Config, n int) error {
	if n < 1 {
		return fmt.Errorf("number must be positive: %d", n)
	}
	_, exploded, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(out, heatmapAnalysis(exploded, n))
	return nil
}

func heatmapAnalysis(exploded *dataset.ExplodedTable, n int) Analysis {
	a := newAnalysis(append([]string{"Artist", "Songs"}, dataset.FeatureNames...)...)
	for _, p := range analysis.Heatmap(exploded, n) {
		a.add(append([]string{p.Artist, strconv.Itoa(p.SongCount)}, formatFeatures(p.Features)...)...)
	}
	return a
}
