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

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ademuri/bollywood-analytics/internal/analysis"
	"github.com/ademuri/bollywood-analytics/internal/config"
)

var reportTopArtists int
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generates a YAML summary of the catalog and saved blends",
	Long:  `Summarizes song and artist counts, the most popular artists, theme popularity and every saved blend.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := runReport(os.Stdout, currentConfig(), reportTopArtists)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().IntVarP(&reportTopArtists, "artists", "n", 10, "Number of top artists to include (0 for all)")
}

func runReport(out io.Writer, cfg config.Config, topArtists int) error {
	table, exploded, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	blends, err := openBlends(cfg)
	if err != nil {
		return err
	}

	summary := analysis.Summarize(table, exploded, topArtists)
	for _, b := range blends.All() {
		summary.Blends = append(summary.Blends, analysis.BlendOverview{
			Name:     b.Name,
			Songs:    b.Songs,
			Features: b.Features,
		})
	}

	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(summary); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return encoder.Close()
}
