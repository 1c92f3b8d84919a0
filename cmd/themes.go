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

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Lists themes and genres by average popularity",
	Long: `Themes are assigned based on song mood, lyrics and vibe (e.g. Sufi, Romantic, Retro).
A song belongs to a theme when its theme column is non-empty. Songs with zero popularity are ignored.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := printThemes(os.Stdout, currentConfig())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func printThemes(out io.Writer, cfg config.Config) error {
	table, _, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(out, themesAnalysis(table))
	return nil
}

func themesAnalysis(table *dataset.Table) Analysis {
	stats := analysis.ThemePopularity(table)

	a := newAnalysis("Theme", "Songs", "Avg Popularity")
	for _, s := range stats {
		a.add(s.Theme, strconv.Itoa(s.SongCount), formatPopularity(s.AvgPopularity))
	}
	a.summary = fmt.Sprintf("%d of %d theme columns have popular songs", len(stats), len(table.ThemeColumns))
	return a
}
