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

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ademuri/bollywood-analytics/internal/config"
	"github.com/ademuri/bollywood-analytics/internal/store"
)

var exportDbCmd = &cobra.Command{
	Use:   "export-db <path>",
	Short: "Exports the catalog to a SQLite database",
	Long: `Writes songs, artists and themes to the Song, Artist, SongArtist, Theme and
SongTheme tables. Any previous export in the same database is replaced.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := exportDb(os.Stdout, os.Stderr, currentConfig(), args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportDbCmd)
}

func exportDb(out io.Writer, progressOut io.Writer, cfg config.Config, dbPath string) error {
	table, _, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	db, err := store.New(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	bar := progressbar.NewOptions(len(table.Songs),
		progressbar.OptionSetWriter(progressOut),
		progressbar.OptionSetDescription("Exporting songs"),
		progressbar.OptionShowCount(),
	)
	err = db.ReplaceCatalog(table, func() {
		_ = bar.Add(1)
	})
	if err != nil {
		return fmt.Errorf("exporting catalog: %w", err)
	}
	_ = bar.Finish()
	fmt.Fprintln(progressOut)

	songs, err := db.CountSongs()
	if err != nil {
		return err
	}
	credits, err := db.CountArtistRows()
	if err != nil {
		return err
	}

	top, err := db.GetTopArtists(5)
	if err != nil {
		return err
	}
	a := newAnalysis("Artist", "Song Count", "Avg Popularity")
	for _, t := range top {
		a.add(t.Artist, strconv.FormatInt(t.SongCount, 10), formatPopularity(t.AvgPopularity))
	}
	a.summary = fmt.Sprintf("Exported %d songs and %d artist credits to %s", songs, credits, dbPath)
	fmt.Fprint(out, a)

	themes, err := exportedThemesAnalysis(db, table.ThemeColumns)
	if err != nil {
		return err
	}
	fmt.Fprint(out, themes)
	return nil
}

// exportedThemesAnalysis counts the exported songs tagged with each theme.
func exportedThemesAnalysis(db *store.Store, themes []string) (Analysis, error) {
	a := newAnalysis("Theme", "Songs")
	for _, theme := range themes {
		songs, err := db.GetSongsWithTheme(theme)
		if err != nil {
			return Analysis{}, err
		}
		a.add(theme, strconv.Itoa(len(songs)))
	}
	return a, nil
}
