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
	"strings"

	"github.com/spf13/cobra"

	"github.com/ademuri/bollywood-analytics/internal/analysis"
	"github.com/ademuri/bollywood-analytics/internal/blend"
	"github.com/ademuri/bollywood-analytics/internal/config"
)

var blendCreateCmd = &cobra.Command{
	Use:   "create <name> <song> <song...>",
	Short: "Creates or replaces a blend from at least two songs",
	Long: `Averages the audio features of the given songs and saves them under name.
An existing blend with the same name is replaced in place.`,
	Args: cobra.MinimumNArgs(1 + blend.MinSongs),
	Run: func(cmd *cobra.Command, args []string) {
		err := createBlend(os.Stdout, currentConfig(), args[0], args[1:])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	blendCmd.AddCommand(blendCreateCmd)
}

func createBlend(out io.Writer, cfg config.Config, name string, songs []string) error {
	_, exploded, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	if missing := analysis.MissingSongs(exploded, songs); len(missing) > 0 {
		return fmt.Errorf("unknown songs: %s", strings.Join(missing, ", "))
	}
	features, err := analysis.FeatureMeans(exploded, songs)
	if err != nil {
		return err
	}

	store, err := openBlends(cfg)
	if err != nil {
		return err
	}
	b, err := store.CreateOrReplace(name, songs, features)
	if err != nil {
		return err
	}

	a := blendAnalysis(b)
	a.summary = fmt.Sprintf("Saved blend %q to %s", b.Name, store.Path())
	fmt.Fprint(out, a)
	return nil
}
