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

	"github.com/ademuri/bollywood-analytics/internal/config"
	"github.com/ademuri/bollywood-analytics/internal/dataset"
)

var blendShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Shows the songs and audio profile of a blend",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := showBlend(os.Stdout, currentConfig(), args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	blendCmd.AddCommand(blendShowCmd)
}

func showBlend(out io.Writer, cfg config.Config, name string) error {
	store, err := openBlends(cfg)
	if err != nil {
		return err
	}
	b, err := store.Get(name)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Blend: %s\n", b.Name)
	songs := newAnalysis("Song")
	for _, s := range b.Songs {
		songs.add(s)
	}
	fmt.Fprint(out, songs)

	features := newAnalysis("Feature", "Mean")
	for i, v := range b.Features.Values() {
		features.add(dataset.FeatureNames[i], formatFeature(v))
	}
	fmt.Fprint(out, features)
	return nil
}
