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
	"strings"

	"github.com/spf13/cobra"

	"github.com/ademuri/bollywood-analytics/internal/blend"
	"github.com/ademuri/bollywood-analytics/internal/dataset"
)

// blendCmd groups the commands that manage saved blends.
var blendCmd = &cobra.Command{
	Use:   "blend",
	Short: "Manages saved song blends",
	Long: `A blend is a named set of songs together with the average of their audio
features. Blends are saved to the JSON document given by --blends.`,
}

func init() {
	rootCmd.AddCommand(blendCmd)
}

func blendAnalysis(blends ...blend.Blend) Analysis {
	a := newAnalysis(append([]string{"Name", "Songs"}, dataset.FeatureNames...)...)
	for _, b := range blends {
		a.add(append([]string{b.Name, strings.Join(b.Songs, "; ")}, formatFeatures(b.Features)...)...)
	}
	return a
}
