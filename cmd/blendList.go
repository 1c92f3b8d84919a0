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
)

var blendListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists saved blends",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := listBlends(os.Stdout, currentConfig())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	blendCmd.AddCommand(blendListCmd)
}

func listBlends(out io.Writer, cfg config.Config) error {
	store, err := openBlends(cfg)
	if err != nil {
		return err
	}
	if store.Len() == 0 {
		fmt.Fprintln(out, "No saved blends")
		return nil
	}

	a := blendAnalysis(store.All()...)
	a.summary = fmt.Sprintf("%d blends", store.Len())
	fmt.Fprint(out, a)
	return nil
}
