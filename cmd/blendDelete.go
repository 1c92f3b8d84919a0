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

var blendDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Deletes a blend",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := deleteBlend(os.Stdout, currentConfig(), args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	blendCmd.AddCommand(blendDeleteCmd)
}

func deleteBlend(out io.Writer, cfg config.Config, name string) error {
	store, err := openBlends(cfg)
	if err != nil {
		return err
	}
	if err := store.Delete(name); err != nil {
		return err
	}
	fmt.Fprintf(out, "Deleted blend %q\n", name)
	return nil
}
