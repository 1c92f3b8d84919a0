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

var blendRenameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Renames a blend",
	Long:  `Renames a blend. If a blend named <new> already exists it is overwritten.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		err := renameBlend(os.Stdout, currentConfig(), args[0], args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	blendCmd.AddCommand(blendRenameCmd)
}

func renameBlend(out io.Writer, cfg config.Config, oldName, newName string) error {
	store, err := openBlends(cfg)
	if err != nil {
		return err
	}
	b, err := store.Rename(oldName, newName)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Renamed blend %q to %q\n", oldName, b.Name)
	return nil
}
