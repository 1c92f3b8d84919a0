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
	"bytes"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/ademuri/bollywood-analytics/internal/dataset"
)

type Analysis struct {
	results [][]string
	summary string
}

func newAnalysis(header ...string) Analysis {
	return Analysis{results: [][]string{header}}
}

func (a *Analysis) add(row ...string) {
	a.results = append(a.results, row)
}

func (a Analysis) String() string {
	out := new(bytes.Buffer)
	table := tablewriter.NewWriter(out)
	table.Header(a.results[0])
	for _, row := range a.results[1:] {
		if err := table.Append(row); err != nil {
			return fmt.Sprintf("Error rendering table: %v", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Sprintf("Error rendering table: %v", err)
	}
	if a.summary != "" {
		fmt.Fprintf(out, "%s\n", a.summary)
	}
	return out.String()
}

func formatFeatures(f dataset.AudioFeatures) []string {
	var cells []string
	for _, v := range f.Values() {
		cells = append(cells, formatFeature(v))
	}
	return cells
}

func formatFeature(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatPopularity(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
