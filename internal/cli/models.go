// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/PrathameshUpreti/Marina/internal/model"
)

type modelRow struct {
	Mode        string `json:"mode"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Default     bool   `json:"default"`
}

func newModelsCmd(root *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List the models offered by each search mode",
		Long: `List the model roster. The first model of each mode is the one a
mode switch falls back to. Use --mode to show a single mode.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			modes := model.SearchModes()
			if root.mode != "" {
				mode, err := model.ParseSearchMode(root.mode)
				if err != nil {
					return err
				}
				modes = []model.SearchMode{mode}
			}

			var rows []modelRow
			for _, mode := range modes {
				for i, m := range model.ModelsFor(mode) {
					rows = append(rows, modelRow{
						Mode:        mode.String(),
						ID:          m.ID,
						Name:        m.Name,
						Description: m.Description,
						Default:     i == 0,
					})
				}
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}

			t := table.NewWriter()
			t.SetOutputMirror(out)
			t.SetStyle(table.StyleRounded)
			t.AppendHeader(table.Row{"Mode", "ID", "Name", "Description", "Default"})
			for _, r := range rows {
				def := ""
				if r.Default {
					def = "✓"
				}
				t.AppendRow(table.Row{r.Mode, r.ID, r.Name, r.Description, def})
			}
			t.AppendFooter(table.Row{"", "", "", "Total", fmt.Sprint(len(rows))})
			t.Render()
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}
