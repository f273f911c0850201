// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	goruntime "runtime"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	var extended bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "marina %s\n", versionInfo.Version)
			if !extended {
				return
			}
			commit, built := versionInfo.Commit, versionInfo.BuildDate
			if commit == "" {
				commit = "unknown"
			}
			if built == "" {
				built = "unknown"
			}
			fmt.Fprintf(out, "%s %s\n", RenderLabel("Commit"), commit)
			fmt.Fprintf(out, "%s %s\n", RenderLabel("Built"), built)
			fmt.Fprintf(out, "%s %s %s/%s\n", RenderLabel("Go"), goruntime.Version(), goruntime.GOOS, goruntime.GOARCH)
		},
	}

	cmd.Flags().BoolVarP(&extended, "extended", "e", false, "include build details")
	return cmd
}
