// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PrathameshUpreti/Marina/internal/storage"
)

var errStoreUnavailable = errors.New("preference store unavailable")

func newLandingCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "landing",
		Short: "Inspect or reset the first-run landing screen",
		Long: `The landing screen is shown until it has been dismissed once.

  marina landing status   show whether it was dismissed
  marina landing reset    show it again on the next start`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show whether the landing screen was dismissed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := loadRuntime(cmd, root, logToConsole)
			if err != nil {
				return err
			}
			defer rt.Close()

			store := rt.openStore()
			if store == nil {
				return errStoreUnavailable
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", RenderLabel("State file"), store.Path())
			at, ok, err := store.UpdatedAt(cmd.Context(), storage.KeyVisited)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintf(out, "%s %s\n", RenderLabel("Landing"), WarningStyle.Render("not visited"))
				return nil
			}
			fmt.Fprintf(out, "%s %s %s\n", RenderLabel("Landing"),
				SuccessStyle.Render("visited"),
				DimStyle.Render("since "+at.Local().Format("2006-01-02 15:04")))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Show the landing screen again on the next start",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := loadRuntime(cmd, root, logToConsole)
			if err != nil {
				return err
			}
			defer rt.Close()

			store := rt.openStore()
			if store == nil {
				return errStoreUnavailable
			}
			if err := store.ResetVisited(cmd.Context()); err != nil {
				return fmt.Errorf("reset landing flag: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("Landing screen will show on the next start."))
			return nil
		},
	})

	return cmd
}
