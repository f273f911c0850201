// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/PrathameshUpreti/Marina/internal/backend"
	"github.com/PrathameshUpreti/Marina/internal/storage"
)

const pingTimeout = 3 * time.Second

// check is one doctor result row.
type check struct {
	Name   string
	Status string
	Detail string
}

func newDoctorCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the configuration, state store and backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			checks := runChecks(cmd.Context(), root)

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleRounded)
			t.AppendHeader(table.Row{"Check", "Status", "Detail"})
			failed := 0
			for _, c := range checks {
				if c.Status == "fail" {
					failed++
				}
				t.AppendRow(table.Row{c.Name, RenderStatus(c.Status), c.Detail})
			}
			t.Render()

			if failed > 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), ErrorStyle.Render(fmt.Sprintf("%d check(s) failed", failed)))
				return silentExit(1)
			}
			return nil
		},
	}
}

func runChecks(ctx context.Context, root *rootOptions) []check {
	var checks []check

	path, err := configPath(root)
	switch {
	case err != nil:
		checks = append(checks, check{"Config file", "fail", err.Error()})
	default:
		if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
			checks = append(checks, check{"Config file", "warn", path + " not found, using defaults"})
		} else if _, loadErr := loadConfig(root); loadErr != nil {
			checks = append(checks, check{"Config file", "fail", loadErr.Error()})
		} else {
			checks = append(checks, check{"Config file", "ok", path})
		}
	}

	cfg, err := loadConfig(root)
	if err != nil {
		return checks
	}
	if err := applyFlags(cfg, root); err != nil {
		return append(checks, check{"Flags", "fail", err.Error()})
	}

	if store, err := storage.Open(cfg.Storage.StatePath); err != nil {
		checks = append(checks, check{"State store", "fail", err.Error()})
	} else {
		detail := cfg.Storage.StatePath
		if store.HasVisited(ctx) {
			detail += " (landing dismissed)"
		}
		checks = append(checks, check{"State store", "ok", detail})
		store.Close()
	}

	client := backend.NewClientWithConfig(&backend.ClientConfig{
		BaseURL:   cfg.Backend.URL,
		UserAgent: "marina/" + versionInfo.Version,
	})
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx); err != nil {
		checks = append(checks, check{"Backend", "fail", fmt.Sprintf("%s: %v", client.BaseURL(), err)})
	} else {
		checks = append(checks, check{"Backend", "ok", client.BaseURL()})
	}

	return checks
}
