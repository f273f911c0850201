// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/PrathameshUpreti/Marina/internal/app"
	"github.com/PrathameshUpreti/Marina/internal/ui/chat"
	"github.com/PrathameshUpreti/Marina/internal/ui/styles"
)

// Version info set by the main package.
var versionInfo = struct {
	Version   string
	Commit    string
	BuildDate string
}{Version: "dev"}

// SetVersionInfo is called by the main package to set version information.
func SetVersionInfo(version, commit, buildDate string) {
	if version != "" {
		versionInfo.Version = version
	}
	versionInfo.Commit = commit
	versionInfo.BuildDate = buildDate
}

// rootOptions are the persistent flags shared by every command.
type rootOptions struct {
	configPath  string
	backendURL  string
	mode        string
	modelID     string
	theme       string
	skipLanding bool
	logLevel    string
}

// NewRootCommand builds the marina command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "marina",
		Short: "Marina AI research assistant for the terminal",
		Long: `Marina AI is a research assistant for the terminal.

Run without arguments to open the chat UI. Quick Search answers questions
directly; Deep Research produces longer, structured analyses.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			lipgloss.SetColorProfile(ColorProfile(cmd.OutOrStdout()))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file (default ~/.marina/config.toml)")
	pf.StringVar(&opts.backendURL, "backend", "", "backend origin, e.g. http://localhost:5000")
	pf.StringVar(&opts.mode, "mode", "", "search mode: search or research")
	pf.StringVar(&opts.modelID, "model", "", "model id, e.g. gpt3.5, bedrock, openrouter")
	pf.StringVar(&opts.theme, "theme", "", "color theme: dark, light or auto")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	cmd.Flags().BoolVar(&opts.skipLanding, "skip-landing", false, "open the chat directly, even on first run")

	cmd.AddCommand(
		newAskCmd(opts),
		newChatCmd(opts),
		newModelsCmd(opts),
		newLandingCmd(opts),
		newConfigCmd(opts),
		newDoctorCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := NewRootCommand().ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error:"), exitErr.Err)
		}
		return exitErr.Code
	}
	fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error:"), err)
	return 1
}

// =============================================================================
// TUI
// =============================================================================

func runTUI(cmd *cobra.Command, opts *rootOptions) error {
	rt, err := loadRuntime(cmd, opts, logToFile)
	if err != nil {
		return err
	}
	defer rt.Close()

	store := rt.openStore()
	var visited app.VisitedStore
	if store != nil {
		visited = store
	}

	m := app.New(app.Options{
		Chat: chat.Options{
			Dispatcher:     rt.client,
			Theme:          styles.NewTheme(rt.cfg.UI.Theme),
			Mode:           rt.cfg.Chat.Mode(),
			ModelID:        rt.cfg.Chat.DefaultModel,
			ExportDir:      rt.cfg.UI.ExportDir,
			ShowTimestamps: rt.cfg.UI.ShowTimestamps,
			Logger:         rt.logger,
			Context:        cmd.Context(),
		},
		Store:       visited,
		SkipLanding: rt.cfg.UI.SkipLanding,
		Logger:      rt.logger,
	})

	rt.logger.Info("tui starting",
		zap.String("backend", rt.client.BaseURL()),
		zap.String("version", versionInfo.Version))
	return app.Run(cmd.Context(), m)
}
