// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/PrathameshUpreti/Marina/internal/backend"
	"github.com/PrathameshUpreti/Marina/internal/config"
	"github.com/PrathameshUpreti/Marina/internal/logging"
	"github.com/PrathameshUpreti/Marina/internal/model"
	"github.com/PrathameshUpreti/Marina/internal/storage"
)

// logTarget selects where a command's logs go.
type logTarget int

const (
	// logToFile writes JSON logs to the rotated log file (TUI)
	logToFile logTarget = iota

	// logToConsole writes warnings to stderr (line-mode commands)
	logToConsole
)

// runtime bundles what a command needs after flags are parsed.
type runtime struct {
	cfg      *config.Config
	logger   *zap.Logger
	client   *backend.Client
	closeLog func() error
	store    *storage.PrefStore
}

// loadRuntime loads the config, applies flag overrides and builds the
// logger and backend client.
func loadRuntime(cmd *cobra.Command, opts *rootOptions, target logTarget) (*runtime, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %v (using defaults)\n", WarningStyle.Render("Warning:"), err)
		cfg = config.Default()
		cfg.SetDefaults()
	}
	if err := applyFlags(cfg, opts); err != nil {
		return nil, err
	}
	config.SetGlobal(cfg)

	rt := &runtime{cfg: cfg, closeLog: func() error { return nil }}
	switch target {
	case logToFile:
		logger, closeFn, err := logging.New(logging.Options{
			Level:      cfg.Logging.Level,
			File:       cfg.Logging.File,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
		})
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), WarningStyle.Render("Warning:"), err)
			logger, closeFn = zap.NewNop(), func() error { return nil }
		}
		rt.logger, rt.closeLog = logger, closeFn
	default:
		rt.logger = logging.NewConsole(logging.ParseLevel(cfg.Logging.Level) <= zap.DebugLevel)
	}

	userAgent := cfg.Backend.UserAgent
	if userAgent == "" {
		userAgent = "marina/" + versionInfo.Version
	}
	rt.client = backend.NewClientWithConfig(&backend.ClientConfig{
		BaseURL:   cfg.Backend.URL,
		Timeout:   cfg.Backend.Timeout(),
		UserAgent: userAgent,
		Logger:    rt.logger,
	})
	return rt, nil
}

// openStore opens the preference store. Failures are logged and yield nil;
// the caller then behaves as if nothing was ever stored.
func (rt *runtime) openStore() *storage.PrefStore {
	if rt.store != nil {
		return rt.store
	}
	store, err := storage.Open(rt.cfg.Storage.StatePath)
	if err != nil {
		rt.logger.Error("preference store unavailable",
			zap.String("path", rt.cfg.Storage.StatePath),
			zap.Error(err))
		return nil
	}
	rt.store = store
	return store
}

// Close releases the store and flushes the logger.
func (rt *runtime) Close() {
	if rt.store != nil {
		_ = rt.store.Close()
	}
	_ = rt.logger.Sync()
	_ = rt.closeLog()
}

// =============================================================================
// CONFIG LOADING
// =============================================================================

func configPath(opts *rootOptions) (string, error) {
	if opts.configPath != "" {
		return opts.configPath, nil
	}
	return config.ConfigPath()
}

func loadConfig(opts *rootOptions) (*config.Config, error) {
	path, err := configPath(opts)
	if err != nil {
		return nil, err
	}
	return config.LoadFromPath(path)
}

// applyFlags overrides config values with explicitly set flags.
func applyFlags(cfg *config.Config, opts *rootOptions) error {
	if opts.backendURL != "" {
		cfg.Backend.URL = opts.backendURL
	}
	if opts.mode != "" {
		mode, err := model.ParseSearchMode(opts.mode)
		if err != nil {
			return err
		}
		cfg.Chat.DefaultMode = string(mode)
	}
	if opts.modelID != "" {
		cfg.Chat.DefaultModel = opts.modelID
	}
	if opts.theme != "" {
		cfg.UI.Theme = opts.theme
	}
	if opts.skipLanding {
		cfg.UI.SkipLanding = true
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	return cfg.Validate()
}
