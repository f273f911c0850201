// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PrathameshUpreti/Marina/internal/model"
)

// isolate points the config directory at a temp dir and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("MARINA_HOME", dir)
	for _, k := range []string{
		"MARINA_BACKEND_URL", "MARINA_BACKEND_TIMEOUT", "MARINA_MODE", "MARINA_MODEL",
		"MARINA_THEME", "MARINA_SKIP_LANDING", "MARINA_STATE_PATH", "MARINA_LOG_LEVEL", "MARINA_LOG_FILE",
	} {
		t.Setenv(k, "")
	}
	return dir
}

func TestDefault_Validates(t *testing.T) {
	isolate(t)
	cfg := Default()
	cfg.SetDefaults()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "http://localhost:5000", cfg.Backend.URL)
	assert.Equal(t, "search", cfg.Chat.DefaultMode)
	assert.Equal(t, "gpt3.5", cfg.Chat.DefaultModel)
	assert.Equal(t, "auto", cfg.UI.Theme)
	assert.Zero(t, cfg.Backend.Timeout())
}

func TestSetDefaults_FillsPaths(t *testing.T) {
	dir := isolate(t)
	cfg := Default()
	cfg.SetDefaults()
	assert.Equal(t, filepath.Join(dir, "state.db"), cfg.Storage.StatePath)
	assert.Equal(t, filepath.Join(dir, "marina.log"), cfg.Logging.File)
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultBackendURL, cfg.Backend.URL)
}

func TestLoadFromPath_TOML(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.toml")
	content := `
[backend]
url = "https://marina.example.com"
timeout_secs = 90

[chat]
default_mode = "research"
default_model = "gpt3.5"

[ui]
theme = "light"
skip_landing = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "https://marina.example.com", cfg.Backend.URL)
	assert.Equal(t, 90, cfg.Backend.TimeoutSecs)
	assert.Equal(t, model.ModeResearch, cfg.Chat.Mode())
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.True(t, cfg.UI.SkipLanding)
	// Unset sections keep defaults.
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromPath_UnknownKey(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[backend]\nurll = \"x\"\n"), 0600))

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend.urll")
}

func TestLoadFromPath_Invalid(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[chat]\ndefault_mode = \"browse\"\n"), 0600))

	_, err := LoadFromPath(path)
	require.Error(t, err)

	var verrs ValidateErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 1)
	assert.Equal(t, "chat.default_mode", verrs[0].Field)
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("MARINA_BACKEND_URL", "http://10.0.0.5:5000")
	t.Setenv("MARINA_MODE", "research")
	t.Setenv("MARINA_MODEL", "bedrock")
	t.Setenv("MARINA_THEME", "dark")
	t.Setenv("MARINA_SKIP_LANDING", "yes")
	t.Setenv("MARINA_LOG_LEVEL", "debug")
	t.Setenv("MARINA_BACKEND_TIMEOUT", "30")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.5:5000", cfg.Backend.URL)
	assert.Equal(t, "research", cfg.Chat.DefaultMode)
	assert.Equal(t, "bedrock", cfg.Chat.DefaultModel)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.True(t, cfg.UI.SkipLanding)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 30, cfg.Backend.TimeoutSecs)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"bad scheme", func(c *Config) { c.Backend.URL = "ftp://host" }, "backend.url"},
		{"no host", func(c *Config) { c.Backend.URL = "http://" }, "backend.url"},
		{"negative timeout", func(c *Config) { c.Backend.TimeoutSecs = -1 }, "backend.timeout_secs"},
		{"bad mode", func(c *Config) { c.Chat.DefaultMode = "browse" }, "chat.default_mode"},
		{"unknown model", func(c *Config) { c.Chat.DefaultModel = "gpt-4o" }, "chat.default_model"},
		{"bad theme", func(c *Config) { c.UI.Theme = "neon" }, "ui.theme"},
		{"bad level", func(c *Config) { c.Logging.Level = "trace" }, "logging.level"},
		{"negative backups", func(c *Config) { c.Logging.MaxBackups = -2 }, "logging.max_backups"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			var verrs ValidateErrors
			require.True(t, errors.As(err, &verrs))
			assert.Equal(t, tt.field, verrs[0].Field)
		})
	}
}

func TestValidate_ModelFromOtherModeIsAccepted(t *testing.T) {
	cfg := Default()
	cfg.Chat.DefaultMode = "research"
	cfg.Chat.DefaultModel = "bedrock"
	assert.NoError(t, cfg.Validate())
}

func TestValidateErrors_Joined(t *testing.T) {
	errs := ValidateErrors{{"a", "one"}, {"b", "two"}}
	assert.Equal(t, "a: one; b: two", errs.Error())
}

func TestGetSet(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Set("ui.theme", "dark"))
	require.NoError(t, cfg.Set("backend.timeout_secs", "45"))
	require.NoError(t, cfg.Set("ui.skip_landing", "true"))
	require.NoError(t, cfg.Set("storage.state_path", "/tmp/x.db"))

	v, err := cfg.Get("ui.theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", v)
	assert.Equal(t, 45, cfg.Backend.TimeoutSecs)
	assert.True(t, cfg.UI.SkipLanding)
	assert.Equal(t, "/tmp/x.db", cfg.Storage.StatePath)

	_, err = cfg.Get("ui.nope")
	assert.Error(t, err)
	_, err = cfg.Get("ui")
	assert.Error(t, err)
	assert.Error(t, cfg.Set("backend.timeout_secs", "soon"))
	assert.Error(t, cfg.Set("", "x"))
}

func TestGetAllKeys_Resolve(t *testing.T) {
	cfg := Default()
	for _, key := range GetAllKeys() {
		_, err := cfg.Get(key)
		assert.NoError(t, err, key)
	}
}

func TestSaveTOML_RoundTrip(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "sub", "config.toml")

	cfg := Default()
	cfg.Backend.URL = "http://backend:8080"
	cfg.UI.Theme = "dark"
	require.NoError(t, SaveTOML(cfg, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	if os.PathSeparator == '/' {
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	}

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "http://backend:8080", loaded.Backend.URL)
	assert.Equal(t, "dark", loaded.UI.Theme)
}

func TestString_IsTOML(t *testing.T) {
	out := Default().String()
	assert.True(t, strings.Contains(out, "[backend]"))
	assert.True(t, strings.Contains(out, `url = "http://localhost:5000"`))
}

func TestClone(t *testing.T) {
	cfg := Default()
	clone := cfg.Clone()
	clone.UI.Theme = "light"
	assert.Equal(t, "auto", cfg.UI.Theme)
}

// Global, SetGlobal and ReloadGlobal are safe to call concurrently.
func TestConfig_ConcurrentAccess(t *testing.T) {
	isolate(t)
	ResetGlobalForTesting()
	defer ResetGlobalForTesting()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			SetGlobal(Default())
		}()
		go func() {
			defer wg.Done()
			if Global() == nil {
				t.Error("Global() returned nil")
			}
		}()
		go func() {
			defer wg.Done()
			_ = ReloadGlobal()
		}()
	}
	wg.Wait()
}

func TestGlobal_BrokenFileFallsBack(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not = [valid"), 0600))
	ResetGlobalForTesting()
	defer ResetGlobalForTesting()

	cfg := Global()
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultBackendURL, cfg.Backend.URL)
}
