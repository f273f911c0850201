// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/PrathameshUpreti/Marina/internal/model"
	"github.com/PrathameshUpreti/Marina/internal/util"
)

// =============================================================================
// CONFIG TYPES
// =============================================================================

// Config is the main configuration structure.
type Config struct {
	Backend BackendConfig `toml:"backend" json:"backend"`
	Chat    ChatConfig    `toml:"chat" json:"chat"`
	UI      UIConfig      `toml:"ui" json:"ui"`
	Storage StorageConfig `toml:"storage" json:"storage"`
	Logging LoggingConfig `toml:"logging" json:"logging"`
}

// BackendConfig holds the search backend settings.
type BackendConfig struct {
	// URL is the backend origin, without the /search or /reason path
	URL string `toml:"url" json:"url"`

	// TimeoutSecs bounds each request; 0 disables the timeout
	TimeoutSecs int `toml:"timeout_secs" json:"timeout_secs"`

	// UserAgent is sent with each request when set
	UserAgent string `toml:"user_agent,omitempty" json:"user_agent,omitempty"`
}

// Timeout returns TimeoutSecs as a duration.
func (b BackendConfig) Timeout() time.Duration {
	return time.Duration(b.TimeoutSecs) * time.Second
}

// ChatConfig holds the starting selection of a new chat.
type ChatConfig struct {
	DefaultMode  string `toml:"default_mode" json:"default_mode"`
	DefaultModel string `toml:"default_model" json:"default_model"`
}

// Mode returns DefaultMode parsed, or the search mode if it is invalid.
func (c ChatConfig) Mode() model.SearchMode {
	m, err := model.ParseSearchMode(c.DefaultMode)
	if err != nil {
		return model.DefaultMode
	}
	return m
}

// UIConfig holds terminal UI settings.
type UIConfig struct {
	// Theme is dark, light or auto
	Theme string `toml:"theme" json:"theme"`

	ShowTimestamps bool `toml:"show_timestamps" json:"show_timestamps"`

	// SkipLanding starts in chat even on the first run
	SkipLanding bool `toml:"skip_landing" json:"skip_landing"`

	// ExportDir is where transcripts are written
	ExportDir string `toml:"export_dir" json:"export_dir"`
}

// StorageConfig holds local persistence settings.
type StorageConfig struct {
	// StatePath is the preference database; empty means ~/.marina/state.db
	StatePath string `toml:"state_path" json:"state_path"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	// Level is debug, info, warn or error
	Level string `toml:"level" json:"level"`

	// File is the log path; empty means ~/.marina/marina.log
	File string `toml:"file" json:"file"`

	MaxSizeMB  int `toml:"max_size_mb" json:"max_size_mb"`
	MaxBackups int `toml:"max_backups" json:"max_backups"`
	MaxAgeDays int `toml:"max_age_days" json:"max_age_days"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

const (
	DefaultBackendURL = "http://localhost:5000"
	DefaultTheme      = "auto"
	DefaultLogLevel   = "info"
	DefaultMaxSizeMB  = 10
	DefaultMaxBackups = 3
	DefaultMaxAgeDays = 28
)

// Default returns the built-in configuration. Paths under the config
// directory are left empty and filled by SetDefaults.
func Default() *Config {
	return &Config{
		Backend: BackendConfig{
			URL: DefaultBackendURL,
		},
		Chat: ChatConfig{
			DefaultMode:  string(model.DefaultMode),
			DefaultModel: model.DefaultModelID,
		},
		UI: UIConfig{
			Theme:          DefaultTheme,
			ShowTimestamps: true,
			ExportDir:      ".",
		},
		Logging: LoggingConfig{
			Level:      DefaultLogLevel,
			MaxSizeMB:  DefaultMaxSizeMB,
			MaxBackups: DefaultMaxBackups,
			MaxAgeDays: DefaultMaxAgeDays,
		},
	}
}

// SetDefaults fills zero values with defaults.
func (c *Config) SetDefaults() {
	if c.Backend.URL == "" {
		c.Backend.URL = DefaultBackendURL
	}
	if c.Chat.DefaultMode == "" {
		c.Chat.DefaultMode = string(model.DefaultMode)
	}
	if c.Chat.DefaultModel == "" {
		c.Chat.DefaultModel = model.DefaultModelID
	}
	if c.UI.Theme == "" {
		c.UI.Theme = DefaultTheme
	}
	if c.UI.ExportDir == "" {
		c.UI.ExportDir = "."
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.MaxSizeMB == 0 {
		c.Logging.MaxSizeMB = DefaultMaxSizeMB
	}
	if c.Logging.MaxBackups == 0 {
		c.Logging.MaxBackups = DefaultMaxBackups
	}
	if c.Logging.MaxAgeDays == 0 {
		c.Logging.MaxAgeDays = DefaultMaxAgeDays
	}
	if dir, err := ConfigDir(); err == nil {
		if c.Storage.StatePath == "" {
			c.Storage.StatePath = filepath.Join(dir, "state.db")
		}
		if c.Logging.File == "" {
			c.Logging.File = filepath.Join(dir, "marina.log")
		}
	}
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the Marina config directory: $MARINA_HOME if set,
// otherwise ~/.marina.
func ConfigDir() (string, error) {
	if home := os.Getenv("MARINA_HOME"); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".marina"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads the config file from the default location. A missing file is
// not an error.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from path, then applies environment
// overrides, fills defaults and validates. A missing file yields the
// defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, statErr := os.Stat(path); statErr == nil {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	} else if !errors.Is(statErr, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config %s: %w", path, statErr)
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes the TOML file at path over cfg.
func LoadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save writes cfg to the default config path.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes cfg to path atomically with 0600 permissions.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString("# Marina configuration file\n")
	buf.WriteString("# Environment variables (MARINA_*) override these values.\n\n")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.WriteFileAtomic(path, buf.Bytes(), 0600, 0700); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

var (
	validThemes    = map[string]bool{"auto": true, "dark": true, "light": true}
	validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
)

// Validate checks the configuration and returns ValidateErrors listing
// every problem, or nil.
func (c *Config) Validate() error {
	var errs ValidateErrors

	u, err := url.Parse(c.Backend.URL)
	switch {
	case err != nil:
		errs = append(errs, ValidationError{"backend.url", fmt.Sprintf("invalid URL: %v", err)})
	case u.Scheme != "http" && u.Scheme != "https":
		errs = append(errs, ValidationError{"backend.url", fmt.Sprintf("scheme must be http or https, got '%s'", u.Scheme)})
	case u.Host == "":
		errs = append(errs, ValidationError{"backend.url", "missing host"})
	}
	if c.Backend.TimeoutSecs < 0 {
		errs = append(errs, ValidationError{"backend.timeout_secs", "must not be negative"})
	}

	if _, err := model.ParseSearchMode(c.Chat.DefaultMode); err != nil {
		errs = append(errs, ValidationError{"chat.default_mode", fmt.Sprintf("invalid mode '%s', must be one of: search, research", c.Chat.DefaultMode)})
	}
	// A model the mode lacks is fine; the session falls back to the
	// mode's first model.
	if !model.IsKnownModel(c.Chat.DefaultModel) {
		errs = append(errs, ValidationError{"chat.default_model", fmt.Sprintf("unknown model '%s'", c.Chat.DefaultModel)})
	}

	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{"ui.theme", fmt.Sprintf("invalid theme '%s', must be one of: auto, dark, light", c.UI.Theme)})
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, ValidationError{"logging.level", fmt.Sprintf("invalid level '%s', must be one of: debug, info, warn, error", c.Logging.Level)})
	}
	if c.Logging.MaxSizeMB < 0 {
		errs = append(errs, ValidationError{"logging.max_size_mb", "must not be negative"})
	}
	if c.Logging.MaxBackups < 0 {
		errs = append(errs, ValidationError{"logging.max_backups", "must not be negative"})
	}
	if c.Logging.MaxAgeDays < 0 {
		errs = append(errs, ValidationError{"logging.max_age_days", "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies MARINA_* environment variables.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("MARINA_BACKEND_URL"); v != "" {
		c.Backend.URL = v
	}
	if v := os.Getenv("MARINA_BACKEND_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			c.Backend.TimeoutSecs = secs
		}
	}
	if v := os.Getenv("MARINA_MODE"); v != "" {
		c.Chat.DefaultMode = v
	}
	if v := os.Getenv("MARINA_MODEL"); v != "" {
		c.Chat.DefaultModel = v
	}
	if v := os.Getenv("MARINA_THEME"); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv("MARINA_SKIP_LANDING"); v != "" {
		c.UI.SkipLanding = parseBool(v)
	}
	if v := os.Getenv("MARINA_STATE_PATH"); v != "" {
		c.Storage.StatePath = v
	}
	if v := os.Getenv("MARINA_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("MARINA_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g. "ui.theme").
func (c *Config) Get(key string) (interface{}, error) {
	field, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	return field.Interface(), nil
}

// Set sets a configuration value using dot notation. String values are
// converted to the field's type.
func (c *Config) Set(key string, value interface{}) error {
	field, err := c.lookup(key)
	if err != nil {
		return err
	}
	if !field.CanSet() {
		return fmt.Errorf("cannot set field: %s", key)
	}
	return setFieldValue(field, value)
}

func (c *Config) lookup(key string) (reflect.Value, error) {
	if strings.TrimSpace(key) == "" {
		return reflect.Value{}, errors.New("empty key")
	}
	parts := strings.Split(key, ".")

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)
		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})
		if !field.IsValid() {
			return reflect.Value{}, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}
		if i == len(parts)-1 {
			if field.Kind() == reflect.Struct {
				return reflect.Value{}, fmt.Errorf("'%s' is a section, not a value", key)
			}
			return field, nil
		}
		if field.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
		v = field
	}
	return reflect.Value{}, fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts snake_case or kebab-case to the Go field
// name, e.g. "state_path" -> "StatePath".
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		result.WriteString(strings.ToUpper(part[:1]))
		result.WriteString(strings.ToLower(part[1:]))
	}
	return result.String()
}

func setFieldValue(field reflect.Value, value interface{}) error {
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %v", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Bool:
			field.SetBool(parseBool(strVal))
			return nil
		}
	}

	val := reflect.ValueOf(value)
	if !val.IsValid() {
		return fmt.Errorf("cannot assign nil to %s", field.Type())
	}
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}
	if val.Type().ConvertibleTo(field.Type()) {
		field.Set(val.Convert(field.Type()))
		return nil
	}
	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// GetAllKeys returns all configuration keys in dot notation.
func GetAllKeys() []string {
	return []string{
		"backend.url",
		"backend.timeout_secs",
		"backend.user_agent",
		"chat.default_mode",
		"chat.default_model",
		"ui.theme",
		"ui.show_timestamps",
		"ui.skip_landing",
		"ui.export_dir",
		"storage.state_path",
		"logging.level",
		"logging.file",
		"logging.max_size_mb",
		"logging.max_backups",
		"logging.max_age_days",
	}
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// String renders the configuration as TOML.
func (c *Config) String() string {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Sprintf("<config: %v>", err)
	}
	return buf.String()
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the process-wide configuration, loading it on first use.
// A broken config file falls back to defaults with a warning on stderr.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = Default()
			cfg.SetDefaults()
		}
		globalConfigMu.Lock()
		if globalConfig == nil {
			globalConfig = cfg
		}
		globalConfigMu.Unlock()
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// ReloadGlobal reloads the global configuration from disk.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	SetGlobal(cfg)
	return nil
}

// SetGlobal replaces the global configuration.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
