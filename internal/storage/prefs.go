// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const (
	// KeyVisited records that the landing screen was dismissed.
	KeyVisited = "hasVisited"

	visitedValue = "true"
	schemaKey    = "schema_version"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("preference store is closed")

// PrefStore is a persistent string key/value store.
type PrefStore struct {
	db   *sql.DB
	path string
}

// Open opens or creates the preference database at path. The parent
// directory is created if needed.
func Open(path string) (*PrefStore, error) {
	if path == "" {
		return nil, errors.New("database path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=2000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	s := &PrefStore{db: db, path: path}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *PrefStore) initSchema() error {
	if _, err := s.db.Exec(Schema); err != nil {
		return err
	}
	_, err := s.db.Exec(
		"INSERT OR IGNORE INTO prefs (key, value, updated_at) VALUES (?, ?, ?)",
		schemaKey, strconv.Itoa(SchemaVersion), time.Now().Unix())
	return err
}

// Path returns the database file path.
func (s *PrefStore) Path() string {
	return s.path
}

// Close releases the database.
func (s *PrefStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Get returns the value stored under key. ok is false when the key is
// absent.
func (s *PrefStore) Get(ctx context.Context, key string) (value string, ok bool, err error) {
	if s.db == nil {
		return "", false, ErrClosed
	}
	err = s.db.QueryRowContext(ctx, "SELECT value FROM prefs WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *PrefStore) Set(ctx context.Context, key, value string) error {
	if s.db == nil {
		return ErrClosed
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO prefs (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *PrefStore) Delete(ctx context.Context, key string) error {
	if s.db == nil {
		return ErrClosed
	}
	if _, err := s.db.ExecContext(ctx, "DELETE FROM prefs WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// UpdatedAt returns when key was last written.
func (s *PrefStore) UpdatedAt(ctx context.Context, key string) (time.Time, bool, error) {
	if s.db == nil {
		return time.Time{}, false, ErrClosed
	}
	var ts int64
	err := s.db.QueryRowContext(ctx, "SELECT updated_at FROM prefs WHERE key = ?", key).Scan(&ts)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("get %s: %w", key, err)
	}
	return time.Unix(ts, 0), true, nil
}

// =============================================================================
// VISITED FLAG
// =============================================================================

// HasVisited reports whether the landing screen was dismissed before. Any
// stored value counts. Read errors count as not visited.
func (s *PrefStore) HasVisited(ctx context.Context) bool {
	if s == nil {
		return false
	}
	_, ok, err := s.Get(ctx, KeyVisited)
	return err == nil && ok
}

// MarkVisited records that the landing screen was dismissed.
func (s *PrefStore) MarkVisited(ctx context.Context) error {
	return s.Set(ctx, KeyVisited, visitedValue)
}

// ResetVisited clears the flag so the landing screen shows again.
func (s *PrefStore) ResetVisited(ctx context.Context) error {
	return s.Delete(ctx, KeyVisited)
}
