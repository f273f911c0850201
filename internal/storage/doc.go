// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage persists the few client-side preferences Marina keeps
// between runs.
//
// Preferences live in a small SQLite key/value table (pure Go driver, no
// cgo). The only key the app relies on is hasVisited, which decides
// whether the landing screen is shown on start.
//
// # Usage
//
//	store, err := storage.Open(path)
//	if err != nil {
//	    // treat as first visit
//	}
//	defer store.Close()
//
//	if !store.HasVisited(ctx) {
//	    // show landing, then:
//	    _ = store.MarkVisited(ctx)
//	}
//
// # Storage Location
//
// The database defaults to ~/.marina/state.db.
package storage
