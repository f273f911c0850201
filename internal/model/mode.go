// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"fmt"
	"strings"
)

// =============================================================================
// SEARCH MODE
// =============================================================================

// SearchMode selects the backend pipeline for a query.
type SearchMode string

const (
	// ModeSearch is the quick answer pipeline.
	ModeSearch SearchMode = "search"
	// ModeResearch is the slower in-depth pipeline.
	ModeResearch SearchMode = "research"

	// DefaultMode is the mode a fresh session starts in.
	DefaultMode = ModeSearch
)

// SearchModes returns every mode in display order.
func SearchModes() []SearchMode {
	return []SearchMode{ModeSearch, ModeResearch}
}

// String returns the wire name of the mode.
func (m SearchMode) String() string {
	return string(m)
}

// Valid reports whether m is a known mode.
func (m SearchMode) Valid() bool {
	return m == ModeSearch || m == ModeResearch
}

// Endpoint returns the backend path that serves this mode.
func (m SearchMode) Endpoint() string {
	if m == ModeResearch {
		return "/reason"
	}
	return "/search"
}

// Title returns the short display name.
func (m SearchMode) Title() string {
	if m == ModeResearch {
		return "Deep Research"
	}
	return "Quick Search"
}

// Icon returns the emoji shown next to the mode.
func (m SearchMode) Icon() string {
	if m == ModeResearch {
		return "📚"
	}
	return "🔍"
}

// Label returns icon and title, e.g. "🔍 Quick Search".
func (m SearchMode) Label() string {
	return m.Icon() + " " + m.Title()
}

// Placeholder is the input hint for the mode.
func (m SearchMode) Placeholder() string {
	if m == ModeResearch {
		return "Ask for in-depth research..."
	}
	return "Ask anything..."
}

// Toggle returns the other mode.
func (m SearchMode) Toggle() SearchMode {
	if m == ModeResearch {
		return ModeSearch
	}
	return ModeResearch
}

// ParseSearchMode accepts a mode name, case-insensitively. "reason" and
// "deep" are accepted as aliases for research, "quick" for search.
func ParseSearchMode(s string) (SearchMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "search", "quick":
		return ModeSearch, nil
	case "research", "reason", "deep":
		return ModeResearch, nil
	}
	return "", fmt.Errorf("unknown search mode %q (want search or research)", s)
}
