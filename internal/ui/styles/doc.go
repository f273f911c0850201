// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the Marina terminal UI.

All colors use Lip Gloss AdaptiveColor so one palette serves light and dark
terminals.

# Color System (colors.go)

  - Aqua - Brand color, user highlights, focus
  - Blush - Research mode, landing accents
  - Lemon - Search mode badge, warnings
  - Mint - Success states
  - Rose - Errors

# Themes (theme.go)

A Theme bundles every lipgloss.Style the views use. NewTheme takes the
configured theme name ("dark", "light" or "auto") and detects the terminal
color profile with termenv.
*/
package styles
