// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// BRAND COLORS
// =============================================================================

// Aqua - Brand color, user highlights, focus
var Aqua = lipgloss.AdaptiveColor{Light: "#0E7C8A", Dark: "#51E2F5"}

// AquaSoft - Pale aqua for accents on dark backgrounds
var AquaSoft = lipgloss.AdaptiveColor{Light: "#0F766E", Dark: "#9DF9EF"}

// Blush - Research mode, landing accents
var Blush = lipgloss.AdaptiveColor{Light: "#BE185D", Dark: "#FFA8B6"}

// Lemon - Search mode badge, highlights
var Lemon = lipgloss.AdaptiveColor{Light: "#A16207", Dark: "#EDF756"}

// =============================================================================
// SEMANTIC COLORS
// =============================================================================

// Mint - Success states
var Mint = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// Rose - Errors
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Amber - Warnings
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Surface - Main background
var Surface = lipgloss.AdaptiveColor{Light: "#F7F7F7", Dark: "#1E1F2E"}

// SurfaceDim - Header and status bar background
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#E5EAF5", Dark: "#181825"}

// Overlay - Borders, separators
var Overlay = lipgloss.AdaptiveColor{Light: "#D4D8E4", Dark: "#4A4E69"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#E5EAF5"}

// TextSecondary - Labels
var TextSecondary = lipgloss.AdaptiveColor{Light: "#4A4E69", Dark: "#A6ADC8"}

// TextMuted - Hints, timestamps
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"}

// TextInverse - Text on colored backgrounds
var TextInverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1F2E"}

// =============================================================================
// MESSAGE BUBBLE COLORS
// =============================================================================

var UserBubbleFg = lipgloss.AdaptiveColor{Light: "#0F3D44", Dark: "#E0FBFF"}
var UserBubbleBorder = Aqua

var BotBubbleFg = TextPrimary
var BotBubbleBorder = lipgloss.AdaptiveColor{Light: "#C4B5FD", Dark: "#4A4E69"}

// =============================================================================
// STATUS INDICATORS
// =============================================================================

// StatusIndicators are ASCII markers shown next to colored status text so
// state is readable without color.
var StatusIndicators = struct {
	Success string
	Error   string
	Info    string
}{
	Success: "[OK]",
	Error:   "[X]",
	Info:    "[i]",
}

// RenderSuccess renders a success message with its indicator.
func RenderSuccess(message string) string {
	return lipgloss.NewStyle().Foreground(Mint).Bold(true).
		Render(StatusIndicators.Success + " " + message)
}

// RenderError renders an error message with its indicator.
func RenderError(message string) string {
	return lipgloss.NewStyle().Foreground(Rose).Bold(true).
		Render(StatusIndicators.Error + " " + message)
}

// RenderInfo renders an info message with its indicator.
func RenderInfo(message string) string {
	return lipgloss.NewStyle().Foreground(Aqua).
		Render(StatusIndicators.Info + " " + message)
}
