// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/PrathameshUpreti/Marina/internal/model"
)

// Theme holds all the styled components for the application.
type Theme struct {
	// Terminal capabilities
	Name         string
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header      lipgloss.Style
	HeaderBrand lipgloss.Style
	HeaderModel lipgloss.Style
	HeaderHint  lipgloss.Style

	ModeSearch   lipgloss.Style
	ModeResearch lipgloss.Style

	// ==========================================================================
	// MESSAGE STYLES
	// ==========================================================================

	UserBubble  lipgloss.Style
	BotBubble   lipgloss.Style
	BubbleLabel lipgloss.Style
	Timestamp   lipgloss.Style

	// Formatted response blocks
	BlockHeader1 lipgloss.Style
	BlockHeader2 lipgloss.Style
	BlockText    lipgloss.Style
	BlockBold    lipgloss.Style
	BlockBullet  lipgloss.Style
	BlockOrdinal lipgloss.Style

	// ==========================================================================
	// CODE BLOCK STYLES
	// ==========================================================================

	CodeBlock     lipgloss.Style
	CodeLangBadge lipgloss.Style
	CodeLineNum   lipgloss.Style

	// ==========================================================================
	// INPUT AND STATUS STYLES
	// ==========================================================================

	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	InputPlaceholder lipgloss.Style

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	Spinner      lipgloss.Style
	ThinkingText lipgloss.Style

	// ==========================================================================
	// MODEL PICKER STYLES
	// ==========================================================================

	PickerBox      lipgloss.Style
	PickerTitle    lipgloss.Style
	PickerItem     lipgloss.Style
	PickerSelected lipgloss.Style
	PickerDesc     lipgloss.Style

	// ==========================================================================
	// LANDING AND EMPTY STATE STYLES
	// ==========================================================================

	LandingTitle   lipgloss.Style
	LandingTagline lipgloss.Style
	Card           lipgloss.Style
	CardTitle      lipgloss.Style
	CardBody       lipgloss.Style
	CallToAction   lipgloss.Style
	EmptyTitle     lipgloss.Style
	EmptySubtitle  lipgloss.Style

	// ==========================================================================
	// STATUS STYLES
	// ==========================================================================

	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	Muted        lipgloss.Style
}

// NewTheme creates a theme. name is "dark", "light" or "auto"; auto asks
// the terminal for its background.
func NewTheme(name string) *Theme {
	profile := termenv.ColorProfile()

	var isDark bool
	switch strings.ToLower(name) {
	case "dark":
		isDark = true
		lipgloss.SetHasDarkBackground(true)
	case "light":
		isDark = false
		lipgloss.SetHasDarkBackground(false)
	default:
		name = "auto"
		isDark = termenv.HasDarkBackground()
	}

	t := &Theme{
		Name:         strings.ToLower(name),
		IsDark:       isDark,
		HasTrueColor: profile == termenv.TrueColor,
		ColorProfile: profile,
	}
	t.initStyles()
	return t
}

// DefaultTheme returns an auto-detected theme.
func DefaultTheme() *Theme {
	return NewTheme("auto")
}

// ModeBadge renders the label for mode, e.g. "🔍 Quick Search".
func (t *Theme) ModeBadge(mode model.SearchMode) string {
	if mode == model.ModeResearch {
		return t.ModeResearch.Render(mode.Label())
	}
	return t.ModeSearch.Render(mode.Label())
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// Header
	t.Header = lipgloss.NewStyle().
		Background(SurfaceDim).
		Padding(0, 1)

	t.HeaderBrand = lipgloss.NewStyle().
		Bold(true).
		Foreground(Aqua)

	t.HeaderModel = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.HeaderHint = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.ModeSearch = lipgloss.NewStyle().
		Foreground(Lemon).
		Bold(true)

	t.ModeResearch = lipgloss.NewStyle().
		Foreground(Blush).
		Bold(true)

	// Message bubbles
	t.UserBubble = lipgloss.NewStyle().
		Foreground(UserBubbleFg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(UserBubbleBorder).
		Padding(0, 1)

	t.BotBubble = lipgloss.NewStyle().
		Foreground(BotBubbleFg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(BotBubbleBorder).
		Padding(0, 1)

	t.BubbleLabel = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextSecondary)

	t.Timestamp = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Response blocks
	t.BlockHeader1 = lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Foreground(Aqua)

	t.BlockHeader2 = lipgloss.NewStyle().
		Bold(true).
		Foreground(AquaSoft)

	t.BlockText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.BlockBold = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.BlockBullet = lipgloss.NewStyle().
		Foreground(Blush)

	t.BlockOrdinal = lipgloss.NewStyle().
		Foreground(Lemon).
		Bold(true)

	// Code blocks
	t.CodeBlock = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(Overlay).
		PaddingLeft(1)

	t.CodeLangBadge = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(AquaSoft).
		Padding(0, 1)

	t.CodeLineNum = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Input
	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(Aqua).
		Bold(true)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Aqua).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.Spinner = lipgloss.NewStyle().
		Foreground(Blush)

	t.ThinkingText = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Model picker
	t.PickerBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Aqua).
		Padding(0, 1)

	t.PickerTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Aqua)

	t.PickerItem = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.PickerSelected = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Aqua).
		Bold(true)

	t.PickerDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Landing and empty state
	t.LandingTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Aqua)

	t.LandingTagline = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.CardTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Blush)

	t.CardBody = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.CallToAction = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(Aqua).
		Padding(0, 2)

	t.EmptyTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Aqua)

	t.EmptySubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary)

	// Status
	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(Mint)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(Rose)

	t.Muted = lipgloss.NewStyle().
		Foreground(TextMuted)
}
