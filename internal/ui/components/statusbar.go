// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/PrathameshUpreti/Marina/internal/ui/styles"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// Status is the request state shown on the left of the status bar.
type Status int

const (
	StatusReady Status = iota
	StatusThinking
	StatusError
)

// String returns the display string for the status.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusThinking:
		return "Thinking..."
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Shortcut is one key hint on the right of the status bar.
type Shortcut struct {
	Key  string
	Desc string
}

// DefaultShortcuts are the chat view key hints.
var DefaultShortcuts = []Shortcut{
	{Key: "enter", Desc: "send"},
	{Key: "tab", Desc: "mode"},
	{Key: "ctrl+o", Desc: "model"},
	{Key: "ctrl+s", Desc: "export"},
	{Key: "ctrl+c", Desc: "quit"},
}

// StatusBar is the bottom line of the chat view.
type StatusBar struct {
	Status    Status
	Spinner   string
	Notice    string
	IsError   bool
	Shortcuts []Shortcut
	Width     int
	theme     *styles.Theme
}

// NewStatusBar creates a status bar with the default shortcuts.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Shortcuts: DefaultShortcuts,
		Width:     80,
		theme:     theme,
	}
}

// SetNotice shows a transient message in place of the status text.
func (s *StatusBar) SetNotice(text string, isError bool) {
	s.Notice = text
	s.IsError = isError
}

// ClearNotice removes the transient message.
func (s *StatusBar) ClearNotice() {
	s.Notice = ""
	s.IsError = false
}

// View renders the status bar. Shortcuts are dropped from the right until
// the line fits.
func (s *StatusBar) View() string {
	width := maxInt(s.Width, 20)
	inner := width - s.theme.StatusBar.GetHorizontalFrameSize()

	left := s.leftSection()

	shortcuts := s.Shortcuts
	var right string
	for n := len(shortcuts); n >= 0; n-- {
		right = s.renderShortcuts(shortcuts[:n])
		if lipgloss.Width(left)+lipgloss.Width(right)+1 <= inner {
			break
		}
	}

	gap := maxInt(inner-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return s.theme.StatusBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func (s *StatusBar) leftSection() string {
	if s.Notice != "" {
		if s.IsError {
			return styles.RenderError(s.Notice)
		}
		return styles.RenderSuccess(s.Notice)
	}
	switch s.Status {
	case StatusThinking:
		return s.theme.Spinner.Render(s.Spinner) + " " + s.theme.ThinkingText.Render(s.Status.String())
	case StatusError:
		return s.theme.ErrorStyle.Render(s.Status.String())
	default:
		return s.theme.SuccessStyle.Render(s.Status.String())
	}
}

func (s *StatusBar) renderShortcuts(list []Shortcut) string {
	parts := make([]string, 0, len(list))
	for _, sc := range list {
		parts = append(parts, s.theme.ShortcutKey.Render(sc.Key)+" "+s.theme.ShortcutDesc.Render(sc.Desc))
	}
	return strings.Join(parts, s.theme.Muted.Render("  "))
}
