// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/PrathameshUpreti/Marina/internal/model"
	"github.com/PrathameshUpreti/Marina/internal/ui/styles"
	"github.com/PrathameshUpreti/Marina/internal/util"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Brand is the product name shown in the header and on the landing screen.
const Brand = "Marina AI"

// NoModelLabel is shown when no model is selected.
const NoModelLabel = "Select Model"

// Header is the one-line title bar of the chat view.
type Header struct {
	Title     string
	ModelName string
	Mode      model.SearchMode
	Width     int
	theme     *styles.Theme
}

// NewHeader creates a header with the brand title.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title: Brand,
		Mode:  model.DefaultMode,
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetModel updates the displayed model name.
func (h *Header) SetModel(name string) {
	h.ModelName = name
}

// SetMode updates the displayed mode.
func (h *Header) SetMode(mode model.SearchMode) {
	h.Mode = mode
}

// View renders brand on the left and mode plus model on the right.
func (h *Header) View() string {
	width := maxInt(h.Width, 40)
	inner := width - h.theme.Header.GetHorizontalFrameSize()

	left := h.theme.HeaderBrand.Render("🌊 " + h.Title)

	modelLabel := h.ModelName
	if modelLabel == "" {
		modelLabel = NoModelLabel
	}
	mode := h.theme.ModeBadge(h.Mode)
	room := inner - lipgloss.Width(left) - lipgloss.Width(mode) - 5
	right := mode + h.theme.Muted.Render(" · ") +
		h.theme.HeaderModel.Render(util.TruncateWidth(modelLabel, maxInt(room, 3)))

	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	line := left + strings.Repeat(" ", maxInt(gap, 1)) + right

	return h.theme.Header.Width(width).Render(line)
}
