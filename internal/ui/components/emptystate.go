// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/PrathameshUpreti/Marina/internal/model"
	"github.com/PrathameshUpreti/Marina/internal/ui/styles"
)

// EmptyStateTitle heads the chat view before the first message.
const EmptyStateTitle = "Marina AI Assistant"

// EmptyStateSubtitle sits under EmptyStateTitle.
const EmptyStateSubtitle = "Ask anything or explore topics in depth."

// modeCards describe the two modes on the empty chat view.
var modeCards = map[model.SearchMode]FeatureCard{
	model.ModeSearch:   {Icon: model.ModeSearch.Icon(), Title: model.ModeSearch.Title(), Description: "Get instant answers to your questions"},
	model.ModeResearch: {Icon: model.ModeResearch.Icon(), Title: model.ModeResearch.Title(), Description: "Comprehensive analysis and insights"},
}

// EmptyState is shown in the chat viewport while there are no messages.
// The card for the current mode is highlighted.
type EmptyState struct {
	Mode   model.SearchMode
	Width  int
	Height int
	theme  *styles.Theme
}

// NewEmptyState creates the empty chat view.
func NewEmptyState(theme *styles.Theme) EmptyState {
	return EmptyState{Mode: model.DefaultMode, theme: theme}
}

// View renders the title, subtitle and mode cards, centered.
func (e EmptyState) View() string {
	width := maxInt(e.Width, 40)

	inner := 38
	horizontal := width >= 2*(inner+6)
	if !horizontal {
		inner = width - 8
	}

	cards := make([]string, 0, 2)
	for _, mode := range model.SearchModes() {
		c := modeCards[mode]
		style := e.theme.Card
		if mode == e.Mode {
			style = style.BorderForeground(styles.Aqua)
		}
		cards = append(cards, style.Margin(0, 1).Render(
			e.theme.CardTitle.Render(c.Icon+" "+c.Title)+"\n"+
				e.theme.CardBody.Width(inner).Render(c.Description)))
	}

	var row string
	if horizontal {
		row = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	} else {
		row = lipgloss.JoinVertical(lipgloss.Center, cards...)
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		e.theme.EmptyTitle.Render(EmptyStateTitle),
		e.theme.EmptySubtitle.Render(EmptyStateSubtitle),
		"",
		row,
	)
	if e.Height <= 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
	}
	return lipgloss.Place(width, e.Height, lipgloss.Center, lipgloss.Center, content)
}
