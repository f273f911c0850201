// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/PrathameshUpreti/Marina/internal/ui/styles"
)

// =============================================================================
// LANDING SCREEN MODEL
// =============================================================================

// Tagline is the subtitle of the landing screen.
const Tagline = "Your intelligent research assistant powered by advanced AI technology."

// CallToActionLabel is the text of the landing screen button.
const CallToActionLabel = "Get Started →"

// FeatureCard is one of the feature highlights on the landing screen.
type FeatureCard struct {
	Icon        string
	Title       string
	Description string
}

// LandingCards are the feature highlights, in display order.
var LandingCards = []FeatureCard{
	{Icon: "🔍", Title: "Smart Search", Description: "Advanced search capabilities powered by AI"},
	{Icon: "📚", Title: "Research", Description: "Deep research and analysis of topics"},
	{Icon: "💡", Title: "Insights", Description: "Generate comprehensive reports and insights"},
}

// GetStartedMsg is emitted when the user activates the call to action.
type GetStartedMsg struct{}

// Landing is the first-run landing screen.
type Landing struct {
	width  int
	height int
	start  key.Binding
	theme  *styles.Theme
}

// NewLanding creates the landing screen.
func NewLanding(theme *styles.Theme) Landing {
	return Landing{
		start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "get started"),
		),
		theme: theme,
	}
}

// SetSize updates the dimensions.
func (l *Landing) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init initializes the landing screen.
func (l Landing) Init() tea.Cmd {
	return nil
}

// Update handles resize and the call to action.
func (l Landing) Update(msg tea.Msg) (Landing, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		l.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if key.Matches(msg, l.start) {
			return l, func() tea.Msg { return GetStartedMsg{} }
		}
	}
	return l, nil
}

// View renders the landing screen centered in the terminal. Cards sit side
// by side when there is room and stack otherwise.
func (l Landing) View() string {
	width := l.width
	if width == 0 {
		width = 80
	}
	height := l.height
	if height == 0 {
		height = 24
	}

	title := l.theme.LandingTitle.Render("🌊 " + Brand)
	tagline := l.theme.LandingTagline.
		Width(minInt(width-4, 60)).
		Align(lipgloss.Center).
		Render(Tagline)

	cardWidth := 24
	horizontal := width >= 3*(cardWidth+2)+4
	if !horizontal {
		cardWidth = minInt(width-4, 48)
	}

	cards := make([]string, 0, len(LandingCards))
	for _, c := range LandingCards {
		cards = append(cards, l.renderCard(c, cardWidth))
	}

	var cardRow string
	if horizontal {
		cardRow = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	} else if height >= 24 {
		cardRow = lipgloss.JoinVertical(lipgloss.Center, cards...)
	} else {
		// Too short for stacked cards; titles only.
		titles := make([]string, 0, len(LandingCards))
		for _, c := range LandingCards {
			titles = append(titles, l.theme.CardTitle.Render(c.Icon+" "+c.Title))
		}
		cardRow = lipgloss.JoinVertical(lipgloss.Center, titles...)
	}

	cta := l.theme.CallToAction.Render(CallToActionLabel)
	hint := l.theme.Muted.Render("press enter to start chatting")

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		tagline,
		"",
		cardRow,
		"",
		cta,
		hint,
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (l Landing) renderCard(c FeatureCard, width int) string {
	inner := width - l.theme.Card.GetHorizontalFrameSize()
	title := l.theme.CardTitle.Render(c.Icon + " " + c.Title)
	body := l.theme.CardBody.Width(inner).Render(c.Description)
	return l.theme.Card.
		Width(width - l.theme.Card.GetHorizontalBorderSize()).
		Margin(0, 1).
		Render(title + "\n" + body)
}
