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
// MESSAGE BUBBLE COMPONENT
// =============================================================================

// MessageBubble renders one chat message. User messages sit on the right
// as plain text; bot messages sit on the left with their content run
// through the response formatter.
type MessageBubble struct {
	Message       model.Message
	Width         int
	ShowTimestamp bool
	theme         *styles.Theme
}

// NewMessageBubble creates a new MessageBubble.
func NewMessageBubble(msg model.Message, theme *styles.Theme) MessageBubble {
	return MessageBubble{
		Message:       msg,
		Width:         80,
		ShowTimestamp: true,
		theme:         theme,
	}
}

// View renders the bubble with its meta line above it.
func (b MessageBubble) View() string {
	if b.Message.IsUser() {
		return b.renderUserBubble()
	}
	return b.renderBotBubble()
}

// maxBubbleWidth leaves a gutter so user and bot bubbles read as two sides.
func (b MessageBubble) maxBubbleWidth() int {
	return maxInt(b.Width*4/5, 20)
}

func (b MessageBubble) renderUserBubble() string {
	// Border and padding take 4 columns.
	inner := b.maxBubbleWidth() - 4
	lines := util.WrapWords(b.Message.Content, inner)

	widest := 0
	for _, l := range lines {
		widest = maxInt(widest, util.StringWidth(l))
	}

	bubble := b.theme.UserBubble.
		Width(minInt(widest, inner) + 2).
		Render(strings.Join(lines, "\n"))

	block := lipgloss.JoinVertical(lipgloss.Right, b.metaLine(), bubble)
	return lipgloss.PlaceHorizontal(b.Width, lipgloss.Right, block)
}

func (b MessageBubble) renderBotBubble() string {
	inner := b.maxBubbleWidth() - 4
	body := NewBlockRenderer(b.theme, inner).RenderText(b.Message.Content)
	if body == "" {
		body = b.theme.Muted.Render("(empty response)")
	}
	bubble := b.theme.BotBubble.Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, b.metaLine(), bubble)
}

// metaLine is "You · 🔍 Quick Search · GPT-3.5 Turbo : OpenAI · 14:05".
func (b MessageBubble) metaLine() string {
	sep := b.theme.Muted.Render(" · ")
	parts := []string{
		b.theme.BubbleLabel.Render(b.Message.Role.DisplayName()),
		b.theme.ModeBadge(b.Message.Mode),
	}
	if name := b.Message.ModelName(); name != "" {
		parts = append(parts, b.theme.Muted.Render(name))
	}
	if b.ShowTimestamp && !b.Message.Timestamp.IsZero() {
		parts = append(parts, b.theme.Timestamp.Render(b.Message.FormattedTime()))
	}
	return strings.Join(parts, sep)
}
