// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/PrathameshUpreti/Marina/internal/ui/components"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the chat view.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	body := m.viewport.View()
	if m.picker != nil {
		body = lipgloss.Place(m.viewport.Width, m.viewport.Height,
			lipgloss.Center, lipgloss.Center, m.picker.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		body,
		m.renderInput(),
		m.statusBar.View(),
	)
}

func (m Model) renderInput() string {
	width := max(m.width-m.theme.InputContainer.GetHorizontalBorderSize(), 10)
	return m.theme.InputContainer.Width(width).Render(m.input.View())
}

// refreshViewport re-renders the transcript and scrolls to the newest
// message.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

// renderTranscript renders every message in order, followed by the
// thinking indicator while a request is in flight. An empty session shows
// the empty state instead.
func (m Model) renderTranscript() string {
	messages := m.session.Messages()
	if len(messages) == 0 && !m.session.Loading() {
		empty := components.NewEmptyState(m.theme)
		empty.Mode = m.session.Mode()
		empty.Width = m.viewport.Width
		empty.Height = m.viewport.Height
		return empty.View()
	}

	parts := make([]string, 0, len(messages)+1)
	for _, msg := range messages {
		bubble := components.NewMessageBubble(msg, m.theme)
		bubble.Width = m.viewport.Width
		bubble.ShowTimestamp = m.showTimestamps
		parts = append(parts, bubble.View())
	}
	if m.session.Loading() {
		parts = append(parts, m.renderThinking())
	}
	return strings.Join(parts, "\n\n")
}

func (m Model) renderThinking() string {
	label := "Marina is thinking..."
	if req, ok := m.session.Pending(); ok {
		label = "Marina is thinking (" + req.Mode.Title() + ")..."
	}
	return m.spinner.View() + " " + m.theme.ThinkingText.Render(label)
}
