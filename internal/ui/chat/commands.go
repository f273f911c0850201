// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/PrathameshUpreti/Marina/internal/export"
	"github.com/PrathameshUpreti/Marina/internal/session"
)

// noticeDuration is how long a status notice stays up.
const noticeDuration = 4 * time.Second

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// DispatchCmd sends req through d and reports the outcome as a
// DispatchResultMsg.
func DispatchCmd(ctx context.Context, d session.Dispatcher, req session.Request) tea.Cmd {
	return func() tea.Msg {
		text, err := d.Dispatch(ctx, req.Query, req.Mode, req.ModelID)
		return DispatchResultMsg{Text: text, Err: err}
	}
}

// ExportCmd writes t in the named format and reports an ExportCompleteMsg.
func ExportCmd(t session.Transcript, formatName string, opts *export.Options) tea.Cmd {
	return func() tea.Msg {
		exporter, err := export.ForFormat(formatName, opts)
		if err != nil {
			return ExportCompleteMsg{Format: formatName, Err: err}
		}
		path, err := export.ExportToFile(t, exporter, opts)
		return ExportCompleteMsg{Path: path, Format: formatName, Err: err}
	}
}

func expireNoticeCmd(seq int) tea.Cmd {
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}
