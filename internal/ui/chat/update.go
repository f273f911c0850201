// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/PrathameshUpreti/Marina/internal/backend"
	"github.com/PrathameshUpreti/Marina/internal/export"
	"github.com/PrathameshUpreti/Marina/internal/ui/components"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update handles Bubble Tea messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.picker != nil {
			return m.updatePicker(msg)
		}
		return m.handleKey(msg)

	case components.ModelSelectedMsg:
		m.picker = nil
		m.session.SetModel(msg.ID)
		m.logger.Debug("model selected",
			zap.String("model", m.session.ModelID()),
			zap.String("mode", m.session.Mode().String()))
		m.syncChrome()
		return m, nil

	case components.PickerClosedMsg:
		m.picker = nil
		return m, nil

	case DispatchResultMsg:
		return m.handleDispatchResult(msg)

	case ExportCompleteMsg:
		return m.handleExportComplete(msg)

	case noticeExpiredMsg:
		if msg.seq == m.noticeSeq {
			m.statusBar.ClearNotice()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.session.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.syncChrome()
		m.refreshViewport()
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.cancelMgr.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Submit):
		return m.submit()

	case key.Matches(msg, m.keyMap.ToggleMode):
		m.session.ToggleMode()
		m.syncChrome()
		m.refreshViewport()
		return m, nil

	case key.Matches(msg, m.keyMap.PickModel):
		p := components.NewModelPicker(m.theme, m.session.Mode(), m.session.ModelID())
		p.Width = m.width - 4
		m.picker = &p
		return m, nil

	case key.Matches(msg, m.keyMap.ExportMarkdown):
		return m, ExportCmd(m.session.Transcript(), "md", m.exportOpts)

	case key.Matches(msg, m.keyMap.ExportJSON):
		return m, ExportCmd(m.session.Transcript(), "json", m.exportOpts)

	case key.Matches(msg, m.keyMap.ScrollUp):
		m.viewport.LineUp(1)
		return m, nil

	case key.Matches(msg, m.keyMap.ScrollDown):
		m.viewport.LineDown(1)
		return m, nil

	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.HalfViewDown()
		return m, nil
	}

	// The input is disabled while a request is pending.
	if m.session.Loading() {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.session.SetInput(m.input.Value())
	return m, cmd
}

func (m Model) updatePicker(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keyMap.Quit) {
		m.cancelMgr.cancel()
		return m, tea.Quit
	}
	p, cmd := m.picker.Update(msg)
	m.picker = &p
	return m, cmd
}

// submit runs the session submit guard and, when it passes, starts the
// dispatch and the spinner.
func (m Model) submit() (Model, tea.Cmd) {
	m.session.SetInput(m.input.Value())
	req, ok := m.session.Submit()
	if !ok {
		return m, nil
	}
	m.input.Reset()

	if m.dispatcher == nil {
		m.session.Reject(errors.New("no backend configured"))
		m.logger.Error("dispatch skipped: no backend configured")
		m.syncChrome()
		m.refreshViewport()
		return m, nil
	}

	m.logger.Debug("query submitted",
		zap.String("mode", req.Mode.String()),
		zap.String("model", req.ModelID),
		zap.Int("query_len", len(req.Query)))

	ctx := m.cancelMgr.begin(m.baseCtx)
	m.statusBar.ClearNotice()
	m.syncChrome()
	m.refreshViewport()
	return m, tea.Batch(DispatchCmd(ctx, m.dispatcher, req), m.spinner.Tick)
}

func (m Model) handleDispatchResult(msg DispatchResultMsg) (Model, tea.Cmd) {
	m.cancelMgr.cancel()
	if msg.Err != nil {
		m.logger.Warn("dispatch failed",
			zap.Error(msg.Err),
			zap.String("error_type", errorType(msg.Err)),
			zap.Int("status", backend.StatusCode(msg.Err)))
	}
	if !m.session.Complete(msg.Text, msg.Err) {
		return m, nil
	}
	m.syncChrome()
	m.refreshViewport()
	return m, textinput.Blink
}

func (m Model) handleExportComplete(msg ExportCompleteMsg) (Model, tea.Cmd) {
	m.noticeSeq++
	switch {
	case errors.Is(msg.Err, export.ErrEmptyTranscript):
		m.statusBar.SetNotice("Nothing to export yet", true)
	case msg.Err != nil:
		m.logger.Error("export failed", zap.String("format", msg.Format), zap.Error(msg.Err))
		m.statusBar.SetNotice(fmt.Sprintf("Export failed: %v", msg.Err), true)
	default:
		m.logger.Info("transcript exported", zap.String("format", msg.Format), zap.String("path", msg.Path))
		m.statusBar.SetNotice("Exported to "+msg.Path, false)
	}
	return m, expireNoticeCmd(m.noticeSeq)
}

func errorType(err error) string {
	var ce *backend.ClientError
	if errors.As(err, &ce) {
		return ce.Type.String()
	}
	return "unknown"
}
