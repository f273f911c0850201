// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/PrathameshUpreti/Marina/internal/export"
	"github.com/PrathameshUpreti/Marina/internal/model"
	"github.com/PrathameshUpreti/Marina/internal/session"
	"github.com/PrathameshUpreti/Marina/internal/ui/components"
	"github.com/PrathameshUpreti/Marina/internal/ui/styles"
)

// inputCharLimit caps a single query.
const inputCharLimit = 4000

// =============================================================================
// CHAT OPTIONS
// =============================================================================

// Options configures a chat view.
type Options struct {
	Dispatcher     session.Dispatcher
	Theme          *styles.Theme
	Mode           model.SearchMode
	ModelID        string
	ExportDir      string
	ShowTimestamps bool
	Logger         *zap.Logger

	// Context is the parent of every dispatch context. Defaults to
	// context.Background.
	Context context.Context
}

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat view.
type Model struct {
	session    *session.Session
	dispatcher session.Dispatcher
	baseCtx    context.Context
	cancelMgr  *cancelManager

	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int
	ready  bool

	// UI Components
	viewport  viewport.Model
	input     textinput.Model
	spinner   spinner.Model
	header    *components.Header
	statusBar *components.StatusBar
	picker    *components.ModelPicker

	keyMap KeyMap

	// Status notice sequence; a newer notice outlives older expiry ticks.
	noticeSeq int

	showTimestamps bool
	exportOpts     *export.Options
	logger         *zap.Logger
}

// New creates a chat view over a fresh session.
func New(opts Options) Model {
	theme := opts.Theme
	if theme == nil {
		theme = styles.DefaultTheme()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	sess := session.New(opts.Mode, opts.ModelID)

	ti := textinput.New()
	ti.Prompt = "› "
	ti.PromptStyle = theme.InputPrompt
	ti.PlaceholderStyle = theme.InputPlaceholder
	ti.Placeholder = sess.Mode().Placeholder()
	ti.CharLimit = inputCharLimit
	ti.Focus()

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(theme.Spinner),
	)

	exportOpts := export.DefaultOptions()
	if opts.ExportDir != "" {
		exportOpts.OutputDir = opts.ExportDir
	}

	m := Model{
		session:        sess,
		dispatcher:     opts.Dispatcher,
		baseCtx:        ctx,
		cancelMgr:      newCancelManager(),
		theme:          theme,
		viewport:       viewport.New(80, 20),
		input:          ti,
		spinner:        sp,
		header:         components.NewHeader(theme),
		statusBar:      components.NewStatusBar(theme),
		keyMap:         DefaultKeyMap(),
		showTimestamps: opts.ShowTimestamps,
		exportOpts:     exportOpts,
		logger:         logger.Named("chat"),
	}
	m.syncChrome()
	return m
}

// Session returns the underlying chat session.
func (m Model) Session() *session.Session {
	return m.session
}

// PickerOpen reports whether the model picker is showing.
func (m Model) PickerOpen() bool {
	return m.picker != nil
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize updates the layout for a terminal of width x height.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ready = true

	m.header.SetWidth(width)
	m.statusBar.Width = width
	m.input.Width = max(width-m.theme.InputContainer.GetHorizontalFrameSize()-len([]rune(m.input.Prompt))-1, 10)

	m.viewport.Width = width
	m.viewport.Height = max(height-m.chromeHeight(), 3)
	if m.picker != nil {
		m.picker.Width = width - 4
	}
	m.refreshViewport()
}

// chromeHeight is the height of everything but the transcript.
func (m Model) chromeHeight() int {
	// header + status bar + bordered single-line input
	return 1 + 1 + 1 + m.theme.InputContainer.GetVerticalFrameSize()
}

// syncChrome pushes the session's mode and model into header, input and
// status bar.
func (m *Model) syncChrome() {
	info := m.session.Model()
	m.header.SetModel(info.Name)
	m.header.SetMode(m.session.Mode())
	m.input.Placeholder = m.session.Mode().Placeholder()

	if m.session.Loading() {
		m.statusBar.Status = components.StatusThinking
		m.input.Blur()
	} else {
		m.statusBar.Status = components.StatusReady
		m.input.Focus()
	}
	m.statusBar.Spinner = m.spinner.View()
}
