// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app is the root Bubble Tea model of the Marina TUI. It shows the
// landing screen on first use and the chat view afterwards.
package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/PrathameshUpreti/Marina/internal/ui/chat"
	"github.com/PrathameshUpreti/Marina/internal/ui/components"
	"github.com/PrathameshUpreti/Marina/internal/ui/styles"
)

// =============================================================================
// APPLICATION MODEL
// =============================================================================

// State represents the current application state.
type State int

const (
	StateLanding State = iota // First-run landing screen
	StateChat                 // Chat view
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateLanding:
		return "landing"
	case StateChat:
		return "chat"
	default:
		return "unknown"
	}
}

// VisitedStore persists whether the landing screen was dismissed.
// *storage.PrefStore satisfies it.
type VisitedStore interface {
	HasVisited(ctx context.Context) bool
	MarkVisited(ctx context.Context) error
}

// Options configures the application model.
type Options struct {
	Chat        chat.Options
	Store       VisitedStore
	SkipLanding bool
	Logger      *zap.Logger
}

// Model is the root application model.
type Model struct {
	state State
	theme *styles.Theme

	width  int
	height int

	landing   components.Landing
	chatModel chat.Model

	store         VisitedStore
	markedVisited bool
	ctx           context.Context
	logger        *zap.Logger
}

// New creates the application model. The visited flag is read once here:
// if it is set, or SkipLanding is true, the app opens on the chat view.
func New(opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx := opts.Chat.Context
	if ctx == nil {
		ctx = context.Background()
	}
	theme := opts.Chat.Theme
	if theme == nil {
		theme = styles.DefaultTheme()
		opts.Chat.Theme = theme
	}
	if opts.Chat.Logger == nil {
		opts.Chat.Logger = logger
	}

	m := &Model{
		state:     StateLanding,
		theme:     theme,
		landing:   components.NewLanding(theme),
		chatModel: chat.New(opts.Chat),
		store:     opts.Store,
		ctx:       ctx,
		logger:    logger.Named("app"),
	}

	visited := opts.Store != nil && opts.Store.HasVisited(ctx)
	if visited || opts.SkipLanding {
		m.state = StateChat
	}
	m.logger.Debug("app started",
		zap.String("state", m.state.String()),
		zap.Bool("visited", visited),
		zap.Bool("skip_landing", opts.SkipLanding))
	return m
}

// State returns the current application state.
func (m *Model) State() State {
	return m.state
}

// Chat returns the chat view model.
func (m *Model) Chat() chat.Model {
	return m.chatModel
}

// Init initializes the active screen.
func (m *Model) Init() tea.Cmd {
	if m.state == StateChat {
		return m.chatModel.Init()
	}
	return m.landing.Init()
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.landing.SetSize(msg.Width, msg.Height)
		var cmd tea.Cmd
		m.chatModel, cmd = m.chatModel.Update(msg)
		return m, cmd

	case components.GetStartedMsg:
		return m.enterChat()
	}

	if m.state == StateLanding {
		if k, ok := msg.(tea.KeyMsg); ok && (k.Type == tea.KeyCtrlC || k.String() == "q") {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.landing, cmd = m.landing.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.chatModel, cmd = m.chatModel.Update(msg)
	return m, cmd
}

// enterChat writes the visited flag, once, and switches to the chat view.
// A failed write is logged and otherwise ignored.
func (m *Model) enterChat() (tea.Model, tea.Cmd) {
	if m.state == StateChat {
		return m, nil
	}
	if !m.markedVisited && m.store != nil {
		m.markedVisited = true
		if err := m.store.MarkVisited(m.ctx); err != nil {
			m.logger.Warn("could not persist visited flag", zap.Error(err))
		}
	}
	m.state = StateChat
	return m, m.chatModel.Init()
}

// View renders the active screen.
func (m *Model) View() string {
	if m.state == StateLanding {
		return m.landing.View()
	}
	return m.chatModel.View()
}

// =============================================================================
// PROGRAM
// =============================================================================

// Run starts the TUI on the alternate screen and blocks until it exits.
func Run(ctx context.Context, m *Model) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
