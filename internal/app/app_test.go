// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PrathameshUpreti/Marina/internal/model"
	"github.com/PrathameshUpreti/Marina/internal/storage"
	"github.com/PrathameshUpreti/Marina/internal/ui/chat"
	"github.com/PrathameshUpreti/Marina/internal/ui/components"
	"github.com/PrathameshUpreti/Marina/internal/ui/styles"
)

type memStore struct {
	visited bool
	marks   int
	err     error
}

func (s *memStore) HasVisited(context.Context) bool { return s.visited }

func (s *memStore) MarkVisited(context.Context) error {
	s.marks++
	if s.err != nil {
		return s.err
	}
	s.visited = true
	return nil
}

func newApp(store VisitedStore, skip bool) *Model {
	var opts Options
	if store != nil {
		opts.Store = store
	}
	opts.SkipLanding = skip
	opts.Chat = chat.Options{Theme: styles.NewTheme("dark"), Mode: model.ModeSearch}
	m := New(opts)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func getStarted(t *testing.T, m *Model) {
	t.Helper()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, components.GetStartedMsg{}, msg)
	m.Update(msg)
}

func TestNew_FirstVisitShowsLanding(t *testing.T) {
	m := newApp(&memStore{}, false)
	assert.Equal(t, StateLanding, m.State())
	assert.Contains(t, m.View(), components.CallToActionLabel)
}

func TestNew_VisitedShowsChat(t *testing.T) {
	m := newApp(&memStore{visited: true}, false)
	assert.Equal(t, StateChat, m.State())
	assert.Contains(t, m.View(), components.EmptyStateTitle)
}

func TestNew_SkipLanding(t *testing.T) {
	store := &memStore{}
	m := newApp(store, true)
	assert.Equal(t, StateChat, m.State())
	assert.Equal(t, 0, store.marks, "skipping the landing does not write the flag")
}

func TestNew_NoStore(t *testing.T) {
	m := newApp(nil, false)
	assert.Equal(t, StateLanding, m.State())
	getStarted(t, m)
	assert.Equal(t, StateChat, m.State())
}

func TestGetStarted_WritesFlagOnce(t *testing.T) {
	store := &memStore{}
	m := newApp(store, false)

	getStarted(t, m)
	assert.Equal(t, StateChat, m.State())
	assert.True(t, store.visited)
	assert.Equal(t, 1, store.marks)

	m.Update(components.GetStartedMsg{})
	assert.Equal(t, 1, store.marks)
}

func TestGetStarted_WriteFailureIgnored(t *testing.T) {
	store := &memStore{err: errors.New("disk full")}
	m := newApp(store, false)
	getStarted(t, m)
	assert.Equal(t, StateChat, m.State())
	assert.Equal(t, 1, store.marks)
}

func TestLanding_QuitKeys(t *testing.T) {
	m := newApp(&memStore{}, false)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestWithPrefStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	store, err := storage.Open(path)
	require.NoError(t, err)

	m := newApp(store, false)
	assert.Equal(t, StateLanding, m.State())
	getStarted(t, m)
	require.NoError(t, store.Close())

	reopened, err := storage.Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	m = newApp(reopened, false)
	assert.Equal(t, StateChat, m.State())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "landing", StateLanding.String())
	assert.Equal(t, "chat", StateChat.String())
	assert.Equal(t, "unknown", State(7).String())
}
