// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/PrathameshUpreti/Marina/internal/model"
	"github.com/PrathameshUpreti/Marina/internal/ui/styles"
	"github.com/PrathameshUpreti/Marina/internal/util"
)

// =============================================================================
// MODEL PICKER
// =============================================================================

// ModelSelectedMsg is emitted when the user picks a model.
type ModelSelectedMsg struct {
	ID string
}

// PickerClosedMsg is emitted when the picker is dismissed without a choice.
type PickerClosedMsg struct{}

type pickerKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Close  key.Binding
}

var defaultPickerKeys = pickerKeys{
	Up:     key.NewBinding(key.WithKeys("up", "k", "shift+tab"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Close:  key.NewBinding(key.WithKeys("esc", "ctrl+o"), key.WithHelp("esc", "close")),
}

// ModelPicker lists the models available in one mode.
type ModelPicker struct {
	mode    model.SearchMode
	models  []model.ModelInfo
	current string
	cursor  int
	Width   int
	keys    pickerKeys
	theme   *styles.Theme
}

// NewModelPicker opens a picker for mode with the cursor on current.
func NewModelPicker(theme *styles.Theme, mode model.SearchMode, current string) ModelPicker {
	p := ModelPicker{
		mode:    mode,
		models:  model.ModelsFor(mode),
		current: current,
		Width:   60,
		keys:    defaultPickerKeys,
		theme:   theme,
	}
	for i, m := range p.models {
		if m.ID == current {
			p.cursor = i
		}
	}
	return p
}

// Cursor returns the highlighted index.
func (p ModelPicker) Cursor() int {
	return p.cursor
}

// Highlighted returns the model under the cursor.
func (p ModelPicker) Highlighted() (model.ModelInfo, bool) {
	if len(p.models) == 0 {
		return model.ModelInfo{}, false
	}
	return p.models[p.cursor], true
}

// Update moves the cursor or emits a selection.
func (p ModelPicker) Update(msg tea.Msg) (ModelPicker, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(p.models) == 0 {
		return p, nil
	}
	switch {
	case key.Matches(keyMsg, p.keys.Up):
		p.cursor = (p.cursor - 1 + len(p.models)) % len(p.models)
	case key.Matches(keyMsg, p.keys.Down):
		p.cursor = (p.cursor + 1) % len(p.models)
	case key.Matches(keyMsg, p.keys.Select):
		id := p.models[p.cursor].ID
		return p, func() tea.Msg { return ModelSelectedMsg{ID: id} }
	case key.Matches(keyMsg, p.keys.Close):
		return p, func() tea.Msg { return PickerClosedMsg{} }
	}
	return p, nil
}

// View renders the picker box.
func (p ModelPicker) View() string {
	width := maxInt(minInt(p.Width, 72), 30)
	inner := width - p.theme.PickerBox.GetHorizontalFrameSize()

	var b strings.Builder
	b.WriteString(p.theme.PickerTitle.Render("Select Model · " + p.mode.Label()))
	b.WriteString("\n\n")

	for i, m := range p.models {
		check := "  "
		if m.ID == p.current {
			check = "✓ "
		}
		name := util.TruncateWidth(check+m.Icon+" "+m.Name, inner-2)
		line := " " + util.PadRight(name, inner-2) + " "
		if i == p.cursor {
			b.WriteString(p.theme.PickerSelected.Render(line))
		} else {
			b.WriteString(p.theme.PickerItem.Render(line))
		}
		b.WriteString("\n")
		b.WriteString(p.theme.PickerDesc.Render("     " + util.TruncateWidth(m.Description, inner-5)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(p.theme.Muted.Render("↑/↓ move · enter select · esc close"))

	return p.theme.PickerBox.Width(width - p.theme.PickerBox.GetHorizontalBorderSize()).Render(b.String())
}
