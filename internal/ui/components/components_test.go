// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/PrathameshUpreti/Marina/internal/model"
	"github.com/PrathameshUpreti/Marina/internal/ui/styles"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

func testTheme() *styles.Theme {
	return styles.NewTheme("dark")
}

// =============================================================================
// BLOCK RENDERER TESTS
// =============================================================================

func TestBlockRenderer_AllKinds(t *testing.T) {
	r := NewBlockRenderer(testTheme(), 60)
	out := stripANSI(r.RenderText("# Title\nHello **world**\n## Steps\n- item\n1. first\n```go\nfmt.Println(1)\n```"))

	for _, want := range []string{"Title", "Hello world", "Steps", "• item", "1. first", "go", "fmt.Println(1)"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "**") || strings.Contains(out, "```") {
		t.Errorf("markers should not be rendered:\n%s", out)
	}
}

func TestBlockRenderer_NestedUnderLevelTwo(t *testing.T) {
	r := NewBlockRenderer(testTheme(), 60)
	out := stripANSI(r.RenderText("## Steps\n- item"))
	if !strings.Contains(out, "\n  • item") {
		t.Errorf("level-2 body should be indented:\n%q", out)
	}
}

func TestBlockRenderer_Wraps(t *testing.T) {
	r := NewBlockRenderer(testTheme(), 20)
	out := r.RenderText(strings.Repeat("lorem ipsum ", 10) + "\n- " + strings.Repeat("dolor ", 8))
	for _, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w > 20 {
			t.Errorf("line %q is %d wide, want <= 20", stripANSI(line), w)
		}
	}
}

func TestBlockRenderer_Empty(t *testing.T) {
	if got := NewBlockRenderer(testTheme(), 40).RenderText("\n\n"); got != "" {
		t.Errorf("blank text rendered %q, want empty", got)
	}
}

// =============================================================================
// HEADER TESTS
// =============================================================================

func TestHeader_View(t *testing.T) {
	h := NewHeader(testTheme())
	h.SetWidth(80)

	out := stripANSI(h.View())
	if !strings.Contains(out, Brand) {
		t.Errorf("header missing brand: %q", out)
	}
	if !strings.Contains(out, NoModelLabel) {
		t.Errorf("header without model should show %q: %q", NoModelLabel, out)
	}

	h.SetModel("GPT-3.5 Turbo : OpenAI")
	h.SetMode(model.ModeResearch)
	out = stripANSI(h.View())
	if !strings.Contains(out, "GPT-3.5 Turbo") || !strings.Contains(out, "Deep Research") {
		t.Errorf("header should show model and mode: %q", out)
	}
	if w := lipgloss.Width(h.View()); w != 80 {
		t.Errorf("header width = %d, want 80", w)
	}
}

// =============================================================================
// LANDING TESTS
// =============================================================================

func TestLanding_EnterEmitsGetStarted(t *testing.T) {
	l := NewLanding(testTheme())
	_, cmd := l.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should produce a command")
	}
	if _, ok := cmd().(GetStartedMsg); !ok {
		t.Errorf("enter produced %T, want GetStartedMsg", cmd())
	}

	_, cmd = l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if cmd != nil {
		t.Error("other keys should be ignored")
	}
}

func TestLanding_View(t *testing.T) {
	for _, size := range [][2]int{{120, 40}, {60, 30}, {50, 16}} {
		l := NewLanding(testTheme())
		l.SetSize(size[0], size[1])
		out := stripANSI(l.View())
		for _, want := range []string{Brand, "Smart Search", "Research", "Insights", "Get Started"} {
			if !strings.Contains(out, want) {
				t.Errorf("%dx%d landing missing %q", size[0], size[1], want)
			}
		}
	}
}

// =============================================================================
// MODEL PICKER TESTS
// =============================================================================

func TestModelPicker_Navigation(t *testing.T) {
	p := NewModelPicker(testTheme(), model.ModeSearch, "bedrock")
	if p.Cursor() != 1 {
		t.Fatalf("cursor = %d, want 1 (current model)", p.Cursor())
	}

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	if p.Cursor() != 0 {
		t.Errorf("cursor should wrap to 0, got %d", p.Cursor())
	}
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyUp})
	if p.Cursor() != 2 {
		t.Errorf("cursor should wrap to last, got %d", p.Cursor())
	}

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msg, ok := cmd().(ModelSelectedMsg)
	if !ok || msg.ID != "openrouter" {
		t.Errorf("enter produced %#v, want ModelSelectedMsg{openrouter}", cmd())
	}

	_, cmd = p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := cmd().(PickerClosedMsg); !ok {
		t.Error("esc should close the picker")
	}
}

func TestModelPicker_View(t *testing.T) {
	p := NewModelPicker(testTheme(), model.ModeResearch, "gpt3.5")
	out := stripANSI(p.View())
	if !strings.Contains(out, "Deep Research") {
		t.Errorf("picker should name the mode: %s", out)
	}
	for _, m := range model.ModelsFor(model.ModeResearch) {
		if !strings.Contains(out, m.Name) {
			t.Errorf("picker missing %q", m.Name)
		}
	}
	if !strings.Contains(out, "✓") {
		t.Error("current model should be checked")
	}
}

// =============================================================================
// STATUS BAR TESTS
// =============================================================================

func TestStatusBar_View(t *testing.T) {
	s := NewStatusBar(testTheme())
	s.Width = 100
	if out := stripANSI(s.View()); !strings.Contains(out, "Ready") || !strings.Contains(out, "ctrl+o") {
		t.Errorf("ready status bar = %q", out)
	}

	s.Status = StatusThinking
	s.Spinner = "⣾"
	if out := stripANSI(s.View()); !strings.Contains(out, "⣾ Thinking...") {
		t.Errorf("thinking status bar = %q", out)
	}

	s.SetNotice("Exported to a.md", false)
	if out := stripANSI(s.View()); !strings.Contains(out, "[OK] Exported to a.md") {
		t.Errorf("notice status bar = %q", out)
	}
	s.ClearNotice()

	s.Width = 30
	if w := lipgloss.Width(s.View()); w > 30 {
		t.Errorf("narrow status bar width = %d, want <= 30", w)
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		s    Status
		want string
	}{
		{StatusReady, "Ready"},
		{StatusThinking, "Thinking..."},
		{StatusError, "Error"},
		{Status(9), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.s.String(); got != tc.want {
			t.Errorf("Status(%d).String() = %q, want %q", tc.s, got, tc.want)
		}
	}
}

// =============================================================================
// MESSAGE AND EMPTY STATE TESTS
// =============================================================================

func TestMessageBubble_View(t *testing.T) {
	theme := testTheme()

	user := NewMessageBubble(model.NewUserMessage("What is Go?", model.ModeSearch, "gpt3.5"), theme)
	out := stripANSI(user.View())
	for _, want := range []string{"You", "Quick Search", "GPT-3.5 Turbo", "What is Go?"} {
		if !strings.Contains(out, want) {
			t.Errorf("user bubble missing %q:\n%s", want, out)
		}
	}

	bot := NewMessageBubble(model.NewBotMessage("# Go\nA **compiled** language.", model.ModeResearch, "bedrock"), theme)
	bot.ShowTimestamp = false
	out = stripANSI(bot.View())
	for _, want := range []string{"Marina", "Deep Research", "Go", "A compiled language."} {
		if !strings.Contains(out, want) {
			t.Errorf("bot bubble missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "# Go") {
		t.Errorf("bot content should be formatted:\n%s", out)
	}
}

func TestEmptyState_View(t *testing.T) {
	e := NewEmptyState(testTheme())
	e.Width = 100
	out := stripANSI(e.View())
	for _, want := range []string{EmptyStateTitle, EmptyStateSubtitle, "Quick Search", "Deep Research",
		"Get instant answers to your questions", "Comprehensive analysis and insights"} {
		if !strings.Contains(out, want) {
			t.Errorf("empty state missing %q", want)
		}
	}
}

func TestCodeBlock_KeepsLines(t *testing.T) {
	cb := CodeBlock{Language: "", Lines: []string{"  indented", "# not a header"}, MaxWidth: 60, LineNumbers: true, theme: testTheme()}
	out := stripANSI(cb.Render())
	if !strings.Contains(out, "  indented") || !strings.Contains(out, "# not a header") {
		t.Errorf("code lines should be verbatim:\n%s", out)
	}
	if !strings.Contains(out, "1") || !strings.Contains(out, "2") {
		t.Errorf("line numbers missing:\n%s", out)
	}
}
