// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"

	"github.com/PrathameshUpreti/Marina/internal/model"
)

func TestNewTheme_Names(t *testing.T) {
	tests := []struct {
		in       string
		wantName string
		wantDark bool
	}{
		{"dark", "dark", true},
		{"LIGHT", "light", false},
	}
	for _, tt := range tests {
		th := NewTheme(tt.in)
		if th.Name != tt.wantName {
			t.Errorf("NewTheme(%q).Name = %q, want %q", tt.in, th.Name, tt.wantName)
		}
		if th.IsDark != tt.wantDark {
			t.Errorf("NewTheme(%q).IsDark = %v, want %v", tt.in, th.IsDark, tt.wantDark)
		}
	}

	if got := NewTheme("whatever").Name; got != "auto" {
		t.Errorf("unknown theme name should become auto, got %q", got)
	}
}

func TestModeBadge(t *testing.T) {
	th := NewTheme("dark")
	if got := th.ModeBadge(model.ModeSearch); !strings.Contains(got, "Quick Search") {
		t.Errorf("search badge = %q", got)
	}
	if got := th.ModeBadge(model.ModeResearch); !strings.Contains(got, "Deep Research") {
		t.Errorf("research badge = %q", got)
	}
}

func TestRenderStatus(t *testing.T) {
	if got := RenderSuccess("saved"); !strings.Contains(got, "[OK] saved") {
		t.Errorf("RenderSuccess = %q", got)
	}
	if got := RenderError("failed"); !strings.Contains(got, "[X] failed") {
		t.Errorf("RenderError = %q", got)
	}
	if got := RenderInfo("note"); !strings.Contains(got, "[i] note") {
		t.Errorf("RenderInfo = %q", got)
	}
}
