// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PrathameshUpreti/Marina/internal/model"
	"github.com/PrathameshUpreti/Marina/internal/session"
)

var fixedNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func sampleTranscript(t *testing.T) session.Transcript {
	t.Helper()
	s := session.New(model.ModeSearch, "bedrock")
	s.SetInput("What is Go?")
	_, ok := s.Submit()
	require.True(t, ok)
	s.Resolve("# Go\nA **compiled** language.")

	s.SetMode(model.ModeResearch)
	s.SetInput("history of go")
	_, _ = s.Submit()
	s.Reject(nil)
	return s.Transcript()
}

func testOptions(dir string) *Options {
	return &Options{OutputDir: dir, IncludeMetadata: true, Now: func() time.Time { return fixedNow }}
}

func TestMarkdownExporter(t *testing.T) {
	tr := sampleTranscript(t)
	out, err := NewMarkdownExporter(testOptions("")).Export(tr)
	require.NoError(t, err)
	md := string(out)

	assert.Contains(t, md, "session: "+tr.SessionID)
	assert.Contains(t, md, "messages: 4")
	assert.Contains(t, md, "# Marina AI Chat")
	assert.Contains(t, md, "**You** · 🔍 Quick Search · Claude-3-Sonnet : AWS")
	assert.Contains(t, md, "> What is Go?")
	assert.Contains(t, md, "# Go\nA **compiled** language.")
	assert.Contains(t, md, "**Marina** · 📚 Deep Research · GPT-3.5 Turbo : OpenAI")
	assert.Contains(t, md, session.FallbackMessage)
	assert.Equal(t, 3, strings.Count(md, "\n---\n\n")-1, "separators between four messages")
}

func TestMarkdownExporter_NoMetadata(t *testing.T) {
	out, err := NewMarkdownExporter(&Options{}).Export(sampleTranscript(t))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "# Marina AI Chat"))
}

func TestJSONExporter(t *testing.T) {
	tr := sampleTranscript(t)
	out, err := NewJSONExporter(testOptions("")).Export(tr)
	require.NoError(t, err)

	var doc struct {
		SessionID  string          `json:"session_id"`
		ExportedAt time.Time       `json:"exported_at"`
		Messages   []model.Message `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Equal(t, tr.SessionID, doc.SessionID)
	assert.True(t, fixedNow.Equal(doc.ExportedAt))
	require.Len(t, doc.Messages, 4)
	assert.Equal(t, model.RoleBot, doc.Messages[1].Role)
	assert.Equal(t, model.ModeResearch, doc.Messages[3].Mode)
}

func TestExportToFile(t *testing.T) {
	dir := t.TempDir()
	tr := sampleTranscript(t)

	path, err := ExportToFile(tr, NewMarkdownExporter(nil), testOptions(dir))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "marina_What_is_Go-_20250314_092653.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "What is Go?")
}

func TestExportToFile_Empty(t *testing.T) {
	s := session.New(model.ModeSearch, "gpt3.5")
	_, err := ExportToFile(s.Transcript(), NewJSONExporter(nil), testOptions(t.TempDir()))
	assert.ErrorIs(t, err, ErrEmptyTranscript)
}

func TestForFormat(t *testing.T) {
	e, err := ForFormat("md", nil)
	require.NoError(t, err)
	assert.Equal(t, ".md", e.FileExtension())
	assert.Equal(t, "text/markdown", e.MimeType())

	e, err = ForFormat("JSON", nil)
	require.NoError(t, err)
	assert.Equal(t, ".json", e.FileExtension())

	_, err = ForFormat("html", nil)
	assert.Error(t, err)
}

func TestSanitizeFilename(t *testing.T) {
	tests := map[string]string{
		"a/b:c":                 "a-b-c",
		"hello world":           "hello_world",
		"":                      "chat",
		"   ":                   "chat",
		strings.Repeat("x", 60): strings.Repeat("x", 40),
	}
	for in, want := range tests {
		assert.Equal(t, want, sanitizeFilename(in), in)
	}
}
