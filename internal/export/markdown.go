// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/PrathameshUpreti/Marina/internal/model"
	"github.com/PrathameshUpreti/Marina/internal/session"
)

// =============================================================================
// MARKDOWN EXPORTER
// =============================================================================

// MarkdownExporter exports transcripts to Markdown. Bot replies are copied
// as-is since they already use Markdown.
type MarkdownExporter struct {
	options *Options
}

// NewMarkdownExporter creates a new Markdown exporter.
func NewMarkdownExporter(opts *Options) *MarkdownExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &MarkdownExporter{options: opts}
}

// Export converts a transcript to Markdown.
func (e *MarkdownExporter) Export(t session.Transcript) ([]byte, error) {
	if len(t.Messages) == 0 {
		return nil, ErrEmptyTranscript
	}

	var sb strings.Builder

	if e.options.IncludeMetadata {
		sb.WriteString("---\n")
		sb.WriteString(fmt.Sprintf("session: %s\n", t.SessionID))
		sb.WriteString(fmt.Sprintf("started: %s\n", t.StartedAt.Format(time.RFC3339)))
		sb.WriteString(fmt.Sprintf("exported: %s\n", e.options.now().Format(time.RFC3339)))
		sb.WriteString(fmt.Sprintf("messages: %d\n", len(t.Messages)))
		sb.WriteString("generator: marina\n")
		sb.WriteString("---\n\n")
	}

	sb.WriteString("# Marina AI Chat\n\n")

	for i, msg := range t.Messages {
		sb.WriteString(e.heading(msg))
		sb.WriteString("\n\n")

		content := strings.TrimRight(msg.Content, "\n")
		if msg.IsUser() {
			content = quote(content)
		}
		sb.WriteString(content)
		sb.WriteString("\n\n")

		if i < len(t.Messages)-1 {
			sb.WriteString("---\n\n")
		}
	}

	return []byte(sb.String()), nil
}

// heading renders "**You** · 🔍 Quick Search · GPT-3.5 Turbo : OpenAI · 14:02".
func (e *MarkdownExporter) heading(msg model.Message) string {
	parts := []string{"**" + msg.Role.DisplayName() + "**", msg.Mode.Label(), msg.ModelName()}
	if e.options.IncludeTimestamps {
		parts = append(parts, msg.FormattedTime())
	}
	return strings.Join(parts, " · ")
}

// quote prefixes every line with "> ".
func quote(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l == "" {
			lines[i] = ">"
		} else {
			lines[i] = "> " + l
		}
	}
	return strings.Join(lines, "\n")
}

// FileExtension returns the file extension for Markdown.
func (e *MarkdownExporter) FileExtension() string {
	return ".md"
}

// MimeType returns the MIME type for Markdown.
func (e *MarkdownExporter) MimeType() string {
	return "text/markdown"
}
