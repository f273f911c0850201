// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/PrathameshUpreti/Marina/internal/format"
	"github.com/PrathameshUpreti/Marina/internal/ui/styles"
	"github.com/PrathameshUpreti/Marina/internal/util"
)

// =============================================================================
// BLOCK RENDERER
// =============================================================================

// BlockRenderer turns formatted response blocks into styled terminal text.
type BlockRenderer struct {
	Width int
	theme *styles.Theme
}

// NewBlockRenderer creates a renderer that wraps text at width columns.
func NewBlockRenderer(theme *styles.Theme, width int) BlockRenderer {
	return BlockRenderer{Width: width, theme: theme}
}

// RenderText formats raw response text and renders it.
func (r BlockRenderer) RenderText(text string) string {
	return r.Render(format.Blocks(text))
}

// Render renders blocks in order, separated by newlines.
func (r BlockRenderer) Render(blocks []format.Block) string {
	return strings.Join(r.renderAll(blocks, 0), "\n")
}

func (r BlockRenderer) renderAll(blocks []format.Block, indent int) []string {
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, r.renderBlock(b, indent))
	}
	return out
}

func (r BlockRenderer) renderBlock(b format.Block, indent int) string {
	width := maxInt(r.Width-indent, 10)
	pad := strings.Repeat(" ", indent)

	switch b := b.(type) {
	case format.Header:
		style := r.theme.BlockHeader1
		if b.Level > 1 {
			style = r.theme.BlockHeader2
		}
		parts := []string{pad + style.Render(util.TruncateWidth(b.Title, width))}
		childIndent := indent
		if b.Level > 1 {
			childIndent += 2
		}
		parts = append(parts, r.renderAll(b.Body, childIndent)...)
		return strings.Join(parts, "\n")

	case format.Paragraph:
		return indentLines(r.renderSpans(b.Spans, width), pad)

	case format.BulletItem:
		marker := r.theme.BlockBullet.Render("•") + " "
		return r.renderItem(marker, 2, b.Text, width, pad)

	case format.NumberedItem:
		label := b.Ordinal
		marker := r.theme.BlockOrdinal.Render(label) + " "
		return r.renderItem(marker, util.StringWidth(label)+1, b.Text, width, pad)

	case format.CodeBlock:
		cb := NewCodeBlock(b, r.theme)
		cb.MaxWidth = width
		return indentLines(cb.Render(), pad)
	}
	return ""
}

// renderItem renders a list item with a hanging indent under the marker.
func (r BlockRenderer) renderItem(marker string, markerWidth int, text string, width int, pad string) string {
	body := r.renderSpans(format.SplitBold(text), width-markerWidth)
	lines := strings.Split(body, "\n")
	hang := strings.Repeat(" ", markerWidth)
	for i := range lines {
		if i == 0 {
			lines[i] = pad + marker + lines[i]
		} else {
			lines[i] = pad + hang + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

// renderSpans word-wraps spans and styles bold runs. Words are styled one
// at a time so a line break never lands inside an escape sequence.
func (r BlockRenderer) renderSpans(spans []format.Span, width int) string {
	var words []styledWord
	for _, sp := range spans {
		for _, w := range strings.Fields(sp.Text) {
			words = append(words, styledWord{text: w, bold: sp.Bold})
		}
	}
	if len(words) == 0 {
		return ""
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0
	for _, w := range words {
		for _, piece := range util.WrapWords(w.text, maxInt(width, 1)) {
			pw := util.StringWidth(piece)
			if lineWidth > 0 && lineWidth+1+pw > width {
				lines = append(lines, line.String())
				line.Reset()
				lineWidth = 0
			}
			if lineWidth > 0 {
				line.WriteString(" ")
				lineWidth++
			}
			line.WriteString(r.styleWord(piece, w.bold))
			lineWidth += pw
		}
	}
	lines = append(lines, line.String())
	return strings.Join(lines, "\n")
}

type styledWord struct {
	text string
	bold bool
}

func (r BlockRenderer) styleWord(s string, bold bool) string {
	if bold {
		return r.theme.BlockBold.Render(s)
	}
	return r.theme.BlockText.Render(s)
}
