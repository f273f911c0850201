// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/PrathameshUpreti/Marina/internal/format"
	"github.com/PrathameshUpreti/Marina/internal/ui/styles"
)

// =============================================================================
// CODE BLOCK RENDERER
// =============================================================================

// CodeBlock renders one fenced code segment of a response.
type CodeBlock struct {
	Language    string
	Lines       []string
	MaxWidth    int
	LineNumbers bool
	theme       *styles.Theme
}

// NewCodeBlock wraps a formatted code block for display.
func NewCodeBlock(block format.CodeBlock, theme *styles.Theme) CodeBlock {
	return CodeBlock{
		Language:    block.Language,
		Lines:       block.Lines,
		MaxWidth:    80,
		LineNumbers: true,
		theme:       theme,
	}
}

// Render highlights the code and frames it. The source lines are passed
// to the highlighter unchanged.
func (c CodeBlock) Render() string {
	code := strings.Join(c.Lines, "\n")
	lines := strings.Split(highlightCode(code, c.Language), "\n")

	// chroma appends a reset sequence on a trailing line for some lexers
	if len(lines) > len(c.Lines) && len(c.Lines) > 0 {
		tail := strings.Join(lines[len(c.Lines)-1:], "")
		lines = append(lines[:len(c.Lines)-1], tail)
	}

	if c.LineNumbers {
		width := len(strconv.Itoa(len(lines)))
		numStyle := c.theme.CodeLineNum.
			Width(width).
			Align(lipgloss.Right).
			MarginRight(1)
		for i, line := range lines {
			lines[i] = numStyle.Render(strconv.Itoa(i+1)) + line
		}
	}

	body := strings.Join(lines, "\n")
	if c.Language != "" {
		body = c.theme.CodeLangBadge.Render(c.Language) + "\n" + body
	}

	maxWidth := maxInt(c.MaxWidth-2, 20)
	return c.theme.CodeBlock.MaxWidth(maxWidth).Render(body)
}

// =============================================================================
// SYNTAX HIGHLIGHTING (Chroma-based)
// =============================================================================

// highlightCode applies terminal syntax highlighting. It returns code
// unchanged when no lexer or formatter can be used.
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromaStyles.Get("monokai")
	if style == nil {
		style = chromaStyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
