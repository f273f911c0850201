// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// StringWidth returns the number of terminal cells s occupies. Emoji and
// CJK characters count as two.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// TruncateWidth shortens s to at most maxWidth cells, ending with "..."
// when something was cut.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// PadRight pads s with spaces to width cells.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// WrapWords wraps text to lines of at most width cells, breaking on
// spaces. Existing newlines are kept. Words wider than width are split.
func WrapWords(text string, width int) []string {
	if width <= 0 {
		return strings.Split(text, "\n")
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		var cur strings.Builder
		curWidth := 0
		flush := func() {
			lines = append(lines, cur.String())
			cur.Reset()
			curWidth = 0
		}

		for _, w := range words {
			ww := runewidth.StringWidth(w)
			for ww > width {
				if curWidth > 0 {
					flush()
				}
				head := runewidth.Truncate(w, width, "")
				if head == "" {
					// A single rune wider than width.
					head = string([]rune(w)[:1])
				}
				lines = append(lines, head)
				w = w[len(head):]
				ww = runewidth.StringWidth(w)
			}
			if ww == 0 {
				continue
			}
			switch {
			case curWidth == 0:
				cur.WriteString(w)
				curWidth = ww
			case curWidth+1+ww <= width:
				cur.WriteByte(' ')
				cur.WriteString(w)
				curWidth += 1 + ww
			default:
				flush()
				cur.WriteString(w)
				curWidth = ww
			}
		}
		if curWidth > 0 {
			flush()
		}
	}
	return lines
}
