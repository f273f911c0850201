// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package format

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// PlainText renders blocks without terminal styling, for piped output and
// line-mode chat. Bold markers are dropped and code keeps its fences.
func PlainText(blocks []Block) string {
	var b strings.Builder
	writePlain(&b, blocks, "")
	return strings.TrimRight(b.String(), "\n")
}

func writePlain(b *strings.Builder, blocks []Block, indent string) {
	for _, blk := range blocks {
		switch v := blk.(type) {
		case Header:
			rule := "="
			if v.Level > 1 {
				rule = "-"
			}
			b.WriteString(indent + v.Title + "\n")
			b.WriteString(indent + strings.Repeat(rule, max(runewidth.StringWidth(v.Title), 3)) + "\n")
			sub := indent
			if v.Level > 1 {
				sub += "  "
			}
			writePlain(b, v.Body, sub)
			b.WriteString("\n")
		case Paragraph:
			b.WriteString(indent + v.Text() + "\n")
		case BulletItem:
			b.WriteString(indent + "• " + stripBold(v.Text) + "\n")
		case NumberedItem:
			b.WriteString(indent + v.Ordinal + " " + stripBold(v.Text) + "\n")
		case CodeBlock:
			b.WriteString(indent + fence + v.Language + "\n")
			for _, l := range v.Lines {
				b.WriteString(l + "\n")
			}
			b.WriteString(indent + fence + "\n")
		}
	}
}

func stripBold(s string) string {
	var b strings.Builder
	for _, sp := range SplitBold(s) {
		b.WriteString(sp.Text)
	}
	return b.String()
}
