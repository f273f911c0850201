// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package format turns raw backend response text into an ordered sequence
// of render blocks.
//
// The accepted syntax is a small Markdown-like subset: level 1 and 2
// headers, bullet and numbered list items, inline bold, and fenced code
// blocks. Everything else is a plain paragraph. Formatting is pure and
// total: any input yields a (possibly empty) block sequence.
package format

import "strings"

// Block is one renderable unit produced by Format.
// The concrete types are Header, Paragraph, BulletItem, NumberedItem and
// CodeBlock.
type Block interface {
	block()
}

// Span is a run of paragraph text that is either plain or bold.
type Span struct {
	Text string
	Bold bool
}

// Header is a level 1 or level 2 section. Body holds the blocks of the
// section that follows the header line.
type Header struct {
	Level int
	Title string
	Body  []Block
}

// Paragraph is a single line of text split into plain and bold spans.
type Paragraph struct {
	Spans []Span
}

// BulletItem is a line that started with "- ".
type BulletItem struct {
	Text string
}

// NumberedItem is a line that started with digits and a period.
// Ordinal keeps the period, e.g. "3.".
type NumberedItem struct {
	Ordinal string
	Text    string
}

// CodeBlock is a fenced region. Lines are kept verbatim.
type CodeBlock struct {
	Language string
	Lines    []string
}

func (Header) block()       {}
func (Paragraph) block()    {}
func (BulletItem) block()   {}
func (NumberedItem) block() {}
func (CodeBlock) block()    {}

// Code returns the block's lines joined with newlines.
func (c CodeBlock) Code() string {
	return strings.Join(c.Lines, "\n")
}

// Text returns the paragraph text without bold markers.
func (p Paragraph) Text() string {
	var b strings.Builder
	for _, s := range p.Spans {
		b.WriteString(s.Text)
	}
	return b.String()
}
