// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package format

import (
	"iter"
	"regexp"
	"slices"
	"strings"
)

const fence = "```"

var (
	// headerRun matches any run of three or more hashes. Deep headers are
	// flattened to level 2.
	headerRun = regexp.MustCompile(`#{3,}`)

	// emptyHeader matches a line holding only a header marker.
	emptyHeader = regexp.MustCompile(`^#+\s*$`)

	ordinalPrefix = regexp.MustCompile(`^\d+\.`)
)

// Format returns the blocks for text in display order.
//
// The sequence is lazy and can be ranged over any number of times; each
// pass re-reads text from the start. Text before the first header is
// yielded as top-level blocks. Each "# " or "## " header is yielded as a
// Header whose Body holds the blocks up to the next header.
func Format(text string) iter.Seq[Block] {
	return func(yield func(Block) bool) {
		lines := normalize(text)

		var (
			fences fenceTracker
			level  int
			title  string
			start  int
		)
		emit := func(end int) bool {
			body := lines[start:end]
			if level == 0 {
				return lineBlocks(body, yield)
			}
			return yield(Header{
				Level: level,
				Title: title,
				Body:  slices.Collect(iter.Seq[Block](func(y func(Block) bool) { lineBlocks(body, y) })),
			})
		}

		for i, line := range lines {
			if fences.step(line) {
				continue
			}
			lvl, t, ok := headerLine(line)
			if !ok {
				continue
			}
			if !emit(i) {
				return
			}
			level, title, start = lvl, t, i+1
		}
		emit(len(lines))
	}
}

// Blocks collects Format(text) into a slice.
func Blocks(text string) []Block {
	return slices.Collect(Format(text))
}

// SplitBold splits line on "**" markers. Segments at odd positions are
// bold. Empty segments are dropped.
func SplitBold(line string) []Span {
	parts := strings.Split(line, "**")
	spans := make([]Span, 0, len(parts))
	for i, p := range parts {
		if p == "" {
			continue
		}
		spans = append(spans, Span{Text: p, Bold: i%2 == 1})
	}
	return spans
}

// normalize flattens deep headers and drops marker-only lines. Lines inside
// fenced regions are left alone.
func normalize(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	raw := strings.Split(text, "\n")
	out := make([]string, 0, len(raw))

	var fences fenceTracker
	for _, line := range raw {
		if fences.step(line) {
			out = append(out, line)
			continue
		}
		line = headerRun.ReplaceAllString(line, "##")
		if emptyHeader.MatchString(line) {
			continue
		}
		out = append(out, line)
	}
	return out
}

func headerLine(line string) (level int, title string, ok bool) {
	switch {
	case strings.HasPrefix(line, "# "):
		return 1, strings.TrimSpace(line[2:]), true
	case strings.HasPrefix(line, "## "):
		return 2, strings.TrimSpace(line[3:]), true
	}
	return 0, "", false
}

// fenceTracker follows code fence state across lines.
type fenceTracker struct {
	open bool
}

// step reports whether line is part of a fenced region, fence lines
// included.
func (f *fenceTracker) step(line string) bool {
	trimmed := strings.TrimSpace(line)
	if f.open {
		if trimmed == fence {
			f.open = false
		}
		return true
	}
	if strings.HasPrefix(trimmed, fence) {
		f.open = true
		return true
	}
	return false
}

// lineBlocks applies the per-line rules to lines, yielding each block.
// It returns false if yield asked to stop.
func lineBlocks(lines []string, yield func(Block) bool) bool {
	var code *CodeBlock
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if code != nil {
			if trimmed == fence {
				if !yield(*code) {
					return false
				}
				code = nil
				continue
			}
			code.Lines = append(code.Lines, line)
			continue
		}

		if strings.HasPrefix(trimmed, fence) {
			code = &CodeBlock{Language: strings.TrimSpace(trimmed[len(fence):])}
			continue
		}

		b, ok := classify(trimmed)
		if ok && !yield(b) {
			return false
		}
	}

	// Unterminated fence: keep what was collected.
	if code != nil {
		return yield(*code)
	}
	return true
}

func classify(line string) (Block, bool) {
	if line == "" {
		return nil, false
	}
	if strings.HasPrefix(line, "- ") {
		return BulletItem{Text: line[2:]}, true
	}
	if ord := ordinalPrefix.FindString(line); ord != "" {
		return NumberedItem{
			Ordinal: ord,
			Text:    strings.TrimPrefix(line[len(ord):], " "),
		}, true
	}
	if strings.Contains(line, "**") {
		spans := SplitBold(line)
		if len(spans) == 0 {
			return nil, false
		}
		return Paragraph{Spans: spans}, true
	}
	return Paragraph{Spans: []Span{{Text: line}}}, true
}
