// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes the in-memory chat log to a file.
//
// Two formats are supported: Markdown for reading and JSON for tooling.
// Exports are written atomically; nothing is ever read back.
//
// # Usage
//
//	path, err := export.ExportToFile(sess.Transcript(), export.NewMarkdownExporter(nil), nil)
package export
