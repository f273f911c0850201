// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the marina command line.
//
// Running marina without a subcommand starts the TUI. The subcommands
// cover one-shot questions (ask), a line-mode chat (chat), the model roster
// (models), the landing flag (landing), configuration (config), an
// environment check (doctor) and version information (version).
package cli
