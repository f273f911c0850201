// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

// =============================================================================
// DISPATCH MESSAGES
// =============================================================================

// DispatchResultMsg carries the outcome of one backend request.
type DispatchResultMsg struct {
	Text string
	Err  error
}

// =============================================================================
// EXPORT MESSAGES
// =============================================================================

// ExportCompleteMsg reports a finished transcript export.
type ExportCompleteMsg struct {
	Path   string
	Format string
	Err    error
}

// =============================================================================
// STATUS MESSAGES
// =============================================================================

// noticeExpiredMsg clears the status notice with the matching sequence.
type noticeExpiredMsg struct {
	seq int
}
