// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package backend provides the HTTP client that sends chat queries to the
// Marina search backend.
//
// Each query is a single POST to /search or /reason depending on the
// search mode. The client never retries and never inspects the body of a
// failed response: every failure surfaces as an error matching
// ErrRequestFailed.
//
// Example:
//
//	client := backend.NewClientWithConfig(&backend.ClientConfig{
//	    BaseURL: "http://localhost:5000",
//	})
//	text, err := client.Dispatch(ctx, "what is rust?", model.ModeSearch, "gpt3.5")
//	if errors.Is(err, backend.ErrRequestFailed) {
//	    // show the fallback message
//	}
package backend
