// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the state of one chat: the message log, the
// pending input, the loading flag and the current mode and model.
//
// A Session is not safe for concurrent use. The owning UI loop mutates
// it; dispatches run elsewhere and report back through Resolve or Reject.
//
// # Submit flow
//
//	req, ok := s.Submit()     // Idle -> Pending, user message appended
//	if !ok {
//	    return                // blank input or already waiting
//	}
//	text, err := client.Dispatch(ctx, req.Query, req.Mode, req.ModelID)
//	if err != nil {
//	    s.Reject(err)         // Pending -> Idle, fallback bot message
//	} else {
//	    s.Resolve(text)       // Pending -> Idle, bot message appended
//	}
package session
