// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package backend

// QueryRequest is the JSON body sent to /search and /reason.
type QueryRequest struct {
	Query string `json:"query"`
	Model string `json:"model"`
}

// QueryResponse is the JSON body of a successful reply.
type QueryResponse struct {
	Response string `json:"response"`
}
