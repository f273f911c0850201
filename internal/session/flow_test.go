// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PrathameshUpreti/Marina/internal/backend"
	"github.com/PrathameshUpreti/Marina/internal/format"
	"github.com/PrathameshUpreti/Marina/internal/model"
	"github.com/PrathameshUpreti/Marina/internal/session"
)

// Submitting against a live HTTP backend renders the reply as blocks.
func TestSubmitFlow_EndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(backend.QueryResponse{Response: "# Answer\nHi there"})
	}))
	defer srv.Close()

	client := backend.NewClientWithConfig(&backend.ClientConfig{BaseURL: srv.URL})
	s := session.New(model.ModeSearch, model.DefaultModelID)
	s.SetInput("hello")

	ok, err := s.Exchange(context.Background(), client)
	require.True(t, ok)
	require.NoError(t, err)

	msgs := s.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, model.RoleUser, msgs[0].Role)
	assert.Equal(t, "hello", msgs[0].Content)
	assert.Equal(t, model.RoleBot, msgs[1].Role)

	blocks := format.Blocks(msgs[1].Content)
	assert.Equal(t, []format.Block{
		format.Header{Level: 1, Title: "Answer", Body: []format.Block{
			format.Paragraph{Spans: []format.Span{{Text: "Hi there"}}},
		}},
	}, blocks)
}

func TestSubmitFlow_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := backend.NewClientWithConfig(&backend.ClientConfig{BaseURL: srv.URL})
	s := session.New(model.ModeResearch, model.DefaultModelID)
	s.SetInput("deep question")

	_, err := s.Exchange(context.Background(), client)
	assert.ErrorIs(t, err, backend.ErrRequestFailed)

	last, ok := s.Last()
	require.True(t, ok)
	assert.Equal(t, session.FallbackMessage, last.Content)
	assert.False(t, s.Loading())
	assert.False(t, s.CanSubmit(), "input was cleared")

	s.SetInput("again")
	assert.True(t, s.CanSubmit())
}
