// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PrathameshUpreti/Marina/internal/model"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClientWithConfig(&ClientConfig{BaseURL: srv.URL})
}

func TestDispatch_RoutesByMode(t *testing.T) {
	tests := []struct {
		mode model.SearchMode
		path string
	}{
		{model.ModeSearch, "/search"},
		{model.ModeResearch, "/reason"},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			var got QueryRequest
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, tt.path, r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				_ = json.NewEncoder(w).Encode(QueryResponse{Response: "ok from " + r.URL.Path})
			})

			text, err := client.Dispatch(context.Background(), "hello", tt.mode, "gpt3.5")
			require.NoError(t, err)
			assert.Equal(t, "ok from "+tt.path, text)
			assert.Equal(t, QueryRequest{Query: "hello", Model: "gpt3.5"}, got)
		})
	}
}

func TestDispatch_ServerErrorFails(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"response":"should be ignored"}`))
	})

	text, err := client.Dispatch(context.Background(), "hello", model.ModeSearch, "gpt3.5")
	require.Error(t, err)
	assert.Empty(t, text)
	assert.True(t, errors.Is(err, ErrRequestFailed))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(err))
	assert.False(t, IsConnectionError(err))
}

func TestDispatch_BadRequestFails(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Empty query"}`))
	})

	_, err := client.Dispatch(context.Background(), "", model.ModeResearch, "gpt3.5")
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Equal(t, http.StatusBadRequest, StatusCode(err))
}

func TestDispatch_UndecodableBodyFails(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	})

	_, err := client.Dispatch(context.Background(), "q", model.ModeSearch, "gpt3.5")
	assert.ErrorIs(t, err, ErrRequestFailed)

	var ce *ClientError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, ErrTypeInvalidResponse, ce.Type)
}

func TestDispatch_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClientWithConfig(&ClientConfig{BaseURL: url})
	_, err := client.Dispatch(context.Background(), "q", model.ModeSearch, "gpt3.5")
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.True(t, IsConnectionError(err))
}

func TestDispatch_CanceledContext(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(QueryResponse{Response: "late"})
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.Dispatch(ctx, "q", model.ModeSearch, "gpt3.5")
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDispatch_EmptyResponseIsSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	text, err := client.Dispatch(context.Background(), "q", model.ModeSearch, "gpt3.5")
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestNewClientWithConfig_Defaults(t *testing.T) {
	c := NewClientWithConfig(&ClientConfig{})
	assert.Equal(t, DefaultBaseURL, c.BaseURL())

	c = NewClientWithConfig(&ClientConfig{BaseURL: "http://example.test:9000/"})
	assert.Equal(t, "http://example.test:9000/reason", c.EndpointURL(model.ModeResearch))

	assert.Equal(t, DefaultBaseURL, NewClient().BaseURL())
}

func TestPing(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	assert.NoError(t, client.Ping(context.Background()))

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	err := NewClientWithConfig(&ClientConfig{BaseURL: url}).Ping(context.Background())
	assert.True(t, IsConnectionError(err))
}

func TestClientError_Message(t *testing.T) {
	err := &ClientError{Type: ErrTypeConnection, Message: "request failed", Cause: errors.New("boom")}
	assert.Equal(t, "request failed: boom", err.Error())
	assert.Equal(t, "connection", err.Type.String())
}
