// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/PrathameshUpreti/Marina/internal/model"
)

// FallbackMessage is shown as the bot reply whenever a dispatch fails.
const FallbackMessage = "Sorry, there was an error processing your request. Please try again."

// Dispatcher sends one query to the backend.
type Dispatcher interface {
	Dispatch(ctx context.Context, query string, mode model.SearchMode, modelID string) (string, error)
}

// Request is the query handed to a Dispatcher after a successful Submit.
type Request struct {
	Query   string
	Mode    model.SearchMode
	ModelID string
}

// Session is the state of one chat.
type Session struct {
	id        string
	startedAt time.Time

	messages []model.Message
	input    string
	loading  bool
	pending  Request

	mode    model.SearchMode
	modelID string
}

// New creates an empty session. An unknown mode falls back to search and
// a model the mode does not offer falls back to the mode's first model.
func New(mode model.SearchMode, modelID string) *Session {
	if !mode.Valid() {
		mode = model.DefaultMode
	}
	s := &Session{
		id:        uuid.NewString(),
		startedAt: time.Now(),
		mode:      mode,
		modelID:   modelID,
	}
	s.reconcile()
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// StartedAt returns when the session was created.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// Input returns the current input text.
func (s *Session) Input() string { return s.input }

// SetInput replaces the input text.
func (s *Session) SetInput(text string) { s.input = text }

// Loading reports whether a request is in flight.
func (s *Session) Loading() bool { return s.loading }

// Mode returns the selected search mode.
func (s *Session) Mode() model.SearchMode { return s.mode }

// ModelID returns the selected model id.
func (s *Session) ModelID() string { return s.modelID }

// Model returns the selected model's roster entry.
func (s *Session) Model() model.ModelInfo {
	info, _ := model.FindModel(s.mode, s.modelID)
	return info
}

// Len returns the number of messages in the log.
func (s *Session) Len() int { return len(s.messages) }

// Messages returns a copy of the message log.
func (s *Session) Messages() []model.Message {
	out := make([]model.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Last returns the newest message, if any.
func (s *Session) Last() (model.Message, bool) {
	if len(s.messages) == 0 {
		return model.Message{}, false
	}
	return s.messages[len(s.messages)-1], true
}

// Pending returns the in-flight request while loading.
func (s *Session) Pending() (Request, bool) {
	return s.pending, s.loading
}

// =============================================================================
// MODE AND MODEL SELECTION
// =============================================================================

// SetMode changes the search mode and re-checks the model selection.
// Unknown modes are ignored.
func (s *Session) SetMode(mode model.SearchMode) {
	if !mode.Valid() {
		return
	}
	s.mode = mode
	s.reconcile()
}

// ToggleMode switches between search and research.
func (s *Session) ToggleMode() {
	s.SetMode(s.mode.Toggle())
}

// SetModel selects a model. A model the current mode does not offer is
// replaced by the mode's first model.
func (s *Session) SetModel(id string) {
	s.modelID = id
	s.reconcile()
}

// reconcile keeps modelID inside the current mode's roster.
func (s *Session) reconcile() {
	s.modelID = model.ResolveModelID(s.mode, s.modelID)
}

// =============================================================================
// SUBMIT FLOW
// =============================================================================

// CanSubmit reports whether Submit would start a request.
func (s *Session) CanSubmit() bool {
	return !s.loading && strings.TrimSpace(s.input) != ""
}

// Submit starts a request from the current input. It appends the user
// message, clears the input and sets loading. It returns false and changes
// nothing when the input is blank or a request is already in flight.
func (s *Session) Submit() (Request, bool) {
	if !s.CanSubmit() {
		return Request{}, false
	}
	query := strings.TrimSpace(s.input)
	s.messages = append(s.messages, model.NewUserMessage(query, s.mode, s.modelID))
	s.input = ""
	s.loading = true
	s.pending = Request{Query: query, Mode: s.mode, ModelID: s.modelID}
	return s.pending, true
}

// Resolve completes the in-flight request with the backend's text.
// It returns false if nothing was pending.
func (s *Session) Resolve(text string) bool {
	return s.finish(text)
}

// Reject completes the in-flight request with the fallback message.
// The error itself is not shown. It returns false if nothing was pending.
func (s *Session) Reject(err error) bool {
	return s.finish(FallbackMessage)
}

// Complete resolves or rejects depending on err.
func (s *Session) Complete(text string, err error) bool {
	if err != nil {
		return s.Reject(err)
	}
	return s.Resolve(text)
}

func (s *Session) finish(content string) bool {
	if !s.loading {
		return false
	}
	req := s.pending
	s.messages = append(s.messages, model.NewBotMessage(content, req.Mode, req.ModelID))
	s.loading = false
	s.pending = Request{}
	return true
}

// Exchange runs one full submit flow synchronously: Submit, Dispatch, then
// Resolve or Reject. It returns the dispatch error, or nil; ok is false
// when the submit guard refused the input.
func (s *Session) Exchange(ctx context.Context, d Dispatcher) (ok bool, err error) {
	req, ok := s.Submit()
	if !ok {
		return false, nil
	}
	text, err := d.Dispatch(ctx, req.Query, req.Mode, req.ModelID)
	s.Complete(text, err)
	return true, err
}

// =============================================================================
// TRANSCRIPT
// =============================================================================

// Transcript is a point-in-time copy of a session for export.
type Transcript struct {
	SessionID string          `json:"session_id"`
	StartedAt time.Time       `json:"started_at"`
	Mode      string          `json:"search_type"`
	ModelID   string          `json:"model"`
	Messages  []model.Message `json:"messages"`
}

// Transcript snapshots the session.
func (s *Session) Transcript() Transcript {
	return Transcript{
		SessionID: s.id,
		StartedAt: s.startedAt,
		Mode:      s.mode.String(),
		ModelID:   s.modelID,
		Messages:  s.Messages(),
	}
}
