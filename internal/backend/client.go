// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/PrathameshUpreti/Marina/internal/model"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ErrRequestFailed matches every error returned by Dispatch.
var ErrRequestFailed = errors.New("backend request failed")

// ErrorType categorizes client errors for logging.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeConnection
	ErrTypeStatus
	ErrTypeInvalidResponse
)

// String returns a short name for the error type.
func (t ErrorType) String() string {
	switch t {
	case ErrTypeConnection:
		return "connection"
	case ErrTypeStatus:
		return "status"
	case ErrTypeInvalidResponse:
		return "invalid_response"
	default:
		return "unknown"
	}
}

// ClientError represents a failed backend call. The detail is kept for
// logs only; callers treat all of them alike.
type ClientError struct {
	Type       ErrorType
	Message    string
	StatusCode int
	Cause      error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// Is makes every ClientError match ErrRequestFailed.
func (e *ClientError) Is(target error) bool {
	return target == ErrRequestFailed
}

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// DefaultBaseURL is the backend origin used when none is configured.
const DefaultBaseURL = "http://localhost:5000"

// ClientConfig holds configuration options for the backend client.
type ClientConfig struct {
	// BaseURL is the backend origin (default: http://localhost:5000)
	BaseURL string

	// Timeout bounds each request. Zero means no timeout; research
	// queries can take minutes.
	Timeout time.Duration

	// UserAgent is sent with every request when set
	UserAgent string

	// Logger receives request diagnostics (default: no-op)
	Logger *zap.Logger
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL: DefaultBaseURL,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client sends queries to the backend. It is safe for concurrent use.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
	log        *zap.Logger
}

// NewClient creates a client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")

	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		log: log.Named("backend"),
	}
}

// BaseURL returns the configured origin.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// EndpointURL returns the full URL queried for mode.
func (c *Client) EndpointURL(mode model.SearchMode) string {
	return c.config.BaseURL + mode.Endpoint()
}

// =============================================================================
// DISPATCH
// =============================================================================

// Dispatch sends query to the endpoint for mode and returns the response
// text. Any failure (transport, non-2xx status, undecodable body) returns
// a *ClientError that matches ErrRequestFailed.
func (c *Client) Dispatch(ctx context.Context, query string, mode model.SearchMode, modelID string) (string, error) {
	url := c.EndpointURL(mode)
	start := time.Now()

	body, err := json.Marshal(QueryRequest{Query: query, Model: modelID})
	if err != nil {
		return "", c.fail(url, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to marshal request", Cause: err})
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", c.fail(url, &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err})
	}
	req.Header.Set("Content-Type", "application/json")
	if c.config.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}

	c.log.Debug("dispatching query",
		zap.String("url", url),
		zap.String("mode", mode.String()),
		zap.String("model", modelID),
		zap.Int("query_len", len(query)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", c.fail(url, &ClientError{Type: ErrTypeConnection, Message: "request failed", Cause: err})
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused; the body is not inspected.
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", c.fail(url, &ClientError{
			Type:       ErrTypeStatus,
			Message:    "unexpected status: " + resp.Status,
			StatusCode: resp.StatusCode,
		})
	}

	var result QueryResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", c.fail(url, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err})
	}

	c.log.Debug("query answered",
		zap.String("url", url),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("response_len", len(result.Response)))

	return result.Response, nil
}

func (c *Client) fail(url string, err *ClientError) error {
	c.log.Warn("backend request failed",
		zap.String("url", url),
		zap.String("type", err.Type.String()),
		zap.Int("status", err.StatusCode),
		zap.Error(err))
	return err
}

// =============================================================================
// HEALTH CHECK
// =============================================================================

// Ping checks that the backend origin answers HTTP at all. Any response,
// including 404, counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL, nil)
	if err != nil {
		return &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ClientError{Type: ErrTypeConnection, Message: "backend not reachable", Cause: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// IsConnectionError reports whether err came from the transport layer.
func IsConnectionError(err error) bool {
	var ce *ClientError
	return errors.As(err, &ce) && ce.Type == ErrTypeConnection
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce.StatusCode
	}
	return 0
}
