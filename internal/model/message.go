// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleBot:
		return "Marina"
	default:
		return string(r)
	}
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message is one entry in the chat log. Messages are never edited after
// they are appended.
type Message struct {
	ID        string     `json:"id"`
	Role      Role       `json:"role"`
	Content   string     `json:"content"`
	Mode      SearchMode `json:"search_type"`
	ModelID   string     `json:"model"`
	Timestamp time.Time  `json:"timestamp"`
}

// NewMessage creates a message stamped with a fresh ID and the current time.
func NewMessage(role Role, content string, mode SearchMode, modelID string) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Mode:      mode,
		ModelID:   modelID,
		Timestamp: time.Now(),
	}
}

// NewUserMessage creates a user message.
func NewUserMessage(content string, mode SearchMode, modelID string) Message {
	return NewMessage(RoleUser, content, mode, modelID)
}

// NewBotMessage creates a bot message.
func NewBotMessage(content string, mode SearchMode, modelID string) Message {
	return NewMessage(RoleBot, content, mode, modelID)
}

// IsUser returns true if this is a user message.
func (m Message) IsUser() bool {
	return m.Role == RoleUser
}

// IsBot returns true if this is a bot message.
func (m Message) IsBot() bool {
	return m.Role == RoleBot
}

// FormattedTime returns the message time as HH:MM.
func (m Message) FormattedTime() string {
	return m.Timestamp.Format("15:04")
}

// ModelName returns the display name of the message's model, or the raw id
// if the roster does not list it.
func (m Message) ModelName() string {
	if info, ok := FindModel(m.Mode, m.ModelID); ok {
		return info.Name
	}
	return m.ModelID
}
