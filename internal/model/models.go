// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// MODEL INFO TYPE
// =============================================================================

// ModelInfo describes a backend model the user can pick.
type ModelInfo struct {
	// ID is the value sent as "model" in the request body
	ID string `json:"id"`

	// Name is the human-readable display name
	Name string `json:"name"`

	// Description is a brief explanation of the model's strengths
	Description string `json:"description"`

	// Icon is an emoji shown in the picker
	Icon string `json:"icon"`
}

// DefaultModelID is the model a fresh session starts with.
const DefaultModelID = "gpt3.5"

// =============================================================================
// MODEL ROSTER
// =============================================================================

// roster lists the selectable models per mode, in display order. The first
// entry of each list is the fallback when a selection is not available.
var roster = map[SearchMode][]ModelInfo{
	ModeSearch: {
		{
			ID:          "gpt3.5",
			Name:        "GPT-3.5 Turbo : OpenAI",
			Description: "Fast and reliable for everyday tasks",
			Icon:        "🤖",
		},
		{
			ID:          "bedrock",
			Name:        "Claude-3-Sonnet : AWS",
			Description: "Advanced reasoning and analysis",
			Icon:        "🌟",
		},
		{
			ID:          "openrouter",
			Name:        "Deepseek R1 : OpenRouter",
			Description: "Balanced performance and efficiency",
			Icon:        "🔍",
		},
	},
	ModeResearch: {
		{
			ID:          "gpt3.5",
			Name:        "GPT-3.5 Turbo : OpenAI",
			Description: "Research and analysis",
			Icon:        "🤖",
		},
	},
}

// ModelsFor returns a copy of the roster for mode. Unknown modes get the
// search roster.
func ModelsFor(mode SearchMode) []ModelInfo {
	list, ok := roster[mode]
	if !ok {
		list = roster[ModeSearch]
	}
	out := make([]ModelInfo, len(list))
	copy(out, list)
	return out
}

// FindModel looks up id in the roster for mode.
func FindModel(mode SearchMode, id string) (ModelInfo, bool) {
	for _, m := range ModelsFor(mode) {
		if m.ID == id {
			return m, true
		}
	}
	return ModelInfo{}, false
}

// ResolveModelID returns id if mode offers it, otherwise the first model of
// the mode's roster.
func ResolveModelID(mode SearchMode, id string) string {
	if _, ok := FindModel(mode, id); ok {
		return id
	}
	return ModelsFor(mode)[0].ID
}

// IsKnownModel reports whether any mode offers id.
func IsKnownModel(id string) bool {
	for _, mode := range SearchModes() {
		if _, ok := FindModel(mode, id); ok {
			return true
		}
	}
	return false
}
