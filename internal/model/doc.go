// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures shared by the chat session,
// the backend client and the views.
//
// # Key Types
//
//   - SearchMode: which backend pipeline a query goes to (search or research)
//   - Message: one entry in the chat log, from the user or the bot
//   - ModelInfo: a selectable backend model, listed per search mode
//   - Role: message author (user, bot)
//
// # Usage
//
// Pick a model that is valid for the current mode:
//
//	id := model.ResolveModelID(model.ModeResearch, "bedrock") // "gpt3.5"
//	info, _ := model.FindModel(model.ModeResearch, id)
//	fmt.Println(info.Name)
package model
