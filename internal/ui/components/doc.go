// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the visual building blocks of the Marina TUI.

Components are plain structs with a View method, built on Lip Gloss and
styled through a shared *styles.Theme. Interactive ones (Landing,
ModelPicker) also implement the Bubble Tea Update contract.

# Display Components

Header (header.go) - Brand, selected model and current mode.
StatusBar (statusbar.go) - Loading state, notices and key hints.
MessageBubble (message.go) - One chat message with its mode badge.
BlockRenderer (blocks.go) - Renders formatted response blocks.
CodeBlock (codeblock.go) - Syntax-highlighted code using Chroma.
EmptyState (emptystate.go) - Shown before the first message.

# Interactive Components

Landing (landing.go) - The one-time landing screen.
ModelPicker (modelpicker.go) - Model selection overlay.
*/
package components
