// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package chat provides the chat view of the Marina TUI.

The view wraps a *session.Session and drives it from Bubble Tea messages.

# Files

## Model (model.go)

The Model struct holds the session, the dispatcher and the Bubble Tea
widgets: a viewport for the transcript, a text input and a spinner shown
while a request is in flight.

## Update Loop (update.go)

Enter submits through the session's submit guard and starts a DispatchCmd.
The result comes back as a DispatchResultMsg and completes the session
request, appending either the reply or the fallback message. Tab toggles the
search mode, ctrl+o opens the model picker and ctrl+s / ctrl+e export the
transcript.

## View Rendering (view.go)

Header, transcript (or the empty state), input box and status bar, with
the model picker drawn over the transcript while open.

## Commands (commands.go)

tea.Cmd constructors for dispatch, export and notice expiry.
*/
package chat
