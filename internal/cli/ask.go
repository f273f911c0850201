// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/PrathameshUpreti/Marina/internal/backend"
	"github.com/PrathameshUpreti/Marina/internal/format"
	"github.com/PrathameshUpreti/Marina/internal/session"
	"github.com/PrathameshUpreti/Marina/internal/ui/components"
	"github.com/PrathameshUpreti/Marina/internal/ui/styles"
)

// replyRenderer turns a bot reply into terminal output.
type replyRenderer struct {
	raw     bool
	glamour bool
	styled  bool
	width   int
	theme   *styles.Theme
}

func newReplyRenderer(out io.Writer, themeName string, raw, useGlamour bool) *replyRenderer {
	return &replyRenderer{
		raw:     raw,
		glamour: useGlamour,
		styled:  IsTerminal(out),
		width:   TerminalWidth(out),
		theme:   styles.NewTheme(themeName),
	}
}

// Render formats text. Raw output is returned untouched, glamour renders
// it as markdown, a TTY gets styled blocks and anything else plain text.
func (r *replyRenderer) Render(text string) string {
	switch {
	case r.raw:
		return text
	case r.glamour:
		if out, err := r.renderGlamour(text); err == nil {
			return strings.TrimRight(out, "\n")
		}
	}
	if r.styled {
		return components.NewBlockRenderer(r.theme, r.width).RenderText(text)
	}
	return format.PlainText(format.Blocks(text))
}

func (r *replyRenderer) renderGlamour(text string) (string, error) {
	style := glamour.WithAutoStyle()
	if !r.styled {
		style = glamour.WithStandardStyle("notty")
	}
	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(r.width))
	if err != nil {
		return "", err
	}
	return renderer.Render(text)
}

// =============================================================================
// ASK COMMAND
// =============================================================================

func newAskCmd(root *rootOptions) *cobra.Command {
	var (
		raw        bool
		useGlamour bool
	)

	cmd := &cobra.Command{
		Use:   "ask <query...>",
		Short: "Ask a single question and print the answer",
		Long: `Send one query to the backend and print the reply.

The reply is formatted for the terminal when stdout is a TTY and as plain
text otherwise. On failure the standard apology is printed and the exit
status is 1.`,
		Example: `  marina ask what is a reverse proxy
  marina ask --mode research --model openrouter "history of TCP"
  marina ask --raw "list three sorting algorithms" > out.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(cmd, root, logToConsole)
			if err != nil {
				return err
			}
			defer rt.Close()

			query := strings.Join(args, " ")
			sess := session.New(rt.cfg.Chat.Mode(), rt.cfg.Chat.DefaultModel)
			sess.SetInput(query)

			ok, dispatchErr := sess.Exchange(cmd.Context(), rt.client)
			if !ok {
				return errors.New("query is empty")
			}

			reply, _ := sess.Last()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, newReplyRenderer(out, rt.cfg.UI.Theme, raw, useGlamour).Render(reply.Content))

			if dispatchErr != nil {
				rt.logger.Warn("query failed",
					zap.String("endpoint", rt.client.EndpointURL(sess.Mode())),
					zap.Int("status", backend.StatusCode(dispatchErr)),
					zap.Error(dispatchErr))
				return silentExit(1)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print the reply exactly as received")
	cmd.Flags().BoolVar(&useGlamour, "glamour", false, "render the reply as markdown")
	return cmd
}
