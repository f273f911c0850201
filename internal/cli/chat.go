// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/PrathameshUpreti/Marina/internal/config"
	"github.com/PrathameshUpreti/Marina/internal/export"
	"github.com/PrathameshUpreti/Marina/internal/model"
	"github.com/PrathameshUpreti/Marina/internal/session"
	"github.com/PrathameshUpreti/Marina/internal/ui/styles"
)

const historyFileName = "chat_history"

// lineReader is the part of liner.State the REPL uses.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// repl is a line-mode chat over one session.
type repl struct {
	sess       *session.Session
	dispatcher session.Dispatcher
	out        io.Writer
	render     func(string) string
	exportOpts *export.Options
	logger     *zap.Logger
}

// =============================================================================
// CHAT COMMAND
// =============================================================================

func newChatCmd(root *rootOptions) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat in line mode without the full-screen UI",
		Long: `Start a line-mode chat. Type a question and press Enter.

Commands:
  /mode [search|research]   switch or toggle the search mode
  /model <id>               pick a model offered by the current mode
  /models                   list the models of the current mode
  /export [md|json]         write the transcript to the export directory
  /help                     show this help
  /quit                     leave the chat`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := loadRuntime(cmd, root, logToConsole)
			if err != nil {
				return err
			}
			defer rt.Close()

			out := cmd.OutOrStdout()
			renderer := newReplyRenderer(out, rt.cfg.UI.Theme, raw, false)
			exportOpts := export.DefaultOptions()
			exportOpts.OutputDir = rt.cfg.UI.ExportDir
			exportOpts.IncludeTimestamps = rt.cfg.UI.ShowTimestamps

			r := &repl{
				sess:       session.New(rt.cfg.Chat.Mode(), rt.cfg.Chat.DefaultModel),
				dispatcher: rt.client,
				out:        out,
				render:     renderer.Render,
				exportOpts: exportOpts,
				logger:     rt.logger,
			}

			line := liner.NewLiner()
			defer line.Close()
			line.SetCtrlCAborts(true)

			historyPath := ""
			if dir, err := config.ConfigDir(); err == nil {
				historyPath = filepath.Join(dir, historyFileName)
				if f, err := os.Open(historyPath); err == nil {
					_, _ = line.ReadHistory(f)
					f.Close()
				}
			}

			r.banner()
			err = r.run(cmd.Context(), line)

			if historyPath != "" {
				if f, ferr := os.Create(historyPath); ferr == nil {
					_, _ = line.WriteHistory(f)
					f.Close()
				}
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print replies exactly as received")
	return cmd
}

// =============================================================================
// REPL LOOP
// =============================================================================

func (r *repl) banner() {
	fmt.Fprintln(r.out, TitleStyle.Render("🌊 Marina AI"))
	fmt.Fprintln(r.out, DimStyle.Render("Type /help for commands, /quit to leave."))
	r.printMode()
}

func (r *repl) prompt() string {
	return r.sess.Mode().Icon() + " › "
}

// run reads lines until /quit, EOF or Ctrl+C.
func (r *repl) run(ctx context.Context, in lineReader) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		text, err := in.Prompt(r.prompt())
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out)
				return nil
			}
			return err
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		in.AppendHistory(text)

		if strings.HasPrefix(text, "/") {
			if quit := r.command(text); quit {
				return nil
			}
			continue
		}
		r.ask(ctx, text)
	}
}

// ask runs one exchange and prints the reply.
func (r *repl) ask(ctx context.Context, text string) {
	r.sess.SetInput(text)
	fmt.Fprintln(r.out, DimStyle.Render(fmt.Sprintf("Marina is thinking (%s)...", r.sess.Mode().Title())))

	ok, err := r.sess.Exchange(ctx, r.dispatcher)
	if !ok {
		return
	}
	if err != nil {
		r.logger.Warn("query failed", zap.Error(err))
	}
	reply, _ := r.sess.Last()
	fmt.Fprintln(r.out, r.render(reply.Content))
	fmt.Fprintln(r.out)
}

// =============================================================================
// SLASH COMMANDS
// =============================================================================

// command handles a slash command and reports whether the REPL should end.
func (r *repl) command(text string) bool {
	fields := strings.Fields(text)
	name, args := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "/quit", "/exit", "/q":
		return true

	case "/help", "/?":
		r.help()

	case "/mode":
		if len(args) == 0 {
			r.sess.ToggleMode()
		} else {
			mode, err := model.ParseSearchMode(args[0])
			if err != nil {
				r.fail(err)
				return false
			}
			r.sess.SetMode(mode)
		}
		r.printMode()

	case "/model":
		if len(args) == 0 {
			r.printMode()
			return false
		}
		if _, ok := model.FindModel(r.sess.Mode(), args[0]); !ok {
			r.fail(fmt.Errorf("%s does not offer model %q; try /models", r.sess.Mode().Title(), args[0]))
			return false
		}
		r.sess.SetModel(args[0])
		r.printMode()

	case "/models":
		r.listModels()

	case "/export":
		formatName := "md"
		if len(args) > 0 {
			formatName = args[0]
		}
		r.export(formatName)

	default:
		r.fail(fmt.Errorf("unknown command %s; try /help", name))
	}
	return false
}

func (r *repl) help() {
	lines := [][2]string{
		{"/mode [m]", "switch to search or research, or toggle"},
		{"/model <id>", "pick a model for the current mode"},
		{"/models", "list models for the current mode"},
		{"/export [md|json]", "write the transcript to a file"},
		{"/quit", "leave the chat"},
	}
	for _, l := range lines {
		fmt.Fprintf(r.out, "  %s %s\n", PromptStyle.Render(fmt.Sprintf("%-18s", l[0])), DimStyle.Render(l[1]))
	}
}

func (r *repl) printMode() {
	fmt.Fprintf(r.out, "%s %s\n", RenderLabel("Mode"), r.sess.Mode().Label())
	fmt.Fprintf(r.out, "%s %s\n", RenderLabel("Model"), r.sess.Model().Name)
}

func (r *repl) listModels() {
	current := r.sess.ModelID()
	for _, m := range model.ModelsFor(r.sess.Mode()) {
		mark := "  "
		if m.ID == current {
			mark = SuccessStyle.Render("✓ ")
		}
		fmt.Fprintf(r.out, "%s%s %-12s %s\n", mark, m.Icon, m.ID, DimStyle.Render(m.Description))
	}
}

func (r *repl) export(formatName string) {
	exporter, err := export.ForFormat(formatName, r.exportOpts)
	if err != nil {
		r.fail(err)
		return
	}
	path, err := export.ExportToFile(r.sess.Transcript(), exporter, r.exportOpts)
	if errors.Is(err, export.ErrEmptyTranscript) {
		fmt.Fprintln(r.out, styles.RenderInfo("Nothing to export yet"))
		return
	}
	if err != nil {
		r.logger.Error("export failed", zap.String("format", formatName), zap.Error(err))
		r.fail(err)
		return
	}
	fmt.Fprintln(r.out, SuccessStyle.Render("Exported to "+path))
}

func (r *repl) fail(err error) {
	fmt.Fprintln(r.out, ErrorStyle.Render("Error:"), err)
}
