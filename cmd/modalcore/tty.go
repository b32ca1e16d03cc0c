package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/dshills/modalcore/internal/app"
	"github.com/dshills/modalcore/internal/command"
	"github.com/dshills/modalcore/internal/input"
	"github.com/dshills/modalcore/internal/input/key"
	"github.com/dshills/modalcore/internal/input/termkey"
	"github.com/dshills/modalcore/internal/logging"
)

const sampleText = `The quick brown fox jumps over the lazy dog.
Counts, operators and motions compose: try 2dw, ciw, gUiw or v$d.
Press . to repeat the last change and Ctrl-C to quit.`

func newTTYCmd(opts *rootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "tty",
		Short: "Edit an in-memory document interactively",
		Long: `Open a terminal session over an in-memory document. Keys go through the
same session as the resolve command; the status line shows the mode, pending
keys and the last command. With watch enabled, extension files are reloaded
while the session runs. Ctrl-C quits; the file is never written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := sampleText
			if file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("reading %s: %w", file, err)
				}
				text = string(data)
			}

			a, err := opts.newApp(cmd, text, nil)
			if err != nil {
				return err
			}
			defer a.Close()

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("creating screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("initializing screen: %w", err)
			}
			defer screen.Fini()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			go func() {
				if err := a.Watch(ctx); err != nil {
					logging.Warn("watch_failed", "error", err.Error())
				}
			}()

			return runTTY(screen, a)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "load the document text from a file")
	return cmd
}

// tty draws the document and routes key events into the session.
type tty struct {
	screen tcell.Screen
	app    *app.Application
	status string
}

// runTTY runs the event loop until Ctrl-C or the screen closes.
func runTTY(screen tcell.Screen, a *app.Application) error {
	t := &tty{screen: screen, app: a, status: "ready"}
	a.Session().Hooks().Register("tty", input.HookPriorityLow, input.FuncHook{
		PostKeyEventFunc: func(_ key.Event, out *input.Outcome) { t.describe(out) },
	})

	for {
		t.draw()
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			k, ok := termkey.Event(ev)
			if !ok {
				continue
			}
			if k.Stroke() == key.Ctrl('c') {
				return nil
			}
			if _, err := a.Session().Feed(k); err != nil {
				t.status = "error: " + err.Error()
			}
		}
	}
}

// describe renders an outcome into the status line.
func (t *tty) describe(out *input.Outcome) {
	switch {
	case out.Pending != "":
		t.status = out.Pending
	case out.Command != nil:
		t.status = command.Describe(out.Command)
		if out.Repeated {
			t.status += " (repeat)"
		}
	default:
		t.status = out.Status.String() + " " + out.Keys.String()
	}
}

func (t *tty) draw() {
	s := t.screen
	s.Clear()
	doc := t.app.Document()

	var selStart, selEnd int
	if sel := doc.Selection(); sel != nil {
		r := sel.Range()
		selStart, selEnd = r.LeftBound().ModelOffset(), r.RightBound().ModelOffset()
	}
	caret := doc.Position().ModelOffset()

	plain := tcell.StyleDefault
	selected := plain.Reverse(true)
	cursorStyle := plain.Underline(true).Bold(true)

	x, y := 0, 0
	offset := 0
	for _, r := range doc.Text() {
		style := plain
		if offset >= selStart && offset < selEnd {
			style = selected
		}
		if offset == caret {
			style = cursorStyle
			if r == '\n' {
				s.SetContent(x, y, ' ', nil, cursorStyle)
			}
		}
		if r == '\n' {
			x, y = 0, y+1
		} else {
			s.SetContent(x, y, r, nil, style)
			x++
		}
		offset++
	}
	if caret == offset {
		s.SetContent(x, y, ' ', nil, cursorStyle)
	}

	_, h := s.Size()
	line := fmt.Sprintf("-- %s -- %s", t.app.Session().Mode(), t.status)
	for i, r := range []rune(line) {
		s.SetContent(i, h-1, r, nil, plain.Reverse(true))
	}
	s.Show()
}
