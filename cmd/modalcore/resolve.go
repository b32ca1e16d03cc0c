package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dshills/modalcore/internal/command"
	"github.com/dshills/modalcore/internal/engine"
	"github.com/dshills/modalcore/internal/engine/buffer"
	"github.com/dshills/modalcore/internal/input"
	"github.com/dshills/modalcore/internal/input/key"
	"github.com/dshills/modalcore/internal/input/resolver"
)

func newResolveCmd(opts *rootOptions) *cobra.Command {
	var (
		text    string
		caret   int
		verbose bool
		stats   bool
	)

	cmd := &cobra.Command{
		Use:   "resolve KEYS...",
		Short: "Feed keys into an in-memory document and report each command",
		Long: `Feed a key sequence, in Vim notation, into a session over an in-memory
document. Every resolved, unmatched or cancelled key is reported, followed by
the resulting document. --stats appends the session counters and command
latencies.

Examples:
  modalcore resolve --text "one two three" 2dw
  modalcore resolve --text "hello world" 'viwU' '<Esc>'
  modalcore resolve --stats --text "a b c" 'dw.'
  modalcore resolve -e eclipse.toml --text "x = 1" 'gciw'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := key.ParseSequence(strings.Join(args, ""))
			if err != nil {
				return err
			}

			a, err := opts.newApp(cmd, text, nil)
			if err != nil {
				return err
			}
			defer a.Close()

			doc := a.Document()
			doc.SetPosition(buffer.NewPosition(caret), false)

			out := cmd.OutOrStdout()
			var errs []error
			for _, k := range seq {
				o, err := a.Session().Feed(k.Event())
				if err != nil {
					errs = append(errs, err)
				}
				if verbose || o.Status != resolver.StatusPending || err != nil {
					printOutcome(out, o, err)
				}
			}
			printDocument(out, doc)
			if stats {
				printStats(out, a.Metrics().Snapshot())
			}
			return errors.Join(errs...)
		},
	}

	cmd.Flags().StringVarP(&text, "text", "t", "", "initial document text")
	cmd.Flags().IntVar(&caret, "caret", 0, "initial caret offset")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also report pending keys")
	cmd.Flags().BoolVar(&stats, "stats", false, "report session metrics")
	return cmd
}

// printOutcome writes one line describing what a key did.
func printOutcome(w io.Writer, o input.Outcome, err error) {
	fields := []string{o.Mode, o.Status.String(), o.Keys.String()}
	switch {
	case o.Status == resolver.StatusPending:
		fields = append(fields, "pending="+o.Pending)
	case o.Typed:
		fields = append(fields, "typed")
	case o.Consumed:
		fields = append(fields, "consumed")
	case o.Command != nil:
		desc := command.Describe(o.Command)
		if o.Count > 0 {
			desc = fmt.Sprintf("%s count=%d", desc, o.Count)
		}
		if o.Repeated {
			desc += " repeated"
		}
		fields = append(fields, desc)
	}
	if err != nil {
		fields = append(fields, "error: "+err.Error())
	}
	_, _ = fmt.Fprintln(w, strings.Join(fields, "\t"))
}

// printDocument writes the document state.
func printDocument(w io.Writer, doc *engine.Document) {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	_, _ = fmt.Fprintf(tw, "text:\t%q\n", doc.Text())
	_, _ = fmt.Fprintf(tw, "caret:\t%d\n", doc.Position().ModelOffset())
	_, _ = fmt.Fprintf(tw, "mode:\t%s\n", doc.CurrentMode())
	if sel := doc.Selection(); sel != nil {
		r := sel.Range()
		_, _ = fmt.Fprintf(tw, "selection:\t[%d, %d)\n", r.LeftBound().ModelOffset(), r.RightBound().ModelOffset())
	}
	if reg := doc.Register(); reg != "" {
		_, _ = fmt.Fprintf(tw, "register:\t%q\n", reg)
	}
	_ = tw.Flush()
}

// printStats writes the session metrics.
func printStats(w io.Writer, m input.MetricsSnapshot) {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	_, _ = fmt.Fprintf(tw, "keys:\t%d\n", m.KeysTotal)
	_, _ = fmt.Fprintf(tw, "resolved:\t%d\n", m.Resolved)
	_, _ = fmt.Fprintf(tw, "no match:\t%d\n", m.NoMatches)
	_, _ = fmt.Fprintf(tw, "cancelled:\t%d\n", m.Cancellations)
	_, _ = fmt.Fprintf(tw, "errors:\t%d\n", m.CommandErrors)
	_, _ = fmt.Fprintf(tw, "repeats:\t%d\n", m.Repeats)
	_, _ = fmt.Fprintf(tw, "typed:\t%d\n", m.Typed)
	_, _ = fmt.Fprintf(tw, "latency:\tavg %s p99 %s peak %s\n", m.AvgCommandLatency, m.P99CommandLatency, m.PeakCommandLatency)
	_ = tw.Flush()
}
