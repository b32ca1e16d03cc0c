package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dshills/modalcore/internal/command"
	"github.com/dshills/modalcore/internal/input/fuzzy"
)

func newBindingsCmd(opts *rootOptions) *cobra.Command {
	var modeName, filter string

	cmd := &cobra.Command{
		Use:   "bindings",
		Short: "List the merged key bindings",
		Long: `List every complete key sequence of the merged registry, per mode, with
the command it runs. --filter keeps the bindings whose keys and command
fuzzy-match the query, best match first. Extensions given with --extension are merged over the
built-in Vim grammar.

Examples:
  modalcore bindings
  modalcore bindings --mode visual
  modalcore bindings --filter delete
  modalcore bindings -e ~/.config/modalcore/extensions`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd, "", nil)
			if err != nil {
				return err
			}
			defer a.Close()

			reg := a.Registry()
			modes := reg.Modes()
			if modeName != "" {
				if _, ok := reg.Mode(modeName); !ok {
					return fmt.Errorf("unknown mode %q (have %v)", modeName, modes)
				}
				modes = []string{modeName}
			}

			var rows []bindingRow
			for _, m := range modes {
				for _, e := range reg.Bindings(m) {
					rows = append(rows, bindingRow{mode: m, keys: e.Keys.String(), desc: command.Describe(e.Payload)})
				}
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, match := range fuzzy.Filter(filter, rows, bindingRow.text) {
				r := match.Value
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", r.mode, r.keys, r.desc)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&modeName, "mode", "m", "", "only list this mode")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "fuzzy-match keys and commands")
	return cmd
}

type bindingRow struct {
	mode, keys, desc string
}

func (r bindingRow) text() string { return r.keys + " " + r.desc }
