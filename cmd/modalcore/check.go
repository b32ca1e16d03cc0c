package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/modalcore/internal/config"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate extensions and scripts",
		Long: `Load every configured extension and script with conflict validation on.
Bindings that override the built-in grammar or another extension are reported
and the command fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd, "", func(c *config.Config) { c.Validate = true })
			if err != nil {
				return err
			}
			defer a.Close()

			bindings := 0
			for _, d := range a.Declarations() {
				bindings += len(d.Bindings)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: providers %s, %d extension bindings, %d script actions\n",
				strings.Join(a.Registry().Providers(), ", "), bindings, len(a.ScriptActions()))
			return err
		},
	}
}
