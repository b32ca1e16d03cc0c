package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/modalcore/internal/app"
	"github.com/dshills/modalcore/internal/config"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	cfgFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "modalcore",
		Short: "Vim-style modal command resolution",
		Long: `modalcore resolves keystrokes into editing commands using a Vim-style
modal grammar, extended by platform extension files and Lua action scripts.

Subcommands feed keys into an in-memory document, list the merged bindings,
check extensions for conflicts, or run an interactive terminal session.`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.cfgFile, "config", "c", "",
		"config file (default: .modalcore/config.yaml or ~/.config/modalcore/config.yaml)")
	pf.StringSliceP("extension", "e", nil, "platform extension file or directory (repeatable)")
	pf.StringSliceP("script", "s", nil, "Lua action script (repeatable)")
	pf.String("selection", "", "selection option: inclusive or exclusive")
	pf.Bool("validate", false, "fail on bindings that override others")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	pf.String("log-format", "", "log format (text, json)")

	root.AddCommand(
		newResolveCmd(opts),
		newBindingsCmd(opts),
		newCheckCmd(opts),
		newTTYCmd(opts),
	)
	return root
}

// loadConfig reads the settings with flag overrides and configures logging.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(o.cfgFile, config.WithFlags(cmd.Flags()))
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.InitLogging(cmd.ErrOrStderr()); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newApp loads the settings and builds the application. Declared host
// actions are echoed to the command output.
func (o *rootOptions) newApp(cmd *cobra.Command, text string, mutate func(*config.Config)) (*app.Application, error) {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if mutate != nil {
		mutate(&cfg)
	}
	out := cmd.OutOrStdout()
	return app.New(cfg, app.Options{
		Text: text,
		HostAction: func(id string) error {
			_, err := fmt.Fprintf(out, "action %s\n", id)
			return err
		},
	})
}
