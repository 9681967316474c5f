// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package cli implements the pulsesim command line.
//
package cli

import (
	"fmt"
	"log/slog"

	"github.com/db47h/pulsesim"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
//
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json"
}

// ValidFormats lists the allowed output formats.
//
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command.
//
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "pulsesim",
		Short: "Pulse propagation simulator",
		Long: `Simulate pulse propagation in networks of flip-flops and conjunctions.

Module lists are read from text files:

	broadcaster -> a, b
	%a -> b
	&b -> rx

or from YAML files (.yaml or .yml extension).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range ValidFormats {
				if f == opts.Format {
					return nil
				}
			}
			return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")

	cmd.AddCommand(NewCountCommand(opts))
	cmd.AddCommand(NewCycleCommand(opts))
	cmd.AddCommand(NewTraceCommand(opts))

	return cmd
}

// logger returns a logger writing to the command's stderr.
func (o *RootOptions) logger(cmd *cobra.Command) *slog.Logger {
	lvl := slog.LevelWarn
	if o.Verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
}

func loadNetwork(name string, log *slog.Logger) (*pulsesim.Network, error) {
	decls, err := pulsesim.Load(name)
	if err != nil {
		return nil, err
	}
	n, err := pulsesim.NewNetwork(decls)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	log.Debug("network loaded", "file", name, "modules", len(decls))
	return n, nil
}
