// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"github.com/db47h/pulsesim"
	"github.com/spf13/cobra"
)

// CycleResult is the output of the cycle command.
//
type CycleResult struct {
	Target string `json:"target"`
	Pulse  string `json:"pulse"`
	Length uint64 `json:"length"`
}

type cycleOptions struct {
	target string
	pulse  string
	max    uint64
}

// NewCycleCommand creates the cycle command.
//
func NewCycleCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &cycleOptions{}
	cmd := &cobra.Command{
		Use:   "cycle <file>",
		Short: "Find the number of presses after which the target receives a pulse",
		Long: `Find the number of button presses after which the target module receives
the watched pulse.

The gate (the only module feeding the target) and its feeders are found from
the network topology. Each feeder is assumed to send the watched pulse to the
gate periodically, starting at the first press, and the result is the least
common multiple of these periods.

The search gives up after --max presses (0 for no limit, in which case the
command may never return).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pulsesim.ParsePulse(opts.pulse)
			if err != nil {
				return err
			}
			log := rootOpts.logger(cmd)
			n, err := loadNetwork(args[0], log)
			if err != nil {
				return err
			}
			l, err := pulsesim.CycleLength(n,
				pulsesim.WithTarget(opts.target),
				pulsesim.WithPulse(p),
				pulsesim.WithMaxActivations(opts.max),
				pulsesim.WithLogger(log),
			)
			if err != nil {
				return err
			}
			r := CycleResult{Target: opts.target, Pulse: p.String(), Length: l}
			out := newOutput(rootOpts, cmd.OutOrStdout())
			return out.write(r, out.printf("%d\n", l))
		},
	}
	cmd.Flags().StringVarP(&opts.target, "target", "t", pulsesim.DefaultTarget, "name of the final target module")
	cmd.Flags().StringVarP(&opts.pulse, "pulse", "p", "low", "watched pulse (low|high)")
	cmd.Flags().Uint64Var(&opts.max, "max", pulsesim.DefaultMaxActivations, "maximum number of presses (0: unbounded)")
	return cmd
}
