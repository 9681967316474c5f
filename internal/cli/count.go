// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/db47h/pulsesim"
	"github.com/spf13/cobra"
)

// CountResult is the output of the count command.
//
type CountResult struct {
	Presses int    `json:"presses"`
	Low     uint64 `json:"low"`
	High    uint64 `json:"high"`
	Product uint64 `json:"product"`
}

// NewCountCommand creates the count command.
//
func NewCountCommand(rootOpts *RootOptions) *cobra.Command {
	var presses int
	cmd := &cobra.Command{
		Use:   "count <file>",
		Short: "Count pulses over a number of button presses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if presses < 0 {
				return fmt.Errorf("invalid press count %d", presses)
			}
			log := rootOpts.logger(cmd)
			n, err := loadNetwork(args[0], log)
			if err != nil {
				return err
			}
			c := pulsesim.Run(n, presses)
			log.Debug("count done", "presses", presses, "absorbed", c.Absorbed)
			r := CountResult{Presses: presses, Low: c.Low, High: c.High, Product: c.Product()}
			out := newOutput(rootOpts, cmd.OutOrStdout())
			return out.write(r, out.printf("low=%d high=%d product=%d\n", r.Low, r.High, r.Product))
		},
	}
	cmd.Flags().IntVarP(&presses, "presses", "n", 1000, "number of button presses")
	return cmd
}
