// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"fmt"
	"io"

	"github.com/db47h/pulsesim"
	"github.com/spf13/cobra"
)

// TraceEvent is a delivered event as output by the trace command.
//
type TraceEvent struct {
	Press uint64 `json:"press"`
	Src   string `json:"src"`
	Pulse string `json:"pulse"`
	Dst   string `json:"dst"`
}

// NewTraceCommand creates the trace command.
//
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	var presses int
	cmd := &cobra.Command{
		Use:   "trace <file>",
		Short: "Print every pulse delivered during a number of button presses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if presses < 0 {
				return fmt.Errorf("invalid press count %d", presses)
			}
			n, err := loadNetwork(args[0], rootOpts.logger(cmd))
			if err != nil {
				return err
			}
			events := make([]TraceEvent, 0)
			for i := 0; i < presses; i++ {
				n.Activate(func(e pulsesim.Event) {
					events = append(events, TraceEvent{
						Press: n.Presses(),
						Src:   e.Src,
						Pulse: e.Pulse.String(),
						Dst:   e.Dst,
					})
				})
			}
			return newOutput(rootOpts, cmd.OutOrStdout()).write(events, func(w io.Writer) error {
				for _, e := range events {
					if _, err := fmt.Fprintf(w, "%d: %s -%s-> %s\n", e.Press, e.Src, e.Pulse, e.Dst); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&presses, "presses", "n", 1, "number of button presses")
	return cmd
}
