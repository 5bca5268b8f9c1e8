package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"irqshare/core"
	"irqshare/sim"
)

func newEventsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "Run the firmware and dump the ownership/interrupt event ring",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			prog, err := programFor(cfg.Pattern)
			if err != nil {
				return err
			}

			board := sim.NewBoard(prog, cfg.Periods, cfg.IdleSlices)
			_, runErr := board.Run()

			out := cmd.OutOrStdout()
			for _, evt := range core.Events() {
				fmt.Fprintf(out, "#%-4d %-10s %d\n", evt.Seq, core.EventName(evt.Type), evt.Value)
			}
			return runErr
		},
	}
}
