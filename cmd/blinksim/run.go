package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"irqshare/core"
	"irqshare/host/serial"
	"irqshare/sim"
)

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the firmware and print the LED trace",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			prog, err := programFor(cfg.Pattern)
			if err != nil {
				return err
			}

			var port *serial.LineWriter
			if cfg.TracePort != "" {
				p, err := serial.Open(&serial.Config{Device: cfg.TracePort, Baud: cfg.Baud})
				if err != nil {
					return err
				}
				port = serial.NewLineWriter(p)
				defer port.Close()
				slog.Info("mirroring trace", "port", cfg.TracePort, "baud", cfg.Baud)
			}

			core.SetDebugWriter(func(s string) { slog.Debug(s) })
			core.SetDebugEnabled(slog.Default().Enabled(cmd.Context(), slog.LevelDebug))

			board := sim.NewBoard(prog, cfg.Periods, cfg.IdleSlices)
			out := cmd.OutOrStdout()
			board.OnSample = func(s sim.Sample) {
				line := formatSample(s)
				fmt.Fprintln(out, line)
				if port != nil {
					if err := port.WriteLine(line); err != nil {
						slog.Warn("trace port write failed", "err", err)
					}
				}
			}

			slog.Info("starting simulation", "pattern", prog.Name(), "periods", cfg.Periods)
			trace, err := board.Run()
			if err != nil {
				dumpFault()
				return fmt.Errorf("%s: %w", prog.Name(), err)
			}

			stats := board.Stats()
			slog.Info("simulation finished",
				"samples", len(trace),
				"serviced", stats.Serviced,
				"state", stats.State.String())
			return nil
		},
	}
}

// dumpFault logs the event ring at error level, whatever the log level the
// run used for firmware debug output.
func dumpFault() {
	core.SetDebugWriter(func(s string) { slog.Error(s) })
	core.DumpEventRing()
}

func formatSample(s sim.Sample) string {
	return fmt.Sprintf("t=%.4fs match=%d P1.0=%d P1.6=%d",
		float64(s.Time), s.Match, bit(s.Levels.P0), bit(s.Levels.P6))
}

func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}
