package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"irqshare/pattern/oncecell"
	"irqshare/pattern/steal"
	"irqshare/sim"
	"irqshare/sim/config"
)

type options struct {
	configFile string
	pattern    string
	periods    int
	periodsSet bool
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "blinksim",
		Short:         "Simulate the timer-driven LED blink firmware",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.periodsSet = cmd.Flags().Changed("periods")
			return setupLogging(opts.logLevel)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "YAML simulation config")
	flags.StringVar(&opts.pattern, "pattern", "", "ownership pattern: oncecell or steal")
	flags.IntVar(&opts.periods, "periods", 0, "timer periods to simulate (overrides the config file)")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(newRunCmd(opts))
	root.AddCommand(newEventsCmd(opts))

	return root
}

func setupLogging(level string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})
	slog.SetDefault(slog.New(handler))
	return nil
}

// loadConfig merges the config file, if any, with command-line overrides
func loadConfig(opts *options) (*config.Config, error) {
	cfg := config.Default()
	if opts.configFile != "" {
		var err error
		cfg, err = config.LoadFile(opts.configFile)
		if err != nil {
			return nil, err
		}
	}

	if opts.pattern != "" {
		cfg.Pattern = opts.pattern
	}
	if opts.periodsSet {
		cfg.Periods = opts.periods
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func programFor(name string) (sim.Program, error) {
	switch name {
	case config.PatternOnceCell:
		return oncecell.Image{}, nil
	case config.PatternSteal:
		return steal.Image{}, nil
	default:
		return nil, fmt.Errorf("unknown pattern %q", name)
	}
}
