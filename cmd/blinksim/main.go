// Command blinksim runs the LED blink firmware against the simulated
// MSP430G2553 and prints the LED trace.
//
// Usage:
//
//	blinksim run [--pattern oncecell|steal] [--periods N] [--config file.yaml]
//	blinksim events [--pattern oncecell|steal] [--periods N]
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
