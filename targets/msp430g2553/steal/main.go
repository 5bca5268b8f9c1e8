//go:build tinygo && msp430g2553

package main

import (
	"runtime/interrupt"

	"irqshare/core"
	"irqshare/device"
	"irqshare/pattern/steal"
)

// timerA1 is bound to the TIMER0_A1 vector. The CPU enters it with GIE
// cleared and RETI restores the caller's GIE, which is what lets
// ServeInterrupt hand the body a CriticalSection without masking again.
func timerA1(interrupt.Interrupt) {
	core.ServeInterrupt(steal.TimerA1)
}

func main() {
	// GIE is clear out of reset; it stays that way until Main unmasks.
	interrupt.New(device.IRQ_TIMER0_A1, timerA1)

	steal.Main()
}
