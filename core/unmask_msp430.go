//go:build tinygo && msp430g2553

package core

import "device"

// enableInterrupts sets GIE in the status register
func enableInterrupts() {
	device.Asm("nop")
	device.Asm("eint")
	device.Asm("nop")
}
