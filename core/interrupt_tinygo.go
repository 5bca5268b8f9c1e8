//go:build tinygo

package core

import "runtime/interrupt"

// disableInterrupts clears GIE and returns the status register bits needed
// to put it back
func disableInterrupts() interrupt.State {
	return interrupt.Disable()
}

// restoreInterrupts puts GIE back the way disableInterrupts found it
func restoreInterrupts(state interrupt.State) {
	interrupt.Restore(state)
}

// ServeInterrupt runs an interrupt vector body. The CPU has already cleared
// GIE on vector entry and RETI restores it, so the body runs masked without
// touching the status register here. Call it only from a vector.
func ServeInterrupt(vector func(cs CriticalSection)) {
	vector(mint())
}
