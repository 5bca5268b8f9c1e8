//go:build !tinygo

package core

import "sync/atomic"

// State is the saved global interrupt enable flag on regular Go builds.
type State uintptr

// InterruptSource is implemented by the host simulator. Pending returns the
// vector that should run next, if the hardware has one pending.
type InterruptSource interface {
	Pending() (vector func(cs CriticalSection), ok bool)
}

// maxBackToBack bounds how often a vector may be re-entered without the
// main context getting an instruction in. Real hardware would spin forever.
const maxBackToBack = 64

var (
	gie    atomic.Bool
	halted atomic.Bool
	source InterruptSource
)

// disableInterrupts clears the simulated GIE and returns its previous value
func disableInterrupts() State {
	if gie.Swap(false) {
		return 1
	}
	return 0
}

// restoreInterrupts puts GIE back to the saved value. Restoring an enabled
// state delivers anything that became pending while masked.
func restoreInterrupts(state State) {
	if state == 0 {
		gie.Store(false)
		return
	}
	enableInterrupts()
}

// enableInterrupts sets the simulated GIE
func enableInterrupts() {
	gie.Store(true)
	PollInterrupts()
}

// InterruptsEnabled reports the simulated GIE flag.
func InterruptsEnabled() bool {
	return gie.Load()
}

// SetInterruptSource installs the simulated interrupt controller. nil
// detaches it.
func SetInterruptSource(src InterruptSource) {
	source = src
}

// PollInterrupts delivers pending vectors while GIE is set, the way the CPU
// checks for interrupts between instructions. The simulator calls it after
// raising a flag.
func PollInterrupts() {
	src := source
	if src == nil || halted.Load() {
		return
	}
	for n := 0; gie.Load(); n++ {
		vector, ok := src.Pending()
		if !ok {
			return
		}
		if n == maxBackToBack {
			Halt(ErrInterruptStorm)
		}
		ServeInterrupt(vector)
	}
}

// ServeInterrupt runs an interrupt vector body the way the CPU enters a
// vector: GIE is pushed and cleared, the body runs with a CriticalSection,
// and RETI pops GIE again. Pending flags are not re-polled on return;
// PollInterrupts does that in its own loop.
//
// A body that halts leaves GIE cleared.
func ServeInterrupt(vector func(cs CriticalSection)) {
	prev := gie.Swap(false)
	vector(mint())
	gie.Store(prev)
}

// ResetInterrupts returns the simulated CPU to its reset state: GIE clear
// and no interrupt source attached.
func ResetInterrupts() {
	gie.Store(false)
	halted.Store(false)
	source = nil
}
