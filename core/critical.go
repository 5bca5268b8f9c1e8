package core

// maskedMarker backs every minted CriticalSection.
var maskedMarker byte

// CriticalSection is proof that interrupts are masked on the only core.
//
// Tokens are minted by Free, FreeValue and ServeInterrupt and handed to the
// callback by value. A token must not be kept past the callback that
// received it. The zero value is not a valid token; accessors that require
// one halt with ErrForgedToken when given it.
type CriticalSection struct {
	masked *byte
}

func mint() CriticalSection {
	return CriticalSection{masked: &maskedMarker}
}

// check halts unless cs came from a masked region
func (cs CriticalSection) check() {
	if cs.masked != &maskedMarker {
		Halt(ErrForgedToken)
	}
}

// Free runs f with interrupts disabled. The previous interrupt state is
// restored afterwards, so nested calls never unmask early and an f that
// enables interrupts does not leak that past the call.
func Free(f func(cs CriticalSection)) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	f(mint())
}

// FreeValue is Free for actions that produce a result.
func FreeValue[T any](f func(cs CriticalSection) T) T {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	return f(mint())
}

// Unmask enables interrupts unconditionally. It is called once, after
// setup, to move the system into steady-state operation.
func Unmask() {
	RecordEvent(EvtUnmask, 0)
	enableInterrupts()
}
