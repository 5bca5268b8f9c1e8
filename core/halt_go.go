//go:build !tinygo

package core

// Halt stops the program after an unrecoverable error. On regular Go builds
// GIE is cleared, delivery stops until ResetInterrupts, and the call panics
// with a *Fault so tests and the simulator can observe it.
func Halt(err error) {
	disableInterrupts()
	halted.Store(true)
	RecordEvent(EvtHalt, 0)
	DebugPrintln("[HALT] " + err.Error())
	panic(&Fault{Err: err})
}
