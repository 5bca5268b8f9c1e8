//go:build tinygo

package core

// Halt stops the program after an unrecoverable error. There is nothing to
// return to, so interrupts stay off and the core spins. Externally this
// shows up as the outputs no longer changing.
func Halt(err error) {
	disableInterrupts()
	RecordEvent(EvtHalt, 0)
	DebugPrintln("[HALT] " + err.Error())
	for {
	}
}
