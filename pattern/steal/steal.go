// Package steal shares the peripherals with the timer handler without any
// stored handle.
//
// Both contexts call device.Steal. There is no run-time check; each call
// site carries the argument for why its view cannot overlap another one.
package steal

import (
	"irqshare/core"
	"irqshare/device"
	"irqshare/firmware"
)

// Setup configures the peripherals from the main context.
func Setup() {
	core.Free(func(core.CriticalSection) {
		// Sound: GIE is clear after reset and Unmask has not run yet, so
		// the handler cannot hold a view while this one is live.
		p := device.Steal()
		core.RecordEvent(core.EvtSteal, 0)

		firmware.Configure(&p, firmware.DefaultConfig())
	})
}

// Idle is one pass of the main loop: a masked region that snapshots the
// handler statistics.
func Idle() firmware.ISRStats {
	return core.FreeValue(func(cs core.CriticalSection) firmware.ISRStats {
		return firmware.Stats(cs)
	})
}

// Main is the program entry. It never returns.
func Main() {
	Setup()
	core.Unmask()

	for {
		Idle()
	}
}

// TimerA1 is the TIMER0_A1 vector body.
func TimerA1(cs core.CriticalSection) {
	firmware.Enter(cs)

	// Sound: the CPU clears GIE on entry and restores it on return, so
	// the main context cannot run, and cannot use a view, until this
	// handler is done. Main only stole before unmasking.
	p := device.Steal()

	firmware.Service(cs, &p)
	firmware.Exit(cs)
}
