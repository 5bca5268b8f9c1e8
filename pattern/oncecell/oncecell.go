// Package oncecell shares the peripherals with the timer handler through a
// single-assignment cell.
//
// The main context takes the peripherals, configures them and moves them
// into a process-wide GuardedCell inside a masked region. The handler reads
// the cell with the token it gets on vector entry. Both accesses need a
// CriticalSection, so they cannot overlap, and the cell can be filled only
// once.
package oncecell

import (
	"irqshare/core"
	"irqshare/device"
	"irqshare/firmware"
)

var peripherals core.GuardedCell[device.Peripherals]

// Setup takes and configures the peripherals and publishes them to the
// handler. A second Take or a second Set means setup ran twice, which
// halts.
func Setup() {
	core.Free(func(cs core.CriticalSection) {
		p, err := device.Take()
		if err != nil {
			core.Halt(err)
		}

		firmware.Configure(&p, firmware.DefaultConfig())

		if err := peripherals.Set(cs, p); err != nil {
			core.Halt(err)
		}
		core.RecordEvent(core.EvtInstall, 0)
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

// TimerA1 is the TIMER0_A1 vector body. It halts if the cell is still
// empty, since that means the vector fired before Setup finished.
func TimerA1(cs core.CriticalSection) {
	firmware.Enter(cs)
	p := peripherals.MustGet(cs)
	firmware.Service(cs, p)
	firmware.Exit(cs)
}
