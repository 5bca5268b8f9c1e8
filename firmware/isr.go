package firmware

import (
	"irqshare/core"
	"irqshare/device"
)

// ISRState tracks the timer vector through one service.
type ISRState uint8

const (
	Idle      ISRState = iota // Waiting for a compare match
	Triggered                 // Vector entered, CCIFG still set
	Servicing                 // Clearing the flag and toggling outputs
)

func (s ISRState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Triggered:
		return "triggered"
	case Servicing:
		return "servicing"
	default:
		return "unknown"
	}
}

// ISRStats is shared between the timer vector and the main loop.
type ISRStats struct {
	State    ISRState
	Serviced uint32
	Last     Levels
}

var isr core.Mutex[ISRStats]

// Enter moves the vector from Idle to Triggered. Entering while a previous
// service has not returned means the handler was nested, which this
// firmware does not support, so it halts.
func Enter(cs core.CriticalSection) {
	s := isr.Borrow(cs)
	if s.State != Idle {
		core.Halt(core.ErrReentered)
	}
	s.State = Triggered
	core.RecordEvent(core.EvtISREnter, s.Serviced)
}

// Service runs ServiceCompare and records the result.
func Service(cs core.CriticalSection, p *device.Peripherals) Levels {
	s := isr.Borrow(cs)
	s.State = Servicing
	levels := ServiceCompare(p)
	s.Serviced++
	s.Last = levels
	return levels
}

// Exit returns the vector to Idle.
func Exit(cs core.CriticalSection) {
	s := isr.Borrow(cs)
	s.State = Idle
	out := uint32(0)
	if s.Last.P0 {
		out |= uint32(device.P0)
	}
	if s.Last.P6 {
		out |= uint32(device.P6)
	}
	core.RecordEvent(core.EvtISRExit, out)
}

// Stats returns a copy of the vector statistics.
func Stats(cs core.CriticalSection) ISRStats {
	return *isr.Borrow(cs)
}
