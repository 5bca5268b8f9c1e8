//go:build !tinygo

package oncecell

import (
	"irqshare/core"
	"irqshare/device"
	"irqshare/firmware"
)

// Reset returns the program and the simulated device to power-on state.
func Reset() {
	core.ResetInterrupts()
	core.ClearEventRing()
	device.PowerOnReset()
	peripherals.Clear()
	firmware.ResetStats()
}

// Image exposes the program entry points to the host simulator.
type Image struct{}

func (Image) Name() string                    { return "oncecell" }
func (Image) Reset()                          { Reset() }
func (Image) Setup()                          { Setup() }
func (Image) Idle() firmware.ISRStats         { return Idle() }
func (Image) TimerA1(cs core.CriticalSection) { TimerA1(cs) }
