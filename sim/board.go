// Package sim runs a firmware image against a simulated MSP430G2553.
//
// Time is driven by an akita serial engine. The board derives the timer
// tick rate from the clock and timer registers the firmware wrote, raises
// CCIFG at every TA0CCR1 match and lets the core deliver TIMER0_A1 the way
// the CPU would: only while GIE is set, with GIE cleared for the handler.
package sim

import (
	"errors"

	akita "github.com/sarchlab/akita/v4/sim"

	"irqshare/core"
	"irqshare/device"
	"irqshare/firmware"
)

// ErrTimerStopped is returned when the firmware left Timer0_A3 stopped or
// clocked from a source the board does not model.
var ErrTimerStopped = errors.New("timer0 not running from ACLK in up mode")

// Program is a firmware image the board can run.
type Program interface {
	Name() string
	Reset()
	Setup()
	Idle() firmware.ISRStats
	TimerA1(cs core.CriticalSection)
}

// Sample is the LED state at one point in simulated time.
type Sample struct {
	Time   akita.VTimeInSec
	Match  int
	Levels firmware.Levels
}

// Board wires a Program to the simulated timer.
type Board struct {
	prog       Program
	periods    int
	idleSlices int

	engine *akita.SerialEngine
	trace  []Sample
	stats  firmware.ISRStats

	// OnSample is called for every recorded sample
	OnSample func(Sample)
}

// NewBoard creates a board that runs prog for the given number of timer
// periods, running the main loop idleSlices times per period.
func NewBoard(prog Program, periods, idleSlices int) *Board {
	return &Board{
		prog:       prog,
		periods:    periods,
		idleSlices: idleSlices,
	}
}

type matchEvent struct {
	*akita.EventBase
	n int
}

type idleEvent struct {
	*akita.EventBase
}

// Run resets the device, runs setup, unmasks interrupts and simulates the
// configured number of periods. A halt inside the firmware is returned as
// a *core.Fault.
func (b *Board) Run() (trace []Sample, err error) {
	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(*core.Fault)
			if !ok {
				panic(r)
			}
			trace, err = b.trace, f
		}
		core.SetInterruptSource(nil)
	}()

	b.prog.Reset()
	b.trace = nil
	b.engine = akita.NewSerialEngine()
	core.SetInterruptSource(b)

	b.prog.Setup()
	tm, err := readTiming()
	if err != nil {
		return nil, err
	}
	b.record(0, 0)
	core.Unmask()

	for n := 0; n < b.periods; n++ {
		start := tm.periodStart(n)
		for i := 0; i < b.idleSlices; i++ {
			t := start + tm.period*akita.VTimeInSec(i)/akita.VTimeInSec(b.idleSlices)
			b.engine.Schedule(&idleEvent{EventBase: akita.NewEventBase(t, b)})
		}
		b.engine.Schedule(&matchEvent{
			EventBase: akita.NewEventBase(tm.matchTime(n), b),
			n:         n + 1,
		})
	}

	if err := b.engine.Run(); err != nil {
		return b.trace, err
	}
	return b.trace, nil
}

// Stats returns the handler statistics seen by the last main loop pass.
func (b *Board) Stats() firmware.ISRStats {
	return b.stats
}

// Handle processes board events.
func (b *Board) Handle(e akita.Event) error {
	switch evt := e.(type) {
	case *matchEvent:
		b.compareMatch(evt)
	case *idleEvent:
		b.stats = b.prog.Idle()
	}
	return nil
}

// compareMatch is what the timer hardware does when TA0R reaches TA0CCR1
func (b *Board) compareMatch(evt *matchEvent) {
	device.Simulated.TA0R.Set(device.Simulated.TA0CCR1.Get())
	device.Simulated.TA0CCTL1.Set(device.Simulated.TA0CCTL1.Get() | device.CCIFG)

	core.PollInterrupts()
	b.record(evt.Time(), evt.n)
}

// Pending reports TIMER0_A1 while CCIE and CCIFG are both set.
func (b *Board) Pending() (func(cs core.CriticalSection), bool) {
	cctl := device.Simulated.TA0CCTL1.Get()
	if cctl&device.CCIE == 0 || cctl&device.CCIFG == 0 {
		return nil, false
	}
	return b.prog.TimerA1, true
}

func (b *Board) record(t akita.VTimeInSec, match int) {
	s := Sample{
		Time:  t,
		Match: match,
		Levels: firmware.Levels{
			P0: device.Simulated.P1OUT.Get()&device.P0 != 0,
			P6: device.Simulated.P1OUT.Get()&device.P6 != 0,
		},
	}
	b.trace = append(b.trace, s)
	if b.OnSample != nil {
		b.OnSample(s)
	}
}
