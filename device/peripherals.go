package device

import (
	"errors"

	"irqshare/core"
)

// ErrAlreadyTaken is returned by every Take after the first.
var ErrAlreadyTaken = errors.New("peripherals already taken")

// Peripherals owns every register block on the device. It is a view made of
// register handles, so copies refer to the same hardware.
type Peripherals struct {
	Watchdog WatchdogTimer
	Port     Port12
	Clock    SystemClock
	Timer0   TimerA3
}

// taken latches the first Take for the life of the process
var taken bool

// Take returns the peripherals once per process. Later calls return
// ErrAlreadyTaken.
func Take() (Peripherals, error) {
	var (
		p   Peripherals
		err error
	)
	core.Free(func(core.CriticalSection) {
		if taken {
			err = ErrAlreadyTaken
			return
		}
		taken = true
		p = view()
	})
	if err == nil {
		core.RecordEvent(core.EvtTake, 0)
	}
	return p, err
}

// Steal returns a view of the peripherals without checking or updating the
// Take latch. It never fails and may be called any number of times.
//
// Nothing here makes that sound. The caller must be able to show that no
// other view is mutating the same registers while this one is live. The
// arguments this firmware relies on, and which every call site must state,
// are:
//
//   - the CPU clears GIE on interrupt entry and restores it on return, so
//     a view created inside a handler never overlaps the main context's;
//   - the main context only steals before Unmask, when no handler can run.
//
// A second interrupt source stealing without masking, or a nested handler,
// breaks both and is undefined behaviour.
func Steal() Peripherals {
	return view()
}

func view() Peripherals {
	return Peripherals{
		Watchdog: WatchdogTimer{
			WDTCTL: Reg[uint16]{hw: wdtctl},
		},
		Port: Port12{
			P1DIR: Reg[uint8]{hw: p1dir},
			P1OUT: Reg[uint8]{hw: p1out},
		},
		Clock: SystemClock{
			BCSCTL1: Reg[uint8]{hw: bcsctl1},
			BCSCTL3: Reg[uint8]{hw: bcsctl3},
		},
		Timer0: TimerA3{
			TA0CTL:   Reg[uint16]{hw: ta0ctl},
			TA0CCTL1: Reg[uint16]{hw: ta0cctl1},
			TA0R:     Reg[uint16]{hw: ta0r},
			TA0CCR0:  Reg[uint16]{hw: ta0ccr0},
			TA0CCR1:  Reg[uint16]{hw: ta0ccr1},
		},
	}
}
