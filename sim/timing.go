package sim

import (
	akita "github.com/sarchlab/akita/v4/sim"

	"irqshare/device"
)

// timing is the compare schedule derived from the timer registers.
type timing struct {
	freq   akita.Freq       // Timer tick rate
	period akita.VTimeInSec // One up-mode cycle, TA0CCR0+1 ticks
	match  akita.VTimeInSec // Offset of the TA0CCR1 match inside a cycle
}

// readTiming decodes ACLK and the Timer0_A3 mode from the simulated registers.
func readTiming() (timing, error) {
	ctl := device.Simulated.TA0CTL.Get()
	if device.MC.Get(ctl) != device.MC_1 || device.TASSEL.Get(ctl) != device.TASSEL_1 {
		return timing{}, ErrTimerStopped
	}

	src := akita.Freq(device.VLOClockHz)
	if device.LFXT1S.Get(device.Simulated.BCSCTL3.Get()) == device.LFXT1S_0 {
		src = akita.Freq(device.CrystalClockHz)
	}
	div := akita.Freq(uint(1) << device.DIVA.Get(device.Simulated.BCSCTL1.Get()))
	freq := src / div

	ticks := akita.VTimeInSec(device.Simulated.TA0CCR0.Get()) + 1
	match := akita.VTimeInSec(device.Simulated.TA0CCR1.Get())

	return timing{
		freq:   freq,
		period: ticks * freq.Period(),
		match:  match * freq.Period(),
	}, nil
}

func (t timing) periodStart(n int) akita.VTimeInSec {
	return akita.VTimeInSec(n) * t.period
}

func (t timing) matchTime(n int) akita.VTimeInSec {
	return t.periodStart(n) + t.match
}
