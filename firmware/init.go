// Package firmware holds the register-level logic shared by both ownership
// patterns: device setup and the timer compare service routine.
package firmware

import (
	"irqshare/core"
	"irqshare/device"
)

// Configure brings the device into its operating configuration. It runs
// once, from the main context, before interrupts are unmasked. Every step
// is a single register access that cannot fail on this device class.
func Configure(p *device.Peripherals, cfg Config) {
	// Stop the watchdog
	p.Watchdog.WDTCTL.Write(device.WDTPW | device.WDTHOLD)

	// LEDs: both outputs, P1.0 on, P1.6 off
	p.Port.P1DIR.SetBits(device.P0 | device.P6)
	p.Port.P1OUT.Modify(func(v uint8) uint8 {
		return v&^device.P6 | device.P0
	})

	// ACLK from the selected low-frequency source, divided
	p.Clock.BCSCTL3.Modify(func(v uint8) uint8 {
		return device.LFXT1S.Put(v, cfg.ClockSource)
	})
	p.Clock.BCSCTL1.Modify(func(v uint8) uint8 {
		return device.DIVA.Put(v, cfg.Divider)
	})

	// Timer: period, ACLK in up mode, compare 1 interrupt
	p.Timer0.TA0CCR0.Write(cfg.Period)
	p.Timer0.TA0CTL.Modify(func(v uint16) uint16 {
		v = device.TASSEL.Put(v, device.TASSEL_1)
		return device.MC.Put(v, device.MC_1)
	})
	p.Timer0.TA0CCTL1.SetBits(device.CCIE)
	p.Timer0.TA0CCR1.Write(cfg.Match)

	core.RecordEvent(core.EvtConfigure, uint32(cfg.Period))
	core.DebugPrintln("[INIT] TA0CCR0=" + core.Hex16(cfg.Period) +
		" TA0CCR1=" + core.Hex16(cfg.Match) +
		" TA0CTL=" + core.Hex16(p.Timer0.TA0CTL.Read()))
}
