package firmware

import "irqshare/device"

// Config holds the compile-time timer setup.
type Config struct {
	Period      uint16 // TA0CCR0, timer counts 0..Period
	Match       uint16 // TA0CCR1, compare point inside each period
	ClockSource uint8  // LFXT1S value selecting the ACLK source
	Divider     uint8  // DIVA value, ACLK = source >> Divider
}

// DefaultConfig blinks the LaunchPad LEDs from VLOCLK / 2
func DefaultConfig() Config {
	return Config{
		Period:      1200,
		Match:       600,
		ClockSource: device.LFXT1S_2,
		Divider:     device.DIVA_1,
	}
}

// ACLKHz returns the timer input frequency this config produces
func (c Config) ACLKHz() uint32 {
	src := uint32(device.VLOClockHz)
	if c.ClockSource == device.LFXT1S_0 {
		src = device.CrystalClockHz
	}
	return src >> c.Divider
}
