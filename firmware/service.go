package firmware

import "irqshare/device"

// Levels is the state of the two LED outputs.
type Levels struct {
	P0 bool
	P6 bool
}

// Outputs reads the current LED levels
func Outputs(p *device.Peripherals) Levels {
	return levelsOf(p.Port.P1OUT.Read())
}

func levelsOf(out uint8) Levels {
	return Levels{
		P0: out&device.P0 != 0,
		P6: out&device.P6 != 0,
	}
}

// ServiceCompare is the body of the compare 1 handler. It acknowledges the
// match and complements both LED outputs, returning the new levels.
//
// CCIFG must be cleared here. Left set, the vector would be taken again
// as soon as the handler returns and the main loop would never run.
func ServiceCompare(p *device.Peripherals) Levels {
	p.Timer0.TA0CCTL1.ClearBits(device.CCIFG)

	prev := p.Port.P1OUT.Modify(func(v uint8) uint8 {
		return v ^ (device.P0 | device.P6)
	})
	return levelsOf(prev ^ (device.P0 | device.P6))
}
