//go:build !tinygo

package device

// SimRegister is a plain in-memory register for host builds.
type SimRegister[T Word] struct {
	value T
}

// Get returns the register value
func (r *SimRegister[T]) Get() T {
	return r.value
}

// Set replaces the register value
func (r *SimRegister[T]) Set(value T) {
	r.value = value
}

// RegisterFile is the simulated register space behind every Peripherals
// view on host builds. The simulator pokes hardware-owned bits (TA0R,
// CCIFG) directly through it.
type RegisterFile struct {
	WDTCTL   SimRegister[uint16]
	P1DIR    SimRegister[uint8]
	P1OUT    SimRegister[uint8]
	BCSCTL1  SimRegister[uint8]
	BCSCTL3  SimRegister[uint8]
	TA0CTL   SimRegister[uint16]
	TA0CCTL1 SimRegister[uint16]
	TA0R     SimRegister[uint16]
	TA0CCR0  SimRegister[uint16]
	TA0CCR1  SimRegister[uint16]
}

// Simulated is the host register file.
var Simulated RegisterFile

var (
	wdtctl   Register[uint16] = &Simulated.WDTCTL
	p1dir    Register[uint8]  = &Simulated.P1DIR
	p1out    Register[uint8]  = &Simulated.P1OUT
	bcsctl1  Register[uint8]  = &Simulated.BCSCTL1
	bcsctl3  Register[uint8]  = &Simulated.BCSCTL3
	ta0ctl   Register[uint16] = &Simulated.TA0CTL
	ta0cctl1 Register[uint16] = &Simulated.TA0CCTL1
	ta0r     Register[uint16] = &Simulated.TA0R
	ta0ccr0  Register[uint16] = &Simulated.TA0CCR0
	ta0ccr1  Register[uint16] = &Simulated.TA0CCR1
)

// Reset values that differ from zero
const (
	resetWDTCTL  uint16 = 0x6900
	resetBCSCTL1 uint8  = 0x87
)

// PowerOnReset puts the simulated registers back to their reset values and
// clears the Take latch.
func PowerOnReset() {
	Simulated = RegisterFile{}
	Simulated.WDTCTL.Set(resetWDTCTL)
	Simulated.BCSCTL1.Set(resetBCSCTL1)
	taken = false
}

func init() {
	PowerOnReset()
}
