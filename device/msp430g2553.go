package device

// MSP430G2553 register blocks used by this firmware. Bit names follow the
// family user's guide (SLAU144).

// Vector index of TIMER0_A1 (CCR1, CCR2 and TAIFG).
const IRQ_TIMER0_A1 = 8

// WatchdogTimer is the WDT+ block.
type WatchdogTimer struct {
	WDTCTL Reg[uint16]
}

// WDTCTL bits
const (
	WDTPW   uint16 = 0x5A00 // Password, must accompany every write
	WDTHOLD uint16 = 0x0080 // Stop the watchdog
)

// Port12 is the digital I/O block for ports 1 and 2. Only port 1 is used.
type Port12 struct {
	P1DIR Reg[uint8]
	P1OUT Reg[uint8]
}

// Port 1 pins wired to the LaunchPad LEDs
const (
	P0 uint8 = 1 << 0 // P1.0, red LED
	P6 uint8 = 1 << 6 // P1.6, green LED
)

// SystemClock is the basic clock module+ block.
type SystemClock struct {
	BCSCTL1 Reg[uint8]
	BCSCTL3 Reg[uint8]
}

// Clock fields
var (
	DIVA   = Field[uint8]{Shift: 4, Width: 2} // BCSCTL1: ACLK divider
	LFXT1S = Field[uint8]{Shift: 4, Width: 2} // BCSCTL3: LFXT1 range select
)

// Clock field values
const (
	DIVA_1   uint8 = 1 // ACLK / 2
	LFXT1S_0 uint8 = 0 // 32768 Hz watch crystal
	LFXT1S_2 uint8 = 2 // VLOCLK
)

// Clock rates feeding ACLK
const (
	VLOClockHz     = 12000
	CrystalClockHz = 32768
)

// TimerA3 is the Timer0_A3 block.
type TimerA3 struct {
	TA0CTL   Reg[uint16]
	TA0CCTL1 Reg[uint16]
	TA0R     Reg[uint16]
	TA0CCR0  Reg[uint16]
	TA0CCR1  Reg[uint16]
}

// TA0CTL fields
var (
	TASSEL = Field[uint16]{Shift: 8, Width: 2} // Clock source select
	MC     = Field[uint16]{Shift: 4, Width: 2} // Mode control
)

// TA0CTL field values
const (
	TASSEL_1 uint16 = 1 // ACLK
	MC_0     uint16 = 0 // Stopped
	MC_1     uint16 = 1 // Up mode: count to TA0CCR0 and wrap
)

// TA0CCTL1 bits
const (
	CCIE  uint16 = 0x0010 // Capture/compare interrupt enable
	CCIFG uint16 = 0x0001 // Capture/compare interrupt flag
)
