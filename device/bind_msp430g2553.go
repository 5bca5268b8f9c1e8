//go:build tinygo && msp430g2553

package device

import (
	"runtime/volatile"
	"unsafe"
)

// Memory-mapped register addresses
const (
	addrWDTCTL   = 0x0120
	addrP1OUT    = 0x0021
	addrP1DIR    = 0x0022
	addrBCSCTL1  = 0x0057
	addrBCSCTL3  = 0x0053
	addrTA0CTL   = 0x0160
	addrTA0CCTL1 = 0x0164
	addrTA0R     = 0x0170
	addrTA0CCR0  = 0x0172
	addrTA0CCR1  = 0x0174
)

var (
	wdtctl   Register[uint16] = (*volatile.Register16)(unsafe.Pointer(uintptr(addrWDTCTL)))
	p1dir    Register[uint8]  = (*volatile.Register8)(unsafe.Pointer(uintptr(addrP1DIR)))
	p1out    Register[uint8]  = (*volatile.Register8)(unsafe.Pointer(uintptr(addrP1OUT)))
	bcsctl1  Register[uint8]  = (*volatile.Register8)(unsafe.Pointer(uintptr(addrBCSCTL1)))
	bcsctl3  Register[uint8]  = (*volatile.Register8)(unsafe.Pointer(uintptr(addrBCSCTL3)))
	ta0ctl   Register[uint16] = (*volatile.Register16)(unsafe.Pointer(uintptr(addrTA0CTL)))
	ta0cctl1 Register[uint16] = (*volatile.Register16)(unsafe.Pointer(uintptr(addrTA0CCTL1)))
	ta0r     Register[uint16] = (*volatile.Register16)(unsafe.Pointer(uintptr(addrTA0R)))
	ta0ccr0  Register[uint16] = (*volatile.Register16)(unsafe.Pointer(uintptr(addrTA0CCR0)))
	ta0ccr1  Register[uint16] = (*volatile.Register16)(unsafe.Pointer(uintptr(addrTA0CCR1)))
)
