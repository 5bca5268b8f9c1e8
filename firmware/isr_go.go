//go:build !tinygo

package firmware

import "irqshare/core"

// ResetStats zeroes the vector statistics, as a device reset would.
func ResetStats() {
	core.Free(func(cs core.CriticalSection) {
		*isr.Borrow(cs) = ISRStats{}
	})
}
