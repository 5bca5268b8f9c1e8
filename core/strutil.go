package core

// Utoa converts an unsigned integer to a string without using fmt package
// This is a lightweight alternative for embedded systems
func Utoa(n uint32) string {
	if n == 0 {
		return "0"
	}

	// Count digits
	temp := n
	digits := 0
	for temp > 0 {
		digits++
		temp /= 10
	}

	// Build string from right to left
	buf := make([]byte, digits)
	pos := digits - 1

	for n > 0 {
		buf[pos] = byte('0' + n%10)
		n /= 10
		pos--
	}

	return string(buf)
}

// Hex16 formats a register value as 0xNNNN
func Hex16(v uint16) string {
	const digits = "0123456789ABCDEF"
	buf := [6]byte{'0', 'x'}
	for i := 0; i < 4; i++ {
		buf[5-i] = digits[v&0xF]
		v >>= 4
	}
	return string(buf[:])
}
