// Package serial mirrors simulator output to a serial port, for example a
// USB-UART bridge feeding a logic analyzer host or a second board.
package serial

import (
	"io"
)

// Port represents a serial port interface
// This abstraction allows for different implementations:
// - Native serial (using github.com/tarm/serial)
// - Mock serial (for testing)
type Port interface {
	io.WriteCloser

	// Flush flushes any buffered data
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultConfig returns a default configuration for a trace port
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 100,
	}
}

// LineWriter writes whole lines to a Port and flushes after each one.
type LineWriter struct {
	port Port
}

// NewLineWriter wraps port
func NewLineWriter(port Port) *LineWriter {
	return &LineWriter{port: port}
}

// WriteLine writes s followed by CRLF
func (w *LineWriter) WriteLine(s string) error {
	if _, err := io.WriteString(w.port, s+"\r\n"); err != nil {
		return err
	}
	return w.port.Flush()
}

// Close closes the underlying port
func (w *LineWriter) Close() error {
	return w.port.Close()
}
