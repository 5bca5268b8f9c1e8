package core

import "errors"

var (
	// ErrAlreadyInitialized is returned when a GuardedCell is set twice.
	ErrAlreadyInitialized = errors.New("cell already initialized")

	// ErrNotInitialized is returned when a GuardedCell is read before set.
	ErrNotInitialized = errors.New("cell not initialized")

	// ErrForgedToken means a CriticalSection was not minted by a masked region.
	ErrForgedToken = errors.New("critical section token not minted by a masked region")

	// ErrReentered means a vector was entered before its previous run returned.
	ErrReentered = errors.New("interrupt handler re-entered")

	// ErrInterruptStorm means a vector kept firing because its flag was never cleared.
	ErrInterruptStorm = errors.New("interrupt flag never cleared")
)

// Fault is the value Halt stops the program with.
type Fault struct {
	Err error
}

func (f *Fault) Error() string {
	return "halt: " + f.Err.Error()
}

func (f *Fault) Unwrap() error {
	return f.Err
}
