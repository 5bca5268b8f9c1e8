package core

// Mutex holds state shared between the main loop and an interrupt
// handler. Access goes through Borrow, which needs a CriticalSection.
type Mutex[T any] struct {
	value T
}

// NewMutex returns a Mutex holding v
func NewMutex[T any](v T) Mutex[T] {
	return Mutex[T]{value: v}
}

// Borrow returns the protected value. The pointer must not be used after
// the masked region that produced cs ends.
func (m *Mutex[T]) Borrow(cs CriticalSection) *T {
	cs.check()
	return &m.value
}
