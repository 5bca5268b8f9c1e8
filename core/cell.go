package core

// GuardedCell is a process-wide slot that is written at most once and
// only accessed with interrupts masked. It goes from empty to filled and
// never back.
//
// Every accessor takes a CriticalSection. While masked no interrupt can run
// and there is no second core, so the token is the whole locking story.
type GuardedCell[T any] struct {
	value  T
	filled bool
}

// Set stores v if the cell is empty. A filled cell is left untouched and
// ErrAlreadyInitialized is returned.
func (c *GuardedCell[T]) Set(cs CriticalSection, v T) error {
	cs.check()
	if c.filled {
		return ErrAlreadyInitialized
	}
	c.value = v
	c.filled = true
	return nil
}

// Get returns the stored value. The pointer is the same on every call.
func (c *GuardedCell[T]) Get(cs CriticalSection) (*T, error) {
	cs.check()
	if !c.filled {
		return nil, ErrNotInitialized
	}
	return &c.value, nil
}

// MustGet is Get for interrupt paths, where an empty cell means the vector
// fired before setup finished. That is a sequencing defect and halts.
func (c *GuardedCell[T]) MustGet(cs CriticalSection) *T {
	v, err := c.Get(cs)
	if err != nil {
		Halt(err)
	}
	return v
}
