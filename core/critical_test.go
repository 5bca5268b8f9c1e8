package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetCPU(t *testing.T) {
	t.Helper()
	ResetInterrupts()
	ClearEventRing()
	t.Cleanup(ResetInterrupts)
}

// haltErr runs f and returns the error it halted with, or nil
func haltErr(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fault, ok := r.(*Fault)
			if !ok {
				panic(r)
			}
			err = fault.Err
		}
	}()
	f()
	return nil
}

func TestFreeRestoresMaskState(t *testing.T) {
	for _, enabled := range []bool{false, true} {
		resetCPU(t)
		if enabled {
			Unmask()
		}

		var inside bool
		Free(func(cs CriticalSection) {
			inside = InterruptsEnabled()
		})

		assert.False(t, inside, "interrupts must be masked inside Free")
		assert.Equal(t, enabled, InterruptsEnabled(), "mask state not restored")
	}
}

func TestFreeRestoresAfterActionUnmasks(t *testing.T) {
	resetCPU(t)

	Free(func(cs CriticalSection) {
		Unmask()
		assert.True(t, InterruptsEnabled())
	})

	assert.False(t, InterruptsEnabled(), "Free leaked an unmask made by its action")
}

func TestNestedFreeDoesNotUnmaskEarly(t *testing.T) {
	resetCPU(t)
	Unmask()

	Free(func(outer CriticalSection) {
		Free(func(inner CriticalSection) {})
		assert.False(t, InterruptsEnabled(), "inner Free unmasked the outer region")
	})

	assert.True(t, InterruptsEnabled())
}

func TestFreeValueReturnsResult(t *testing.T) {
	resetCPU(t)

	got := FreeValue(func(cs CriticalSection) int { return 42 })
	assert.Equal(t, 42, got)
}

func TestServeInterruptMintsValidToken(t *testing.T) {
	resetCPU(t)

	var cell GuardedCell[int]
	ServeInterrupt(func(cs CriticalSection) {
		require.NoError(t, cell.Set(cs, 7))
	})

	Free(func(cs CriticalSection) {
		v, err := cell.Get(cs)
		require.NoError(t, err)
		assert.Equal(t, 7, *v)
	})
}

func TestServeInterruptMasksAroundVector(t *testing.T) {
	for _, enabled := range []bool{false, true} {
		resetCPU(t)
		if enabled {
			Unmask()
		}

		var cell GuardedCell[int]
		inside := true
		ServeInterrupt(func(cs CriticalSection) {
			inside = InterruptsEnabled()
			require.NoError(t, cell.Set(cs, 1))
		})

		assert.False(t, inside, "vector body ran with GIE set")
		assert.Equal(t, enabled, InterruptsEnabled(), "GIE not restored on return")
	}
}

func TestServeInterruptHaltLeavesMasked(t *testing.T) {
	resetCPU(t)
	Unmask()

	err := haltErr(func() {
		ServeInterrupt(func(cs CriticalSection) { Halt(ErrReentered) })
	})

	assert.True(t, errors.Is(err, ErrReentered))
	assert.False(t, InterruptsEnabled())
}

func TestZeroTokenIsRejected(t *testing.T) {
	resetCPU(t)

	var cell GuardedCell[int]
	err := haltErr(func() {
		_, _ = cell.Get(CriticalSection{})
	})
	assert.True(t, errors.Is(err, ErrForgedToken))
}

type fakeSource struct {
	pending int
	clear   bool
	served  int
}

func (f *fakeSource) Pending() (func(cs CriticalSection), bool) {
	if f.pending == 0 {
		return nil, false
	}
	return func(cs CriticalSection) {
		f.served++
		if f.clear {
			f.pending--
		}
	}, true
}

func TestPendingDeliveredWhenMaskRestored(t *testing.T) {
	resetCPU(t)
	src := &fakeSource{clear: true}
	SetInterruptSource(src)
	Unmask()

	Free(func(cs CriticalSection) {
		src.pending = 1
		PollInterrupts()
		assert.Equal(t, 0, src.served, "delivered while masked")
	})

	assert.Equal(t, 1, src.served, "pending interrupt not delivered at end of masked region")
	assert.True(t, InterruptsEnabled())
}

func TestVectorRunsMasked(t *testing.T) {
	resetCPU(t)
	var masked bool
	SetInterruptSource(sourceFunc(func() (func(cs CriticalSection), bool) {
		if masked {
			return nil, false
		}
		return func(cs CriticalSection) { masked = !InterruptsEnabled() }, true
	}))

	Unmask()

	assert.True(t, masked, "vector ran with GIE set")
	assert.True(t, InterruptsEnabled(), "GIE not restored after vector")
}

func TestUnclearedFlagHaltsWithStorm(t *testing.T) {
	resetCPU(t)
	src := &fakeSource{pending: 1}
	SetInterruptSource(src)

	err := haltErr(Unmask)

	assert.True(t, errors.Is(err, ErrInterruptStorm))
	assert.Equal(t, maxBackToBack, src.served)
	assert.False(t, InterruptsEnabled())
}

type sourceFunc func() (func(cs CriticalSection), bool)

func (f sourceFunc) Pending() (func(cs CriticalSection), bool) { return f() }
