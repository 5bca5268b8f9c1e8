package oncecell

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"irqshare/core"
	"irqshare/device"
	"irqshare/firmware"
)

func haltErr(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fault, ok := r.(*core.Fault)
			if !ok {
				panic(r)
			}
			err = fault.Err
		}
	}()
	f()
	return nil
}

func powerOn(t *testing.T) {
	t.Helper()
	Reset()
	t.Cleanup(Reset)
}

func outputs() firmware.Levels {
	p := device.Steal()
	return firmware.Outputs(&p)
}

func fire() {
	device.Simulated.TA0CCTL1.Set(device.Simulated.TA0CCTL1.Get() | device.CCIFG)
	core.ServeInterrupt(TimerA1)
}

func TestSetupPublishesPeripherals(t *testing.T) {
	powerOn(t)

	Setup()

	core.Free(func(cs core.CriticalSection) {
		p, err := peripherals.Get(cs)
		require.NoError(t, err)
		assert.Equal(t, uint16(1200), p.Timer0.TA0CCR0.Read())
	})
	assert.False(t, core.InterruptsEnabled(), "Setup must leave interrupts masked")
	assert.Equal(t, firmware.Levels{P0: true, P6: false}, outputs())
}

func TestSecondSetupHalts(t *testing.T) {
	powerOn(t)
	Setup()

	err := haltErr(Setup)
	assert.True(t, errors.Is(err, device.ErrAlreadyTaken))
}

func TestTakeSuccessThenFailure(t *testing.T) {
	powerOn(t)
	Setup()

	_, err := device.Take()
	assert.True(t, errors.Is(err, device.ErrAlreadyTaken))

	// The instance moved into the cell is still the one the handler uses
	fire()
	assert.Equal(t, firmware.Levels{P0: false, P6: true}, outputs())
}

func TestCellRefusesSecondInstall(t *testing.T) {
	powerOn(t)
	Setup()

	core.Free(func(cs core.CriticalSection) {
		err := peripherals.Set(cs, device.Steal())
		assert.True(t, errors.Is(err, core.ErrAlreadyInitialized))
	})
}

func TestInterruptBeforeSetupHalts(t *testing.T) {
	powerOn(t)

	err := haltErr(func() { core.ServeInterrupt(TimerA1) })
	assert.True(t, errors.Is(err, core.ErrNotInitialized))
}

func TestHandlerTogglesAndClearsFlag(t *testing.T) {
	powerOn(t)
	Setup()

	fire()
	assert.Zero(t, device.Simulated.TA0CCTL1.Get()&device.CCIFG)
	assert.Equal(t, firmware.Levels{P0: false, P6: true}, outputs())

	fire()
	assert.Zero(t, device.Simulated.TA0CCTL1.Get()&device.CCIFG)
	assert.Equal(t, firmware.Levels{P0: true, P6: false}, outputs())
}

func TestIdleSeesHandlerStats(t *testing.T) {
	powerOn(t)
	Setup()
	core.Unmask()

	for i := 0; i < 3; i++ {
		fire()
	}

	stats := Idle()
	assert.Equal(t, uint32(3), stats.Serviced)
	assert.Equal(t, firmware.Idle, stats.State)
	assert.True(t, core.InterruptsEnabled(), "Idle must restore the unmasked state")
}

func TestEventSequence(t *testing.T) {
	powerOn(t)
	Setup()
	core.Unmask()
	fire()

	var got []uint8
	for _, evt := range core.Events() {
		got = append(got, evt.Type)
	}
	assert.Equal(t, []uint8{
		core.EvtTake,
		core.EvtConfigure,
		core.EvtInstall,
		core.EvtUnmask,
		core.EvtISREnter,
		core.EvtISRExit,
	}, got)
}
