package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// Event captures one ownership or interrupt event for post-mortem analysis
type Event struct {
	Type  uint8  // Event type code
	Seq   uint32 // Global sequence number, starts at 1
	Value uint32 // Context-dependent value
}

// Event type codes
const (
	EvtTake      uint8 = 1 // Peripherals taken
	EvtSteal     uint8 = 2 // Peripherals stolen
	EvtInstall   uint8 = 3 // Peripherals published to the cell
	EvtUnmask    uint8 = 4 // Interrupts enabled after setup
	EvtISREnter  uint8 = 5 // Timer vector entered (value: services so far)
	EvtISRExit   uint8 = 6 // Timer vector returning (value: output port)
	EvtHalt      uint8 = 7 // Halt called
	EvtConfigure uint8 = 8 // Device configured (value: timer period)
)

const (
	EventRingSize = 32 // Keep last 32 events for post-mortem
)

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether debug output is active
	debugEnabled bool = false

	eventRing     [EventRingSize]Event
	eventRingHead uint8
	eventSeq      uint32
)

// SetDebugWriter sets the platform-specific debug output function
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// DebugPrintln writes a debug message using the platform-specific writer
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// RecordEvent captures an event in the ring buffer. Both contexts record,
// so the write is masked.
func RecordEvent(eventType uint8, value uint32) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	eventSeq++
	idx := eventRingHead
	eventRing[idx] = Event{
		Type:  eventType,
		Seq:   eventSeq,
		Value: value,
	}
	eventRingHead = (idx + 1) % EventRingSize
}

// Events returns the recorded events, oldest first
func Events() []Event {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	out := make([]Event, 0, EventRingSize)
	start := eventRingHead
	for i := uint8(0); i < EventRingSize; i++ {
		evt := eventRing[(start+i)%EventRingSize]
		if evt.Type == 0 {
			continue // Empty slot
		}
		out = append(out, evt)
	}
	return out
}

// EventName returns the printable name of an event type
func EventName(eventType uint8) string {
	switch eventType {
	case EvtTake:
		return "TAKE"
	case EvtSteal:
		return "STEAL"
	case EvtInstall:
		return "INSTALL"
	case EvtUnmask:
		return "UNMASK"
	case EvtISREnter:
		return "ISR_ENTER"
	case EvtISRExit:
		return "ISR_EXIT"
	case EvtHalt:
		return "HALT!"
	case EvtConfigure:
		return "CONFIGURE"
	default:
		return "UNKNOWN"
	}
}

// DumpEventRing outputs the event ring buffer (call on halt or from a debugger)
func DumpEventRing() {
	if debugPrintln == nil {
		return
	}

	debugPrintln("[EVENT] === Event Ring Dump ===")
	for _, evt := range Events() {
		debugPrintln("[EVENT] #" + Utoa(evt.Seq) + " " + EventName(evt.Type) +
			" v=" + Utoa(evt.Value))
	}
	debugPrintln("[EVENT] === End Dump ===")
}

// ClearEventRing clears the event buffer
func ClearEventRing() {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	for i := range eventRing {
		eventRing[i] = Event{}
	}
	eventRingHead = 0
	eventSeq = 0
}
