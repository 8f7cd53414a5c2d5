package luminary

// TimerState is the focus timer's state.
type TimerState int

const (
	TimerIdle TimerState = iota
	TimerRunning
	TimerPaused
	TimerExpired
)

func (s TimerState) String() string {
	switch s {
	case TimerIdle:
		return "idle"
	case TimerRunning:
		return "running"
	case TimerPaused:
		return "paused"
	case TimerExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// FocusTimer is a countdown bound to one schedule event. There is at most one
// active instance: starting a new countdown silently replaces the current one,
// and deleting the bound event forces the timer back to idle from any state.
// The timer is transient; it is never persisted.
type FocusTimer struct {
	state     TimerState
	eventID   string
	remaining int // seconds
}

// NewFocusTimer creates an idle timer.
func NewFocusTimer() *FocusTimer { return &FocusTimer{} }

func (t *FocusTimer) State() TimerState { return t.state }
func (t *FocusTimer) Remaining() int    { return t.remaining }

// BoundTo returns the id of the event the countdown is attached to, or ""
// when idle.
func (t *FocusTimer) BoundTo() string { return t.eventID }

// Start begins a countdown bound to an event, replacing any active one.
func (t *FocusTimer) Start(eventID string, seconds int) {
	t.state = TimerRunning
	t.eventID = eventID
	t.remaining = seconds
}

// Toggle switches between running and paused. It has no effect in other states.
func (t *FocusTimer) Toggle() {
	switch t.state {
	case TimerRunning:
		t.state = TimerPaused
	case TimerPaused:
		t.state = TimerRunning
	}
}

// Tick advances the countdown by one second. It reports true exactly once,
// on the tick that reaches zero, so the caller can play its completion tone.
func (t *FocusTimer) Tick() (justExpired bool) {
	if t.state != TimerRunning {
		return false
	}
	t.remaining--
	if t.remaining <= 0 {
		t.remaining = 0
		t.state = TimerExpired
		return true
	}
	return false
}

// Dismiss acknowledges an expired countdown, returning to idle.
func (t *FocusTimer) Dismiss() {
	t.reset()
}

// Unbind forces the timer to idle if it is bound to the given event,
// regardless of its current state. Deleting a schedule event must cancel its
// countdown; a dangling tick has no owner left to update.
func (t *FocusTimer) Unbind(eventID string) {
	if t.eventID == eventID {
		t.reset()
	}
}

func (t *FocusTimer) reset() {
	t.state = TimerIdle
	t.eventID = ""
	t.remaining = 0
}
