package luminary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFocusTimer_lifecycle(t *testing.T) {
	timer := NewFocusTimer()
	assert.Equal(t, TimerIdle, timer.State())

	timer.Start("ev-1", 3)
	assert.Equal(t, TimerRunning, timer.State())
	assert.Equal(t, "ev-1", timer.BoundTo())

	assert.False(t, timer.Tick())
	assert.Equal(t, 2, timer.Remaining())

	timer.Toggle()
	assert.Equal(t, TimerPaused, timer.State())
	assert.False(t, timer.Tick(), "a paused timer must not tick")
	assert.Equal(t, 2, timer.Remaining())

	timer.Toggle()
	assert.False(t, timer.Tick())
	assert.True(t, timer.Tick(), "the tick reaching zero reports expiry once")
	assert.Equal(t, TimerExpired, timer.State())
	assert.False(t, timer.Tick(), "an expired timer must not report expiry again")

	timer.Dismiss()
	assert.Equal(t, TimerIdle, timer.State())
	assert.Empty(t, timer.BoundTo())
}

func TestFocusTimer_startReplaces(t *testing.T) {
	timer := NewFocusTimer()
	timer.Start("ev-1", 100)
	timer.Start("ev-2", 5)

	assert.Equal(t, "ev-2", timer.BoundTo(), "starting a new timer silently replaces the old one")
	assert.Equal(t, 5, timer.Remaining())
}

func TestFocusTimer_unbind(t *testing.T) {
	for _, state := range []string{"running", "paused", "expired"} {
		timer := NewFocusTimer()
		timer.Start("ev-1", 1)
		switch state {
		case "paused":
			timer.Toggle()
		case "expired":
			timer.Tick()
		}

		timer.Unbind("other-event")
		assert.NotEqual(t, TimerIdle, timer.State(), "unbinding another event must not cancel (%s)", state)

		timer.Unbind("ev-1")
		assert.Equal(t, TimerIdle, timer.State(), "deleting the bound event forces idle from %s", state)
		assert.Zero(t, timer.Remaining())
	}
}

func TestFocusTimer_toggleOutsideRun(t *testing.T) {
	timer := NewFocusTimer()
	timer.Toggle()
	assert.Equal(t, TimerIdle, timer.State())

	timer.Start("ev-1", 1)
	timer.Tick() // expires
	timer.Toggle()
	assert.Equal(t, TimerExpired, timer.State(), "toggle has no effect once expired")
}
