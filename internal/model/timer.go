package model

import (
	"fmt"
	"time"
)

// SecondsPerMinute converts configured minutes into the countdown duration
const SecondsPerMinute = 60

// Timer is the countdown state machine.
//
// Remaining is always a whole number of seconds and never negative.
// ConfiguredMinutes is the value the timer rearms to; it never changes as a
// side effect of ticking.
type Timer struct {
	State             TimerState
	Remaining         time.Duration
	ConfiguredMinutes uint64
	SoundEnabled      bool
}

// Snapshot is a consistent copy of the timer fields
type Snapshot struct {
	State             TimerState
	Remaining         time.Duration
	ConfiguredMinutes uint64
	SoundEnabled      bool
}

// NewTimer creates a stopped timer armed with the given number of minutes
func NewTimer(minutes uint64) *Timer {
	return &Timer{
		State:             Stopped,
		Remaining:         minutesToDuration(minutes),
		ConfiguredMinutes: minutes,
		SoundEnabled:      true,
	}
}

// SetConfiguredMinutes replaces the configured duration and rearms Remaining.
// Callers must only use it while the timer is Stopped; this is not checked.
func (t *Timer) SetConfiguredMinutes(minutes uint64) {
	t.ConfiguredMinutes = minutes
	t.Remaining = minutesToDuration(minutes)
}

// AddOneMinute extends the countdown by one minute. While Stopped the
// configured duration grows too, so the next reset keeps the extra minute.
func (t *Timer) AddOneMinute() {
	t.Remaining += time.Minute
	if t.State == Stopped {
		t.ConfiguredMinutes++
	}
}

// Reset discards any countdown in progress and arms the timer with minutes
func (t *Timer) Reset(minutes uint64) {
	t.Remaining = minutesToDuration(minutes)
	t.State = Stopped
}

// Tick advances a running countdown by one second.
// It reports whether this tick expired the timer, in which case the timer has
// already been stopped and rearmed.
func (t *Timer) Tick() bool {
	if t.State != Running {
		return false
	}

	if t.Remaining >= time.Second {
		t.Remaining -= time.Second
	} else {
		t.Remaining = 0
	}

	if t.Remaining == 0 {
		t.Stop()
		return true
	}
	return false
}

// Stop halts the timer and rearms it to the full configured duration.
// It is both the user stop action and the expiry transition.
func (t *Timer) Stop() {
	t.State = Stopped
	t.Remaining = minutesToDuration(t.ConfiguredMinutes)
}

// Toggle starts a stopped timer, pauses a running one and resumes a paused one
func (t *Timer) Toggle() {
	t.State = t.State.Next()
}

// Snapshot returns a copy of the current timer fields
func (t *Timer) Snapshot() Snapshot {
	return Snapshot{
		State:             t.State,
		Remaining:         t.Remaining,
		ConfiguredMinutes: t.ConfiguredMinutes,
		SoundEnabled:      t.SoundEnabled,
	}
}

// FormatRemaining returns d formatted as MM:SS.
// Minutes are not wrapped into hours.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/SecondsPerMinute, total%SecondsPerMinute)
}

// Clock returns the remaining time of the snapshot formatted as MM:SS
func (s Snapshot) Clock() string {
	return FormatRemaining(s.Remaining)
}

func minutesToDuration(minutes uint64) time.Duration {
	return time.Duration(minutes) * time.Minute
}
