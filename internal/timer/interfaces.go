package timer

import (
	"github.com/ytget/sandtimer/internal/model"
)

// ExpiryHandler receives every expiry event. It is never called while the
// timer lock is held.
type ExpiryHandler func(model.Expiry)

// Countdown defines the interface for the timer service.
type Countdown interface {
	SetExpiryHandler(handler ExpiryHandler)
	Snapshot() model.Snapshot
	Toggle()
	Tick()
	Stop()
	Reset(minutes uint64)
	AddOneMinute()

	// SetConfiguredMinutes must only be called while the timer is stopped
	SetConfiguredMinutes(minutes uint64)

	// SetSoundEnabled controls whether expiries request the audio cue
	SetSoundEnabled(enabled bool)
}

// Verify Service implements Countdown at compile time.
var _ Countdown = (*Service)(nil)
