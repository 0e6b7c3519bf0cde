package model

import "time"

// ExpiryReason tells why the timer stopped and rearmed
type ExpiryReason string

const (
	// ReasonElapsed means the countdown reached zero on a tick
	ReasonElapsed ExpiryReason = "elapsed"

	// ReasonStopped means Stop was requested explicitly
	ReasonStopped ExpiryReason = "stopped"
)

// Expiry is emitted every time the timer stops and rearms.
// Consumers turn it into notifications; the timer itself never does.
type Expiry struct {
	ID                string
	At                time.Time
	Reason            ExpiryReason
	ConfiguredMinutes uint64
	SoundEnabled      bool
}
