package timer

import "time"

// Ticker delivers periodic wake-ups to the tick loop.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock provides time-related operations.
// This interface enables dependency injection for testing tick behavior.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

// SystemClock is the default Clock implementation using the standard library.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) NewTicker(d time.Duration) Ticker {
	return &systemTicker{t: time.NewTicker(d)}
}

type systemTicker struct {
	t *time.Ticker
}

func (s *systemTicker) C() <-chan time.Time {
	return s.t.C
}

func (s *systemTicker) Stop() {
	s.t.Stop()
}

// Pacer decides when a polling loop should deliver the next tick.
// A late poll yields a single tick; missed periods are not replayed.
type Pacer struct {
	period time.Duration
	last   time.Time
}

// NewPacer creates a pacer whose first period starts at start
func NewPacer(start time.Time, period time.Duration) *Pacer {
	return &Pacer{period: period, last: start}
}

// Due reports whether at least one period elapsed since the previous tick.
// When it returns true the next period starts at now.
func (p *Pacer) Due(now time.Time) bool {
	if now.Sub(p.last) < p.period {
		return false
	}
	p.last = now
	return true
}
