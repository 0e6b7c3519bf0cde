package model

// TimerState represents the run mode of the countdown timer
type TimerState int

const (
	// Stopped means the timer is armed with its configured duration and idle
	Stopped TimerState = iota

	// Running means the countdown decrements on every tick
	Running

	// Paused means the countdown is held and ticks are ignored
	Paused
)

// String returns the string representation of TimerState
func (s TimerState) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a countdown is in progress (running or paused)
func (s TimerState) IsActive() bool {
	return s == Running || s == Paused
}

// Next returns the state reached by a toggle from s.
// Toggle never leads to Stopped.
func (s TimerState) Next() TimerState {
	switch s {
	case Running:
		return Paused
	default:
		return Running
	}
}
