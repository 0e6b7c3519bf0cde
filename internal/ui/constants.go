package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconLanguage = "🌐"
)

// Window sizing
const (
	WindowWidth  float32 = 300
	WindowHeight float32 = 430
)

// Countdown text
const (
	ClockTextSize float32 = 64
	StateTextSize float32 = 14
)

// Slider range in minutes
const (
	SliderMin  = 0
	SliderMax  = 120
	SliderStep = 1
)

// RefreshInterval is the default redraw period of the refresh loop
const RefreshInterval = 100 * time.Millisecond

// Text fragments
const (
	SliderLabelFormat = "%s: %d"
)
