package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment overrides, e.g. SANDTIMER_MINUTES
const EnvPrefix = "SANDTIMER_"

// Settings keys
const (
	KeyMinutes      = "minutes"
	KeySound        = "sound"
	KeyLanguage     = "language"
	KeyLogLevel     = "log_level"
	KeyTickInterval = "tick_interval"
)

// Default values
const (
	DefaultMinutes      = 30
	DefaultSound        = true
	DefaultLanguage     = "system"
	DefaultLogLevel     = "info"
	DefaultTickInterval = 100 * time.Millisecond
)

// Limits
const (
	MinMinutes      = 0
	MaxMinutes      = 120
	MinTickInterval = 10 * time.Millisecond
	MaxTickInterval = time.Second
)

// values is the raw configuration after all providers were merged
type values struct {
	Minutes      int           `koanf:"minutes"`
	Sound        bool          `koanf:"sound"`
	Language     string        `koanf:"language"`
	LogLevel     string        `koanf:"log_level"`
	TickInterval time.Duration `koanf:"tick_interval"`
}

// Settings holds the startup configuration. Nothing is read from or written
// to disk; values come from built-in defaults overridden by the environment.
type Settings struct {
	v values
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		KeyMinutes:      DefaultMinutes,
		KeySound:        DefaultSound,
		KeyLanguage:     DefaultLanguage,
		KeyLogLevel:     DefaultLogLevel,
		KeyTickInterval: DefaultTickInterval.String(),
	}
}

// NewSettings returns settings with every default applied
func NewSettings() *Settings {
	return &Settings{v: values{
		Minutes:      DefaultMinutes,
		Sound:        DefaultSound,
		Language:     DefaultLanguage,
		LogLevel:     DefaultLogLevel,
		TickInterval: DefaultTickInterval,
	}}
}

// Load merges defaults with SANDTIMER_* environment variables.
// On error the returned settings hold the defaults and remain usable.
func Load() (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return NewSettings(), fmt.Errorf("load defaults: %w", err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return NewSettings(), fmt.Errorf("load environment: %w", err)
	}

	var v values
	if err := k.Unmarshal("", &v); err != nil {
		return NewSettings(), fmt.Errorf("parse settings: %w", err)
	}

	return &Settings{v: v}, nil
}

// envKey maps SANDTIMER_TICK_INTERVAL to tick_interval
func envKey(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// GetMinutes returns the initial configured duration in minutes
func (s *Settings) GetMinutes() uint64 {
	minutes := s.v.Minutes
	if minutes < MinMinutes {
		minutes = MinMinutes
	}
	if minutes > MaxMinutes {
		minutes = MaxMinutes
	}
	return uint64(minutes)
}

// GetSoundEnabled returns whether the audio cue starts enabled
func (s *Settings) GetSoundEnabled() bool {
	return s.v.Sound
}

// GetLanguage returns the language setting ("system" or a locale tag)
func (s *Settings) GetLanguage() string {
	lang := strings.TrimSpace(s.v.Language)
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}

// GetLogLevel returns the configured log level, info when unrecognised
func (s *Settings) GetLogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s.v.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// GetTickInterval returns how often the tick loop polls the clock
func (s *Settings) GetTickInterval() time.Duration {
	interval := s.v.TickInterval
	if interval < MinTickInterval {
		interval = MinTickInterval
	}
	if interval > MaxTickInterval {
		interval = MaxTickInterval
	}
	return interval
}
