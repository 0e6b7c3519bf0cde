package timer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/sandtimer/internal/model"
)

// Tick loop constants
const (
	TickPeriod          = time.Second
	DefaultPollInterval = 100 * time.Millisecond
)

// Service guards the process-wide countdown timer
type Service struct {
	mu       sync.Mutex
	timer    *model.Timer
	onExpiry ExpiryHandler
	clock    Clock
	logger   *slog.Logger
}

// NewService creates a stopped timer service armed with minutes
func NewService(minutes uint64, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		timer:  model.NewTimer(minutes),
		clock:  SystemClock,
		logger: logger.With("component", "timer"),
	}
}

// SetExpiryHandler sets the callback for expiry events
func (s *Service) SetExpiryHandler(handler ExpiryHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onExpiry = handler
}

// SetClock replaces the time source used for expiry timestamps and Run
func (s *Service) SetClock(clock Clock) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clock = clock
}

// Snapshot returns a consistent copy of the timer
func (s *Service) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer.Snapshot()
}

// Toggle starts, pauses or resumes the countdown
func (s *Service) Toggle() {
	s.mu.Lock()
	from := s.timer.State
	s.timer.Toggle()
	to := s.timer.State
	s.mu.Unlock()

	s.logger.Debug("timer toggled", "from", from, "to", to)
}

// Tick advances a running countdown by one second and emits an expiry event
// when it reaches zero
func (s *Service) Tick() {
	s.mu.Lock()
	expired := s.timer.Tick()
	var event model.Expiry
	if expired {
		event = s.expiryLocked(model.ReasonElapsed)
	}
	handler := s.onExpiry
	s.mu.Unlock()

	if expired {
		s.dispatch(handler, event)
	}
}

// Stop halts and rearms the timer, then emits an expiry event
func (s *Service) Stop() {
	s.mu.Lock()
	s.timer.Stop()
	event := s.expiryLocked(model.ReasonStopped)
	handler := s.onExpiry
	s.mu.Unlock()

	s.dispatch(handler, event)
}

// Reset discards the countdown and arms the timer with minutes
func (s *Service) Reset(minutes uint64) {
	s.mu.Lock()
	s.timer.Reset(minutes)
	s.mu.Unlock()

	s.logger.Debug("timer reset", "minutes", minutes)
}

// AddOneMinute extends the countdown by a minute
func (s *Service) AddOneMinute() {
	s.mu.Lock()
	s.timer.AddOneMinute()
	snap := s.timer.Snapshot()
	s.mu.Unlock()

	s.logger.Debug("minute added", "remaining", snap.Clock(), "configured", snap.ConfiguredMinutes)
}

// SetConfiguredMinutes replaces the configured duration.
// The caller is responsible for only doing this while stopped.
func (s *Service) SetConfiguredMinutes(minutes uint64) {
	s.mu.Lock()
	s.timer.SetConfiguredMinutes(minutes)
	s.mu.Unlock()
}

// SetSoundEnabled controls whether expiries request the audio cue
func (s *Service) SetSoundEnabled(enabled bool) {
	s.mu.Lock()
	s.timer.SoundEnabled = enabled
	s.mu.Unlock()
}

// Run is the tick source. It polls every interval and ticks once whenever a
// full second of wall-clock time has passed. It returns when ctx is done.
func (s *Service) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	s.mu.Lock()
	clock := s.clock
	s.mu.Unlock()

	ticker := clock.NewTicker(interval)
	defer ticker.Stop()

	pacer := NewPacer(clock.Now(), TickPeriod)
	s.logger.Debug("tick loop started", "interval", interval)

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("tick loop stopped")
			return
		case now := <-ticker.C():
			if pacer.Due(now) {
				s.Tick()
			}
		}
	}
}

// expiryLocked builds the event for the transition that just happened.
// s.mu must be held.
func (s *Service) expiryLocked(reason model.ExpiryReason) model.Expiry {
	return model.Expiry{
		ID:                uuid.NewString(),
		At:                s.clock.Now(),
		Reason:            reason,
		ConfiguredMinutes: s.timer.ConfiguredMinutes,
		SoundEnabled:      s.timer.SoundEnabled,
	}
}

// dispatch calls the expiry handler if set
func (s *Service) dispatch(handler ExpiryHandler, event model.Expiry) {
	s.logger.Info("timer expired", "id", event.ID, "reason", event.Reason, "rearmed_minutes", event.ConfiguredMinutes)
	if handler != nil {
		handler(event)
	}
}
