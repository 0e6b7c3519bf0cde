// Package alert turns timer expiry events into user-visible alerts: a desktop
// notification and, when enabled, the audio cue.
package alert

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ytget/sandtimer/internal/i18n"
	"github.com/ytget/sandtimer/internal/model"
	"github.com/ytget/sandtimer/internal/notify"
)

// Icon is the freedesktop icon name shown with the notification
const Icon = "clock"

// Texts provides localized strings
type Texts interface {
	Text(key string) string
}

// Cue plays the audio signal
type Cue interface {
	Play(ctx context.Context) error
}

// Dispatcher delivers alerts without blocking the caller
type Dispatcher struct {
	notifier notify.Notifier
	cue      Cue
	texts    Texts
	logger   *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewDispatcher creates a dispatcher. cue may be nil to disable audio.
func NewDispatcher(notifier notify.Notifier, cue Cue, texts Texts, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		notifier: notifier,
		cue:      cue,
		texts:    texts,
		logger:   logger.With("component", "alert"),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Handle starts delivering the alert for event and returns immediately.
// Its signature matches timer.ExpiryHandler.
func (d *Dispatcher) Handle(event model.Expiry) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.deliver(event)
	}()
}

func (d *Dispatcher) deliver(event model.Expiry) {
	log := d.logger.With("expiry_id", event.ID, "reason", string(event.Reason))

	if d.notifier != nil {
		id, err := d.notifier.Notify(notify.Notification{
			Title:   d.texts.Text(i18n.KeyNotificationSummary),
			Body:    d.texts.Text(i18n.KeyNotificationBody),
			Icon:    Icon,
			Timeout: -1,
			Urgency: notify.UrgencyNormal,
		})
		if err != nil {
			log.Warn("notification failed", "error", err)
		} else {
			log.Debug("notification sent", "notification_id", id)
		}
	}

	if !event.SoundEnabled || d.cue == nil {
		return
	}
	if err := d.cue.Play(d.ctx); err != nil {
		log.Warn("audio cue failed", "error", err)
	}
}

// Wait blocks until every alert started so far has been delivered
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Close interrupts playing cues and waits for pending alerts
func (d *Dispatcher) Close() {
	d.cancel()
	d.wg.Wait()
}
