// Package app wires the timer service, alerts and window into a running
// desktop application.
package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"github.com/ytget/sandtimer/internal/alert"
	"github.com/ytget/sandtimer/internal/config"
	"github.com/ytget/sandtimer/internal/i18n"
	"github.com/ytget/sandtimer/internal/notify"
	"github.com/ytget/sandtimer/internal/sound"
	"github.com/ytget/sandtimer/internal/timer"
	"github.com/ytget/sandtimer/internal/ui"
)

const (
	AppID   = "com.ytget.sandtimer"
	AppName = "Sandtimer"
)

// NewLogger creates the process logger writing text records to w
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// session holds the components of one running window
type session struct {
	service    *timer.Service
	root       *ui.RootUI
	dispatcher *alert.Dispatcher
	window     fyne.Window
}

// newSession builds and connects every component around a.
// Alerts use the language currently shown in the window.
func newSession(a fyne.App, settings *config.Settings, notifier notify.Notifier, cue alert.Cue, logger *slog.Logger) *session {
	window := a.NewWindow(AppName)

	service := timer.NewService(settings.GetMinutes(), logger)
	service.SetSoundEnabled(settings.GetSoundEnabled())

	texts := i18n.ForSetting(settings.GetLanguage())
	root := ui.NewRootUI(a, window, service, texts, logger)

	dispatcher := alert.NewDispatcher(notifier, cue, root, logger)
	service.SetExpiryHandler(dispatcher.Handle)

	return &session{
		service:    service,
		root:       root,
		dispatcher: dispatcher,
		window:     window,
	}
}

// start launches the tick and refresh loops; both end with ctx
func (s *session) start(ctx context.Context, interval time.Duration) {
	go s.service.Run(ctx, interval)
	s.root.StartRefreshLoop(ctx, interval)
}

// Run starts the application and blocks until the window is closed or
// the user quits
func Run(version string) {
	settings, loadErr := config.Load()

	logger := NewLogger(os.Stderr, settings.GetLogLevel())
	slog.SetDefault(logger)
	if loadErr != nil {
		logger.Warn("invalid configuration, using defaults", "error", loadErr)
	}
	logger.Info("starting", "app", AppName, "version", version)

	a := fyneapp.NewWithID(AppID)
	a.SetIcon(ui.LogoResource)
	a.Settings().SetTheme(ui.NewCompactTheme())

	notifier := notify.New(notify.NewAppNotifier(a))
	s := newSession(a, settings, notifier, sound.NewPlayer(logger), logger)
	defer s.dispatcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.start(ctx, settings.GetTickInterval())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			logger.Info("received shutdown signal")
			fyne.Do(a.Quit)
		case <-ctx.Done():
		}
	}()

	s.window.ShowAndRun()
	logger.Info("stopped")
}
