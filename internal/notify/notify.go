// Package notify provides desktop notifications for timer expiry.
package notify

import (
	"errors"

	"fyne.io/fyne/v2"
)

// AppName is reported to the notification server
const AppName = "Sandtimer"

// Urgency represents freedesktop notification priority levels.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification contains data for a desktop notification.
type Notification struct {
	Title   string  // Summary text (required)
	Body    string  // Body text (optional)
	Icon    string  // Icon name or path (optional)
	Timeout int32   // ms, -1 = server default, 0 = never expire
	Urgency Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its server ID, 0 if unknown.
	Notify(n Notification) (uint32, error)
}

// ErrNoTitle is returned for notifications without a summary
var ErrNoTitle = errors.New("notification title is empty")

// Sender is the part of fyne.App used to post notifications
type Sender interface {
	SendNotification(*fyne.Notification)
}

// AppNotifier posts notifications through the fyne application.
// Used on platforms without D-Bus and when the session bus is missing.
type AppNotifier struct {
	sender Sender
}

// NewAppNotifier wraps a fyne application
func NewAppNotifier(sender Sender) *AppNotifier {
	return &AppNotifier{sender: sender}
}

// Notify sends the notification through fyne. Icon, timeout and urgency are
// not supported there and are ignored.
func (n *AppNotifier) Notify(notif Notification) (uint32, error) {
	if notif.Title == "" {
		return 0, ErrNoTitle
	}
	if n.sender == nil {
		return 0, errors.New("no notification sender")
	}
	n.sender.SendNotification(fyne.NewNotification(notif.Title, notif.Body))
	return 0, nil
}
