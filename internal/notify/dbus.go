//go:build linux

package notify

import (
	"errors"
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	dbusNotifyDest      = "org.freedesktop.Notifications"
	dbusNotifyPath      = "/org/freedesktop/Notifications"
	dbusNotifyInterface = "org.freedesktop.Notifications"
)

// Bus errors meaning nobody serves org.freedesktop.Notifications
var noServerErrors = map[string]bool{
	"org.freedesktop.DBus.Error.ServiceUnknown":   true,
	"org.freedesktop.DBus.Error.NameHasNoOwner":   true,
	"org.freedesktop.DBus.Error.UnknownObject":    true,
	"org.freedesktop.DBus.Error.UnknownMethod":    true,
	"org.freedesktop.DBus.Error.UnknownInterface": true,
}

// dbusNotifier sends notifications via D-Bus.
type dbusNotifier struct {
	obj      dbus.BusObject
	fallback Notifier
}

// New creates a Notifier that sends desktop notifications via D-Bus.
// Returns fallback if the session bus is unavailable; a bus without a
// notification daemon also defers to fallback on each call.
func New(fallback Notifier) Notifier {
	conn, err := dbus.SessionBus()
	if err != nil {
		return fallback
	}

	return &dbusNotifier{
		obj:      conn.Object(dbusNotifyDest, dbusNotifyPath),
		fallback: fallback,
	}
}

// Notify sends a notification via D-Bus.
func (n *dbusNotifier) Notify(notif Notification) (uint32, error) {
	if notif.Title == "" {
		return 0, ErrNoTitle
	}

	hints := map[string]dbus.Variant{
		"urgency": dbus.MakeVariant(byte(notif.Urgency)),
	}

	// Notify(app_name, replaces_id, icon, summary, body, actions, hints, timeout) -> id
	call := n.obj.Call(
		dbusNotifyInterface+".Notify",
		0,
		AppName,
		uint32(0),
		notif.Icon,
		notif.Title,
		notif.Body,
		[]string{},
		hints,
		notif.Timeout,
	)
	if call.Err != nil {
		if isNoServer(call.Err) && n.fallback != nil {
			return n.fallback.Notify(notif)
		}
		return 0, fmt.Errorf("dbus notify: %w", call.Err)
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, fmt.Errorf("dbus notify reply: %w", err)
	}

	return id, nil
}

// isNoServer reports whether err says no notification daemon is running
func isNoServer(err error) bool {
	var busErr dbus.Error
	if errors.As(err, &busErr) {
		return noServerErrors[busErr.Name]
	}
	var busErrPtr *dbus.Error
	if errors.As(err, &busErrPtr) && busErrPtr != nil {
		return noServerErrors[busErrPtr.Name]
	}
	return false
}
