//go:build linux

package notify

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBusObject answers every call with err
type stubBusObject struct {
	dbus.BusObject
	err error
}

func (s stubBusObject) Call(string, dbus.Flags, ...interface{}) *dbus.Call {
	return &dbus.Call{Err: s.err}
}

func TestNewReturnsNotifier(t *testing.T) {
	fallback := NewAppNotifier(&recordingSender{})

	notifier := New(fallback)
	if notifier == nil {
		t.Fatal("New() returned nil notifier")
	}
}

func TestDBusNotifierSends(t *testing.T) {
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		t.Skip("no D-Bus session available")
	}

	sender := &recordingSender{}
	notifier := New(NewAppNotifier(sender))

	id, err := notifier.Notify(Notification{
		Title:   "Sandtimer Test",
		Body:    "Test notification from unit test",
		Icon:    "clock",
		Timeout: 1000,
		Urgency: UrgencyLow,
	})
	require.NoError(t, err)
	if len(sender.sent) == 1 {
		t.Skip("no notification daemon on the session bus; fallback used")
	}
	assert.NotZero(t, id)
}

func TestDBusNotifierFallsBackWithoutDaemon(t *testing.T) {
	sender := &recordingSender{}
	notifier := &dbusNotifier{
		obj: stubBusObject{err: dbus.Error{
			Name: "org.freedesktop.DBus.Error.ServiceUnknown",
			Body: []interface{}{"The name org.freedesktop.Notifications was not provided by any .service files"},
		}},
		fallback: NewAppNotifier(sender),
	}

	id, err := notifier.Notify(Notification{Title: "Time is up"})
	require.NoError(t, err)
	assert.Zero(t, id)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Time is up", sender.sent[0].Title)
}

func TestDBusNotifierReturnsOtherErrors(t *testing.T) {
	sender := &recordingSender{}
	notifier := &dbusNotifier{
		obj:      stubBusObject{err: errors.New("connection closed")},
		fallback: NewAppNotifier(sender),
	}

	_, err := notifier.Notify(Notification{Title: "Time is up"})
	assert.Error(t, err)
	assert.Empty(t, sender.sent)
}

func TestIsNoServer(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"service unknown", dbus.Error{Name: "org.freedesktop.DBus.Error.ServiceUnknown"}, true},
		{"wrapped", fmt.Errorf("call: %w", dbus.Error{Name: "org.freedesktop.DBus.Error.NameHasNoOwner"}), true},
		{"pointer", &dbus.Error{Name: "org.freedesktop.DBus.Error.ServiceUnknown"}, true},
		{"access denied", dbus.Error{Name: "org.freedesktop.DBus.Error.AccessDenied"}, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isNoServer(tt.err))
		})
	}
}

func TestDBusNotifierRequiresTitle(t *testing.T) {
	notifier := &dbusNotifier{}

	if _, err := notifier.Notify(Notification{}); err != ErrNoTitle {
		t.Errorf("Expected ErrNoTitle, got %v", err)
	}
}
