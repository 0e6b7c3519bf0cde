package keymap

import (
	"testing"

	"fyne.io/fyne/v2"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		key  fyne.KeyName
		want Action
	}{
		{fyne.KeyS, ActionToggle},
		{fyne.KeySpace, ActionToggle},
		{fyne.KeyR, ActionReset},
		{fyne.KeyQ, ActionQuit},
		{fyne.KeyA, ActionAddMinute},
		{fyne.KeyB, ActionNone},
		{fyne.KeyEscape, ActionNone},
		{fyne.KeyReturn, ActionNone},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			if got := Resolve(tt.key); got != tt.want {
				t.Errorf("Resolve(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestNoKeyBoundTwice(t *testing.T) {
	seen := make(map[fyne.KeyName]Action)
	for _, b := range All {
		for _, k := range b.Keys {
			if prev, ok := seen[k]; ok {
				t.Errorf("key %q bound to both %v and %v", k, prev, b.Action)
			}
			seen[k] = b.Action
		}
	}
}

func TestEveryBindingResolves(t *testing.T) {
	for _, b := range All {
		for _, k := range b.Keys {
			if got := Resolve(k); got != b.Action {
				t.Errorf("Resolve(%s) = %s, want %s", k, got, b.Action)
			}
		}
	}
}

func TestAction_String(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionNone, "none"},
		{ActionToggle, "toggle"},
		{ActionReset, "reset"},
		{ActionQuit, "quit"},
		{ActionAddMinute, "add_minute"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, want %q", tt.action, got, tt.want)
		}
	}
}
