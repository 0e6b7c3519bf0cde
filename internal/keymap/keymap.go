// Package keymap defines the keyboard shortcuts of the timer window.
package keymap

import "fyne.io/fyne/v2"

// Action is what a shortcut asks the timer to do
type Action int

const (
	ActionNone Action = iota
	ActionToggle
	ActionReset
	ActionQuit
	ActionAddMinute
)

// String returns the action name for logging.
func (a Action) String() string {
	switch a {
	case ActionToggle:
		return "toggle"
	case ActionReset:
		return "reset"
	case ActionQuit:
		return "quit"
	case ActionAddMinute:
		return "add_minute"
	default:
		return "none"
	}
}

// Binding describes a single key binding.
type Binding struct {
	Keys   []fyne.KeyName
	Action Action
}

// All contains every key binding.
var All = []Binding{
	{[]fyne.KeyName{fyne.KeyS, fyne.KeySpace}, ActionToggle},
	{[]fyne.KeyName{fyne.KeyR}, ActionReset},
	{[]fyne.KeyName{fyne.KeyQ}, ActionQuit},
	{[]fyne.KeyName{fyne.KeyA}, ActionAddMinute},
}

// Resolve returns the action bound to key, or ActionNone.
func Resolve(key fyne.KeyName) Action {
	for _, b := range All {
		for _, k := range b.Keys {
			if k == key {
				return b.Action
			}
		}
	}
	return ActionNone
}
