//go:build !linux

package notify

// New returns fallback on non-Linux platforms.
func New(fallback Notifier) Notifier {
	return fallback
}
