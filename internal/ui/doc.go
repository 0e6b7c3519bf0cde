package ui

// Package ui contains the Fyne-based desktop window of the timer.
// It renders snapshots of the countdown service, forwards buttons and
// keyboard shortcuts to it, and switches the display language for the
// session. All UI strings come from the i18n tables.
