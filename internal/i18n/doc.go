package i18n

// Package i18n maps message keys to display text for the detected OS locale.
// The table is built once and never mutated; the presentation layer is its
// only consumer.
