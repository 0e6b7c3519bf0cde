package ui

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

const (
	AppIcon = "sandtimer.png"
)

//go:embed assets/sandtimer.png
var iconData []byte

// LogoResource is the embedded application icon
var LogoResource = fyne.NewStaticResource(AppIcon, iconData)
