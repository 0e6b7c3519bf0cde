package ui

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/sandtimer/internal/i18n"
	"github.com/ytget/sandtimer/internal/keymap"
	"github.com/ytget/sandtimer/internal/model"
	"github.com/ytget/sandtimer/internal/timer"
)

// RootUI represents the main UI structure
type RootUI struct {
	window    fyne.Window
	countdown timer.Countdown
	texts     atomic.Pointer[i18n.Localization]
	quit      func()
	logger    *slog.Logger

	header      *widget.Label
	subheader   *widget.Label
	sliderLabel *widget.Label
	slider      *widget.Slider
	clock       *canvas.Text
	soundCheck  *widget.Check
	primaryBtn  *widget.Button
	stateText   *canvas.Text
	help        *widget.Label

	// UI goroutine only
	syncing  bool
	rendered bool
	last     model.Snapshot
}

// NewRootUI creates and initializes the main UI
func NewRootUI(app fyne.App, window fyne.Window, countdown timer.Countdown, texts *i18n.Localization, logger *slog.Logger) *RootUI {
	if logger == nil {
		logger = slog.Default()
	}

	ui := &RootUI{
		window:    window,
		countdown: countdown,
		quit:      app.Quit,
		logger:    logger.With("component", "ui"),
	}
	ui.texts.Store(texts)

	window.SetTitle(ui.Text(i18n.KeyAppTitle))
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.SetFixedSize(true)
	window.CenterOnScreen()

	ui.setupUI()
	ui.logger.Debug("UI setup completed", "language", texts.Language())
	return ui
}

// Text returns localized text in the current session language.
// Safe for use from any goroutine.
func (ui *RootUI) Text(key string) string {
	return ui.texts.Load().Text(key)
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.header = widget.NewLabel("")
	ui.header.Alignment = fyne.TextAlignCenter
	ui.header.TextStyle = fyne.TextStyle{Bold: true}

	ui.subheader = widget.NewLabel("")
	ui.subheader.Alignment = fyne.TextAlignCenter

	ui.sliderLabel = widget.NewLabel("")
	ui.sliderLabel.Alignment = fyne.TextAlignCenter

	ui.slider = widget.NewSlider(SliderMin, SliderMax)
	ui.slider.Step = SliderStep
	ui.slider.OnChanged = ui.onSliderChanged

	ui.clock = canvas.NewText("", theme.Color(theme.ColorNameForeground))
	ui.clock.Alignment = fyne.TextAlignCenter
	ui.clock.TextSize = ClockTextSize
	ui.clock.TextStyle = fyne.TextStyle{Monospace: true}

	ui.soundCheck = widget.NewCheck("", ui.onSoundChanged)

	ui.primaryBtn = widget.NewButton("", ui.onPrimaryClick)
	ui.primaryBtn.Importance = widget.HighImportance

	ui.stateText = canvas.NewText("", ColorStopped)
	ui.stateText.Alignment = fyne.TextAlignCenter
	ui.stateText.TextSize = StateTextSize

	ui.help = widget.NewLabel("")
	ui.help.Alignment = fyne.TextAlignCenter
	ui.help.Wrapping = fyne.TextWrapWord

	content := container.NewVBox(
		ui.header,
		ui.subheader,
		ui.sliderLabel,
		ui.slider,
		ui.clock,
		container.NewCenter(ui.soundCheck),
		ui.primaryBtn,
		ui.stateText,
		ui.help,
	)
	ui.window.SetContent(container.NewPadded(content))
	ui.window.Canvas().SetOnTypedKey(ui.handleKey)

	ui.refreshUITexts()
}

// createMenu creates the language menu; the choice lasts for the session
func (ui *RootUI) createMenu() {
	current := ui.texts.Load().Language()
	languageMenu := fyne.NewMenu(IconLanguage)

	for _, lang := range i18n.Languages() {
		item := fyne.NewMenuItem(lang.DisplayName(), func() {
			ui.onLanguageChange(lang)
		})
		item.Checked = lang == current
		languageMenu.Items = append(languageMenu.Items, item)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(languageMenu))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(lang i18n.Language) {
	ui.texts.Store(i18n.NewLocalization(lang))
	ui.logger.Info("language changed", "language", lang)

	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.Text(i18n.KeyAppTitle))
	ui.header.SetText(ui.Text(i18n.KeyHeader))
	ui.subheader.SetText(ui.Text(i18n.KeySubheader))
	ui.help.SetText(ui.Text(i18n.KeyHelp))

	ui.syncing = true
	ui.soundCheck.Text = ui.Text(i18n.KeySoundNotification)
	ui.soundCheck.Refresh()
	ui.syncing = false

	ui.render(ui.countdown.Snapshot())
}

// refresh redraws the countdown when it changed since the last draw
func (ui *RootUI) refresh() {
	snap := ui.countdown.Snapshot()
	if ui.rendered && snap == ui.last {
		return
	}
	ui.render(snap)
}

// render copies a snapshot into the widgets
func (ui *RootUI) render(snap model.Snapshot) {
	ui.syncing = true
	defer func() { ui.syncing = false }()

	minutes := snap.ConfiguredMinutes
	if minutes > SliderMax {
		minutes = SliderMax
	}
	ui.slider.SetValue(float64(minutes))
	if snap.State == model.Stopped {
		ui.slider.Enable()
	} else {
		ui.slider.Disable()
	}
	ui.sliderLabel.SetText(fmt.Sprintf(SliderLabelFormat, ui.Text(i18n.KeySlider), snap.ConfiguredMinutes))

	ui.clock.Text = snap.Clock()
	ui.clock.Refresh()

	ui.soundCheck.SetChecked(snap.SoundEnabled)

	if snap.State == model.Stopped {
		ui.primaryBtn.SetText(ui.Text(i18n.KeyStartButton))
	} else {
		ui.primaryBtn.SetText(ui.Text(i18n.KeyAddMinute))
	}

	ui.stateText.Text = ui.stateMessage(snap.State)
	ui.stateText.Color = StateColor(snap.State)
	ui.stateText.Refresh()

	ui.last = snap
	ui.rendered = true
}

func (ui *RootUI) stateMessage(state model.TimerState) string {
	switch state {
	case model.Running:
		return ui.Text(i18n.KeyTimerRunning)
	case model.Paused:
		return ui.Text(i18n.KeyTimerPaused)
	default:
		return ui.Text(i18n.KeyTimerStopped)
	}
}

// onSliderChanged reconfigures the countdown while it is stopped
func (ui *RootUI) onSliderChanged(value float64) {
	if ui.syncing {
		return
	}

	snap := ui.countdown.Snapshot()
	minutes := uint64(value)
	if snap.State != model.Stopped || minutes == snap.ConfiguredMinutes {
		return
	}

	ui.countdown.SetConfiguredMinutes(minutes)
	ui.refresh()
}

func (ui *RootUI) onSoundChanged(enabled bool) {
	if ui.syncing {
		return
	}
	ui.countdown.SetSoundEnabled(enabled)
	ui.refresh()
}

// onPrimaryClick starts a stopped countdown, otherwise adds a minute
func (ui *RootUI) onPrimaryClick() {
	if ui.countdown.Snapshot().State == model.Stopped {
		ui.perform(keymap.ActionToggle)
		return
	}
	ui.perform(keymap.ActionAddMinute)
}

// handleKey maps typed keys to timer actions
func (ui *RootUI) handleKey(event *fyne.KeyEvent) {
	if event == nil {
		return
	}
	ui.perform(keymap.Resolve(event.Name))
}

func (ui *RootUI) perform(action keymap.Action) {
	switch action {
	case keymap.ActionToggle:
		ui.countdown.Toggle()
	case keymap.ActionReset:
		ui.countdown.Reset(ui.countdown.Snapshot().ConfiguredMinutes)
	case keymap.ActionAddMinute:
		ui.countdown.AddOneMinute()
	case keymap.ActionQuit:
		ui.logger.Info("quit requested")
		ui.quit()
		return
	default:
		return
	}

	ui.logger.Debug("action", "action", action.String())
	ui.refresh()
}

// StartRefreshLoop redraws the window every interval until ctx is done
func (ui *RootUI) StartRefreshLoop(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = RefreshInterval
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				fyne.Do(ui.refresh)
			}
		}
	}()
}
