package preferences

import (
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   Settings
	onSave     func(Settings)
	delay      *widget.Entry
	fullscreen *widget.Check
	verbose    *widget.Check
	status     *widget.Label
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Slideshow Settings")

	delay := widget.NewEntry()
	delay.SetText(formatDelay(settings.Delay))

	fullscreen := widget.NewCheck("Start fullscreen", nil)
	fullscreen.SetChecked(settings.Fullscreen)

	verbose := widget.NewCheck("Log every image shown", nil)
	verbose.SetChecked(settings.Verbose)

	status := widget.NewLabel("Changes apply from the next start.")

	form := container.NewVBox(
		widget.NewLabelWithStyle("Defaults", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewBorder(nil, nil, widget.NewLabel("Delay"), widget.NewLabel("sec"), delay),
		fullscreen,
		verbose,
		status,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 220))
	window.SetCloseIntercept(window.Hide)

	prefs := &Window{
		window:     window,
		settings:   settings,
		onSave:     onSave,
		delay:      delay,
		fullscreen: fullscreen,
		verbose:    verbose,
		status:     status,
	}

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.delay.SetText(formatDelay(settings.Delay))
	prefs.fullscreen.SetChecked(settings.Fullscreen)
	prefs.verbose.SetChecked(settings.Verbose)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	delay, ok := parseDelay(prefs.delay.Text)
	if !ok {
		prefs.status.SetText("Delay must be between 0.05 and 3600 seconds.")
		return
	}
	settings.Delay = delay
	settings.Fullscreen = prefs.fullscreen.Checked
	settings.Verbose = prefs.verbose.Checked

	prefs.settings = settings
	prefs.status.SetText("Changes apply from the next start.")
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parseDelay(value string) (float64, bool) {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || !ValidDelay(parsed) {
		return 0, false
	}
	return parsed, true
}

func formatDelay(delay float64) string {
	return strconv.FormatFloat(delay, 'f', -1, 64)
}
