package preferences

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"boxtimer/internal/core/display"
)

// Window handles the settings UI.
type Window struct {
	window   fyne.Window
	settings Settings
	onSave   func(Settings) error
	round    *widget.Entry
	rest     *widget.Entry
	rounds   *widget.Entry
	save     *widget.Button
	cancel   *widget.Button
}

// New creates a settings window. onSave receives validated settings; a
// returned error is shown and the window stays open.
func New(app fyne.App, settings Settings, onSave func(Settings) error) *Window {
	window := app.NewWindow(display.SettingsTitle)

	round := newNumericEntry()
	rest := newNumericEntry()
	rounds := newNumericEntry()

	form := container.NewVBox(
		widget.NewLabelWithStyle(display.SettingsTitle, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Duración del round (segundos):"),
		round,
		widget.NewLabel("Duración del descanso (segundos):"),
		rest,
		widget.NewLabel("Número total de rounds:"),
		rounds,
	)

	saveButton := widget.NewButton(display.SaveLabel, nil)
	saveButton.Importance = widget.HighImportance
	cancelButton := widget.NewButton(display.CancelLabel, nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 320))

	prefs := &Window{
		window: window,
		onSave: onSave,
		round:  round,
		rest:   rest,
		rounds: rounds,
		save:   saveButton,
		cancel: cancelButton,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = prefs.handleCancel
	window.SetCloseIntercept(prefs.handleCancel)

	return prefs
}

// Show displays the settings window with the current values.
func (prefs *Window) Show() {
	prefs.UpdateSettings(prefs.settings)
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// Settings returns the last saved settings.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.round.SetText(strconv.Itoa(settings.RoundDurationSeconds))
	prefs.rest.SetText(strconv.Itoa(settings.RestDurationSeconds))
	prefs.rounds.SetText(strconv.Itoa(settings.TotalRounds))
}

func (prefs *Window) handleSave() {
	settings, err := ParseSettings(prefs.round.Text, prefs.rest.Text, prefs.rounds.Text)
	if err != nil {
		dialog.ShowError(err, prefs.window)
		return
	}
	if prefs.onSave != nil {
		if err := prefs.onSave(settings); err != nil {
			dialog.ShowError(err, prefs.window)
			return
		}
	}
	prefs.settings = settings
	prefs.window.Hide()
}

// handleCancel discards edits.
func (prefs *Window) handleCancel() {
	prefs.UpdateSettings(prefs.settings)
	prefs.window.Hide()
}

func newNumericEntry() *widget.Entry {
	entry := widget.NewEntry()
	entry.Validator = func(text string) error {
		_, err := parsePositiveInt("value", text)
		return err
	}
	return entry
}
