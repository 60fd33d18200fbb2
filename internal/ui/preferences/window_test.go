package preferences

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestWindow_SaveValidSettings(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var saved []Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) error {
		saved = append(saved, settings)
		return nil
	})
	prefs.Show()

	prefs.round.SetText("90")
	prefs.rest.SetText("20")
	prefs.rounds.SetText("5")
	test.Tap(prefs.save)

	want := Settings{RoundDurationSeconds: 90, RestDurationSeconds: 20, TotalRounds: 5}
	assert.Equal(t, []Settings{want}, saved)
	assert.Equal(t, want, prefs.Settings())
}

func TestWindow_SaveInvalidKeepsPreviousSettings(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	called := false
	prefs := New(app, DefaultSettings(), func(Settings) error {
		called = true
		return nil
	})
	prefs.Show()

	prefs.round.SetText("tres")
	test.Tap(prefs.save)

	assert.False(t, called)
	assert.Equal(t, DefaultSettings(), prefs.Settings())
}

func TestWindow_SaveCallbackErrorKeepsPreviousSettings(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	prefs := New(app, DefaultSettings(), func(Settings) error {
		return errors.New("rejected")
	})
	prefs.Show()

	prefs.rounds.SetText("3")
	test.Tap(prefs.save)

	assert.Equal(t, DefaultSettings(), prefs.Settings())
}

func TestWindow_CancelDiscardsEdits(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	called := false
	prefs := New(app, DefaultSettings(), func(Settings) error {
		called = true
		return nil
	})
	prefs.Show()

	prefs.rest.SetText("45")
	test.Tap(prefs.cancel)

	assert.False(t, called)
	assert.Equal(t, "60", prefs.rest.Text)
}
