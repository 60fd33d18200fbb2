package timerview

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"boxtimer/internal/core/display"
	"boxtimer/internal/core/timer"
)

var (
	backgroundColor = color.NRGBA{R: 0x1E, G: 0x1E, B: 0x1E, A: 0xFF}
	highlightColor  = color.NRGBA{R: 0x5A, G: 0x1E, B: 0x0A, A: 0xFF}
	goldColor       = color.NRGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF}
	whiteColor      = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	greyColor       = color.NRGBA{R: 0xBB, G: 0xBB, B: 0xBB, A: 0xFF}
	clockColor      = color.NRGBA{R: 0xFF, G: 0x45, B: 0x00, A: 0xFF}
)

// Callbacks defines timer screen action handlers.
type Callbacks struct {
	OnToggle   func()
	OnReset    func()
	OnSettings func()
}

// View is the single timer screen. Render and SetHighlight must run on the
// Fyne UI goroutine.
type View struct {
	window     fyne.Window
	background *canvas.Rectangle
	phase      *canvas.Text
	subtitle   *canvas.Text
	clock      *canvas.Text
	caption    *canvas.Text
	motivation *widget.Label
	toggle     *widget.Button
	reset      *widget.Button
	settings   *widget.Button
	callbacks  Callbacks
}

// New builds the timer screen into window.
func New(window fyne.Window, callbacks Callbacks) *View {
	view := &View{
		window:     window,
		callbacks:  callbacks,
		background: canvas.NewRectangle(backgroundColor),
		phase:      newText(whiteColor, 32, true),
		subtitle:   newText(greyColor, 18, false),
		clock:      newText(clockColor, 80, true),
		caption:    newText(greyColor, 16, false),
		motivation: widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
	}
	view.motivation.Wrapping = fyne.TextWrapWord

	header := newText(goldColor, 28, true)
	header.Text = display.Header

	view.toggle = widget.NewButton("", func() {
		if view.callbacks.OnToggle != nil {
			view.callbacks.OnToggle()
		}
	})
	view.toggle.Importance = widget.SuccessImportance
	view.reset = widget.NewButton(display.ResetLabel, func() {
		if view.callbacks.OnReset != nil {
			view.callbacks.OnReset()
		}
	})
	view.settings = widget.NewButton(display.SettingsTitle, func() {
		if view.callbacks.OnSettings != nil {
			view.callbacks.OnSettings()
		}
	})
	view.settings.Importance = widget.WarningImportance

	content := container.NewVBox(
		container.NewCenter(header),
		container.NewCenter(view.phase),
		container.NewCenter(view.subtitle),
		container.NewCenter(view.clock),
		container.NewCenter(view.caption),
		container.NewGridWithColumns(2, view.toggle, view.reset),
		container.NewCenter(view.settings),
		view.motivation,
	)

	window.SetContent(container.NewStack(view.background, container.NewPadded(container.NewCenter(content))))
	return view
}

// Render updates every text element from a snapshot.
func (view *View) Render(state timer.State) {
	rendered := display.Render(state)

	view.phase.Text = rendered.PhaseLabel
	view.subtitle.Text = rendered.Subtitle
	view.clock.Text = rendered.Remaining
	view.caption.Text = rendered.Caption
	view.phase.Refresh()
	view.subtitle.Refresh()
	view.clock.Refresh()
	view.caption.Refresh()

	view.motivation.SetText(rendered.Motivation)
	view.toggle.SetText(rendered.ToggleLabel)
	if state.Running {
		view.toggle.Importance = widget.DangerImportance
	} else {
		view.toggle.Importance = widget.SuccessImportance
	}
	view.toggle.Refresh()
}

// SetHighlight switches the transition highlight.
func (view *View) SetHighlight(on bool) {
	if on {
		view.background.FillColor = highlightColor
	} else {
		view.background.FillColor = backgroundColor
	}
	view.background.Refresh()
}

func newText(fill color.Color, size float32, bold bool) *canvas.Text {
	text := canvas.NewText("", fill)
	text.Alignment = fyne.TextAlignCenter
	text.TextSize = size
	text.TextStyle = fyne.TextStyle{Bold: bold}
	return text
}
