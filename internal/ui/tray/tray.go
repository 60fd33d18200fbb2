package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"boxtimer/internal/core/display"
	"boxtimer/internal/core/timer"
)

const menuTitle = "BoxTimer"

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow     func()
	OnToggle   func()
	OnReset    func()
	OnSettings func()
	OnQuit     func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	callbacks  Callbacks
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.toggleItem = fyne.NewMenuItem("Iniciar", action(manager.callbacks.OnToggle))

	manager.refreshMenu()
	return manager
}

// Update reflects the engine state in the menu.
func (manager *Manager) Update(state timer.State) {
	rendered := display.Render(state)
	manager.statusItem.Label = StatusLine(state)
	manager.toggleItem.Label = rendered.ToggleLabel
	manager.refreshMenu()
}

// StatusLine summarises a snapshot in one line.
func StatusLine(state timer.State) string {
	rendered := display.Render(state)
	if state.Completed() {
		return fmt.Sprintf("Completado %s", rendered.RoundLabel)
	}
	return fmt.Sprintf("%s %s", rendered.PhaseLabel, rendered.Remaining)
}

func (manager *Manager) menu() *fyne.Menu {
	return fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItem("Mostrar", action(manager.callbacks.OnShow)),
		manager.toggleItem,
		fyne.NewMenuItem(display.ResetLabel, action(manager.callbacks.OnReset)),
		fyne.NewMenuItem(display.SettingsTitle, action(manager.callbacks.OnSettings)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Salir", action(manager.callbacks.OnQuit)),
	)
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.menu())
	}
}

func action(callback func()) func() {
	return func() {
		if callback != nil {
			callback()
		}
	}
}
