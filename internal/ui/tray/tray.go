package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnTogglePause func()
	OnNext        func()
	OnPrevious    func()
	OnFaster      func()
	OnSlower      func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	pauseItem   *fyne.MenuItem
	callbacks   Callbacks
	paused      bool
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:         app,
		callbacks:   callbacks,
		statusLabel: "starting...",
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.pauseItem = fyne.NewMenuItem("Pause", invoke(&manager.callbacks.OnTogglePause))

	manager.refreshStatus()
	return manager
}

// Menu builds the current tray menu.
func (manager *Manager) Menu() *fyne.Menu {
	return fyne.NewMenu("Slideshow",
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.pauseItem,
		fyne.NewMenuItem("Next", invoke(&manager.callbacks.OnNext)),
		fyne.NewMenuItem("Previous", invoke(&manager.callbacks.OnPrevious)),
		fyne.NewMenuItem("Faster", invoke(&manager.callbacks.OnFaster)),
		fyne.NewMenuItem("Slower", invoke(&manager.callbacks.OnSlower)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences", invoke(&manager.callbacks.OnPreferences)),
		fyne.NewMenuItem("Quit", invoke(&manager.callbacks.OnQuit)),
	)
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.refreshStatus()
}

// SetPaused updates pause state.
func (manager *Manager) SetPaused(paused bool) {
	manager.paused = paused
	if paused {
		manager.pauseItem.Label = "Resume"
	} else {
		manager.pauseItem.Label = "Pause"
	}
	manager.refreshStatus()
}

// StatusLabel returns the text of the status menu item.
func (manager *Manager) StatusLabel() string {
	return manager.statusItem.Label
}

// PauseLabel returns the text of the pause menu item.
func (manager *Manager) PauseLabel() string {
	return manager.pauseItem.Label
}

func (manager *Manager) refreshStatus() {
	status := manager.statusLabel
	if manager.paused {
		status = fmt.Sprintf("%s (paused)", status)
	}
	manager.statusItem.Label = status
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.Menu())
	}
}

// invoke defers the callback lookup so menus built earlier follow later
// changes to Callbacks.
func invoke(callback *func()) func() {
	return func() {
		if *callback != nil {
			(*callback)()
		}
	}
}
