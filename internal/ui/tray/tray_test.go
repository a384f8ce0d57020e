package tray

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTrayApp struct {
	menus []*fyne.Menu
	icons []fyne.Resource
}

func (app *fakeTrayApp) SetSystemTrayMenu(menu *fyne.Menu)    { app.menus = append(app.menus, menu) }
func (app *fakeTrayApp) SetSystemTrayIcon(icon fyne.Resource) { app.icons = append(app.icons, icon) }
func (app *fakeTrayApp) SetSystemTrayWindow(fyne.Window)      {}

func findItem(menu *fyne.Menu, label string) *fyne.MenuItem {
	for _, item := range menu.Items {
		if item.Label == label {
			return item
		}
	}
	return nil
}

func TestMenuInvokesCallbacks(t *testing.T) {
	app := &fakeTrayApp{}
	var calls []string
	manager := New(app, Callbacks{
		OnTogglePause: func() { calls = append(calls, "pause") },
		OnNext:        func() { calls = append(calls, "next") },
		OnPrevious:    func() { calls = append(calls, "previous") },
		OnFaster:      func() { calls = append(calls, "faster") },
		OnSlower:      func() { calls = append(calls, "slower") },
		OnQuit:        func() { calls = append(calls, "quit") },
	})
	require.NotEmpty(t, app.menus)

	menu := manager.Menu()
	for _, label := range []string{"Pause", "Next", "Previous", "Faster", "Slower", "Preferences", "Quit"} {
		item := findItem(menu, label)
		require.NotNil(t, item, label)
		item.Action()
	}

	assert.Equal(t, []string{"pause", "next", "previous", "faster", "slower", "quit"}, calls)
}

func TestStatusAndPauseLabels(t *testing.T) {
	app := &fakeTrayApp{}
	manager := New(app, Callbacks{})

	manager.SetStatus("2/5 · 1s")
	assert.Equal(t, "2/5 · 1s", manager.StatusLabel())

	manager.SetPaused(true)
	assert.Equal(t, "2/5 · 1s (paused)", manager.StatusLabel())
	assert.Equal(t, "Resume", manager.PauseLabel())

	manager.SetPaused(false)
	assert.Equal(t, "Pause", manager.PauseLabel())
	last := app.menus[len(app.menus)-1]
	assert.Equal(t, "2/5 · 1s", last.Items[0].Label)
}
