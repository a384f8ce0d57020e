package preferences

import (
	"testing"
	"time"

	"slideshow/internal/core/slideshow"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsConversion(t *testing.T) {
	settings := DefaultSettings()
	assert.Equal(t, time.Second, settings.Interval())
	assert.Equal(t, time.Second, settings.SlideshowConfig().Interval)

	settings.Delay = 0.25
	assert.Equal(t, 250*time.Millisecond, settings.SlideshowConfig().Interval)
}

func TestSettingsIntervalIsBounded(t *testing.T) {
	settings := DefaultSettings()

	settings.Delay = 1e-12
	assert.Equal(t, slideshow.MinInterval, settings.Interval())

	settings.Delay = 1e10
	assert.Equal(t, slideshow.MaxInterval, settings.Interval())
}

func TestValidDelay(t *testing.T) {
	assert.True(t, ValidDelay(1))
	assert.True(t, ValidDelay(MinDelay))
	assert.False(t, ValidDelay(0))
	assert.False(t, ValidDelay(MaxDelay+1))
}

func TestWindowSave(t *testing.T) {
	app := test.NewApp()

	var saved []Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) {
		saved = append(saved, settings)
	})

	prefs.delay.SetText("2.5")
	prefs.fullscreen.SetChecked(true)
	prefs.handleSave()

	require.Len(t, saved, 1)
	assert.Equal(t, 2.5, saved[0].Delay)
	assert.True(t, saved[0].Fullscreen)
	assert.False(t, saved[0].Verbose)
	assert.Equal(t, float32(800), saved[0].WindowWidth)
}

func TestWindowRejectsBadDelay(t *testing.T) {
	app := test.NewApp()

	called := false
	prefs := New(app, DefaultSettings(), func(Settings) { called = true })

	prefs.delay.SetText("soon")
	prefs.handleSave()
	assert.False(t, called)
	assert.Contains(t, prefs.status.Text, "Delay must be")

	prefs.UpdateSettings(Settings{Delay: 3, Verbose: true})
	assert.Equal(t, "3", prefs.delay.Text)
	assert.True(t, prefs.verbose.Checked)
}
