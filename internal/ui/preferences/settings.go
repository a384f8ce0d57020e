package preferences

import (
	"time"

	"slideshow/internal/core/model"
	"slideshow/internal/core/slideshow"
)

const (
	MinDelay = 0.05
	MaxDelay = 3600.0
)

// Settings defines editable user preferences.
type Settings struct {
	// Delay is the starting auto-advance delay in seconds.
	Delay      float64
	Fullscreen bool
	Verbose    bool

	WindowWidth  float32
	WindowHeight float32
}

// DefaultSettings returns default settings for the slideshow.
func DefaultSettings() Settings {
	return Settings{
		Delay:        1,
		Fullscreen:   false,
		Verbose:      false,
		WindowWidth:  800,
		WindowHeight: 600,
	}
}

// Interval returns Delay as a duration bounded to the slideshow's range.
func (settings Settings) Interval() time.Duration {
	return slideshow.IntervalFromSeconds(settings.Delay)
}

// SlideshowConfig converts settings to SlideshowConfig.
func (settings Settings) SlideshowConfig() model.SlideshowConfig {
	return model.SlideshowConfig{
		Interval: settings.Interval(),
	}
}

// ValidDelay reports whether delay is within the accepted range.
func ValidDelay(delay float64) bool {
	return delay >= MinDelay && delay <= MaxDelay
}
