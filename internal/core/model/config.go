package model

import "time"

// SlideshowConfig contains runtime settings for the slideshow state machine.
type SlideshowConfig struct {
	Interval time.Duration
	// StartIndex is reduced modulo the item count.
	StartIndex int
	// StartPaused leaves the auto-advance timer disarmed until resumed.
	StartPaused bool
}
