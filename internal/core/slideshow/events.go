package slideshow

import "time"

// EventType defines the type of slideshow event.
type EventType string

const (
	EventIndexChange    EventType = "index_change"
	EventPauseChange    EventType = "pause_change"
	EventIntervalChange EventType = "interval_change"
)

// Event represents a slideshow update for observers.
type Event struct {
	Type     EventType
	Index    int
	Count    int
	Item     string
	Paused   bool
	Interval time.Duration
	// Auto is set when the index changed because the timer fired.
	Auto bool
	At   time.Time
}

// Listener receives slideshow events.
type Listener func(Event)
