package slideshow

import (
	"errors"
	"math"
	"sync"
	"time"

	"slideshow/internal/core/model"
)

// ErrNoItems indicates the slideshow was created without anything to show.
var ErrNoItems = errors.New("slideshow needs at least one item")

const (
	// DefaultInterval is used when the configured interval is not positive.
	DefaultInterval = time.Second
	// MinInterval is the fastest auto-advance rate. It is a power-of-two
	// fraction of a second so repeated halving from whole seconds lands on
	// it exactly.
	MinInterval = time.Second / 64
	// MaxInterval bounds repeated slow-downs.
	MaxInterval = time.Hour

	speedThreshold = time.Second
	speedStep      = time.Second
)

type subscription struct {
	id       int
	listener Listener
}

// Controller is the slideshow state machine: a circular index over a fixed
// item list plus a single cancellable auto-advance timer.
type Controller struct {
	mu         sync.Mutex
	items      []string
	index      int
	paused     bool
	interval   time.Duration
	scheduler  Scheduler
	pending    Timer
	generation uint64
	running    bool
	listeners  []subscription
	nextID     int
	now        func() time.Time
}

// New creates a Controller over items. The item list is copied.
func New(items []string, config model.SlideshowConfig, scheduler Scheduler) (*Controller, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if scheduler == nil {
		scheduler = ClockScheduler{}
	}

	interval := config.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	index := config.StartIndex % len(items)
	if index < 0 {
		index += len(items)
	}

	controller := &Controller{
		items:     append([]string(nil), items...),
		index:     index,
		paused:    config.StartPaused,
		interval:  clampInterval(interval),
		scheduler: scheduler,
		now:       time.Now,
	}
	return controller, nil
}

// Subscribe registers a listener that is called after every state change.
// Listeners run on the goroutine that caused the change, outside the
// controller lock, so they may call back into the controller.
func (controller *Controller) Subscribe(listener Listener) func() {
	controller.mu.Lock()
	controller.nextID++
	id := controller.nextID
	controller.listeners = append(controller.listeners, subscription{id: id, listener: listener})
	controller.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			controller.mu.Lock()
			defer controller.mu.Unlock()
			for i, sub := range controller.listeners {
				if sub.id == id {
					controller.listeners = append(controller.listeners[:i:i], controller.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

// Start arms the auto-advance timer.
func (controller *Controller) Start() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.running {
		return
	}
	controller.running = true
	controller.rescheduleLocked()
}

// Stop cancels any pending auto-advance. Navigation keeps working.
func (controller *Controller) Stop() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if !controller.running {
		return
	}
	controller.running = false
	controller.cancelLocked()
}

// Len returns the number of items.
func (controller *Controller) Len() int {
	return len(controller.items)
}

// CurrentItem returns the identifier at the current index.
func (controller *Controller) CurrentItem() string {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.items[controller.index]
}

// CurrentIndex returns the current index.
func (controller *Controller) CurrentIndex() int {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.index
}

// Paused reports whether auto-advance is paused.
func (controller *Controller) Paused() bool {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.paused
}

// Interval returns the current auto-advance delay.
func (controller *Controller) Interval() time.Duration {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.interval
}

// TimerActive reports whether an auto-advance callback is pending.
func (controller *Controller) TimerActive() bool {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.pending != nil
}

// Snapshot returns the current state as an event without a type.
func (controller *Controller) Snapshot() Event {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.eventLocked("")
}

// Next moves to the following item, wrapping to the first.
func (controller *Controller) Next() {
	controller.mu.Lock()
	controller.index = (controller.index + 1) % len(controller.items)
	event := controller.eventLocked(EventIndexChange)
	listeners := controller.listenersLocked()
	controller.mu.Unlock()

	notify(listeners, event)
}

// Previous moves to the preceding item, wrapping to the last.
func (controller *Controller) Previous() {
	controller.mu.Lock()
	count := len(controller.items)
	controller.index = (controller.index - 1 + count) % count
	event := controller.eventLocked(EventIndexChange)
	listeners := controller.listenersLocked()
	controller.mu.Unlock()

	notify(listeners, event)
}

// TogglePause flips the pause flag and returns the new value. Resuming
// restarts the full interval.
func (controller *Controller) TogglePause() bool {
	controller.mu.Lock()
	paused := !controller.paused
	event, listeners := controller.setPausedLocked(paused)
	controller.mu.Unlock()

	notify(listeners, event)
	return paused
}

func (controller *Controller) setPausedLocked(paused bool) (Event, []Listener) {
	controller.paused = paused
	controller.rescheduleLocked()
	return controller.eventLocked(EventPauseChange), controller.listenersLocked()
}

// IncreaseSpeed shortens the interval: halved at or below one second,
// otherwise reduced by one second. It never drops below MinInterval.
func (controller *Controller) IncreaseSpeed() time.Duration {
	return controller.adjustInterval(fasterInterval)
}

// DecreaseSpeed lengthens the interval: doubled at or below one second,
// otherwise increased by one second. It never exceeds MaxInterval.
func (controller *Controller) DecreaseSpeed() time.Duration {
	return controller.adjustInterval(slowerInterval)
}

func (controller *Controller) adjustInterval(step func(time.Duration) time.Duration) time.Duration {
	controller.mu.Lock()
	controller.interval = clampInterval(step(controller.interval))
	controller.rescheduleLocked()
	interval := controller.interval
	event := controller.eventLocked(EventIntervalChange)
	listeners := controller.listenersLocked()
	controller.mu.Unlock()

	notify(listeners, event)
	return interval
}

func (controller *Controller) onTimerFire(generation uint64) {
	controller.mu.Lock()
	if generation != controller.generation || !controller.running || controller.paused {
		controller.mu.Unlock()
		return
	}
	controller.pending = nil
	controller.index = (controller.index + 1) % len(controller.items)
	controller.rescheduleLocked()
	event := controller.eventLocked(EventIndexChange)
	event.Auto = true
	listeners := controller.listenersLocked()
	controller.mu.Unlock()

	notify(listeners, event)
}

// rescheduleLocked cancels the pending callback and arms a new one when the
// slideshow is running and not paused. Bumping the generation invalidates a
// callback that already matured but has not yet acquired the lock.
func (controller *Controller) rescheduleLocked() {
	controller.cancelLocked()
	if !controller.running || controller.paused {
		return
	}
	generation := controller.generation
	controller.pending = controller.scheduler.AfterFunc(controller.interval, func() {
		controller.onTimerFire(generation)
	})
}

func (controller *Controller) cancelLocked() {
	controller.generation++
	if controller.pending != nil {
		controller.pending.Stop()
		controller.pending = nil
	}
}

func (controller *Controller) eventLocked(eventType EventType) Event {
	return Event{
		Type:     eventType,
		Index:    controller.index,
		Count:    len(controller.items),
		Item:     controller.items[controller.index],
		Paused:   controller.paused,
		Interval: controller.interval,
		At:       controller.now(),
	}
}

func (controller *Controller) listenersLocked() []Listener {
	listeners := make([]Listener, 0, len(controller.listeners))
	for _, sub := range controller.listeners {
		listeners = append(listeners, sub.listener)
	}
	return listeners
}

func notify(listeners []Listener, event Event) {
	for _, listener := range listeners {
		listener(event)
	}
}

func fasterInterval(interval time.Duration) time.Duration {
	if interval <= speedThreshold {
		return interval / 2
	}
	return interval - speedStep
}

func slowerInterval(interval time.Duration) time.Duration {
	if interval <= speedThreshold {
		return interval * 2
	}
	return interval + speedStep
}

// IntervalFromSeconds converts a delay in seconds to an interval within
// [MinInterval, MaxInterval]. The bounds are applied before conversion so
// tiny delays do not truncate to zero and huge ones do not overflow.
// Non-positive and NaN delays give DefaultInterval.
func IntervalFromSeconds(seconds float64) time.Duration {
	if math.IsNaN(seconds) || seconds <= 0 {
		return DefaultInterval
	}
	seconds = math.Max(seconds, MinInterval.Seconds())
	seconds = math.Min(seconds, MaxInterval.Seconds())
	return clampInterval(time.Duration(math.Round(seconds * float64(time.Second))))
}

func clampInterval(interval time.Duration) time.Duration {
	if interval < MinInterval {
		return MinInterval
	}
	if interval > MaxInterval {
		return MaxInterval
	}
	return interval
}
