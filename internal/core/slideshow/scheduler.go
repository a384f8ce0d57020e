package slideshow

import "time"

// Timer is a pending delayed callback.
type Timer interface {
	// Stop prevents the callback from firing. It reports false when the
	// callback already fired or is running.
	Stop() bool
}

// Scheduler arms one-shot delayed callbacks.
type Scheduler interface {
	AfterFunc(delay time.Duration, fn func()) Timer
}

// ClockScheduler schedules on the wall clock. Callbacks run on their own
// goroutine; wrap fn with Dispatch to move them elsewhere.
type ClockScheduler struct {
	// Dispatch, when set, runs each matured callback. The fyne app passes
	// fyne.Do here so callbacks land on the UI thread.
	Dispatch func(func())
}

// AfterFunc arms a time.Timer.
func (scheduler ClockScheduler) AfterFunc(delay time.Duration, fn func()) Timer {
	if scheduler.Dispatch == nil {
		return time.AfterFunc(delay, fn)
	}
	dispatch := scheduler.Dispatch
	return time.AfterFunc(delay, func() {
		dispatch(fn)
	})
}
