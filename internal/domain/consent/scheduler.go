package consent

import "time"

// CancelFunc cancels a scheduled callback. It reports whether the
// cancellation happened before the callback started.
type CancelFunc func() bool

// Scheduler abstracts one-shot delayed execution so tests can fire expiry
// callbacks deterministically.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) CancelFunc
}

// timerScheduler is the production Scheduler over time.AfterFunc.
type timerScheduler struct{}

// NewTimerScheduler returns the wall-clock Scheduler.
func NewTimerScheduler() Scheduler {
	return timerScheduler{}
}

func (timerScheduler) Schedule(d time.Duration, fn func()) CancelFunc {
	t := time.AfterFunc(d, fn)
	return t.Stop
}
