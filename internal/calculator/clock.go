package calculator

import "time"

// Scheduler defers a callback by a fixed delay. The calculator uses it to
// auto-clear notifications; injecting a manual implementation lets tests
// drive the clear deterministically without sleeping.
type Scheduler interface {
	// AfterFunc runs fn after d elapses and returns a function that cancels
	// the pending call. Canceling after fn has run is a no-op.
	AfterFunc(d time.Duration, fn func()) (cancel func())
}

type wallScheduler struct{}

func (wallScheduler) AfterFunc(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// NewScheduler returns a Scheduler backed by the wall clock.
func NewScheduler() Scheduler {
	return wallScheduler{}
}
