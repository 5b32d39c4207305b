package grace

import "time"

// A TimerHandle is a cancellable scheduled task. Cancel reports whether the
// task was stopped before firing.
type TimerHandle interface {
	Cancel() bool
}

// A Scheduler runs a function after a delay. The coordinator only ever
// talks to timers through this interface, so tests can substitute a manual
// clock and the cancel-before-reschedule guarantee stays enforceable.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) TimerHandle
}

type timerScheduler struct{}

// NewTimerScheduler returns the wall-clock scheduler backed by
// time.AfterFunc.
func NewTimerScheduler() Scheduler {
	return timerScheduler{}
}

func (timerScheduler) Schedule(d time.Duration, fn func()) TimerHandle {
	return timerHandle{t: time.AfterFunc(d, fn)}
}

type timerHandle struct {
	t *time.Timer
}

func (h timerHandle) Cancel() bool {
	return h.t.Stop()
}
