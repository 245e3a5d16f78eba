package service

import "time"

type timerScheduler struct{}

// NewScheduler returns the production [Scheduler] backed by time.AfterFunc.
func NewScheduler() Scheduler {
	return timerScheduler{}
}

func (timerScheduler) ScheduleAfter(d time.Duration, fn func()) CancelTimer {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
