package runtime

import (
	"time"

	"edu-chat/contract"
)

// TimerScheduler runs tasks on real timers. It is the in-process
// stand-in for transport acknowledgements.
type TimerScheduler struct{}

func NewTimerScheduler() TimerScheduler {
	return TimerScheduler{}
}

func (TimerScheduler) Schedule(delay time.Duration, task func()) contract.CancelFunc {
	timer := time.AfterFunc(delay, task)
	return func() { timer.Stop() }
}
