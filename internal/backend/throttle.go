package backend

import (
	"time"

	"go.uber.org/atomic"
)

// throttle spaces successive polls at least interval apart.
type throttle struct {
	interval time.Duration
	next     atomic.Int64 // unix nanos of the earliest next slot
}

func newThrottle(interval time.Duration) *throttle {
	return &throttle{interval: max(interval, 0)}
}

// wait blocks until the next slot is free and claims it.
func (t *throttle) wait() {
	if t == nil || t.interval <= 0 {
		return
	}
	for {
		now := time.Now().UnixNano()
		next := t.next.Load()
		if now >= next {
			if t.next.CompareAndSwap(next, now+int64(t.interval)) {
				return
			}
			continue
		}
		time.Sleep(min(time.Duration(next-now), t.interval))
	}
}
