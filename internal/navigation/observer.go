package navigation

import (
	"fmt"
	"runtime/debug"

	"github.com/skygen-app/skygen/internal/deeplink"
	"github.com/skygen-app/skygen/internal/logging"
)

// ChangeKind describes which part of the navigation state moved.
type ChangeKind string

const (
	ChangeTab     ChangeKind = "tab"
	ChangeStack   ChangeKind = "stack"
	ChangePending ChangeKind = "pending"
	ChangeCleared ChangeKind = "cleared"
)

// Change is delivered to subscribers after every mutation.
type Change struct {
	Kind    ChangeKind
	Tab     deeplink.Tab
	Pending *Pending
}

// Observer receives navigation changes.
type Observer func(Change)

type subscription struct {
	id string
	fn Observer
}

type observers struct {
	subs   []subscription
	nextID uint64
}

func (o *observers) add(fn Observer) string {
	o.nextID++
	id := fmt.Sprintf("sub-%d", o.nextID)
	o.subs = append(o.subs, subscription{id: id, fn: fn})
	return id
}

func (o *observers) remove(id string) bool {
	for i, sub := range o.subs {
		if sub.id == id {
			o.subs = append(o.subs[:i], o.subs[i+1:]...)
			return true
		}
	}
	return false
}

// notify calls every subscriber in registration order. A panicking
// subscriber is logged and skipped.
func (o *observers) notify(change Change) {
	subs := make([]subscription, len(o.subs))
	copy(subs, o.subs)
	for _, sub := range subs {
		safeCall(sub.fn, change)
	}
}

func safeCall(fn Observer, change Change) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error(fmt.Errorf("navigation observer panicked on %s change: %v\n%s", change.Kind, r, debug.Stack()))
		}
	}()
	fn(change)
}
