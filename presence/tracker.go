// Package presence tracks which participants are connected and which
// are currently composing a message. Both sets are volatile process
// state, reset on disconnect.
package presence

import (
	"sync"
	"time"

	"edu-chat/bus"
	"edu-chat/contract"
	"edu-chat/domain"
	"edu-chat/domain/event"
)

type Tracker struct {
	mu        sync.Mutex
	bus       *bus.Bus
	scheduler contract.Scheduler
	expiry    time.Duration

	online map[string]struct{}
	typing map[string]bool
	// resets holds the pending auto-expiry per typing participant; a
	// newer SetTyping call always cancels the previous one, so only the
	// latest timer may fire.
	resets map[string]contract.CancelFunc
}

func NewTracker(b *bus.Bus, scheduler contract.Scheduler, expiry time.Duration) *Tracker {
	return &Tracker{
		bus:       b,
		scheduler: scheduler,
		expiry:    expiry,
		online:    make(map[string]struct{}),
		typing:    make(map[string]bool),
		resets:    make(map[string]contract.CancelFunc),
	}
}

// Connect adds the participant to the online set. Idempotent; every
// call publishes, matching reconnect attempts from the UI shell.
func (t *Tracker) Connect(id string, role domain.Role) {
	t.mu.Lock()
	t.online[id] = struct{}{}
	t.mu.Unlock()

	t.bus.Publish(event.New(event.UserConnectedKind, event.UserConnected{
		UserID: id,
		Role:   role,
	}))
}

// Disconnect removes the participant and resets their typing state.
// No-op when the participant was not connected.
func (t *Tracker) Disconnect(id string) {
	t.mu.Lock()
	_, connected := t.online[id]
	if connected {
		delete(t.online, id)
		delete(t.typing, id)
		if cancel, ok := t.resets[id]; ok {
			cancel()
			delete(t.resets, id)
		}
	}
	t.mu.Unlock()

	if !connected {
		return
	}
	t.bus.Publish(event.New(event.UserDisconnectedKind, event.UserDisconnected{UserID: id}))
}

// SetTyping records the flag and publishes it. Setting it to true arms
// an auto-reset that re-invokes SetTyping with false after the expiry
// window; false never schedules, which terminates the recursion.
func (t *Tracker) SetTyping(userID, counterpartID string, isTyping bool) {
	t.mu.Lock()
	t.typing[userID] = isTyping
	if cancel, ok := t.resets[userID]; ok {
		cancel()
		delete(t.resets, userID)
	}
	if isTyping {
		t.resets[userID] = t.scheduler.Schedule(t.expiry, func() {
			t.SetTyping(userID, counterpartID, false)
		})
	}
	t.mu.Unlock()

	t.bus.Publish(event.New(event.TypingStatusKind, event.TypingStatus{
		UserID:        userID,
		CounterpartID: counterpartID,
		IsTyping:      isTyping,
	}))
}

func (t *Tracker) IsOnline(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.online[id]
	return ok
}

func (t *Tracker) IsTyping(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.typing[id]
}
