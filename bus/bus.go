// Package bus decouples state mutation from observers with a minimal
// synchronous publish/subscribe hub.
package bus

import (
	"sync"

	"github.com/google/uuid"

	"edu-chat/domain/event"
)

// Handler receives every published event of the kind it subscribed to,
// on the publisher's goroutine.
type Handler func(event.Event)

// Subscription identifies one handler registration so it can be removed.
type Subscription struct {
	id   uuid.UUID
	kind event.Kind
}

type entry struct {
	id      uuid.UUID
	handler Handler
}

// Bus delivers events synchronously, in subscription order. There is no
// queueing and no guaranteed delivery: a handler subscribed while a
// publish is in flight only sees later events.
type Bus struct {
	mu       sync.RWMutex
	handlers map[event.Kind][]entry
}

func New() *Bus {
	return &Bus{handlers: make(map[event.Kind][]entry)}
}

func (b *Bus) Subscribe(kind event.Kind, handler Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.New()
	b.handlers[kind] = append(b.handlers[kind], entry{id: id, handler: handler})
	return Subscription{id: id, kind: kind}
}

// Unsubscribe removes the handler behind the subscription. Unknown or
// already removed subscriptions are ignored.
func (b *Bus) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entries := b.handlers[sub.kind]
	for i, e := range entries {
		if e.id == sub.id {
			b.handlers[sub.kind] = append(entries[:i:i], entries[i+1:]...)
			return
		}
	}
}

func (b *Bus) Publish(evt event.Event) {
	b.mu.RLock()
	entries := b.handlers[evt.Kind]
	snapshot := make([]entry, len(entries))
	copy(snapshot, entries)
	b.mu.RUnlock()

	// Handlers run outside the lock so they may subscribe, unsubscribe
	// or publish again without deadlocking.
	for _, e := range snapshot {
		e.handler(evt)
	}
}
