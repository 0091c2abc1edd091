// Package runtime drives the asynchronous part of the engine: scheduled
// delivery-status transitions standing in for transport acknowledgements.
package runtime

import (
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"edu-chat/bus"
	"edu-chat/contract"
	"edu-chat/domain"
	"edu-chat/domain/event"
	"edu-chat/repositories"
)

type pendingTransition struct {
	key    domain.ConversationKey
	cancel contract.CancelFunc
}

// MessageLifecycle advances each tracked message through
// sent -> delivered -> read. Both transitions are scheduled tasks; the
// store's forward-only status gate makes a stale task a no-op, so a
// manual read can never be downgraded by a timer firing late.
type MessageLifecycle struct {
	mu        sync.Mutex
	log       *slog.Logger
	store     *repositories.ConversationStore
	bus       *bus.Bus
	scheduler contract.Scheduler

	deliveryDelay time.Duration
	readDelayMin  time.Duration
	readDelayMax  time.Duration

	rng     *rand.Rand
	pending map[int64]pendingTransition
}

func NewMessageLifecycle(log *slog.Logger, store *repositories.ConversationStore,
	b *bus.Bus, scheduler contract.Scheduler,
	deliveryDelay, readDelayMin, readDelayMax time.Duration) *MessageLifecycle {
	return &MessageLifecycle{
		log:           log,
		store:         store,
		bus:           b,
		scheduler:     scheduler,
		deliveryDelay: deliveryDelay,
		readDelayMin:  readDelayMin,
		readDelayMax:  readDelayMax,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
		pending:       make(map[int64]pendingTransition),
	}
}

// Track schedules the delivery acknowledgement for a freshly sent
// message; the read acknowledgement follows once delivery has fired.
func (l *MessageLifecycle) Track(key domain.ConversationKey, messageID int64) {
	l.schedule(key, messageID, l.deliveryDelay, func() {
		l.deliver(key, messageID)
	})
}

// MarkConversationRead flips every message the reader did not author
// and publishes one batched event for the whole conversation. A second
// call with nothing left to flip publishes nothing.
func (l *MessageLifecycle) MarkConversationRead(key domain.ConversationKey, readerID string) {
	changed := l.store.MarkRead(key, readerID)
	if len(changed) == 0 {
		return
	}

	// The gate already protects the flipped messages; cancelling their
	// timers just avoids useless wakeups.
	l.mu.Lock()
	for _, id := range changed {
		if p, ok := l.pending[id]; ok {
			p.cancel()
			delete(l.pending, id)
		}
	}
	l.mu.Unlock()

	l.bus.Publish(event.New(event.ConversationReadKind, event.ConversationRead{
		Key:      key,
		ReaderID: readerID,
		Count:    len(changed),
	}))
}

func (l *MessageLifecycle) deliver(key domain.ConversationKey, messageID int64) {
	if !l.store.AdvanceStatus(key, messageID, domain.StatusDelivered) {
		l.clear(messageID)
		l.log.Debug("Delivery transition superseded", "message", messageID)
		return
	}
	l.bus.Publish(event.New(event.MessageDeliveredKind, event.MessageDelivered{
		Key:       key,
		MessageID: messageID,
	}))
	l.schedule(key, messageID, l.readDelay(), func() {
		l.read(key, messageID)
	})
}

func (l *MessageLifecycle) read(key domain.ConversationKey, messageID int64) {
	l.clear(messageID)
	if !l.store.AdvanceStatus(key, messageID, domain.StatusRead) {
		l.log.Debug("Read transition superseded", "message", messageID)
		return
	}
	l.bus.Publish(event.New(event.MessageReadKind, event.MessageRead{
		Key:       key,
		MessageID: messageID,
	}))
}

// schedule registers the next transition for a message, replacing and
// cancelling whatever was pending for it.
func (l *MessageLifecycle) schedule(key domain.ConversationKey, messageID int64,
	delay time.Duration, task func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if p, ok := l.pending[messageID]; ok {
		p.cancel()
	}
	l.pending[messageID] = pendingTransition{
		key:    key,
		cancel: l.scheduler.Schedule(delay, task),
	}
}

func (l *MessageLifecycle) clear(messageID int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.pending, messageID)
}

func (l *MessageLifecycle) readDelay() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	span := l.readDelayMax - l.readDelayMin
	if span <= 0 {
		return l.readDelayMin
	}
	return l.readDelayMin + time.Duration(l.rng.Int63n(int64(span)))
}
