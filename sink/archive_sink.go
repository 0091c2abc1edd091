// Package sink holds observers that copy bus traffic into side
// channels without ever feeding back into the engine.
package sink

import (
	"log/slog"

	"edu-chat/bus"
	"edu-chat/domain"
	"edu-chat/domain/event"
	"edu-chat/errors"
	"edu-chat/repositories"
)

// ArchiveSink copies outbound and injected inbound messages into the
// durable archive. Failures are logged, never surfaced to the sender.
type ArchiveSink struct {
	archive repositories.IMessageArchive
	log     *slog.Logger
}

func NewArchiveSink(archive repositories.IMessageArchive, log *slog.Logger) *ArchiveSink {
	return &ArchiveSink{archive: archive, log: log}
}

// Attach subscribes the sink to both message kinds on the bus.
func (s *ArchiveSink) Attach(b *bus.Bus) []bus.Subscription {
	return []bus.Subscription{
		b.Subscribe(event.MessageSentKind, s.Consume),
		b.Subscribe(event.MessageReceivedKind, s.Consume),
	}
}

func (s *ArchiveSink) Consume(evt event.Event) {
	switch payload := evt.Payload.(type) {
	case event.MessageSent:
		s.store(payload.Key, payload.Message)
	case event.MessageReceived:
		s.store(payload.Key, payload.Message)
	default:
		s.log.Error(errors.ErrInvalidPayload.Error(), "kind", evt.Kind)
	}
}

func (s *ArchiveSink) store(key domain.ConversationKey, msg domain.Message) {
	err := s.archive.Store(repositories.ArchivedMessage{
		ID:       msg.ID,
		Key:      key,
		SenderID: msg.SenderID,
		Text:     msg.Text,
		At:       msg.CreatedAt,
	})
	if err != nil {
		s.log.Error("Failed to archive message", "key", key, "id", msg.ID, "err", err)
	}
}
