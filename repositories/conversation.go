package repositories

import (
	"strings"
	"sync"

	"edu-chat/domain"
	"edu-chat/errors"
)

// conversation is one ordered message log plus the participant pair it
// belongs to. Insertion order is chronological order.
type conversation struct {
	participants [2]string
	messages     []*domain.Message
}

// ConversationStore owns every message log in memory. All mutation goes
// through its methods behind one coarse lock; callers receive snapshot
// copies, never the live log.
type ConversationStore struct {
	mu            sync.RWMutex
	roles         domain.RoleLookup
	conversations map[domain.ConversationKey]*conversation
}

func NewConversationStore(roles domain.RoleLookup) *ConversationStore {
	return &ConversationStore{
		roles:         roles,
		conversations: make(map[domain.ConversationKey]*conversation),
	}
}

// Append inserts the message at the tail of its conversation, creating
// the conversation on first use. The text is trimmed first; a message
// with neither text nor attachment is rejected.
func (s *ConversationStore) Append(msg *domain.Message) (domain.ConversationKey, error) {
	msg.Text = strings.TrimSpace(msg.Text)
	if msg.Text == "" && msg.Attachment == nil {
		return "", errors.ErrInvalidMessage
	}
	key := domain.ResolveKey(s.roles, msg.SenderID, msg.ReceiverID)

	s.mu.Lock()
	defer s.mu.Unlock()
	conv, ok := s.conversations[key]
	if !ok {
		conv = &conversation{participants: [2]string{msg.SenderID, msg.ReceiverID}}
		s.conversations[key] = conv
	}
	conv.messages = append(conv.messages, msg)
	return key, nil
}

// Get returns a snapshot of the conversation between the two ids, in
// insertion order. The argument order does not matter.
func (s *ConversationStore) Get(idA, idB string) []domain.Message {
	key := domain.ResolveKey(s.roles, idA, idB)

	s.mu.RLock()
	defer s.mu.RUnlock()
	conv, ok := s.conversations[key]
	if !ok {
		return nil
	}
	return snapshot(conv.messages)
}

// AllForParticipant maps every counterpart the participant has a
// conversation with to a snapshot of that log. Linear in the number of
// stored conversations.
func (s *ConversationStore) AllForParticipant(id string) map[string][]domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string][]domain.Message)
	for _, conv := range s.conversations {
		switch id {
		case conv.participants[0]:
			out[conv.participants[1]] = snapshot(conv.messages)
		case conv.participants[1]:
			out[conv.participants[0]] = snapshot(conv.messages)
		}
	}
	return out
}

// AdvanceStatus moves one message forward to the given status. It
// reports false when the message is unknown or already at or past the
// target, which makes stale scheduled transitions harmless no-ops.
func (s *ConversationStore) AdvanceStatus(key domain.ConversationKey, messageID int64, to domain.Status) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[key]
	if !ok {
		return false
	}
	for _, m := range conv.messages {
		if m.ID != messageID {
			continue
		}
		if !m.Status.Before(to) {
			return false
		}
		m.Status = to
		return true
	}
	return false
}

// MarkRead flips every message in the conversation not authored by
// readerID to read and returns the ids that actually changed.
func (s *ConversationStore) MarkRead(key domain.ConversationKey, readerID string) []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[key]
	if !ok {
		return nil
	}
	var changed []int64
	for _, m := range conv.messages {
		if m.SenderID == readerID || m.Status == domain.StatusRead {
			continue
		}
		m.Status = domain.StatusRead
		changed = append(changed, m.ID)
	}
	return changed
}

func snapshot(messages []*domain.Message) []domain.Message {
	out := make([]domain.Message, len(messages))
	for i, m := range messages {
		out[i] = *m
	}
	return out
}
