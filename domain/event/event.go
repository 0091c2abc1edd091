// Package event defines the closed catalog of notifications published
// by the engine. Each Kind pairs with exactly one payload type.
package event

import (
	"time"

	"edu-chat/domain"
)

type Kind string

const (
	UserConnectedKind    Kind = "user-connected"
	UserDisconnectedKind Kind = "user-disconnected"
	MessageSentKind      Kind = "message-sent"
	MessageDeliveredKind Kind = "message-delivered"
	MessageReadKind      Kind = "message-read"
	ConversationReadKind Kind = "messages-read"
	TypingStatusKind     Kind = "typing-status"
	MessageReceivedKind  Kind = "message-received"
)

// Catalog lists every kind the engine may publish, in a stable order.
func Catalog() []Kind {
	return []Kind{
		UserConnectedKind,
		UserDisconnectedKind,
		MessageSentKind,
		MessageDeliveredKind,
		MessageReadKind,
		ConversationReadKind,
		TypingStatusKind,
		MessageReceivedKind,
	}
}

type Event struct {
	Kind      Kind
	CreatedAt time.Time
	Payload   any
}

func New(kind Kind, payload any) Event {
	return Event{Kind: kind, CreatedAt: time.Now().UTC(), Payload: payload}
}

type UserConnected struct {
	UserID string
	Role   domain.Role
}

type UserDisconnected struct {
	UserID string
}

// MessageSent carries a copy of the message as it was appended; later
// status transitions are announced separately.
type MessageSent struct {
	Key     domain.ConversationKey
	Message domain.Message
}

type MessageDelivered struct {
	Key       domain.ConversationKey
	MessageID int64
}

type MessageRead struct {
	Key       domain.ConversationKey
	MessageID int64
}

// ConversationRead is the batched outcome of marking a whole
// conversation as read. Count is the number of messages that changed.
type ConversationRead struct {
	Key      domain.ConversationKey
	ReaderID string
	Count    int
}

type TypingStatus struct {
	UserID        string
	CounterpartID string
	IsTyping      bool
}

// MessageReceived announces an externally injected inbound message,
// already in delivered state.
type MessageReceived struct {
	Key     domain.ConversationKey
	Message domain.Message
}
