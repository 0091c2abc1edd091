package domain

import "time"

// Status is the delivery state of a message. It only ever moves forward:
// sent, then delivered, then read.
type Status string

const (
	StatusSent      Status = "sent"
	StatusDelivered Status = "delivered"
	StatusRead      Status = "read"
)

var statusRank = map[Status]int{
	StatusSent:      0,
	StatusDelivered: 1,
	StatusRead:      2,
}

// Before reports whether s precedes other in the delivery progression.
func (s Status) Before(other Status) bool {
	return statusRank[s] < statusRank[other]
}

// Attachment describes a file carried by a message. The engine keeps
// the metadata only; the payload itself lives with the transport.
type Attachment struct {
	Name string
	Mime string
	Size int
}

// Message is one chat entry. Text and identifiers are immutable after
// creation; only the conversation store may touch Status.
type Message struct {
	ID         int64
	SenderID   string
	ReceiverID string
	Text       string
	Attachment *Attachment
	CreatedAt  time.Time
	Status     Status
}
