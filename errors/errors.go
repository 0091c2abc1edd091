package errors

import "fmt"

var (
	ErrNotConnected       = fmt.Errorf("no active chat session")
	ErrInvalidMessage     = fmt.Errorf("message text is empty")
	ErrUnknownParticipant = fmt.Errorf("participant is not registered")
	ErrInvalidParticipant = fmt.Errorf("participant record is invalid")
	ErrInvalidPayload     = fmt.Errorf("event payload has an unexpected type")
)
