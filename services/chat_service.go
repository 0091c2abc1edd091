//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks
package services

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"edu-chat/bus"
	"edu-chat/directory"
	"edu-chat/domain"
	"edu-chat/domain/event"
	"edu-chat/errors"
	"edu-chat/ids"
	"edu-chat/moderation"
	"edu-chat/presence"
	"edu-chat/projection"
	"edu-chat/repositories"
	"edu-chat/runtime"
)

type IChatService interface {
	Connect(participantID string, role domain.Role) error
	Disconnect()
	SendMessage(receiverID, text string) (domain.Message, error)
	SendAttachment(receiverID, name string, data []byte, caption string) (domain.Message, error)
	SimulateIncoming(senderID, receiverID, text string) (domain.Message, error)
	GetConversation(idA, idB string) []domain.Message
	AllForParticipant(id string) map[string][]domain.Message
	RankForInstructor(instructorID string) ([]projection.StudentSummary, error)
	SetTyping(counterpartID string, isTyping bool) error
	MarkAsRead(key domain.ConversationKey, readerID string)
	Key(idA, idB string) domain.ConversationKey
	Bus() *bus.Bus
}

type session struct {
	userID string
	role   domain.Role
}

// ChatService is the facade the surrounding application talks to. One
// instance per session; every collaborator is injected, so isolated
// instances can coexist in tests.
type ChatService struct {
	mu        sync.RWMutex
	log       *slog.Logger
	directory *directory.Directory
	store     *repositories.ConversationStore
	lifecycle *runtime.MessageLifecycle
	presence  *presence.Tracker
	ranking   *projection.Ranking
	moderator *moderation.Moderator
	bus       *bus.Bus
	ids       *ids.Generator
	session   *session
}

func NewChatService(log *slog.Logger, dir *directory.Directory,
	store *repositories.ConversationStore, lifecycle *runtime.MessageLifecycle,
	tracker *presence.Tracker, ranking *projection.Ranking,
	moderator *moderation.Moderator, b *bus.Bus, generator *ids.Generator) *ChatService {
	return &ChatService{
		log:       log,
		directory: dir,
		store:     store,
		lifecycle: lifecycle,
		presence:  tracker,
		ranking:   ranking,
		moderator: moderator,
		bus:       b,
		ids:       generator,
	}
}

// Connect opens the session for the given participant. A participant
// the directory does not know is accepted anyway: key resolution falls
// back to lexicographic ordering for unknown ids.
func (s *ChatService) Connect(participantID string, role domain.Role) error {
	if strings.TrimSpace(participantID) == "" {
		return fmt.Errorf("%w: empty participant id", errors.ErrInvalidParticipant)
	}
	if _, ok := s.directory.Get(participantID); !ok {
		s.log.Warn("Connecting participant unknown to the directory", "participant", participantID)
	}

	s.mu.Lock()
	s.session = &session{userID: participantID, role: role}
	s.mu.Unlock()

	s.presence.Connect(participantID, role)
	return nil
}

// Disconnect closes the session and removes the participant from the
// online set. No-op without an active session.
func (s *ChatService) Disconnect() {
	s.mu.Lock()
	sess := s.session
	s.session = nil
	s.mu.Unlock()

	if sess == nil {
		return
	}
	s.presence.Disconnect(sess.userID)
}

// SendMessage appends an outbound message in sent state and hands it to
// the lifecycle for the delivery and read acknowledgements.
func (s *ChatService) SendMessage(receiverID, text string) (domain.Message, error) {
	sess, err := s.currentSession()
	if err != nil {
		return domain.Message{}, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Message{}, errors.ErrInvalidMessage
	}
	text = s.censor(sess.userID, text)

	msg := &domain.Message{
		ID:         s.ids.Next(),
		SenderID:   sess.userID,
		ReceiverID: receiverID,
		Text:       text,
		CreatedAt:  time.Now().UTC(),
		Status:     domain.StatusSent,
	}
	key, err := s.store.Append(msg)
	if err != nil {
		return domain.Message{}, err
	}

	s.bus.Publish(event.New(event.MessageSentKind, event.MessageSent{Key: key, Message: *msg}))
	s.lifecycle.Track(key, msg.ID)
	return *msg, nil
}

// SendAttachment sends a file message with an optional caption. The
// content type is sniffed from the payload, never trusted from the name.
func (s *ChatService) SendAttachment(receiverID, name string, data []byte, caption string) (domain.Message, error) {
	sess, err := s.currentSession()
	if err != nil {
		return domain.Message{}, err
	}
	if len(data) == 0 {
		return domain.Message{}, fmt.Errorf("%w: empty attachment", errors.ErrInvalidMessage)
	}

	caption = strings.TrimSpace(caption)
	if caption != "" {
		caption = s.censor(sess.userID, caption)
	}

	msg := &domain.Message{
		ID:         s.ids.Next(),
		SenderID:   sess.userID,
		ReceiverID: receiverID,
		Text:       caption,
		Attachment: &domain.Attachment{
			Name: name,
			Mime: mimetype.Detect(data).String(),
			Size: len(data),
		},
		CreatedAt: time.Now().UTC(),
		Status:    domain.StatusSent,
	}
	key, err := s.store.Append(msg)
	if err != nil {
		return domain.Message{}, err
	}

	s.bus.Publish(event.New(event.MessageSentKind, event.MessageSent{Key: key, Message: *msg}))
	s.lifecycle.Track(key, msg.ID)
	return *msg, nil
}

// SimulateIncoming injects a message as if it had arrived from the
// transport: already delivered, announced as message-received. It needs
// no active session and schedules no further transitions.
func (s *ChatService) SimulateIncoming(senderID, receiverID, text string) (domain.Message, error) {
	msg := &domain.Message{
		ID:         s.ids.Next(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Text:       strings.TrimSpace(text),
		CreatedAt:  time.Now().UTC(),
		Status:     domain.StatusDelivered,
	}
	key, err := s.store.Append(msg)
	if err != nil {
		return domain.Message{}, err
	}

	s.bus.Publish(event.New(event.MessageReceivedKind, event.MessageReceived{Key: key, Message: *msg}))
	return *msg, nil
}

func (s *ChatService) GetConversation(idA, idB string) []domain.Message {
	return s.store.Get(idA, idB)
}

func (s *ChatService) AllForParticipant(id string) map[string][]domain.Message {
	return s.store.AllForParticipant(id)
}

func (s *ChatService) RankForInstructor(instructorID string) ([]projection.StudentSummary, error) {
	p, ok := s.directory.Get(instructorID)
	if !ok || p.Role != domain.RoleInstructor {
		return nil, fmt.Errorf("%w: %s is not a registered instructor", errors.ErrUnknownParticipant, instructorID)
	}
	return s.ranking.RankForInstructor(instructorID), nil
}

func (s *ChatService) SetTyping(counterpartID string, isTyping bool) error {
	sess, err := s.currentSession()
	if err != nil {
		return err
	}
	s.presence.SetTyping(sess.userID, counterpartID, isTyping)
	return nil
}

func (s *ChatService) MarkAsRead(key domain.ConversationKey, readerID string) {
	s.lifecycle.MarkConversationRead(key, readerID)
}

// Key exposes canonical key resolution so that callers never derive
// their own conversation identifiers.
func (s *ChatService) Key(idA, idB string) domain.ConversationKey {
	return domain.ResolveKey(s.directory, idA, idB)
}

// Bus gives observers access to subscribe and unsubscribe.
func (s *ChatService) Bus() *bus.Bus {
	return s.bus
}

func (s *ChatService) currentSession() (session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return session{}, errors.ErrNotConnected
	}
	return *s.session, nil
}

func (s *ChatService) censor(senderID, text string) string {
	if s.moderator == nil {
		return text
	}
	censored, found := s.moderator.Censor(text)
	if len(found) > 0 {
		s.log.Warn("Censored outbound message", "sender", senderID, "matches", len(found))
	}
	return censored
}
