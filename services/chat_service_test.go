package services

import (
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"edu-chat/bus"
	"edu-chat/contract"
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

type fakeScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	tasks []*fakeTask
}

type fakeTask struct {
	due      time.Duration
	task     func()
	canceled bool
	done     bool
}

func (s *fakeScheduler) Schedule(delay time.Duration, task func()) contract.CancelFunc {
	s.mu.Lock()
	ft := &fakeTask{due: s.now + delay, task: task}
	s.tasks = append(s.tasks, ft)
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		ft.canceled = true
		s.mu.Unlock()
	}
}

func (s *fakeScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	for {
		var next *fakeTask
		for _, t := range s.tasks {
			if !t.done && !t.canceled && t.due <= s.now && (next == nil || t.due < next.due) {
				next = t
			}
		}
		if next == nil {
			break
		}
		next.done = true
		s.mu.Unlock()
		next.task()
		s.mu.Lock()
	}
	s.mu.Unlock()
}

type serviceFixture struct {
	service   *ChatService
	bus       *bus.Bus
	scheduler *fakeScheduler
	events    []event.Event
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	roster := directory.New()
	participants := []domain.Participant{
		{ID: "student_1", Name: "Alice", Role: domain.RoleStudent},
		{ID: "student_2", Name: "Bob", Role: domain.RoleStudent},
		{ID: "instructor_1", Name: "Pr. Durand", Role: domain.RoleInstructor},
	}
	for _, p := range participants {
		require.NoError(t, roster.Register(p))
	}

	eventBus := bus.New()
	scheduler := &fakeScheduler{}
	store := repositories.NewConversationStore(roster)
	lifecycle := runtime.NewMessageLifecycle(log, store, eventBus, scheduler,
		500*time.Millisecond, 1*time.Second, 4*time.Second)
	tracker := presence.NewTracker(eventBus, scheduler, 3*time.Second)
	ranking := projection.NewRanking(roster, store, tracker)
	moderator, err := moderation.NewModerator([]string{"idiot"}, '*')
	require.NoError(t, err)

	f := &serviceFixture{
		service: NewChatService(log, roster, store, lifecycle, tracker,
			ranking, moderator, eventBus, ids.NewGenerator()),
		bus:       eventBus,
		scheduler: scheduler,
	}
	for _, kind := range event.Catalog() {
		eventBus.Subscribe(kind, func(evt event.Event) { f.events = append(f.events, evt) })
	}
	return f
}

func (f *serviceFixture) kinds() []event.Kind {
	out := make([]event.Kind, len(f.events))
	for i, evt := range f.events {
		out[i] = evt.Kind
	}
	return out
}

func TestChatService_SendMessage_Requires_A_Session(t *testing.T) {
	req := require.New(t)
	f := newServiceFixture(t)

	// When sending without connecting first
	_, err := f.service.SendMessage("instructor_1", "hello")

	// Then the call is refused and nothing was stored or published
	req.ErrorIs(err, errors.ErrNotConnected)
	req.Empty(f.service.GetConversation("student_1", "instructor_1"))
	req.Empty(f.events)
}

func TestChatService_SendMessage_Rejects_Blank_Text(t *testing.T) {
	req := require.New(t)
	f := newServiceFixture(t)
	req.NoError(f.service.Connect("student_1", domain.RoleStudent))

	// When the text is only whitespace
	_, err := f.service.SendMessage("instructor_1", "   \n\t ")

	// Then the message is refused and the conversation stays empty
	req.ErrorIs(err, errors.ErrInvalidMessage)
	req.Empty(f.service.GetConversation("student_1", "instructor_1"))
}

func TestChatService_Message_Reaches_Read_Through_The_Acknowledgement_Chain(t *testing.T) {
	req := require.New(t)
	f := newServiceFixture(t)
	req.NoError(f.service.Connect("student_1", domain.RoleStudent))

	// When a student messages the instructor
	msg, err := f.service.SendMessage("instructor_1", "hello professor")
	req.NoError(err)
	req.Equal(domain.StatusSent, msg.Status)

	// Then the conversation holds it under the canonical key
	req.Equal(domain.ConversationKey("student_1-instructor_1"),
		f.service.Key("instructor_1", "student_1"))
	stored := f.service.GetConversation("student_1", "instructor_1")
	req.Len(stored, 1)
	req.Equal("hello professor", stored[0].Text)

	// And the full acknowledgement chain plays out over time
	f.scheduler.Advance(500 * time.Millisecond)
	req.Equal(domain.StatusDelivered, f.service.GetConversation("student_1", "instructor_1")[0].Status)

	f.scheduler.Advance(4 * time.Second)
	req.Equal(domain.StatusRead, f.service.GetConversation("student_1", "instructor_1")[0].Status)

	req.Equal([]event.Kind{
		event.UserConnectedKind,
		event.MessageSentKind,
		event.MessageDeliveredKind,
		event.MessageReadKind,
	}, f.kinds())
}

func TestChatService_SendMessage_Censors_Blocklisted_Words(t *testing.T) {
	req := require.New(t)
	f := newServiceFixture(t)
	req.NoError(f.service.Connect("student_1", domain.RoleStudent))

	// When the text carries a blocklisted word
	msg, err := f.service.SendMessage("instructor_1", "he is an idiot")

	// Then the stored and returned text are both masked
	req.NoError(err)
	req.Equal("he is an *****", msg.Text)
	req.Equal("he is an *****", f.service.GetConversation("student_1", "instructor_1")[0].Text)
}

func TestChatService_SimulateIncoming_Arrives_Delivered(t *testing.T) {
	req := require.New(t)
	f := newServiceFixture(t)

	// When a message is injected without any session
	msg, err := f.service.SimulateIncoming("student_2", "instructor_1", "is the deadline today?")
	req.NoError(err)

	// Then it lands already delivered and is announced as received
	req.Equal(domain.StatusDelivered, msg.Status)
	req.Equal([]event.Kind{event.MessageReceivedKind}, f.kinds())

	// And no acknowledgement timers were armed for it
	f.scheduler.Advance(time.Minute)
	req.Equal(domain.StatusDelivered, f.service.GetConversation("student_2", "instructor_1")[0].Status)
	req.Equal([]event.Kind{event.MessageReceivedKind}, f.kinds())
}

func TestChatService_MarkAsRead_Batches_And_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	f := newServiceFixture(t)
	req.NoError(f.service.Connect("instructor_1", domain.RoleInstructor))

	// Given two injected student messages
	_, err := f.service.SimulateIncoming("student_1", "instructor_1", "question one")
	req.NoError(err)
	_, err = f.service.SimulateIncoming("student_1", "instructor_1", "question two")
	req.NoError(err)
	key := f.service.Key("student_1", "instructor_1")

	// When the instructor reads the conversation twice
	f.service.MarkAsRead(key, "instructor_1")
	f.service.MarkAsRead(key, "instructor_1")

	// Then every student message is read and one batch event was published
	for _, m := range f.service.GetConversation("student_1", "instructor_1") {
		req.Equal(domain.StatusRead, m.Status)
	}
	batches := 0
	for _, evt := range f.events {
		if evt.Kind == event.ConversationReadKind {
			batches++
			payload := evt.Payload.(event.ConversationRead)
			req.Equal(2, payload.Count)
			req.Equal("instructor_1", payload.ReaderID)
		}
	}
	req.Equal(1, batches)
}

func TestChatService_SendAttachment_Sniffs_The_Content_Type(t *testing.T) {
	req := require.New(t)
	f := newServiceFixture(t)
	req.NoError(f.service.Connect("student_1", domain.RoleStudent))

	// When a PNG is sent under a misleading name
	data := []byte("\x89PNG\r\n\x1a\nrest-of-the-image")
	msg, err := f.service.SendAttachment("instructor_1", "homework.txt", data, "")

	// Then the type comes from the payload, not the name
	req.NoError(err)
	req.NotNil(msg.Attachment)
	req.Equal("homework.txt", msg.Attachment.Name)
	req.Equal("image/png", msg.Attachment.Mime)
	req.Equal(len(data), msg.Attachment.Size)

	// And an empty payload is refused
	_, err = f.service.SendAttachment("instructor_1", "empty.bin", nil, "")
	req.ErrorIs(err, errors.ErrInvalidMessage)
}

func TestChatService_Typing_Roundtrip(t *testing.T) {
	req := require.New(t)
	f := newServiceFixture(t)

	// Given no session, typing is refused
	req.ErrorIs(f.service.SetTyping("instructor_1", true), errors.ErrNotConnected)

	// When a connected student types
	req.NoError(f.service.Connect("student_1", domain.RoleStudent))
	req.NoError(f.service.SetTyping("instructor_1", true))

	// Then the flag expires on its own
	f.scheduler.Advance(3 * time.Second)
	summaries, err := f.service.RankForInstructor("instructor_1")
	req.NoError(err)
	req.Equal("student_1", summaries[0].Student.ID)
	req.False(summaries[0].IsTyping)
}

func TestChatService_RankForInstructor_Checks_The_Role(t *testing.T) {
	req := require.New(t)
	f := newServiceFixture(t)

	// A student cannot ask for the instructor dashboard
	_, err := f.service.RankForInstructor("student_1")
	req.ErrorIs(err, errors.ErrUnknownParticipant)

	// Neither can a stranger
	_, err = f.service.RankForInstructor("ghost")
	req.ErrorIs(err, errors.ErrUnknownParticipant)
}

func TestChatService_Disconnect_Closes_The_Session(t *testing.T) {
	req := require.New(t)
	f := newServiceFixture(t)
	req.NoError(f.service.Connect("student_1", domain.RoleStudent))

	// When the student disconnects
	f.service.Disconnect()

	// Then further sends are refused and disconnecting again is harmless
	_, err := f.service.SendMessage("instructor_1", "hello")
	req.ErrorIs(err, errors.ErrNotConnected)
	req.NotPanics(f.service.Disconnect)
}

func TestChatService_AllForParticipant_Collects_Every_Thread(t *testing.T) {
	req := require.New(t)
	f := newServiceFixture(t)
	_, err := f.service.SimulateIncoming("student_1", "instructor_1", "from one")
	req.NoError(err)
	_, err = f.service.SimulateIncoming("student_2", "instructor_1", "from two")
	req.NoError(err)

	// When the instructor asks for all conversations
	all := f.service.AllForParticipant("instructor_1")

	// Then each counterpart maps to its own messages
	req.Len(all, 2)
	req.Equal("from one", all["student_1"][0].Text)
	req.Equal("from two", all["student_2"][0].Text)
}
