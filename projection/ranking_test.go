package projection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"edu-chat/bus"
	"edu-chat/directory"
	"edu-chat/domain"
	"edu-chat/presence"
	"edu-chat/repositories"
	"edu-chat/runtime"
)

type rankingFixture struct {
	directory *directory.Directory
	store     *repositories.ConversationStore
	tracker   *presence.Tracker
	ranking   *Ranking
}

func newRankingFixture(t *testing.T) *rankingFixture {
	t.Helper()
	roster := directory.New()
	participants := []domain.Participant{
		{ID: "student_1", Name: "Alice", Role: domain.RoleStudent},
		{ID: "student_2", Name: "Bob", Role: domain.RoleStudent},
		{ID: "student_3", Name: "Chloe", Role: domain.RoleStudent},
		{ID: "instructor_1", Name: "Pr. Durand", Role: domain.RoleInstructor},
	}
	for _, p := range participants {
		require.NoError(t, roster.Register(p))
	}

	store := repositories.NewConversationStore(roster)
	tracker := presence.NewTracker(bus.New(), runtime.NewTimerScheduler(), time.Minute)
	return &rankingFixture{
		directory: roster,
		store:     store,
		tracker:   tracker,
		ranking:   NewRanking(roster, store, tracker),
	}
}

func (f *rankingFixture) send(t *testing.T, id int64, sender string, at time.Time, status domain.Status) {
	t.Helper()
	receiver := "instructor_1"
	if sender == "instructor_1" {
		receiver = "student_1"
	}
	_, err := f.store.Append(&domain.Message{
		ID:         id,
		SenderID:   sender,
		ReceiverID: receiver,
		Text:       "message " + sender,
		CreatedAt:  at,
		Status:     status,
	})
	require.NoError(t, err)
}

func TestRanking_Most_Recent_Conversation_First(t *testing.T) {
	req := require.New(t)
	f := newRankingFixture(t)
	now := time.Now().UTC()

	// Given student_2 messaged after student_1
	f.send(t, 1, "student_1", now.Add(-time.Hour), domain.StatusRead)
	f.send(t, 2, "student_2", now, domain.StatusDelivered)

	// When the instructor view is ranked
	summaries := f.ranking.RankForInstructor("instructor_1")

	// Then the most recent conversation leads and silent students trail
	req.Len(summaries, 3)
	req.Equal("student_2", summaries[0].Student.ID)
	req.Equal("student_1", summaries[1].Student.ID)
	req.Equal("student_3", summaries[2].Student.ID)
	req.True(summaries[2].LastMessageTime.IsZero())
}

func TestRanking_Unread_Counts_Only_Student_Messages(t *testing.T) {
	req := require.New(t)
	f := newRankingFixture(t)
	now := time.Now().UTC()

	// Given two unread student messages, one read one, and a reply
	f.send(t, 1, "student_1", now.Add(-3*time.Minute), domain.StatusRead)
	f.send(t, 2, "student_1", now.Add(-2*time.Minute), domain.StatusDelivered)
	f.send(t, 3, "instructor_1", now.Add(-time.Minute), domain.StatusSent)
	f.send(t, 4, "student_1", now, domain.StatusDelivered)

	// When the instructor view is ranked
	summaries := f.ranking.RankForInstructor("instructor_1")

	// Then only the student's unread messages count
	req.Equal("student_1", summaries[0].Student.ID)
	req.Equal(2, summaries[0].UnreadCount)

	// And the preview shows the newest message regardless of author
	req.Equal("message student_1", summaries[0].LastMessageText)
	req.Equal(now, summaries[0].LastMessageTime)
}

func TestRanking_Silent_Students_Keep_Registration_Order(t *testing.T) {
	req := require.New(t)
	f := newRankingFixture(t)

	// When nobody has messaged yet
	summaries := f.ranking.RankForInstructor("instructor_1")

	// Then students appear in registration order with empty summaries
	req.Len(summaries, 3)
	req.Equal("student_1", summaries[0].Student.ID)
	req.Equal("student_2", summaries[1].Student.ID)
	req.Equal("student_3", summaries[2].Student.ID)
	for _, s := range summaries {
		req.Zero(s.UnreadCount)
		req.Empty(s.LastMessageText)
	}
}

func TestRanking_Reflects_Presence_And_Typing(t *testing.T) {
	req := require.New(t)
	f := newRankingFixture(t)

	// Given one online student who is typing
	f.tracker.Connect("student_2", domain.RoleStudent)
	f.tracker.SetTyping("student_2", "instructor_1", true)

	// When the instructor view is ranked
	summaries := f.ranking.RankForInstructor("instructor_1")

	// Then the flags show up on the right row only
	for _, s := range summaries {
		if s.Student.ID == "student_2" {
			req.True(s.IsOnline)
			req.True(s.IsTyping)
			continue
		}
		req.False(s.IsOnline)
		req.False(s.IsTyping)
	}
}
