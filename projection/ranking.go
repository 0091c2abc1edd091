// Package projection builds read views derived from the live state.
// Views are recomputed on demand and never cached.
package projection

import (
	"sort"
	"time"

	"github.com/samber/lo"

	"edu-chat/directory"
	"edu-chat/domain"
	"edu-chat/presence"
	"edu-chat/repositories"
)

// StudentSummary is the UI-ready dashboard row for one student.
type StudentSummary struct {
	Student         domain.Participant
	IsOnline        bool
	LastMessageText string
	LastMessageTime time.Time // zero when the conversation is empty
	UnreadCount     int
	IsTyping        bool
}

type Ranking struct {
	directory *directory.Directory
	store     *repositories.ConversationStore
	presence  *presence.Tracker
}

func NewRanking(dir *directory.Directory, store *repositories.ConversationStore,
	tracker *presence.Tracker) *Ranking {
	return &Ranking{directory: dir, store: store, presence: tracker}
}

// RankForInstructor summarizes the instructor's conversation with every
// registered student, most recently messaged first. Students without
// messages sort last; ties keep registration order.
func (r *Ranking) RankForInstructor(instructorID string) []StudentSummary {
	summaries := lo.Map(r.directory.Students(), func(student domain.Participant, _ int) StudentSummary {
		messages := r.store.Get(student.ID, instructorID)

		summary := StudentSummary{
			Student:  student,
			IsOnline: r.presence.IsOnline(student.ID),
			IsTyping: r.presence.IsTyping(student.ID),
			UnreadCount: lo.CountBy(messages, func(m domain.Message) bool {
				return m.SenderID == student.ID && m.Status != domain.StatusRead
			}),
		}
		if len(messages) > 0 {
			last := messages[len(messages)-1]
			summary.LastMessageText = last.Text
			summary.LastMessageTime = last.CreatedAt
		}
		return summary
	})

	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := summaries[i].LastMessageTime, summaries[j].LastMessageTime
		if a.IsZero() || b.IsZero() {
			return !a.IsZero() && b.IsZero()
		}
		return a.After(b)
	})
	return summaries
}
