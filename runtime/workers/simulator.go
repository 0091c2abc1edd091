package workers

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"edu-chat/directory"
	"edu-chat/services"
)

// messageChance is the probability that a tick injects a message.
const messageChance = 0.1

var cannedPhrases = []string{
	"I have another question about the lesson",
	"Got it now, thank you!",
	"This part is a bit confusing",
	"Thanks for the explanation!",
}

// Simulator stands in for inbound student traffic during demos: on each
// tick it may inject one canned student message toward the instructor.
type Simulator struct {
	log          *slog.Logger
	service      services.IChatService
	directory    *directory.Directory
	instructorID string
	interval     time.Duration
	rng          *rand.Rand
}

func NewSimulator(log *slog.Logger, service services.IChatService,
	dir *directory.Directory, instructorID string, interval time.Duration) *Simulator {
	return &Simulator{
		log:          log,
		service:      service,
		directory:    dir,
		instructorID: instructorID,
		interval:     interval,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (w *Simulator) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case <-ticker.C:
			if w.rng.Float64() > messageChance {
				continue
			}
			students := w.directory.Students()
			if len(students) == 0 {
				continue
			}
			student := students[w.rng.Intn(len(students))]
			phrase := cannedPhrases[w.rng.Intn(len(cannedPhrases))]
			if _, err := w.service.SimulateIncoming(student.ID, w.instructorID, phrase); err != nil {
				w.log.Warn("Simulated message rejected", "student", student.ID, "err", err)
			}
		}
	}
}
