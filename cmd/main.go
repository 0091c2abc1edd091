package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"

	"edu-chat/bus"
	"edu-chat/directory"
	"edu-chat/domain"
	"edu-chat/ids"
	"edu-chat/moderation"
	"edu-chat/presence"
	"edu-chat/projection"
	"edu-chat/repositories"
	"edu-chat/runtime"
	"edu-chat/runtime/workers"
	"edu-chat/services"
	"edu-chat/sink"
)

const instructorID = "instructor_1"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component, seeds the demo roster and hands control to
// the signal-aware loop. Keeping the logic out of main ensures deferred
// cleanups execute before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Durable archive (BadgerDB + Bluge)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	writer, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("index opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing Bluge index...")
		_ = writer.Close()
	}()

	// 3. Engine assembly
	eventBus := bus.New()
	scheduler := runtime.NewTimerScheduler()

	roster := directory.New()
	if err := seedRoster(roster); err != nil {
		return fmt.Errorf("roster seeding failed: %w", err)
	}

	store := repositories.NewConversationStore(roster)
	lifecycle := runtime.NewMessageLifecycle(log, store, eventBus, scheduler,
		config.DeliveryDelay, config.ReadDelayMin, config.ReadDelayMax)
	tracker := presence.NewTracker(eventBus, scheduler, config.TypingExpiry)
	ranking := projection.NewRanking(roster, store, tracker)

	words, err := moderation.DefaultWords()
	if err != nil {
		return fmt.Errorf("blocklist loading failed: %w", err)
	}
	moderator, err := moderation.NewModerator(words, config.censorRune())
	if err != nil {
		return fmt.Errorf("moderator setup failed: %w", err)
	}

	service := services.NewChatService(log, roster, store, lifecycle, tracker,
		ranking, moderator, eventBus, ids.NewGenerator())

	// 4. Archive sink observes the bus, never feeds back
	archive := repositories.NewMessageArchive(db, writer, log, config.LimitHistory)
	sink.NewArchiveSink(archive, log).Attach(eventBus)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. Demo session & seeded traffic
	if err := service.Connect(instructorID, domain.RoleInstructor); err != nil {
		return fmt.Errorf("instructor connection failed: %w", err)
	}
	defer service.Disconnect()
	if err := seedConversations(service); err != nil {
		return fmt.Errorf("conversation seeding failed: %w", err)
	}

	// 7. Background student traffic under supervision
	simulator := workers.NewSimulator(log, service, roster, instructorID, config.SimulateEvery)
	supervisor := workers.NewSupervisor(log, config.RestartInterval)
	supervisor.Add(simulator)
	go supervisor.Run(ctx)

	// 8. Dashboard loop until shutdown
	ticker := time.NewTicker(config.DashboardEvery)
	defer ticker.Stop()

	log.Info("Chat engine started", "instructor", instructorID, "at", time.Now().UTC())
	for {
		select {
		case <-ctx.Done():
			log.Info("Shutting down gracefully...")
			supervisor.Stop()
			log.Info("Program stopped cleanly")
			return nil
		case <-ticker.C:
			summaries, err := service.RankForInstructor(instructorID)
			if err != nil {
				return err
			}
			renderDashboard(summaries)
		}
	}
}

// seedRoster registers the demo participants.
func seedRoster(roster *directory.Directory) error {
	participants := []domain.Participant{
		{ID: "student_1", Name: "Alice Martin", Role: domain.RoleStudent, Email: "alice@school.test"},
		{ID: "student_2", Name: "Bob Chen", Role: domain.RoleStudent, Email: "bob@school.test"},
		{ID: "student_3", Name: "Chloe Dubois", Role: domain.RoleStudent, Email: "chloe@school.test"},
		{ID: instructorID, Name: "Pr. Durand", Role: domain.RoleInstructor, Email: "durand@school.test"},
	}
	for _, p := range participants {
		if err := roster.Register(p); err != nil {
			return err
		}
	}
	return nil
}

// seedConversations injects a little history so the dashboard has
// something to rank on startup.
func seedConversations(service services.IChatService) error {
	if _, err := service.SimulateIncoming("student_1", instructorID, "Hello, I'm stuck on exercise 3"); err != nil {
		return err
	}
	if _, err := service.SimulateIncoming("student_2", instructorID, "Can we go over the last chapter?"); err != nil {
		return err
	}
	if _, err := service.SendMessage("student_1", "Sure, which step is blocking you?"); err != nil {
		return err
	}
	return nil
}

func renderDashboard(summaries []projection.StudentSummary) {
	header := color.New(color.BgBlack, color.FgGreen).Render("  Instructor dashboard  ")
	fmt.Println(header)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Student", "Online", "Typing", "Unread", "Last message", "At"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for _, s := range summaries {
		at := ""
		if !s.LastMessageTime.IsZero() {
			at = s.LastMessageTime.Format(time.TimeOnly)
		}
		table.Append([]string{
			s.Student.Name,
			onOff(s.IsOnline),
			onOff(s.IsTyping),
			fmt.Sprintf("%d", s.UnreadCount),
			s.LastMessageText,
			at,
		})
	}
	table.Render()
}

func onOff(b bool) string {
	if b {
		return color.Green.Render("yes")
	}
	return "no"
}
