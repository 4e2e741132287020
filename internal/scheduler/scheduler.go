package scheduler

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/example/mlcoursebot/pkg/models"
)

// Окно отправки напоминаний по умолчанию
const (
	DefaultReminderStartHour = 9
	DefaultReminderEndHour   = 21
)

// Notifier interface for sending reminder messages
type Notifier interface {
	SendReminder(telegramID int64) error
}

// UserSource supplies the users who are due for a reminder
type UserSource interface {
	GetInactiveSince(ctx context.Context, cutoff time.Time, lastLesson int) ([]models.User, error)
}

// Scheduler nudges users who stopped in the middle of the course
type Scheduler struct {
	scheduler  *gocron.Scheduler
	notifier   Notifier
	users      UserSource
	lastLesson int
	after      time.Duration
}

// New creates a new scheduler instance
func New(notifier Notifier, users UserSource, lastLesson int, after time.Duration) *Scheduler {
	return &Scheduler{
		scheduler:  gocron.NewScheduler(time.UTC),
		notifier:   notifier,
		users:      users,
		lastLesson: lastLesson,
		after:      after,
	}
}

// Start begins running all scheduled tasks
func (s *Scheduler) Start() {
	s.scheduler.Every(1).Hour().Do(s.checkAndRemind)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// checkAndRemind sends a nudge to everyone inactive for longer than the
// configured duration who has not finished the course
func (s *Scheduler) checkAndRemind() {
	currentHour := time.Now().Hour()

	startHour := DefaultReminderStartHour
	endHour := DefaultReminderEndHour

	// Окно можно переопределить переменными окружения
	if v := os.Getenv("REMINDER_START_HOUR"); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h >= 0 && h <= 23 {
			startHour = h
		}
	}
	if v := os.Getenv("REMINDER_END_HOUR"); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h >= 0 && h <= 23 {
			endHour = h
		}
	}

	if currentHour < startHour || currentHour > endHour {
		return
	}

	cutoff := time.Now().Add(-s.after)
	users, err := s.users.GetInactiveSince(context.Background(), cutoff, s.lastLesson)
	if err != nil {
		log.Printf("Error getting inactive users: %v", err)
		return
	}

	for _, user := range users {
		if err := s.notifier.SendReminder(user.TelegramID); err != nil {
			log.Printf("Error sending reminder to user %d: %v", user.TelegramID, err)
		}
	}
}
