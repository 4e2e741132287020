package scheduler

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/example/mlcoursebot/pkg/models"
)

type fakeNotifier struct {
	reminded []int64
	err      error
}

func (f *fakeNotifier) SendReminder(telegramID int64) error {
	f.reminded = append(f.reminded, telegramID)
	return f.err
}

type fakeUserSource struct {
	users  []models.User
	err    error
	cutoff time.Time
}

func (f *fakeUserSource) GetInactiveSince(_ context.Context, cutoff time.Time, _ int) ([]models.User, error) {
	f.cutoff = cutoff
	return f.users, f.err
}

func TestCheckAndRemindNotifiesInactiveUsers(t *testing.T) {
	t.Setenv("REMINDER_START_HOUR", "0")
	t.Setenv("REMINDER_END_HOUR", "23")

	notifier := &fakeNotifier{}
	source := &fakeUserSource{users: []models.User{
		{TelegramID: 11},
		{TelegramID: 22},
	}}

	s := New(notifier, source, 5, 24*time.Hour)
	s.checkAndRemind()

	assert.Equal(t, []int64{11, 22}, notifier.reminded)
	assert.WithinDuration(t, time.Now().Add(-24*time.Hour), source.cutoff, time.Minute)
}

func TestCheckAndRemindRespectsQuietHours(t *testing.T) {
	// Окно из одного часа, в которое текущий час заведомо не попадает
	closed := strconv.Itoa((time.Now().Hour() + 2) % 24)
	t.Setenv("REMINDER_START_HOUR", closed)
	t.Setenv("REMINDER_END_HOUR", closed)

	notifier := &fakeNotifier{}
	source := &fakeUserSource{users: []models.User{{TelegramID: 11}}}

	s := New(notifier, source, 5, 24*time.Hour)
	s.checkAndRemind()

	assert.Empty(t, notifier.reminded)
}

func TestCheckAndRemindContinuesAfterNotifyError(t *testing.T) {
	t.Setenv("REMINDER_START_HOUR", "0")
	t.Setenv("REMINDER_END_HOUR", "23")

	notifier := &fakeNotifier{err: errors.New("blocked by user")}
	source := &fakeUserSource{users: []models.User{
		{TelegramID: 11},
		{TelegramID: 22},
	}}

	s := New(notifier, source, 5, 24*time.Hour)
	s.checkAndRemind()

	// Ошибка доставки одному пользователю не останавливает рассылку
	assert.Equal(t, []int64{11, 22}, notifier.reminded)
}
