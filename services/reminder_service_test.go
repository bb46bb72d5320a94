package services

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kennyonsig/FeedingMyBaby/models"
)

type stubNotifier struct {
	sent map[int64][]string
	err  error
}

func newStubNotifier() *stubNotifier {
	return &stubNotifier{sent: make(map[int64][]string)}
}

func (s *stubNotifier) SendReminder(chatID int64, text string) error {
	if s.err != nil {
		return s.err
	}
	s.sent[chatID] = append(s.sent[chatID], text)
	return nil
}

func quietReminderLogger() ReminderOption {
	return WithReminderLogger(log.New(io.Discard, "", 0))
}

func newReminderFixture(t *testing.T, notifier Notifier) (*ReminderService, *ChildService) {
	t.Helper()

	db := newTestDB(t)
	now := time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)

	children := NewChildService(db, time.UTC)
	children.now = func() time.Time { return now }

	svc := NewReminderService(db, time.UTC, notifier, 24*time.Hour, time.Hour, quietReminderLogger())
	svc.now = func() time.Time { return now }
	return svc, children
}

func TestReminderDue(t *testing.T) {
	notifier := newStubNotifier()
	svc, children := newReminderFixture(t, notifier)

	child, err := children.Register(800, RegistrationInput{
		FirstName: "Оля",
		Gender:    "f",
		BirthDate: time.Date(2025, 3, 21, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	due, err := svc.Due()
	require.NoError(t, err)
	require.Len(t, due, 3) // freshly seeded rows are all due today
	for _, d := range due {
		assert.Equal(t, child.ID, d.Reminder.ChildID)
		assert.Equal(t, "Оля", d.Child.FirstName)
	}

	// pushing the dates forward empties the due list
	future := time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC)
	require.NoError(t, svc.db.Model(&models.Reminder{}).
		Where("child_id = ?", child.ID).
		Update("next_at", future).Error)

	due, err = svc.Due()
	require.NoError(t, err)
	assert.Empty(t, due)
}

func TestReminderDueSkipsInactive(t *testing.T) {
	notifier := newStubNotifier()
	svc, children := newReminderFixture(t, notifier)

	child, err := children.Register(801, RegistrationInput{
		FirstName: "Юра",
		Gender:    "m",
		BirthDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.NoError(t, svc.db.Model(&models.Reminder{}).
		Where("child_id = ?", child.ID).
		Update("active", false).Error)

	due, err := svc.Due()
	require.NoError(t, err)
	assert.Empty(t, due)
}

func TestReminderProcessSendsOnePerChat(t *testing.T) {
	notifier := newStubNotifier()
	svc, children := newReminderFixture(t, notifier)

	_, err := children.Register(802, RegistrationInput{
		FirstName: "Оля",
		Gender:    "f",
		BirthDate: time.Date(2025, 3, 21, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	_, err = children.Register(803, RegistrationInput{
		FirstName: "Юра",
		Gender:    "m",
		BirthDate: time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.NoError(t, svc.process())

	// three due rows per chat collapse into one message each
	require.Len(t, notifier.sent[802], 1)
	require.Len(t, notifier.sent[803], 1)

	msg := notifier.sent[802][0]
	assert.Contains(t, msg, "Оля")
	assert.Contains(t, msg, "Возраст: 20 дней")
	assert.Contains(t, msg, "еженедельно")

	assert.Contains(t, notifier.sent[803][0], "ежедневно")
}

func TestReminderProcessToleratesSendFailure(t *testing.T) {
	notifier := newStubNotifier()
	notifier.err = errors.New("blocked by user")
	svc, children := newReminderFixture(t, notifier)

	_, err := children.Register(804, RegistrationInput{
		FirstName: "Оля",
		Gender:    "f",
		BirthDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// delivery failures are logged, not returned
	assert.NoError(t, svc.process())
}

func TestReminderRunStopsOnCancel(t *testing.T) {
	notifier := newStubNotifier()
	svc, _ := newReminderFixture(t, notifier)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
