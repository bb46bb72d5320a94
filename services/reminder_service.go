package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/kennyonsig/FeedingMyBaby/content"
	"github.com/kennyonsig/FeedingMyBaby/models"
	"github.com/kennyonsig/FeedingMyBaby/utils"
)

// Notifier delivers reminder texts to a chat. The bot implements it; tests
// substitute a recorder.
type Notifier interface {
	SendReminder(chatID int64, text string) error
}

// ReminderService owns the reminder poll loop. Reminders become due when
// their next_at date is reached; delivery does not advance the schedule,
// recording a measurement does.
type ReminderService struct {
	db       *gorm.DB
	loc      *time.Location
	now      func() time.Time
	notifier Notifier
	poll     time.Duration
	retry    time.Duration
	logger   *log.Logger
}

// ReminderOption tweaks a ReminderService.
type ReminderOption func(*ReminderService)

// WithReminderLogger overrides the loop's logger.
func WithReminderLogger(l *log.Logger) ReminderOption {
	return func(s *ReminderService) { s.logger = l }
}

func NewReminderService(
	db *gorm.DB,
	loc *time.Location,
	notifier Notifier,
	poll, retry time.Duration,
	opts ...ReminderOption,
) *ReminderService {
	s := &ReminderService{
		db:       db,
		loc:      loc,
		now:      time.Now,
		notifier: notifier,
		poll:     poll,
		retry:    retry,
		logger:   log.New(log.Writer(), "[remind] ", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DueReminder pairs a due reminder row with its child profile.
type DueReminder struct {
	Reminder models.Reminder
	Child    models.Child
}

// Due returns the active reminders whose date has arrived, with their
// children attached. Rows whose child no longer exists are skipped.
func (s *ReminderService) Due() ([]DueReminder, error) {
	_, tomorrow := dayWindow(s.now(), s.loc)

	var rows []models.Reminder
	err := s.db.Where("next_at < ? AND active = ?", tomorrow, true).
		Order("chat_id, id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	childIDs := make([]uint, 0, len(rows))
	for _, r := range rows {
		childIDs = append(childIDs, r.ChildID)
	}
	var children []models.Child
	if err := s.db.Where("id IN ?", childIDs).Find(&children).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Child, len(children))
	for _, c := range children {
		byID[c.ID] = c
	}

	out := make([]DueReminder, 0, len(rows))
	for _, r := range rows {
		child, ok := byID[r.ChildID]
		if !ok {
			continue
		}
		out = append(out, DueReminder{Reminder: r, Child: child})
	}
	return out, nil
}

// Run polls for due reminders until the context is canceled. A failed
// check retries sooner than the regular interval.
func (s *ReminderService) Run(ctx context.Context) {
	s.logger.Printf("reminder loop started, polling every %s", s.poll)
	for {
		delay := s.poll
		if err := s.process(); err != nil {
			s.logger.Printf("reminder check failed: %v", err)
			delay = s.retry
		}

		select {
		case <-ctx.Done():
			s.logger.Printf("reminder loop stopped: %v", ctx.Err())
			return
		case <-time.After(delay):
		}
	}
}

// process sends one message per chat with due reminders. Delivery failures
// are logged and skipped so a chat that blocked the bot does not stall the
// rest.
func (s *ReminderService) process() error {
	due, err := s.Due()
	if err != nil {
		return err
	}

	seen := make(map[int64]bool)
	for _, d := range due {
		if seen[d.Reminder.ChatID] {
			continue
		}
		seen[d.Reminder.ChatID] = true

		text := s.composeText(d.Child)
		if err := s.notifier.SendReminder(d.Reminder.ChatID, text); err != nil {
			s.logger.Printf("send to chat %d failed: %v", d.Reminder.ChatID, err)
			continue
		}
	}
	return nil
}

func (s *ReminderService) composeText(child models.Child) string {
	ageDays := utils.AgeInDays(child.BirthDate, s.now().In(s.loc))
	return fmt.Sprintf(
		"🔔 Напоминание для %s\n\n"+
			"Пора измерить параметры развития ребенка!\n"+
			"📅 Возраст: %d %s\n"+
			"📋 Рекомендуемая частота: %s\n\n"+
			"Используйте кнопку '📊 Параметры' для внесения данных.",
		child.FirstName,
		ageDays, utils.PluralRu(ageDays, "день", "дня", "дней"),
		content.MeasurementFrequency(ageDays),
	)
}
