package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/kennyonsig/FeedingMyBaby/models"
)

// ChildService owns child profiles and the measurement reminders seeded at
// registration.
type ChildService struct {
	db  *gorm.DB
	loc *time.Location
	now func() time.Time
}

func NewChildService(db *gorm.DB, loc *time.Location) *ChildService {
	return &ChildService{db: db, loc: loc, now: time.Now}
}

// RegistrationInput is the payload collected by the registration wizard.
type RegistrationInput struct {
	FirstName      string
	LastName       string
	Gender         string
	BirthDate      time.Time
	GestationWeeks int
	GestationDays  int
	BirthWeight    float64
	BirthHeight    int
}

// Register creates the child profile for the chat, or replaces it when the
// chat registers again, and seeds the measurement reminders (daily, weekly
// and monthly rows, all due today). Runs in one transaction.
func (s *ChildService) Register(chatID int64, in RegistrationInput) (*models.Child, error) {
	var child models.Child

	// map form so zero values (empty last name, gestation days 0) still
	// overwrite on re-registration
	attrs := map[string]interface{}{
		"first_name":      in.FirstName,
		"last_name":       in.LastName,
		"gender":          in.Gender,
		"birth_date":      in.BirthDate,
		"gestation_weeks": in.GestationWeeks,
		"gestation_days":  in.GestationDays,
		"birth_weight":    in.BirthWeight,
		"birth_height":    in.BirthHeight,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(models.Child{ChatID: chatID}).
			Assign(attrs).
			FirstOrCreate(&child).Error; err != nil {
			return err
		}

		// re-registration starts the reminder schedule over
		if err := tx.Where("chat_id = ? AND type = ?", chatID, models.ReminderWeightHeight).
			Delete(&models.Reminder{}).Error; err != nil {
			return err
		}

		today := dayStart(s.now(), s.loc)
		for _, freq := range []int{1, 7, 30} {
			r := models.Reminder{
				ChatID:        chatID,
				ChildID:       child.ID,
				Type:          models.ReminderWeightHeight,
				NextAt:        today,
				FrequencyDays: freq,
				Active:        true,
			}
			if err := tx.Create(&r).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &child, nil
}

// ByChat returns the child registered for the chat, or nil when there is
// none.
func (s *ChildService) ByChat(chatID int64) (*models.Child, error) {
	var child models.Child
	err := s.db.Where("chat_id = ?", chatID).First(&child).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &child, nil
}
