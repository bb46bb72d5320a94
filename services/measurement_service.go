package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/kennyonsig/FeedingMyBaby/models"
	"github.com/kennyonsig/FeedingMyBaby/utils"
)

// MeasurementService records weight/height measurements and keeps the
// measurement reminders moving: every saved measurement pushes each active
// reminder to today plus its own frequency.
type MeasurementService struct {
	db  *gorm.DB
	loc *time.Location
	now func() time.Time
}

func NewMeasurementService(db *gorm.DB, loc *time.Location) *MeasurementService {
	return &MeasurementService{db: db, loc: loc, now: time.Now}
}

// Add stores a measurement for the child and advances the reminder
// schedule in the same transaction.
func (s *MeasurementService) Add(childID uint, weightGrams float64, heightCM int) (*models.Measurement, error) {
	var child models.Child
	if err := s.db.First(&child, childID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChildNotFound
		}
		return nil, err
	}

	now := s.now()
	today := dayStart(now, s.loc)
	m := models.Measurement{
		ChildID:    childID,
		Weight:     weightGrams,
		Height:     heightCM,
		MeasuredOn: today,
		AgeDays:    utils.AgeInDays(child.BirthDate, now.In(s.loc)),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}

		var reminders []models.Reminder
		if err := tx.Where("child_id = ? AND type = ? AND active = ?",
			childID, models.ReminderWeightHeight, true).
			Find(&reminders).Error; err != nil {
			return err
		}
		for i := range reminders {
			next := today.AddDate(0, 0, reminders[i].FrequencyDays)
			if err := tx.Model(&reminders[i]).Update("next_at", next).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Last returns the most recent measurement, or nil when none exist.
func (s *MeasurementService) Last(childID uint) (*models.Measurement, error) {
	var m models.Measurement
	err := s.db.Where("child_id = ?", childID).
		Order("measured_on DESC, recorded_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// Recent returns the latest measurements, newest first.
func (s *MeasurementService) Recent(childID uint, limit int) ([]models.Measurement, error) {
	if limit <= 0 {
		limit = 5
	}
	var rows []models.Measurement
	err := s.db.Where("child_id = ?", childID).
		Order("measured_on DESC, recorded_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
