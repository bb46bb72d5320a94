package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/kennyonsig/FeedingMyBaby/models"
)

// SleepService tracks sleep and wakefulness intervals for a child. The two
// are mutually exclusive: starting one closes an open interval of the
// other, and at most one interval of each kind is open at a time.
type SleepService struct {
	db  *gorm.DB
	loc *time.Location
	now func() time.Time
}

func NewSleepService(db *gorm.DB, loc *time.Location) *SleepService {
	return &SleepService{db: db, loc: loc, now: time.Now}
}

// IntervalTotals summarizes completed intervals of one kind for a day.
type IntervalTotals struct {
	Count        int
	TotalMinutes int
	AvgMinutes   int
}

// ActiveSleep returns the open sleep interval, or nil when there is none.
func (s *SleepService) ActiveSleep(childID uint) (*models.SleepSession, error) {
	var sess models.SleepSession
	err := s.db.Where("child_id = ? AND ended_at IS NULL", childID).
		Order("started_at DESC").
		First(&sess).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sess, nil
}

// ActiveWake returns the open wakefulness interval, or nil when there is
// none.
func (s *SleepService) ActiveWake(childID uint) (*models.WakeSession, error) {
	var sess models.WakeSession
	err := s.db.Where("child_id = ? AND ended_at IS NULL", childID).
		Order("started_at DESC").
		First(&sess).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sess, nil
}

// StartSleep opens a sleep interval, closing any open wakefulness first.
// Fails with ErrSleepActive when a sleep is already open.
func (s *SleepService) StartSleep(childID uint) (*models.SleepSession, error) {
	active, err := s.ActiveSleep(childID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, ErrSleepActive
	}

	var sess models.SleepSession
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.closeWake(tx, childID); err != nil {
			return err
		}
		sess = models.SleepSession{ChildID: childID, StartedAt: s.now()}
		return tx.Create(&sess).Error
	})
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

// EndSleep closes the open sleep interval and records its length.
func (s *SleepService) EndSleep(childID uint) (*models.SleepSession, error) {
	sess, err := s.ActiveSleep(childID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrNoActiveSleep
	}

	now := s.now()
	minutes := int(now.Sub(sess.StartedAt).Minutes())
	sess.EndedAt = &now
	sess.DurationMinutes = &minutes

	err = s.db.Model(sess).Updates(map[string]interface{}{
		"ended_at":         now,
		"duration_minutes": minutes,
	}).Error
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// StartWake opens a wakefulness interval, closing any open sleep first.
// Fails with ErrWakeActive when a wakefulness is already open.
func (s *SleepService) StartWake(childID uint) (*models.WakeSession, error) {
	active, err := s.ActiveWake(childID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, ErrWakeActive
	}

	var sess models.WakeSession
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.closeSleep(tx, childID); err != nil {
			return err
		}
		sess = models.WakeSession{ChildID: childID, StartedAt: s.now()}
		return tx.Create(&sess).Error
	})
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

// EndWake closes the open wakefulness interval and records its length.
func (s *SleepService) EndWake(childID uint) (*models.WakeSession, error) {
	sess, err := s.ActiveWake(childID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrNoActiveWake
	}

	now := s.now()
	minutes := int(now.Sub(sess.StartedAt).Minutes())
	sess.EndedAt = &now
	sess.DurationMinutes = &minutes

	err = s.db.Model(sess).Updates(map[string]interface{}{
		"ended_at":         now,
		"duration_minutes": minutes,
	}).Error
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// TodaySleepTotals summarizes today's completed sleep intervals.
func (s *SleepService) TodaySleepTotals(childID uint) (IntervalTotals, error) {
	var rows []models.SleepSession
	start, end := dayWindow(s.now(), s.loc)
	err := s.db.Where("child_id = ? AND started_at >= ? AND started_at < ? AND ended_at IS NOT NULL",
		childID, start, end).
		Find(&rows).Error
	if err != nil {
		return IntervalTotals{}, err
	}

	t := IntervalTotals{Count: len(rows)}
	for _, r := range rows {
		if r.DurationMinutes != nil {
			t.TotalMinutes += *r.DurationMinutes
		}
	}
	if t.Count > 0 {
		t.AvgMinutes = t.TotalMinutes / t.Count
	}
	return t, nil
}

// TodayWakeTotals summarizes today's completed wakefulness intervals.
func (s *SleepService) TodayWakeTotals(childID uint) (IntervalTotals, error) {
	var rows []models.WakeSession
	start, end := dayWindow(s.now(), s.loc)
	err := s.db.Where("child_id = ? AND started_at >= ? AND started_at < ? AND ended_at IS NOT NULL",
		childID, start, end).
		Find(&rows).Error
	if err != nil {
		return IntervalTotals{}, err
	}

	t := IntervalTotals{Count: len(rows)}
	for _, r := range rows {
		if r.DurationMinutes != nil {
			t.TotalMinutes += *r.DurationMinutes
		}
	}
	if t.Count > 0 {
		t.AvgMinutes = t.TotalMinutes / t.Count
	}
	return t, nil
}

// closeWake ends the open wakefulness interval inside tx, if any.
func (s *SleepService) closeWake(tx *gorm.DB, childID uint) error {
	var sess models.WakeSession
	err := tx.Where("child_id = ? AND ended_at IS NULL", childID).
		Order("started_at DESC").
		First(&sess).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	now := s.now()
	minutes := int(now.Sub(sess.StartedAt).Minutes())
	return tx.Model(&sess).Updates(map[string]interface{}{
		"ended_at":         now,
		"duration_minutes": minutes,
	}).Error
}

// closeSleep ends the open sleep interval inside tx, if any.
func (s *SleepService) closeSleep(tx *gorm.DB, childID uint) error {
	var sess models.SleepSession
	err := tx.Where("child_id = ? AND ended_at IS NULL", childID).
		Order("started_at DESC").
		First(&sess).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	now := s.now()
	minutes := int(now.Sub(sess.StartedAt).Minutes())
	return tx.Model(&sess).Updates(map[string]interface{}{
		"ended_at":         now,
		"duration_minutes": minutes,
	}).Error
}
