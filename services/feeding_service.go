package services

import (
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/kennyonsig/FeedingMyBaby/models"
)

// Single-feeding volume bounds for eaten and prepared amounts.
const (
	MinVolumeML = 1
	MaxVolumeML = 500
)

// FeedingService owns the feeding lifecycle. A chat has at most one open
// feeding at a time.
type FeedingService struct {
	db  *gorm.DB
	loc *time.Location
	now func() time.Time
}

func NewFeedingService(db *gorm.DB, loc *time.Location) *FeedingService {
	return &FeedingService{db: db, loc: loc, now: time.Now}
}

// Active returns the open feeding for the chat, or nil when there is none.
func (s *FeedingService) Active(chatID int64) (*models.Feeding, error) {
	var f models.Feeding
	err := s.db.Where("chat_id = ? AND end_time IS NULL", chatID).
		Order("start_time DESC").
		First(&f).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

// Start opens a feeding for the chat. Fails with ErrFeedingActive when one
// is already open.
func (s *FeedingService) Start(chatID int64, childID uint) (*models.Feeding, error) {
	active, err := s.Active(chatID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, ErrFeedingActive
	}

	f := models.Feeding{
		ChatID:    chatID,
		ChildID:   childID,
		StartTime: s.now(),
	}
	if err := s.db.Create(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// AddEaten adds ml to the open feeding's eaten total.
func (s *FeedingService) AddEaten(chatID int64, ml int) (*models.Feeding, error) {
	if ml < MinVolumeML || ml > MaxVolumeML {
		return nil, ErrVolumeOutOfRange
	}

	f, err := s.Active(chatID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrNoActiveFeeding
	}

	f.EatenML += ml
	if err := s.db.Model(f).Update("eaten_ml", f.EatenML).Error; err != nil {
		return nil, err
	}
	return f, nil
}

// SetPrepared records how much was prepared for the open feeding.
func (s *FeedingService) SetPrepared(chatID int64, ml int) (*models.Feeding, error) {
	if ml < MinVolumeML || ml > MaxVolumeML {
		return nil, ErrVolumeOutOfRange
	}

	f, err := s.Active(chatID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrNoActiveFeeding
	}

	f.PreparedML = &ml
	if err := s.db.Model(f).Update("prepared_ml", ml).Error; err != nil {
		return nil, err
	}
	return f, nil
}

// Pause suspends the open feeding. Pausing an already paused feeding is a
// no-op.
func (s *FeedingService) Pause(chatID int64) (*models.Feeding, error) {
	f, err := s.Active(chatID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrNoActiveFeeding
	}
	if f.Paused {
		return f, nil
	}

	now := s.now()
	f.Paused = true
	f.PausedAt = &now
	f.PauseCount++
	err = s.db.Model(f).Updates(map[string]interface{}{
		"paused":      true,
		"paused_at":   now,
		"pause_count": f.PauseCount,
	}).Error
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Resume continues a paused feeding, folding the pause into the pause
// total. Resuming a feeding that is not paused is a no-op.
func (s *FeedingService) Resume(chatID int64) (*models.Feeding, error) {
	f, err := s.Active(chatID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrNoActiveFeeding
	}
	if !f.Paused || f.PausedAt == nil {
		return f, nil
	}

	f.PauseSeconds += int(s.now().Sub(*f.PausedAt).Seconds())
	f.Paused = false
	f.PausedAt = nil
	err = s.db.Model(f).Updates(map[string]interface{}{
		"paused":        false,
		"paused_at":     nil,
		"pause_seconds": f.PauseSeconds,
	}).Error
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Finish closes the open feeding. An unresolved pause is folded into the
// pause total first so the reported duration stays net of pauses.
func (s *FeedingService) Finish(chatID int64) (*models.Feeding, error) {
	f, err := s.Active(chatID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrNoActiveFeeding
	}

	now := s.now()
	if f.Paused && f.PausedAt != nil {
		f.PauseSeconds += int(now.Sub(*f.PausedAt).Seconds())
	}
	f.Paused = false
	f.PausedAt = nil
	f.EndTime = &now

	err = s.db.Model(f).Updates(map[string]interface{}{
		"end_time":      now,
		"paused":        false,
		"paused_at":     nil,
		"pause_seconds": f.PauseSeconds,
	}).Error
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Cancel discards the open feeding without keeping the record.
func (s *FeedingService) Cancel(chatID int64) error {
	f, err := s.Active(chatID)
	if err != nil {
		return err
	}
	if f == nil {
		return ErrNoActiveFeeding
	}
	return s.db.Delete(f).Error
}

// ResetActive deletes every open feeding for the chat and reports how many
// were removed. Recovery hatch for stuck sessions.
func (s *FeedingService) ResetActive(chatID int64) (int64, error) {
	res := s.db.Where("chat_id = ? AND end_time IS NULL", chatID).
		Delete(&models.Feeding{})
	return res.RowsAffected, res.Error
}

// FeedingTotals is a per-day feeding summary.
type FeedingTotals struct {
	Day     time.Time
	Count   int
	TotalML int
}

// TodayTotals counts today's feedings, open ones included, and sums the
// eaten volume.
func (s *FeedingService) TodayTotals(childID uint) (FeedingTotals, error) {
	start, end := dayWindow(s.now(), s.loc)

	var rows []models.Feeding
	err := s.db.Where("child_id = ? AND start_time >= ? AND start_time < ?", childID, start, end).
		Find(&rows).Error
	if err != nil {
		return FeedingTotals{}, err
	}

	t := FeedingTotals{Day: start, Count: len(rows)}
	for _, r := range rows {
		t.TotalML += r.EatenML
	}
	return t, nil
}

// TodayList returns today's completed feedings in start order.
func (s *FeedingService) TodayList(childID uint) ([]models.Feeding, error) {
	start, end := dayWindow(s.now(), s.loc)

	var rows []models.Feeding
	err := s.db.Where("child_id = ? AND start_time >= ? AND start_time < ? AND end_time IS NOT NULL",
		childID, start, end).
		Order("start_time ASC").
		Find(&rows).Error
	return rows, err
}

// WeekTotals folds the last seven days of feedings (today included) into
// per-day summaries, most recent day first. Days without feedings are
// omitted.
func (s *FeedingService) WeekTotals(childID uint) ([]FeedingTotals, error) {
	todayStart, end := dayWindow(s.now(), s.loc)
	from := todayStart.AddDate(0, 0, -6)

	var rows []models.Feeding
	err := s.db.Where("child_id = ? AND start_time >= ? AND start_time < ?", childID, from, end).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	byDay := make(map[time.Time]*FeedingTotals)
	for _, r := range rows {
		day := dayStart(r.StartTime, s.loc)
		t, ok := byDay[day]
		if !ok {
			t = &FeedingTotals{Day: day}
			byDay[day] = t
		}
		t.Count++
		t.TotalML += r.EatenML
	}

	out := make([]FeedingTotals, 0, len(byDay))
	for _, t := range byDay {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.After(out[j].Day) })
	return out, nil
}
