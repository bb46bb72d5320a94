package models

import "time"

// Feeding is one bottle-feeding interval. EndTime nil means the feeding is
// still running; at most one open feeding exists per chat.
type Feeding struct {
	ID        uint      `gorm:"primaryKey"`
	ChatID    int64     `gorm:"index;not null"`
	ChildID   uint      `gorm:"index;not null"`
	StartTime time.Time `gorm:"index;not null"`
	EndTime   *time.Time

	PreparedML *int // volume prepared up front, if the parent entered it
	EatenML    int  // accumulated while the feeding runs

	// Pause bookkeeping. The keyboard no longer exposes pause/resume, but
	// the columns survive and Finish still subtracts the paused time.
	Paused       bool
	PausedAt     *time.Time
	PauseCount   int
	PauseSeconds int
}

// Duration is the feeding's wall time minus accumulated pauses. For an open
// feeding it measures up to now.
func (f *Feeding) Duration(now time.Time) time.Duration {
	end := now
	if f.EndTime != nil {
		end = *f.EndTime
	}
	d := end.Sub(f.StartTime) - time.Duration(f.PauseSeconds)*time.Second
	if f.Paused && f.PausedAt != nil {
		d -= end.Sub(*f.PausedAt)
	}
	if d < 0 {
		return 0
	}
	return d
}
