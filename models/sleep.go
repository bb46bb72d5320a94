package models

import "time"

// SleepSession is one sleep interval. EndedAt nil marks the active session.
// Sleep and wakefulness are mutually exclusive per child: starting one
// closes the other.
type SleepSession struct {
	ID              uint      `gorm:"primaryKey"`
	ChildID         uint      `gorm:"index;not null"`
	StartedAt       time.Time `gorm:"index;not null"`
	EndedAt         *time.Time
	DurationMinutes *int // filled in when the session closes
	Note            string
}

// WakeSession mirrors SleepSession for wakefulness windows.
type WakeSession struct {
	ID              uint      `gorm:"primaryKey"`
	ChildID         uint      `gorm:"index;not null"`
	StartedAt       time.Time `gorm:"index;not null"`
	EndedAt         *time.Time
	DurationMinutes *int
	Note            string
}
