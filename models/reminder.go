package models

import "time"

// ReminderWeightHeight nags parents to record fresh measurements.
const ReminderWeightHeight = "weight_height"

// Reminder is a recurring nudge. NextAt is a calendar day in the bot's
// timezone; the daily poll delivers every active reminder whose NextAt is
// not in the future. Delivery does not advance NextAt — recording a
// measurement does, by the reminder's own frequency.
type Reminder struct {
	ID            uint      `gorm:"primaryKey"`
	ChatID        int64     `gorm:"index;not null"`
	ChildID       uint      `gorm:"index;not null"`
	Type          string    `gorm:"size:32;not null"`
	NextAt        time.Time `gorm:"not null"`
	FrequencyDays int       `gorm:"not null"`
	Active        bool      `gorm:"default:true"`
}
