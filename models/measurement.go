package models

import "time"

// Measurement is a weight/height checkpoint. AgeDays is computed at insert
// time so history renders without re-deriving it from the birth date.
type Measurement struct {
	ID         uint      `gorm:"primaryKey"`
	ChildID    uint      `gorm:"index;not null"`
	Weight     float64   `gorm:"not null"` // grams
	Height     int       `gorm:"not null"` // cm
	MeasuredOn time.Time `gorm:"index;not null"` // calendar day
	AgeDays    int
	RecordedAt time.Time `gorm:"autoCreateTime"`
}
