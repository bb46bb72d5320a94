package models

import "time"

// JournalNote is a free-text diary entry: temperature, mood, behaviour,
// anything the parent wants to remember.
type JournalNote struct {
	ID        uint   `gorm:"primaryKey"`
	ChildID   uint   `gorm:"index;not null"`
	Text      string `gorm:"type:text;not null"`
	Category  string
	CreatedAt time.Time
}
