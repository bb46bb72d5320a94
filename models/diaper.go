package models

import "time"

// DiaperKind is what the change contained.
type DiaperKind string

const (
	DiaperWet   DiaperKind = "urine"
	DiaperStool DiaperKind = "stool"
	DiaperBoth  DiaperKind = "both"
)

// Label returns the user-facing Russian name of the kind.
func (k DiaperKind) Label() string {
	switch k {
	case DiaperWet:
		return "мочеиспускание"
	case DiaperStool:
		return "стул"
	case DiaperBoth:
		return "оба"
	}
	return string(k)
}

// Emoji returns the marker the menus use for the kind.
func (k DiaperKind) Emoji() string {
	switch k {
	case DiaperWet:
		return "💦"
	case DiaperStool:
		return "💩"
	case DiaperBoth:
		return "💦💩"
	}
	return "🩲"
}

// DiaperChange is a single logged change.
type DiaperChange struct {
	ID         uint       `gorm:"primaryKey"`
	ChildID    uint       `gorm:"index;not null"`
	Kind       DiaperKind `gorm:"size:10;not null"`
	HappenedAt time.Time  `gorm:"index;not null"`
	Note       string
}
