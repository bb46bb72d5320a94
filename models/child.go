package models

import "time"

// Child is the registered baby of a chat. One chat tracks one child; the
// chat id is the tenant key for every record in the database.
type Child struct {
	ID             uint  `gorm:"primaryKey"`
	ChatID         int64 `gorm:"uniqueIndex;not null"`
	FirstName      string
	LastName       string
	Gender         string    `gorm:"size:1"` // "m" | "f"
	BirthDate      time.Time `gorm:"not null"`
	GestationWeeks int
	GestationDays  int
	BirthWeight    float64 // grams
	BirthHeight    int     // cm
	RegisteredAt   time.Time `gorm:"autoCreateTime"`
}

// FullName joins first and last name, skipping an empty last name.
func (c *Child) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// GenderLabel returns the display name for the stored gender code.
func (c *Child) GenderLabel() string {
	switch c.Gender {
	case "m":
		return "мальчик"
	case "f":
		return "девочка"
	}
	return c.Gender
}
