package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kennyonsig/FeedingMyBaby/models"
)

// newTestDB opens a fresh in-memory store with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Child{},
		&models.Feeding{},
		&models.SleepSession{},
		&models.WakeSession{},
		&models.DiaperChange{},
		&models.JournalNote{},
		&models.Measurement{},
		&models.Reminder{},
	))
	return db
}

// testChild inserts a child row and returns it.
func testChild(t *testing.T, db *gorm.DB, chatID int64, birth time.Time) *models.Child {
	t.Helper()

	child := models.Child{
		ChatID:         chatID,
		FirstName:      "Маша",
		Gender:         "f",
		BirthDate:      birth,
		GestationWeeks: 39,
		GestationDays:  3,
		BirthWeight:    3300,
		BirthHeight:    51,
	}
	require.NoError(t, db.Create(&child).Error)
	return &child
}
