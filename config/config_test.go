package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kennyonsig/FeedingMyBaby/models"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("DB_PATH", "")
	t.Setenv("TIMEZONE", "")
	t.Setenv("HTTP_ADDRESS", "")
	t.Setenv("REMINDER_POLL_INTERVAL", "")
	t.Setenv("REMINDER_RETRY_INTERVAL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.BotToken)
	assert.Equal(t, "baby_tracker.db", cfg.DBPath)
	assert.Equal(t, "Europe/Moscow", cfg.Timezone)
	assert.Equal(t, ":8080", cfg.HTTPAddress)
	assert.Equal(t, 24*time.Hour, cfg.ReminderPollInterval)
	assert.Equal(t, time.Hour, cfg.ReminderRetryInterval)
	assert.NotEmpty(t, cfg.WebhookSecret)
	require.NotNil(t, cfg.Location)
	assert.Equal(t, "Europe/Moscow", cfg.Location.String())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("DB_PATH", "/tmp/test.db")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("REMINDER_POLL_INTERVAL", "30m")
	t.Setenv("WEBHOOK_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, 30*time.Minute, cfg.ReminderPollInterval)
	assert.Equal(t, "s3cret", cfg.WebhookSecret)
}

func TestLoadMissingToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadBadTimezone(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("TIMEZONE", "Mars/Olympus")

	_, err := Load()
	assert.Error(t, err)
}

func TestOpenDBMigrates(t *testing.T) {
	cfg := &Config{DBPath: ":memory:"}

	db, err := OpenDB(cfg)
	require.NoError(t, err)

	child := models.Child{ChatID: 42, FirstName: "Тест", BirthDate: time.Now()}
	require.NoError(t, db.Create(&child).Error)

	var got models.Child
	require.NoError(t, db.First(&got, "chat_id = ?", int64(42)).Error)
	assert.Equal(t, "Тест", got.FirstName)
}
