package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/kennyonsig/FeedingMyBaby/models"
)

// Config carries everything the process needs. It is built once in main and
// handed to the components that use it.
type Config struct {
	BotToken      string
	DBPath        string
	Timezone      string
	HTTPAddress   string
	WebhookURL    string // empty means long polling
	WebhookSecret string

	ReminderPollInterval  time.Duration
	ReminderRetryInterval time.Duration

	// Location resolved from Timezone. All "today" windows and rendered
	// clock times use it.
	Location *time.Location
}

// WebhookEndpoint is the full URL registered with Telegram: the public base
// plus the secret path segment. Only meaningful when WebhookURL is set.
func (c *Config) WebhookEndpoint() string {
	return strings.TrimRight(c.WebhookURL, "/") + "/telegram/webhook/" + c.WebhookSecret
}

// Load reads .env (when present) and the process environment. BOT_TOKEN is
// the one required value.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, relying on process environment")
	}

	cfg := &Config{
		BotToken:              os.Getenv("BOT_TOKEN"),
		DBPath:                getEnv("DB_PATH", "baby_tracker.db"),
		Timezone:              getEnv("TIMEZONE", "Europe/Moscow"),
		HTTPAddress:           getEnv("HTTP_ADDRESS", ":8080"),
		WebhookURL:            os.Getenv("WEBHOOK_URL"),
		WebhookSecret:         getEnv("WEBHOOK_SECRET", uuid.NewString()),
		ReminderPollInterval:  getDurationEnv("REMINDER_POLL_INTERVAL", 24*time.Hour),
		ReminderRetryInterval: getDurationEnv("REMINDER_RETRY_INTERVAL", time.Hour),
	}
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is not set")
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

// OpenDB opens (or creates) the SQLite file and migrates the schema. The
// pool is limited to a single connection: updates are processed one at a
// time and SQLite locks the whole file anyway.
func OpenDB(cfg *Config) (*gorm.DB, error) {
	dsn := cfg.DBPath
	if dsn != ":memory:" {
		dsn += "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", cfg.DBPath, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Child{},
		&models.Feeding{},
		&models.SleepSession{},
		&models.WakeSession{},
		&models.DiaperChange{},
		&models.JournalNote{},
		&models.Measurement{},
		&models.Reminder{},
	); err != nil {
		return nil, fmt.Errorf("auto-migrate failed: %w", err)
	}

	return db, nil
}
