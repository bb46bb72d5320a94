package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/kennyonsig/FeedingMyBaby/models"
)

// NoteService keeps the free-text journal.
type NoteService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewNoteService(db *gorm.DB) *NoteService {
	return &NoteService{db: db, now: time.Now}
}

// Add stores a journal note. Category is optional.
func (s *NoteService) Add(childID uint, text, category string) (*models.JournalNote, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyNote
	}

	n := models.JournalNote{
		ChildID:   childID,
		Text:      text,
		Category:  category,
		CreatedAt: s.now(),
	}
	if err := s.db.Create(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

// Recent returns the latest notes, newest first.
func (s *NoteService) Recent(childID uint, limit int) ([]models.JournalNote, error) {
	if limit <= 0 {
		limit = 5
	}
	var notes []models.JournalNote
	err := s.db.Where("child_id = ?", childID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notes).Error
	return notes, err
}
