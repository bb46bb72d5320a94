package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/kennyonsig/FeedingMyBaby/models"
)

// recentWindow is how far back a change still counts as "recent" in the
// daily summary.
const recentWindow = 3 * time.Hour

// DiaperService records diaper changes and summarizes them per day.
type DiaperService struct {
	db  *gorm.DB
	loc *time.Location
	now func() time.Time
}

func NewDiaperService(db *gorm.DB, loc *time.Location) *DiaperService {
	return &DiaperService{db: db, loc: loc, now: time.Now}
}

// Log records a diaper change of the given kind at the current time.
func (s *DiaperService) Log(childID uint, kind models.DiaperKind) (*models.DiaperChange, error) {
	c := models.DiaperChange{
		ChildID:    childID,
		Kind:       kind,
		HappenedAt: s.now(),
	}
	if err := s.db.Create(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// DiaperKindCount is the per-kind slice of the daily summary.
type DiaperKindCount struct {
	Kind   models.DiaperKind
	Count  int
	Recent int // within the last three hours
}

// TodayCounts folds today's changes into per-kind counts, in a fixed kind
// order, plus the day total.
func (s *DiaperService) TodayCounts(childID uint) ([]DiaperKindCount, int, error) {
	now := s.now()
	start, end := dayWindow(now, s.loc)

	var rows []models.DiaperChange
	err := s.db.Where("child_id = ? AND happened_at >= ? AND happened_at < ?", childID, start, end).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	recentCutoff := now.Add(-recentWindow)
	byKind := make(map[models.DiaperKind]*DiaperKindCount)
	for _, r := range rows {
		c, ok := byKind[r.Kind]
		if !ok {
			c = &DiaperKindCount{Kind: r.Kind}
			byKind[r.Kind] = c
		}
		c.Count++
		if r.HappenedAt.After(recentCutoff) {
			c.Recent++
		}
	}

	var out []DiaperKindCount
	for _, kind := range []models.DiaperKind{models.DiaperWet, models.DiaperStool, models.DiaperBoth} {
		if c, ok := byKind[kind]; ok {
			out = append(out, *c)
		}
	}
	return out, len(rows), nil
}
