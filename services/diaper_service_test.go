package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kennyonsig/FeedingMyBaby/models"
)

func TestDiaperLogAndTodayCounts(t *testing.T) {
	db := newTestDB(t)
	child := testChild(t, db, 500, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	svc := NewDiaperService(db, time.UTC)
	now := time.Date(2025, 4, 10, 18, 0, 0, 0, time.UTC)
	clock := &now
	svc.now = func() time.Time { return *clock }

	logAt := func(at time.Time, kind models.DiaperKind) {
		*clock = at
		_, err := svc.Log(child.ID, kind)
		require.NoError(t, err)
	}

	base := time.Date(2025, 4, 10, 8, 0, 0, 0, time.UTC)
	logAt(base, models.DiaperWet)
	logAt(base.Add(2*time.Hour), models.DiaperWet)
	logAt(base.Add(4*time.Hour), models.DiaperStool)
	logAt(base.Add(9*time.Hour), models.DiaperBoth) // 17:00, inside the 3h window

	*clock = time.Date(2025, 4, 10, 18, 0, 0, 0, time.UTC)
	counts, total, err := svc.TodayCounts(child.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	require.Len(t, counts, 3)

	// fixed order: wet, stool, both
	assert.Equal(t, models.DiaperWet, counts[0].Kind)
	assert.Equal(t, 2, counts[0].Count)
	assert.Equal(t, 0, counts[0].Recent)

	assert.Equal(t, models.DiaperStool, counts[1].Kind)
	assert.Equal(t, 1, counts[1].Count)
	assert.Equal(t, 0, counts[1].Recent)

	assert.Equal(t, models.DiaperBoth, counts[2].Kind)
	assert.Equal(t, 1, counts[2].Count)
	assert.Equal(t, 1, counts[2].Recent)
}

func TestDiaperCountsExcludeOtherDays(t *testing.T) {
	db := newTestDB(t)
	child := testChild(t, db, 501, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	svc := NewDiaperService(db, time.UTC)
	now := time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)
	clock := &now
	svc.now = func() time.Time { return *clock }

	*clock = time.Date(2025, 4, 9, 23, 50, 0, 0, time.UTC)
	_, err := svc.Log(child.ID, models.DiaperWet)
	require.NoError(t, err)

	*clock = time.Date(2025, 4, 10, 0, 10, 0, 0, time.UTC)
	_, err = svc.Log(child.ID, models.DiaperStool)
	require.NoError(t, err)

	*clock = time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)
	counts, total, err := svc.TodayCounts(child.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, counts, 1)
	assert.Equal(t, models.DiaperStool, counts[0].Kind)
}
