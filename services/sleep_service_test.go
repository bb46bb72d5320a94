package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kennyonsig/FeedingMyBaby/models"
)

func newSleepFixture(t *testing.T) (*SleepService, *models.Child, *time.Time) {
	t.Helper()

	db := newTestDB(t)
	child := testChild(t, db, 400, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))

	svc := NewSleepService(db, time.UTC)
	now := time.Date(2025, 4, 10, 21, 0, 0, 0, time.UTC)
	clock := &now
	svc.now = func() time.Time { return *clock }
	return svc, child, clock
}

func TestSleepLifecycle(t *testing.T) {
	svc, child, clock := newSleepFixture(t)
	start := *clock

	_, err := svc.EndSleep(child.ID)
	assert.ErrorIs(t, err, ErrNoActiveSleep)

	sess, err := svc.StartSleep(child.ID)
	require.NoError(t, err)
	assert.Nil(t, sess.EndedAt)

	_, err = svc.StartSleep(child.ID)
	assert.ErrorIs(t, err, ErrSleepActive)

	*clock = start.Add(90 * time.Minute)
	sess, err = svc.EndSleep(child.ID)
	require.NoError(t, err)
	require.NotNil(t, sess.DurationMinutes)
	assert.Equal(t, 90, *sess.DurationMinutes)

	active, err := svc.ActiveSleep(child.ID)
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestStartSleepClosesOpenWake(t *testing.T) {
	svc, child, clock := newSleepFixture(t)
	start := *clock

	_, err := svc.StartWake(child.ID)
	require.NoError(t, err)

	*clock = start.Add(2 * time.Hour)
	_, err = svc.StartSleep(child.ID)
	require.NoError(t, err)

	wake, err := svc.ActiveWake(child.ID)
	require.NoError(t, err)
	assert.Nil(t, wake)

	totals, err := svc.TodayWakeTotals(child.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, totals.Count)
	assert.Equal(t, 120, totals.TotalMinutes)
}

func TestStartWakeClosesOpenSleep(t *testing.T) {
	svc, child, clock := newSleepFixture(t)
	start := *clock

	_, err := svc.StartSleep(child.ID)
	require.NoError(t, err)

	*clock = start.Add(45 * time.Minute)
	_, err = svc.StartWake(child.ID)
	require.NoError(t, err)

	_, err = svc.StartWake(child.ID)
	assert.ErrorIs(t, err, ErrWakeActive)

	sleep, err := svc.ActiveSleep(child.ID)
	require.NoError(t, err)
	assert.Nil(t, sleep)

	totals, err := svc.TodaySleepTotals(child.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, totals.Count)
	assert.Equal(t, 45, totals.TotalMinutes)
}

func TestTodaySleepTotals(t *testing.T) {
	svc, child, clock := newSleepFixture(t)
	base := time.Date(2025, 4, 10, 8, 0, 0, 0, time.UTC)

	sleepFor := func(at time.Time, d time.Duration) {
		*clock = at
		_, err := svc.StartSleep(child.ID)
		require.NoError(t, err)
		*clock = at.Add(d)
		_, err = svc.EndSleep(child.ID)
		require.NoError(t, err)
	}

	sleepFor(base, time.Hour)
	sleepFor(base.Add(3*time.Hour), 30*time.Minute)

	// open interval is not counted
	*clock = base.Add(12 * time.Hour)
	_, err := svc.StartSleep(child.ID)
	require.NoError(t, err)

	*clock = base.Add(13 * time.Hour)
	totals, err := svc.TodaySleepTotals(child.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, totals.Count)
	assert.Equal(t, 90, totals.TotalMinutes)
	assert.Equal(t, 45, totals.AvgMinutes)

	empty, err := svc.TodayWakeTotals(child.ID)
	require.NoError(t, err)
	assert.Zero(t, empty.Count)
	assert.Zero(t, empty.AvgMinutes)
}
