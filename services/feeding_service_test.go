package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kennyonsig/FeedingMyBaby/models"
)

func newFeedingFixture(t *testing.T) (*FeedingService, *models.Child, *time.Time) {
	t.Helper()

	db := newTestDB(t)
	child := testChild(t, db, 300, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	svc := NewFeedingService(db, time.UTC)
	now := time.Date(2025, 4, 10, 9, 0, 0, 0, time.UTC)
	clock := &now
	svc.now = func() time.Time { return *clock }
	return svc, child, clock
}

func TestFeedingStart(t *testing.T) {
	svc, child, _ := newFeedingFixture(t)

	f, err := svc.Start(300, child.ID)
	require.NoError(t, err)
	assert.Nil(t, f.EndTime)
	assert.Zero(t, f.EatenML)

	active, err := svc.Active(300)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, f.ID, active.ID)

	_, err = svc.Start(300, child.ID)
	assert.ErrorIs(t, err, ErrFeedingActive)
}

func TestFeedingAddEaten(t *testing.T) {
	svc, child, _ := newFeedingFixture(t)

	_, err := svc.AddEaten(300, 50)
	assert.ErrorIs(t, err, ErrNoActiveFeeding)

	_, err = svc.Start(300, child.ID)
	require.NoError(t, err)

	f, err := svc.AddEaten(300, 30)
	require.NoError(t, err)
	assert.Equal(t, 30, f.EatenML)

	f, err = svc.AddEaten(300, 50)
	require.NoError(t, err)
	assert.Equal(t, 80, f.EatenML)

	_, err = svc.AddEaten(300, 0)
	assert.ErrorIs(t, err, ErrVolumeOutOfRange)
	_, err = svc.AddEaten(300, 501)
	assert.ErrorIs(t, err, ErrVolumeOutOfRange)

	// out-of-range input must not touch the total
	active, err := svc.Active(300)
	require.NoError(t, err)
	assert.Equal(t, 80, active.EatenML)
}

func TestFeedingPauseResumeFinish(t *testing.T) {
	svc, child, clock := newFeedingFixture(t)
	start := *clock

	_, err := svc.Start(300, child.ID)
	require.NoError(t, err)

	*clock = start.Add(10 * time.Minute)
	f, err := svc.Pause(300)
	require.NoError(t, err)
	assert.True(t, f.Paused)
	assert.Equal(t, 1, f.PauseCount)

	*clock = start.Add(15 * time.Minute)
	f, err = svc.Resume(300)
	require.NoError(t, err)
	assert.False(t, f.Paused)
	assert.Equal(t, 300, f.PauseSeconds)

	*clock = start.Add(30 * time.Minute)
	f, err = svc.Finish(300)
	require.NoError(t, err)
	require.NotNil(t, f.EndTime)
	assert.Equal(t, 25*time.Minute, f.Duration(*f.EndTime))

	active, err := svc.Active(300)
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestFeedingFinishWhilePaused(t *testing.T) {
	svc, child, clock := newFeedingFixture(t)
	start := *clock

	_, err := svc.Start(300, child.ID)
	require.NoError(t, err)

	*clock = start.Add(20 * time.Minute)
	_, err = svc.Pause(300)
	require.NoError(t, err)

	// finishing with the pause still open folds it into the total
	*clock = start.Add(35 * time.Minute)
	f, err := svc.Finish(300)
	require.NoError(t, err)
	assert.Equal(t, 15*60, f.PauseSeconds)
	assert.Equal(t, 20*time.Minute, f.Duration(*f.EndTime))
}

func TestFeedingCancel(t *testing.T) {
	svc, child, _ := newFeedingFixture(t)

	assert.ErrorIs(t, svc.Cancel(300), ErrNoActiveFeeding)

	_, err := svc.Start(300, child.ID)
	require.NoError(t, err)
	_, err = svc.AddEaten(300, 50)
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(300))

	active, err := svc.Active(300)
	require.NoError(t, err)
	assert.Nil(t, active)

	// canceled feedings leave no trace in the day totals
	totals, err := svc.TodayTotals(child.ID)
	require.NoError(t, err)
	assert.Zero(t, totals.Count)
}

func TestFeedingResetActive(t *testing.T) {
	svc, child, _ := newFeedingFixture(t)

	n, err := svc.ResetActive(300)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	_, err = svc.Start(300, child.ID)
	require.NoError(t, err)

	n, err = svc.ResetActive(300)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	active, err := svc.Active(300)
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestFeedingTodayTotalsAndList(t *testing.T) {
	svc, child, clock := newFeedingFixture(t)
	base := *clock

	// two completed feedings
	for i, ml := range []int{60, 90} {
		*clock = base.Add(time.Duration(i) * 2 * time.Hour)
		_, err := svc.Start(300, child.ID)
		require.NoError(t, err)
		_, err = svc.AddEaten(300, ml)
		require.NoError(t, err)
		*clock = clock.Add(20 * time.Minute)
		_, err = svc.Finish(300)
		require.NoError(t, err)
	}

	// one still open
	*clock = base.Add(5 * time.Hour)
	_, err := svc.Start(300, child.ID)
	require.NoError(t, err)
	_, err = svc.AddEaten(300, 10)
	require.NoError(t, err)

	totals, err := svc.TodayTotals(child.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, totals.Count) // open feeding counts too
	assert.Equal(t, 160, totals.TotalML)

	list, err := svc.TodayList(child.ID)
	require.NoError(t, err)
	require.Len(t, list, 2) // completed only
	assert.Equal(t, 60, list[0].EatenML)
	assert.Equal(t, 90, list[1].EatenML)
	assert.True(t, list[0].StartTime.Before(list[1].StartTime))
}

func TestFeedingWeekTotals(t *testing.T) {
	svc, child, clock := newFeedingFixture(t)
	base := *clock

	feedAt := func(offset time.Duration, ml int) {
		*clock = base.Add(offset)
		_, err := svc.Start(300, child.ID)
		require.NoError(t, err)
		_, err = svc.AddEaten(300, ml)
		require.NoError(t, err)
		*clock = clock.Add(15 * time.Minute)
		_, err = svc.Finish(300)
		require.NoError(t, err)
	}

	feedAt(-8*24*time.Hour, 999) // too old, outside the window
	feedAt(-2*24*time.Hour, 70)
	feedAt(-2*24*time.Hour+3*time.Hour, 80)
	feedAt(0, 100)

	*clock = base
	week, err := svc.WeekTotals(child.ID)
	require.NoError(t, err)
	require.Len(t, week, 2)

	// most recent day first
	assert.Equal(t, 1, week[0].Count)
	assert.Equal(t, 100, week[0].TotalML)
	assert.Equal(t, 2, week[1].Count)
	assert.Equal(t, 150, week[1].TotalML)
	assert.True(t, week[0].Day.After(week[1].Day))
}
