package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kennyonsig/FeedingMyBaby/models"
)

func TestStatsOverview(t *testing.T) {
	db := newTestDB(t)
	child := testChild(t, db, 900, time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC))

	now := time.Date(2025, 4, 10, 8, 0, 0, 0, time.UTC)
	clock := &now
	nowFn := func() time.Time { return *clock }

	feedings := NewFeedingService(db, time.UTC)
	feedings.now = nowFn
	sleeps := NewSleepService(db, time.UTC)
	sleeps.now = nowFn
	diapers := NewDiaperService(db, time.UTC)
	diapers.now = nowFn
	measurements := NewMeasurementService(db, time.UTC)
	measurements.now = nowFn

	base := now

	// yesterday: one feeding
	*clock = base.AddDate(0, 0, -1)
	_, err := feedings.Start(900, child.ID)
	require.NoError(t, err)
	_, err = feedings.AddEaten(900, 120)
	require.NoError(t, err)
	*clock = clock.Add(25 * time.Minute)
	_, err = feedings.Finish(900)
	require.NoError(t, err)

	// today: one feeding, a nap, a wake stretch, two diapers, a measurement
	*clock = base
	_, err = feedings.Start(900, child.ID)
	require.NoError(t, err)
	_, err = feedings.AddEaten(900, 90)
	require.NoError(t, err)
	*clock = base.Add(20 * time.Minute)
	_, err = feedings.Finish(900)
	require.NoError(t, err)

	*clock = base.Add(time.Hour)
	_, err = sleeps.StartSleep(child.ID)
	require.NoError(t, err)
	*clock = base.Add(2 * time.Hour)
	_, err = sleeps.StartWake(child.ID) // ends the nap
	require.NoError(t, err)
	*clock = base.Add(3 * time.Hour)
	_, err = sleeps.EndWake(child.ID)
	require.NoError(t, err)

	*clock = base.Add(90 * time.Minute)
	_, err = diapers.Log(child.ID, models.DiaperWet)
	require.NoError(t, err)
	_, err = diapers.Log(child.ID, models.DiaperStool)
	require.NoError(t, err)

	*clock = base.Add(4 * time.Hour)
	_, err = measurements.Add(child.ID, 5600, 59)
	require.NoError(t, err)

	stats := NewStatsService(feedings, sleeps, diapers, measurements)
	o, err := stats.Overview(child.ID)
	require.NoError(t, err)

	require.Len(t, o.TodayFeedings, 1)
	assert.Equal(t, 90, o.TodayFeedings[0].EatenML)
	assert.Equal(t, 1, o.TodayTotals.Count)
	assert.Equal(t, 90, o.TodayTotals.TotalML)

	require.Len(t, o.Week, 2)
	assert.Equal(t, 90, o.Week[0].TotalML)
	assert.Equal(t, 120, o.Week[1].TotalML)

	require.Len(t, o.Measurements, 1)
	assert.InDelta(t, 5600, o.Measurements[0].Weight, 0.001)

	assert.Equal(t, 1, o.Sleep.Count)
	assert.Equal(t, 60, o.Sleep.TotalMinutes)
	assert.Equal(t, 1, o.Wake.Count)
	assert.Equal(t, 60, o.Wake.TotalMinutes)

	assert.Equal(t, 2, o.DiaperTotal)
	require.Len(t, o.Diapers, 2)
	assert.Equal(t, models.DiaperWet, o.Diapers[0].Kind)
	assert.Equal(t, models.DiaperStool, o.Diapers[1].Kind)
}
