package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kennyonsig/FeedingMyBaby/models"
)

func TestMeasurementAddAdvancesReminders(t *testing.T) {
	db := newTestDB(t)

	children := NewChildService(db, time.UTC)
	now := time.Date(2025, 4, 10, 11, 0, 0, 0, time.UTC)
	children.now = func() time.Time { return now }

	child, err := children.Register(700, RegistrationInput{
		FirstName: "Лев",
		Gender:    "m",
		BirthDate: time.Date(2025, 3, 21, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	svc := NewMeasurementService(db, time.UTC)
	svc.now = func() time.Time { return now }

	m, err := svc.Add(child.ID, 4200, 55)
	require.NoError(t, err)
	assert.Equal(t, 20, m.AgeDays)
	assert.InDelta(t, 4200, m.Weight, 0.001)
	assert.Equal(t, 55, m.Height)

	today := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	assert.True(t, m.MeasuredOn.Equal(today))

	var reminders []models.Reminder
	require.NoError(t, db.Where("child_id = ?", child.ID).Order("frequency_days").Find(&reminders).Error)
	require.Len(t, reminders, 3)
	for i, freq := range []int{1, 7, 30} {
		want := today.AddDate(0, 0, freq)
		assert.True(t, reminders[i].NextAt.Equal(want),
			"freq %d: want %v, got %v", freq, want, reminders[i].NextAt)
	}
}

func TestMeasurementAddUnknownChild(t *testing.T) {
	db := newTestDB(t)
	svc := NewMeasurementService(db, time.UTC)

	_, err := svc.Add(12345, 4000, 54)
	assert.ErrorIs(t, err, ErrChildNotFound)
}

func TestMeasurementLastAndRecent(t *testing.T) {
	db := newTestDB(t)
	child := testChild(t, db, 701, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))

	svc := NewMeasurementService(db, time.UTC)
	now := time.Date(2025, 4, 8, 9, 0, 0, 0, time.UTC)
	clock := &now
	svc.now = func() time.Time { return *clock }

	none, err := svc.Last(child.ID)
	require.NoError(t, err)
	assert.Nil(t, none)

	base := now
	weights := []float64{5000, 5150, 5300}
	for i, w := range weights {
		*clock = base.AddDate(0, 0, i)
		_, err := svc.Add(child.ID, w, 58+i)
		require.NoError(t, err)
	}

	last, err := svc.Last(child.ID)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.InDelta(t, 5300, last.Weight, 0.001)
	assert.Equal(t, 60, last.Height)

	recent, err := svc.Recent(child.ID, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.InDelta(t, 5300, recent[0].Weight, 0.001)
	assert.InDelta(t, 5150, recent[1].Weight, 0.001)
}
