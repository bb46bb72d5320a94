package services

import (
	"github.com/kennyonsig/FeedingMyBaby/models"
)

// StatsService assembles the development overview from the per-domain
// services.
type StatsService struct {
	feedings     *FeedingService
	sleeps       *SleepService
	diapers      *DiaperService
	measurements *MeasurementService
}

func NewStatsService(
	feedings *FeedingService,
	sleeps *SleepService,
	diapers *DiaperService,
	measurements *MeasurementService,
) *StatsService {
	return &StatsService{
		feedings:     feedings,
		sleeps:       sleeps,
		diapers:      diapers,
		measurements: measurements,
	}
}

// Overview is everything the statistics screen shows.
type Overview struct {
	TodayFeedings []models.Feeding
	TodayTotals   FeedingTotals
	Week          []FeedingTotals
	Measurements  []models.Measurement
	Sleep         IntervalTotals
	Wake          IntervalTotals
	Diapers       []DiaperKindCount
	DiaperTotal   int
}

// Overview collects today's feedings, the seven-day feeding history, the
// latest measurements and today's sleep, wake and diaper summaries.
func (s *StatsService) Overview(childID uint) (*Overview, error) {
	o := &Overview{}
	var err error

	if o.TodayFeedings, err = s.feedings.TodayList(childID); err != nil {
		return nil, err
	}
	if o.TodayTotals, err = s.feedings.TodayTotals(childID); err != nil {
		return nil, err
	}
	if o.Week, err = s.feedings.WeekTotals(childID); err != nil {
		return nil, err
	}
	if o.Measurements, err = s.measurements.Recent(childID, 5); err != nil {
		return nil, err
	}
	if o.Sleep, err = s.sleeps.TodaySleepTotals(childID); err != nil {
		return nil, err
	}
	if o.Wake, err = s.sleeps.TodayWakeTotals(childID); err != nil {
		return nil, err
	}
	if o.Diapers, o.DiaperTotal, err = s.diapers.TodayCounts(childID); err != nil {
		return nil, err
	}
	return o, nil
}
