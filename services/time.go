package services

import "time"

// dayWindow returns the [start, end) bounds of the calendar day containing
// t in the given location. Range queries against timestamp columns use
// these instead of SQL date functions, which would cut days at UTC
// midnight.
func dayWindow(t time.Time, loc *time.Location) (start, end time.Time) {
	tt := t.In(loc)
	start = time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// dayStart returns local midnight of the day containing t.
func dayStart(t time.Time, loc *time.Location) time.Time {
	s, _ := dayWindow(t, loc)
	return s
}
