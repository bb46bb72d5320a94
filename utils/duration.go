package utils

import (
	"fmt"
	"time"
)

// FormatDuration renders a duration as "2ч 15мин". Durations under an hour
// drop the hour part, negative values are treated as zero.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return FormatMinutes(int(d.Minutes()))
}

// FormatMinutes renders a minute count as "2ч 15мин" or "45мин".
func FormatMinutes(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	hours := minutes / 60
	minutes %= 60
	if hours == 0 {
		return fmt.Sprintf("%dмин", minutes)
	}
	return fmt.Sprintf("%dч %dмин", hours, minutes)
}
