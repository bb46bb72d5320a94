package utils

import (
	"fmt"
	"strings"
	"time"
)

// Age is a calendar age split into components, the way parents say it.
type Age struct {
	Years  int
	Months int
	Days   int
}

// CalculateAge returns the calendar difference between birth and now.
// Negative day counts borrow from the previous month, so the 31st minus
// the 15th never produces odd jumps.
func CalculateAge(birth, now time.Time) Age {
	years := now.Year() - birth.Year()
	months := int(now.Month()) - int(birth.Month())
	days := now.Day() - birth.Day()

	if days < 0 {
		// day 0 of the current month is the last day of the previous one
		days += time.Date(now.Year(), now.Month(), 0, 0, 0, 0, 0, time.UTC).Day()
		months--
	}
	if months < 0 {
		months += 12
		years--
	}

	return Age{Years: years, Months: months, Days: days}
}

// AgeInDays counts whole calendar days between birth and now, ignoring the
// time of day on both ends.
func AgeInDays(birth, now time.Time) int {
	b := time.Date(birth.Year(), birth.Month(), birth.Day(), 0, 0, 0, 0, time.UTC)
	n := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(n.Sub(b) / (24 * time.Hour))
}

// AgeInMonths returns the age in full months.
func AgeInMonths(birth, now time.Time) int {
	a := CalculateAge(birth, now)
	return a.Years*12 + a.Months
}

func (a Age) String() string {
	var parts []string
	if a.Years > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", a.Years, PluralRu(a.Years, "год", "года", "лет")))
	}
	if a.Months > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", a.Months, PluralRu(a.Months, "месяц", "месяца", "месяцев")))
	}
	if a.Days > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%d %s", a.Days, PluralRu(a.Days, "день", "дня", "дней")))
	}
	return strings.Join(parts, " ")
}

// PluralRu picks the Russian plural form for n: one (1, 21, 31...),
// few (2-4, 22-24...) or many (everything else, including 11-14).
func PluralRu(n int, one, few, many string) string {
	if n < 0 {
		n = -n
	}
	switch {
	case n%100 >= 11 && n%100 <= 14:
		return many
	case n%10 == 1:
		return one
	case n%10 >= 2 && n%10 <= 4:
		return few
	default:
		return many
	}
}
