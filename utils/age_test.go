package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestCalculateAge(t *testing.T) {
	tests := []struct {
		name  string
		birth time.Time
		now   time.Time
		want  Age
	}{
		{"same day", date(2025, 3, 15), date(2025, 3, 15), Age{0, 0, 0}},
		{"ten days", date(2025, 3, 15), date(2025, 3, 25), Age{0, 0, 10}},
		{"exactly one month", date(2025, 3, 15), date(2025, 4, 15), Age{0, 1, 0}},
		{"day borrow", date(2025, 1, 31), date(2025, 3, 1), Age{0, 1, 1}},
		{"month borrow", date(2024, 11, 10), date(2025, 2, 5), Age{0, 2, 26}},
		{"over a year", date(2024, 2, 29), date(2025, 3, 1), Age{1, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateAge(tt.birth, tt.now))
		})
	}
}

func TestAgeInDays(t *testing.T) {
	assert.Equal(t, 0, AgeInDays(date(2025, 3, 15), date(2025, 3, 15)))
	assert.Equal(t, 1, AgeInDays(date(2025, 3, 15), date(2025, 3, 16)))
	assert.Equal(t, 31, AgeInDays(date(2025, 3, 1), date(2025, 4, 1)))

	// time of day must not matter
	birth := time.Date(2025, 3, 15, 23, 50, 0, 0, time.UTC)
	now := time.Date(2025, 3, 16, 0, 10, 0, 0, time.UTC)
	assert.Equal(t, 1, AgeInDays(birth, now))
}

func TestAgeString(t *testing.T) {
	assert.Equal(t, "0 дней", Age{}.String())
	assert.Equal(t, "1 день", Age{Days: 1}.String())
	assert.Equal(t, "2 месяца 5 дней", Age{Months: 2, Days: 5}.String())
	assert.Equal(t, "1 год 1 месяц", Age{Years: 1, Months: 1}.String())
	assert.Equal(t, "2 года 11 месяцев 21 день", Age{Years: 2, Months: 11, Days: 21}.String())
}

func TestPluralRu(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "день"}, {2, "дня"}, {4, "дня"}, {5, "дней"},
		{11, "дней"}, {12, "дней"}, {14, "дней"},
		{21, "день"}, {22, "дня"}, {25, "дней"},
		{0, "дней"}, {100, "дней"}, {101, "день"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PluralRu(tt.n, "день", "дня", "дней"), "n=%d", tt.n)
	}
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0мин", FormatMinutes(0))
	assert.Equal(t, "45мин", FormatMinutes(45))
	assert.Equal(t, "1ч 0мин", FormatMinutes(60))
	assert.Equal(t, "2ч 15мин", FormatMinutes(135))
	assert.Equal(t, "0мин", FormatMinutes(-10))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1ч 30мин", FormatDuration(90*time.Minute))
	assert.Equal(t, "0мин", FormatDuration(-time.Minute))
}

func TestDailyFormulaML(t *testing.T) {
	// 3500 g newborn: 70 ml/kg
	assert.Equal(t, 245, DailyFormulaML(5, 3500))
	// 4200 g at one month: 90 ml/kg
	assert.Equal(t, 378, DailyFormulaML(35, 4200))
	// 5000 g past two months: 110 ml/kg
	assert.Equal(t, 550, DailyFormulaML(90, 5000))
	assert.Equal(t, 0, DailyFormulaML(30, 0))
}

func TestFeedingsPerDay(t *testing.T) {
	assert.Equal(t, 10, FeedingsPerDay(10))
	assert.Equal(t, 10, FeedingsPerDay(30))
	assert.Equal(t, 8, FeedingsPerDay(31))
}

func TestPerFeedingML(t *testing.T) {
	assert.Equal(t, 24, PerFeedingML(5, 3500))  // 245 / 10
	assert.Equal(t, 68, PerFeedingML(90, 5000)) // 550 / 8
	assert.Equal(t, 0, PerFeedingML(90, 0))
}
