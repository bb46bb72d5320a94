// Package content holds the canned guidance the bot serves: age norms,
// development tips, the vaccination calendar and antipyretic dosing. All of
// it is static reference data, looked up by age or weight.
package content

import (
	"fmt"

	"github.com/kennyonsig/FeedingMyBaby/models"
	"github.com/kennyonsig/FeedingMyBaby/utils"
)

// Diaper-change counts per day outside this range get a warning in stats.
const (
	MinDiaperChangesPerDay = 6
	MaxDiaperChangesPerDay = 15
)

// SleepNorm returns the recommended daily sleep total line for the child's
// age, shown under sleep statistics.
func SleepNorm(ageDays int) string {
	switch {
	case ageDays <= 90:
		return "💡 Рекомендация: Новорожденным нужно 14-17 часов сна в сутки"
	case ageDays <= 180:
		return "💡 Рекомендация: Грудничкам нужно 12-16 часов сна в сутки"
	default:
		return "💡 Рекомендация: Малышам нужно 11-14 часов сна в сутки"
	}
}

// WakeWindow returns the recommended single stretch of wakefulness.
func WakeWindow(ageDays int) string {
	switch {
	case ageDays <= 30:
		return "1-2 часа"
	case ageDays <= 90:
		return "1.5-2.5 часа"
	case ageDays <= 180:
		return "2-3 часа"
	default:
		return "3-4 часа"
	}
}

// DailySleepForAge returns the total daily sleep range paired with the wake
// window, used in wakefulness statistics.
func DailySleepForAge(ageDays int) string {
	switch {
	case ageDays <= 30:
		return "16-18 часов"
	case ageDays <= 90:
		return "14-16 часов"
	case ageDays <= 180:
		return "13-15 часов"
	default:
		return "12-14 часов"
	}
}

// OvertirednessThresholdMinutes is the average wake period beyond which the
// stats warn about overtiredness.
const OvertirednessThresholdMinutes = 240

// DiaperAdvice returns the one-line tip shown after logging a change.
func DiaperAdvice(kind models.DiaperKind) string {
	switch kind {
	case models.DiaperStool:
		return "💡 Важно: Стул должен быть желтым, кашицеобразным у грудничков"
	case models.DiaperWet:
		return "💡 Норма: 8-12 мочеиспусканий в сутки - признак достаточного питания"
	default:
		return "💡 Уход: Используйте крем под подгузник для профилактики опрелостей"
	}
}

// DiaperDailyAssessment grades the total number of changes logged today.
func DiaperDailyAssessment(total int) string {
	switch {
	case total < MinDiaperChangesPerDay:
		return "⚠️ Внимание: Мало смен подгузников. Проверьте, достаточно ли ребенок ест.\n"
	case total > MaxDiaperChangesPerDay:
		return "⚠️ Внимание: Очень частая смена. Проконсультируйтесь с педиатром.\n"
	default:
		return "✅ Отлично! Количество смен в пределах нормы.\n"
	}
}

// DiaperNormsFooter lists the reference ranges appended to diaper stats.
func DiaperNormsFooter() string {
	return "💡 Нормы для грудничков:\n" +
		"• 8-12 мочеиспусканий в сутки\n" +
		"• 1-7 стулов в сутки (зависит от типа питания)\n"
}

// MeasurementFrequency names how often parameters should be measured at the
// given age. The reminder rows carry the matching day intervals.
func MeasurementFrequency(ageDays int) string {
	switch {
	case ageDays <= 14:
		return "ежедневно"
	case ageDays <= 90:
		return "еженедельно"
	default:
		return "ежемесячно"
	}
}

// FormulaAdvice renders the recommended daily formula volume for the weight
// and age, or an empty string when there is no weight on record.
func FormulaAdvice(ageDays int, weightGrams float64) string {
	daily := utils.DailyFormulaML(ageDays, weightGrams)
	if daily == 0 {
		return ""
	}
	feedings := utils.FeedingsPerDay(ageDays)
	return fmt.Sprintf(
		"💡 Норма смеси: ~%d мл в сутки (%d кормлений по ~%d мл) при весе %.0f г",
		daily, feedings, utils.PerFeedingML(ageDays, weightGrams), weightGrams,
	)
}
