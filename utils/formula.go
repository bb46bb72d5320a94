package utils

// Formula feeding guidance for bottle-fed infants, by age and current
// weight. Volumes follow the common pediatric per-kilogram rule.

// DailyFormulaML returns the recommended total formula volume per day in
// millilitres. Weight is in grams. Returns 0 when the weight is unknown.
func DailyFormulaML(ageDays int, weightGrams float64) int {
	if weightGrams <= 0 {
		return 0
	}
	perKg := 110.0
	switch {
	case ageDays <= 10:
		perKg = 70.0
	case ageDays <= 60:
		perKg = 90.0
	}
	return int(weightGrams / 1000.0 * perKg)
}

// FeedingsPerDay returns the recommended number of feedings: newborns eat
// around ten times a day, after the first month eight is typical.
func FeedingsPerDay(ageDays int) int {
	if ageDays <= 30 {
		return 10
	}
	return 8
}

// PerFeedingML returns the recommended single-feeding volume in millilitres.
func PerFeedingML(ageDays int, weightGrams float64) int {
	daily := DailyFormulaML(ageDays, weightGrams)
	if daily == 0 {
		return 0
	}
	return daily / FeedingsPerDay(ageDays)
}
