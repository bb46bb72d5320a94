package content

import (
	"fmt"
	"strings"
)

// Vaccination is one national immunization calendar entry for the first
// year of life.
type Vaccination struct {
	AgeDays int
	AgeText string
	Name    string
}

// vaccinationCalendar lists the first-year entries of the national
// immunization calendar in due order.
var vaccinationCalendar = []Vaccination{
	{0, "Первые 24 часа", "Гепатит B (первая)"},
	{5, "3-7 дней", "Туберкулез (БЦЖ-М)"},
	{30, "1 месяц", "Гепатит B (вторая)"},
	{60, "2 месяца", "Пневмококковая инфекция (первая)"},
	{90, "3 месяца", "АКДС, полиомиелит, гемофильная инфекция (первая)"},
	{135, "4,5 месяца", "АКДС, полиомиелит, гемофильная, пневмококковая (вторая)"},
	{180, "6 месяцев", "АКДС, полиомиелит, гемофильная, гепатит B (третья)"},
	{365, "12 месяцев", "Корь, краснуха, паротит"},
}

// VaccinationSchedule returns the calendar entries in due order.
func VaccinationSchedule() []Vaccination {
	return vaccinationCalendar
}

// RenderVaccinationSchedule formats the calendar relative to the child's
// age: passed entries are checked off, the rest marked as upcoming.
func RenderVaccinationSchedule(ageDays int) string {
	var b strings.Builder
	b.WriteString("💉 Календарь прививок (первый год)\n\n")
	for _, v := range vaccinationCalendar {
		mark := "⏳"
		if ageDays >= v.AgeDays {
			mark = "✅"
		}
		fmt.Fprintf(&b, "%s %s: %s\n", mark, v.AgeText, v.Name)
	}
	b.WriteString("\n⚠️ Точные сроки согласуйте с педиатром.")
	return b.String()
}
