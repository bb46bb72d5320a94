package content

import (
	"fmt"
	"strings"
)

// Antipyretic dosing is computed per dose from body weight. Syrup volumes
// assume the standard children's concentrations: paracetamol 120 mg / 5 ml,
// ibuprofen 100 mg / 5 ml.
const (
	paracetamolMinMGPerKG = 10.0
	paracetamolMaxMGPerKG = 15.0
	paracetamolMGPerML    = 24.0
	paracetamolMaxPerDay  = 4

	ibuprofenMinMGPerKG = 5.0
	ibuprofenMaxMGPerKG = 10.0
	ibuprofenMGPerML    = 20.0
	ibuprofenMaxPerDay  = 3

	// IbuprofenMinAgeDays is the age from which ibuprofen is allowed.
	IbuprofenMinAgeDays = 90
)

// Dose is a single-dose range for one antipyretic.
type Dose struct {
	Name       string
	MinMG      float64
	MaxMG      float64
	SyrupMinML float64
	SyrupMaxML float64
	MaxPerDay  int
}

// ParacetamolDose returns the single-dose range for the given weight in
// grams.
func ParacetamolDose(weightGrams float64) Dose {
	kg := weightGrams / 1000.0
	return Dose{
		Name:       "Парацетамол",
		MinMG:      kg * paracetamolMinMGPerKG,
		MaxMG:      kg * paracetamolMaxMGPerKG,
		SyrupMinML: kg * paracetamolMinMGPerKG / paracetamolMGPerML,
		SyrupMaxML: kg * paracetamolMaxMGPerKG / paracetamolMGPerML,
		MaxPerDay:  paracetamolMaxPerDay,
	}
}

// IbuprofenDose returns the single-dose range for the given weight in grams.
// Callers must check the age guard separately.
func IbuprofenDose(weightGrams float64) Dose {
	kg := weightGrams / 1000.0
	return Dose{
		Name:       "Ибупрофен",
		MinMG:      kg * ibuprofenMinMGPerKG,
		MaxMG:      kg * ibuprofenMaxMGPerKG,
		SyrupMinML: kg * ibuprofenMinMGPerKG / ibuprofenMGPerML,
		SyrupMaxML: kg * ibuprofenMaxMGPerKG / ibuprofenMGPerML,
		MaxPerDay:  ibuprofenMaxPerDay,
	}
}

// RenderAntipyreticDoses formats the dosing table for the weight and age.
// Returns an empty string when the weight is not positive.
func RenderAntipyreticDoses(ageDays int, weightGrams float64) string {
	if weightGrams <= 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "💊 Жаропонижающие при весе %.0f г\n\n", weightGrams)

	p := ParacetamolDose(weightGrams)
	fmt.Fprintf(&b, "%s (сироп 120 мг/5 мл):\n", p.Name)
	fmt.Fprintf(&b, "• Разовая доза: %.0f-%.0f мг (%.1f-%.1f мл)\n", p.MinMG, p.MaxMG, p.SyrupMinML, p.SyrupMaxML)
	fmt.Fprintf(&b, "• Не более %d раз в сутки\n\n", p.MaxPerDay)

	if ageDays >= IbuprofenMinAgeDays {
		i := IbuprofenDose(weightGrams)
		fmt.Fprintf(&b, "%s (сироп 100 мг/5 мл):\n", i.Name)
		fmt.Fprintf(&b, "• Разовая доза: %.0f-%.0f мг (%.1f-%.1f мл)\n", i.MinMG, i.MaxMG, i.SyrupMinML, i.SyrupMaxML)
		fmt.Fprintf(&b, "• Не более %d раз в сутки\n\n", i.MaxPerDay)
	} else {
		b.WriteString("Ибупрофен: разрешен с 3 месяцев\n\n")
	}

	b.WriteString("⚠️ Перед приемом проконсультируйтесь с врачом. " +
		"При температуре выше 39°C или у ребенка младше 3 месяцев вызывайте врача.")
	return b.String()
}
