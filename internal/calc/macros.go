package calc

import "fmt"

// Energy densities in kcal per gram.
const (
	CarbKcalPerGram    = 4.0
	ProteinKcalPerGram = 4.0
	FatKcalPerGram     = 9.0
)

// Split is a macronutrient distribution in whole percentages.
type Split struct {
	Carbs   int `json:"carbs"`
	Protein int `json:"protein"`
	Fat     int `json:"fat"`
}

// Validate checks the split is non-negative and sums to 100.
func (s Split) Validate() error {
	if s.Carbs < 0 || s.Protein < 0 || s.Fat < 0 {
		return fmt.Errorf("macro split %d/%d/%d has a negative share", s.Carbs, s.Protein, s.Fat)
	}
	if sum := s.Carbs + s.Protein + s.Fat; sum != 100 {
		return fmt.Errorf("macro split %d/%d/%d sums to %d, want 100", s.Carbs, s.Protein, s.Fat, sum)
	}
	return nil
}

func (s Split) String() string {
	return fmt.Sprintf("%d%% carbs / %d%% protein / %d%% fat", s.Carbs, s.Protein, s.Fat)
}

// Macros holds daily gram targets.
type Macros struct {
	CarbsG   float64
	ProteinG float64
	FatG     float64
}

// Kcal reconstructs the energy total from the gram targets.
func (m Macros) Kcal() float64 {
	return m.CarbsG*CarbKcalPerGram + m.ProteinG*ProteinKcalPerGram + m.FatG*FatKcalPerGram
}

// Allocate converts a TDEE and percentage split into grams per nutrient.
func Allocate(tdee float64, s Split) Macros {
	grams := func(pct int, density float64) float64 {
		return tdee * float64(pct) / 100 / density
	}
	return Macros{
		CarbsG:   grams(s.Carbs, CarbKcalPerGram),
		ProteinG: grams(s.Protein, ProteinKcalPerGram),
		FatG:     grams(s.Fat, FatKcalPerGram),
	}
}
