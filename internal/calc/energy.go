package calc

// Mifflin-St Jeor sex offsets.
const (
	MaleBMROffset   = 5.0
	FemaleBMROffset = -161.0
)

// ActivityLevel pairs a physical activity level with its TDEE multiplier.
type ActivityLevel struct {
	Name        string
	Description string
	Multiplier  float64
}

// Label is the display form, e.g. "Sedentary (desk job, little exercise)".
func (a ActivityLevel) Label() string {
	return a.Name + " (" + a.Description + ")"
}

// ActivityLevels is the fixed multiplier table, least to most active.
var ActivityLevels = []ActivityLevel{
	{Name: "Sedentary", Description: "desk job, little exercise", Multiplier: 1.2},
	{Name: "Lightly Active", Description: "exercise 1-3 days/week", Multiplier: 1.375},
	{Name: "Moderately Active", Description: "exercise 3-5 days/week", Multiplier: 1.55},
	{Name: "Very Active", Description: "exercise 6-7 days/week", Multiplier: 1.725},
	{Name: "Extra Active", Description: "physical job & hard exercise", Multiplier: 1.9},
}

// LookupActivity finds an activity level by name (case-sensitive) or by
// its full label.
func LookupActivity(name string) (ActivityLevel, bool) {
	for _, a := range ActivityLevels {
		if a.Name == name || a.Label() == name {
			return a, true
		}
	}
	return ActivityLevel{}, false
}

// BMR is the Mifflin-St Jeor basal metabolic rate in kcal/day for weight
// in kg, height in cm and age in years.
func BMR(g Gender, weightKg, heightCm, ageYears float64) float64 {
	offset := FemaleBMROffset
	if g == Male {
		offset = MaleBMROffset
	}
	return 10*weightKg + 6.25*heightCm - 5*ageYears + offset
}

// TDEE applies an activity multiplier to a BMR.
func TDEE(bmr, multiplier float64) float64 {
	return bmr * multiplier
}

// Energy bundles BMR and TDEE for one subject.
type Energy struct {
	BMR  float64
	TDEE float64
}

// Expenditure computes BMR and TDEE in one step.
func Expenditure(g Gender, weightKg, heightCm, ageYears, multiplier float64) Energy {
	bmr := BMR(g, weightKg, heightCm, ageYears)
	return Energy{BMR: bmr, TDEE: TDEE(bmr, multiplier)}
}
