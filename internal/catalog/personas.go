// Package catalog holds the read-only fixture data the scenario
// generators sample from: client personas, packaged food products and
// macronutrient goal archetypes.
package catalog

// Difficulty tags a scenario for display.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Experience is a client's training experience tier.
type Experience string

const (
	Beginner     Experience = "Beginner"
	Intermediate Experience = "Intermediate"
	Advanced     Experience = "Advanced"
)

// Range is an inclusive integer range.
type Range struct {
	Min int
	Max int
}

// Persona is a goal-setting client profile.
type Persona struct {
	Name         string
	Age          int
	Occupation   string
	Experience   Experience
	Weight       Range // kg
	Height       Range // cm
	BodyFat      Range // percent
	Goal         string
	Lifestyle    string
	Availability string
	Difficulty   Difficulty
}

var personas = []Persona{
	{
		Name:         "James",
		Age:          32,
		Occupation:   "Corporate Lawyer",
		Experience:   Beginner,
		Weight:       Range{90, 105},
		Height:       Range{178, 188},
		BodyFat:      Range{28, 35},
		Goal:         "I want a six-pack for my wedding in 8 weeks.",
		Lifestyle:    "Extremely high stress. Works 60+ hours/week. Frequent client dinners with alcohol. Sleep is poor (5-6 hrs).",
		Availability: "2 days per week (weekends only)",
		Difficulty:   Hard,
	},
	{
		Name:         "Sarah",
		Age:          45,
		Occupation:   "Freelance Designer",
		Experience:   Intermediate,
		Weight:       Range{60, 75},
		Height:       Range{162, 172},
		BodyFat:      Range{28, 34},
		Goal:         "I want to tone up and lose the 'softness' around my middle.",
		Lifestyle:    "Moderate stress. Works from home, cooks mostly fresh food but snacks when working. Good sleep habits.",
		Availability: "4 days per week (flexible)",
		Difficulty:   Medium,
	},
	{
		Name:         "Marcus",
		Age:          21,
		Occupation:   "University Student",
		Experience:   Advanced,
		Weight:       Range{75, 85},
		Height:       Range{175, 185},
		BodyFat:      Range{15, 18},
		Goal:         "I want to get shredded (sub 10% body fat) for summer.",
		Lifestyle:    "Low income but high time availability. Meal preps religiously. Low stress.",
		Availability: "6 days per week (gym access)",
		Difficulty:   Medium,
	},
	{
		Name:         "Elena",
		Age:          52,
		Occupation:   "Nurse (Shift Work)",
		Experience:   Beginner,
		Weight:       Range{70, 85},
		Height:       Range{155, 165},
		BodyFat:      Range{30, 40},
		Goal:         "I need to lose weight for my health, my knees are hurting.",
		Lifestyle:    "High physical fatigue but sedentary metabolism. Irregular sleep patterns due to night shifts. Relies on cafeteria food.",
		Availability: "3 days per week (irregular hours)",
		Difficulty:   Hard,
	},
}

// Personas returns a copy of the persona catalog.
func Personas() []Persona {
	out := make([]Persona, len(personas))
	copy(out, personas)
	return out
}
